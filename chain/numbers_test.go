package chain_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/cronies/chain"
	"github.com/hasbyte1/cronies/data"
)

func TestRoundToGolden(t *testing.T) {
	w := chain.Wrap(1.005).RoundTo(2)
	require.NoError(t, w.Err())
	assert.Equal(t, 1.0, w.Data())

	w = chain.Wrap(125).RoundToFixed(2)
	require.NoError(t, w.Err())
	assert.Equal(t, "125.00", w.Data())
}

func TestRoundToStructure(t *testing.T) {
	w := chain.Wrap([]any{1.234, "x", []any{1.55}, 7}).RoundTo(1)
	require.NoError(t, w.Err())
	assert.Equal(t, []any{1.2, "x", []any{1.55}, 7.0}, w.Data())

	w = chain.Wrap(data.MapOf("a", 2.675, "b", true)).RoundToFixed(2)
	assert.Equal(t, data.MapOf("a", "2.68", "b", true), w.Data())
}

func TestRoundToRestricted(t *testing.T) {
	w := chain.Wrap([]any{1.26, 2.26}).RoundTo(1, "1")
	assert.Equal(t, []any{2.3}, w.Data())
}

func TestRoundToZeroDecimals(t *testing.T) {
	w := chain.Wrap(2.5).RoundTo(0)
	assert.Equal(t, 3.0, w.Data())

	w = chain.Wrap(-2.5).RoundToFixed(0)
	assert.Equal(t, "-2", w.Data())
}

func TestRoundToInvalid(t *testing.T) {
	w := chain.Wrap(1.5).RoundTo(-1)
	assert.ErrorIs(t, w.Err(), chain.ErrInvalidArgument)
	assert.Equal(t, 1.5, w.Data())

	w = chain.Wrap("1.5").RoundToFixed(2)
	assert.ErrorIs(t, w.Err(), chain.ErrInvalidArgument)
	assert.Zero(t, w.Depth())
}

func TestThreeCommaFormat(t *testing.T) {
	w := chain.Wrap([]any{1000.234, 1234567, "x"}).ThreeCommaFormat()
	require.NoError(t, w.Err())
	assert.Equal(t, []any{"1,000.234", "1,234,567", "x"}, w.Data())

	w = chain.Wrap("1234.5").ThreeCommaFormat()
	assert.Equal(t, "1,234.5", w.Data())

	w = chain.Wrap("abc").ThreeCommaFormat()
	assert.ErrorIs(t, w.Err(), chain.ErrInvalidArgument)
}

func TestMinMax(t *testing.T) {
	in := []any{3, "x", -1, 7, nil}
	assert.Equal(t, -1, chain.Wrap(in).Min().Data())
	assert.Equal(t, 7, chain.Wrap(in).Max().Data())

	m := data.MapOf("a", 2.5, "b", 9, "c", "z")
	assert.Equal(t, 2.5, chain.Wrap(m).Min().Data())
	assert.Equal(t, 9, chain.Wrap(m).Max().Data())
}

func TestMinMaxWithoutNumbers(t *testing.T) {
	assert.Equal(t, math.Inf(1), chain.Wrap([]any{}).Min().Data())
	assert.Equal(t, math.Inf(-1), chain.Wrap([]any{"a"}).Max().Data())
}

func TestMinMaxScalarRecordedUnchanged(t *testing.T) {
	w := chain.Wrap(5).Min()
	require.NoError(t, w.Err())
	assert.Equal(t, 5, w.Data())
	assert.Equal(t, 1, w.Depth())
}

func TestRemoveNegatives(t *testing.T) {
	w := chain.Wrap([]any{3, -1, 0, "a", 2.5}).RemoveNegatives()
	require.NoError(t, w.Err())
	assert.Equal(t, []any{3, "a", 2.5}, w.Data())

	w = chain.Wrap([]any{3, -1, 0}).RemoveNegatives("0,1")
	assert.Equal(t, []any{3}, w.Data())
}

func TestRemovePositives(t *testing.T) {
	w := chain.Wrap([]any{3, -1, 0, "a", -2.5}).RemovePositives()
	assert.Equal(t, []any{-1, "a", -2.5}, w.Data())
}

func TestRemoveNumbers(t *testing.T) {
	w := chain.Wrap(data.MapOf("a", 1, "b", "two", "c", 3.0)).RemoveNumbers()
	assert.Equal(t, data.MapOf("b", "two"), w.Data())
}

func TestRemoveFalsey(t *testing.T) {
	w := chain.Wrap([]any{0, 1, "", nil, false, "a", math.NaN(), []any{}}).RemoveFalsey()
	require.NoError(t, w.Err())
	assert.Equal(t, []any{1, "a", []any{}}, w.Data())
	assert.Equal(t, 1, w.Depth())
}

func TestRemoveOnScalar(t *testing.T) {
	w := chain.Wrap(-1).RemoveNegatives()
	assert.ErrorIs(t, w.Err(), chain.ErrTypeMismatch)
}
