package chain_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/cronies/chain"
)

func evens(cur any, _ ...any) (any, error) {
	var out []int
	for _, v := range cur.([]any) {
		if n, ok := v.(int); ok && n%2 == 0 {
			out = append(out, n)
		}
	}
	return out, nil
}

func times(cur any, args ...any) (any, error) {
	n := args[0].(int)
	out := make([]any, 0)
	for _, v := range cur.([]any) {
		out = append(out, v.(int)*n)
	}
	return out, nil
}

func TestRegistryWithIsImmutable(t *testing.T) {
	base := chain.NewRegistry()
	withEvens := base.With("evens", evens)
	both := withEvens.With("times", times)

	assert.False(t, base.Has("evens"))
	assert.Equal(t, 0, base.Len())
	assert.True(t, withEvens.Has("evens"))
	assert.False(t, withEvens.Has("times"))
	assert.Equal(t, []string{"evens", "times"}, both.Names())
}

func TestNilRegistry(t *testing.T) {
	var r *chain.Registry
	assert.False(t, r.Has("x"))
	assert.Zero(t, r.Len())
	assert.Empty(t, r.Names())
	assert.True(t, r.With("x", evens).Has("x"))
}

func TestCall(t *testing.T) {
	reg := chain.NewRegistry().With("evens", evens).With("times", times)
	w := chain.Wrap([]int{1, 2, 3, 4}, chain.WithRegistry(reg)).
		Call("evens").
		Call("times", 10)

	require.NoError(t, w.Err())
	assert.Equal(t, []any{20, 40}, w.Data())
	assert.Equal(t, 2, w.Depth())
}

func TestCallUnknown(t *testing.T) {
	w := chain.Wrap([]int{1}).Call("missing")
	assert.ErrorIs(t, w.Err(), chain.ErrOperationNotFound)
	assert.Contains(t, w.Err().Error(), `"missing"`)
	assert.Zero(t, w.Depth())
}

func TestApply(t *testing.T) {
	w := chain.Wrap([]int{1, 2}).Apply(times, 3)
	require.NoError(t, w.Err())
	assert.Equal(t, []any{3, 6}, w.Data())
}

func TestApplyError(t *testing.T) {
	boom := errors.New("boom")
	w := chain.Wrap(1).Apply(func(any, ...any) (any, error) { return nil, boom })
	assert.ErrorIs(t, w.Err(), boom)
	assert.Equal(t, 1, w.Data())
	assert.Zero(t, w.Depth())
}

func TestDump(t *testing.T) {
	var buf bytes.Buffer
	w := chain.Wrap([]int{1, 2}).Dump(&buf)
	assert.Contains(t, buf.String(), "(int) 1")
	assert.Contains(t, buf.String(), "(int) 2")
	assert.Zero(t, w.Depth())
}
