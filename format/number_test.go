package format_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/cronies/data"
	"github.com/hasbyte1/cronies/format"
)

func TestRoundHalfUp(t *testing.T) {
	assert.Equal(t, 3.0, format.RoundHalfUp(2.5))
	assert.Equal(t, -2.0, format.RoundHalfUp(-2.5))
	assert.Equal(t, 0.0, format.RoundHalfUp(0.49999999999999994))
	assert.True(t, math.IsInf(format.RoundHalfUp(math.Inf(1)), 1))
	assert.True(t, math.IsNaN(format.RoundHalfUp(math.NaN())))
}

// Golden values: binary representation decides the .005 boundaries.
func TestRoundToGolden(t *testing.T) {
	tests := []struct {
		in   float64
		dp   int
		want float64
	}{
		{1.005, 2, 1},
		{2.675, 2, 2.68},
		{1.255, 2, 1.25},
		{125, 2, 125},
		{3.14159, 3, 3.142},
		{-1.5, 0, -1},
		{1234.5678, 1, 1234.6},
	}
	for _, tt := range tests {
		got, err := format.RoundTo(tt.in, tt.dp)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "RoundTo(%v, %d)", tt.in, tt.dp)
	}
}

func TestRoundToFixedKeepsTrailingZeros(t *testing.T) {
	tests := []struct {
		in   float64
		dp   int
		want string
	}{
		{125, 2, "125.00"},
		{1.005, 2, "1.00"},
		{0.1, 3, "0.100"},
		{9.995, 0, "10"},
	}
	for _, tt := range tests {
		got, err := format.RoundToFixed(tt.in, tt.dp)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "RoundToFixed(%v, %d)", tt.in, tt.dp)
	}
}

func TestRoundNegativePlaces(t *testing.T) {
	_, err := format.RoundTo(1, -1)
	assert.ErrorIs(t, err, data.ErrInvalidArgument)
	_, err = format.RoundToFixed(1, -2)
	assert.ErrorIs(t, err, data.ErrInvalidArgument)
}

func TestThreeComma(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{1000.234, "1,000.234"},
		{1234567, "1,234,567"},
		{int64(-9876543), "-9,876,543"},
		{999, "999"},
		{"1234567.5", "1,234,567.5"},
		{uint16(65535), "65,535"},
	}
	for _, tt := range tests {
		got, err := format.ThreeComma(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := format.ThreeComma("abc")
	assert.ErrorIs(t, err, data.ErrInvalidArgument)
	_, err = format.ThreeComma(true)
	assert.ErrorIs(t, err, data.ErrInvalidArgument)
}

func TestAddLeading(t *testing.T) {
	assert.Equal(t, "07", format.AddLeading(7, ""))
	assert.Equal(t, "12", format.AddLeading(12, ""))
	assert.Equal(t, "*3", format.AddLeading(3, "*"))
}

func TestNumIsBetween(t *testing.T) {
	ok, err := format.NumIsBetween(50, 0, 60)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = format.NumIsBetween(50, 51, 60)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = format.NumIsBetween(60.0, 0, 60)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = format.NumIsBetween("50", 0, 60)
	assert.ErrorIs(t, err, data.ErrInvalidArgument)
}

func TestIsNumberLike(t *testing.T) {
	assert.True(t, format.IsNumberLike("10"))
	assert.True(t, format.IsNumberLike("0"))
	for _, v := range []any{"01", "-1", "1.5", "ab", "", 10} {
		assert.False(t, format.IsNumberLike(v), "%#v", v)
	}
}
