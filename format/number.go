package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/hasbyte1/cronies/data"
)

// RoundHalfUp rounds x to the nearest integer with ties going toward positive
// infinity, so RoundHalfUp(2.5) == 3 and RoundHalfUp(-2.5) == -2.
func RoundHalfUp(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	f := math.Floor(x)
	if x-f >= 0.5 {
		return f + 1
	}
	return f
}

// RoundToFixed rounds x to dp decimal places by scaling, rounding with
// [RoundHalfUp] and scaling back, and returns the fixed-decimal string with
// trailing zeros kept: RoundToFixed(125, 2) == "125.00".
//
// The scaling step inherits binary floating-point error: 1.005*100 is
// 100.49999999999999, so RoundToFixed(1.005, 2) == "1.00".
func RoundToFixed(x float64, dp int) (string, error) {
	if dp < 0 {
		return "", fmt.Errorf("%w: decimal places must be >= 0, got %d", data.ErrInvalidArgument, dp)
	}
	pow := math.Pow(10, float64(dp))
	return strconv.FormatFloat(RoundHalfUp(x*pow)/pow, 'f', dp, 64), nil
}

// RoundTo is [RoundToFixed] parsed back into a float64, so trailing zeros
// disappear: RoundTo(125, 2) == 125.
func RoundTo(x float64, dp int) (float64, error) {
	s, err := RoundToFixed(x, dp)
	if err != nil {
		return 0, err
	}
	return strconv.ParseFloat(s, 64)
}

// ThreeComma groups the integer digits of a number in threes:
// 1000.234 becomes "1,000.234". Numeric strings are parsed first; any other
// value is an invalid argument.
func ThreeComma(v any) (string, error) {
	switch n := v.(type) {
	case int:
		return humanize.Comma(int64(n)), nil
	case int64:
		return humanize.Comma(n), nil
	case int32:
		return humanize.Comma(int64(n)), nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return "", fmt.Errorf("%w: %q is not numeric", data.ErrInvalidArgument, n)
		}
		return humanize.Commaf(f), nil
	}
	if f, ok := data.ToFloat(v); ok {
		return humanize.Commaf(f), nil
	}
	return "", fmt.Errorf("%w: %s is not a number", data.ErrInvalidArgument, data.TypeOf(v))
}

// AddLeading prefixes n with prefix when n is below 10. An empty prefix
// means "0", giving two-digit zero padding.
func AddLeading(n int, prefix string) string {
	if prefix == "" {
		prefix = "0"
	}
	s := strconv.Itoa(n)
	if n < 10 {
		return prefix + s
	}
	return s
}

// NumIsBetween reports whether from <= num <= to. All three must be numbers.
func NumIsBetween(num, from, to any) (bool, error) {
	n, ok1 := data.ToFloat(num)
	lo, ok2 := data.ToFloat(from)
	hi, ok3 := data.ToFloat(to)
	if !ok1 || !ok2 || !ok3 {
		return false, fmt.Errorf("%w: %v, %v, %v must all be numbers", data.ErrInvalidArgument, num, from, to)
	}
	return n >= lo && n <= hi, nil
}

// IsNumberLike reports whether v is a string holding a canonical
// non-negative integer: "10" is, "01", "-1", "1.5" and 10 are not.
func IsNumberLike(v any) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	n, err := strconv.ParseUint(s, 10, 64)
	return err == nil && strconv.FormatUint(n, 10) == s
}
