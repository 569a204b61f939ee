package chain

import (
	"fmt"
	"math"

	"github.com/hasbyte1/cronies/data"
	"github.com/hasbyte1/cronies/format"
	"github.com/hasbyte1/cronies/job"
)

// transform applies leaf to each selected element of a sequence or mapping,
// or directly to a scalar. Elements leaf rejects pass through unchanged; a
// rejected scalar is an invalid argument.
func transform(cur any, keys []string, leaf func(v any) (any, bool)) (any, error) {
	if !data.IsStructural(cur) {
		out, ok := leaf(cur)
		if !ok {
			return nil, fmt.Errorf("%w: unsupported %s", data.ErrInvalidArgument, data.TypeOf(cur))
		}
		return out, nil
	}
	return run(cur, keys, func(v any, k job.Key, _ any, add job.AddFunc) {
		if out, ok := leaf(v); ok {
			add(out, k)
			return
		}
		add(v, k)
	})
}

// remove keeps the selected elements that drop does not match.
func remove(cur any, keys []string, drop func(v any) bool) (any, error) {
	return run(cur, keys, func(v any, k job.Key, _ any, add job.AddFunc) {
		if !drop(v) {
			add(v, k)
		}
	})
}

func checkDecimalPlaces(dp int) error {
	if dp < 0 {
		return fmt.Errorf("%w: negative decimal places %d", data.ErrInvalidArgument, dp)
	}
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Rounding
// ─────────────────────────────────────────────────────────────────────────────

// RoundTo rounds numbers to dp decimal places, leaving a float64. Applied
// to each top-level element of a sequence or mapping, or to a numeric
// scalar; other elements pass through.
func (w *Wrapper) RoundTo(dp int, keys ...string) *Wrapper {
	return w.apply("roundTo", func(cur any) (any, error) {
		if err := checkDecimalPlaces(dp); err != nil {
			return nil, err
		}
		return transform(cur, keys, func(v any) (any, bool) {
			f, ok := data.ToFloat(v)
			if !ok {
				return nil, false
			}
			r, _ := format.RoundTo(f, dp)
			return r, true
		})
	})
}

// RoundToFixed is RoundTo producing fixed-point strings that keep their
// trailing zeros: 125 becomes "125.00" for dp 2.
func (w *Wrapper) RoundToFixed(dp int, keys ...string) *Wrapper {
	return w.apply("roundToFixed", func(cur any) (any, error) {
		if err := checkDecimalPlaces(dp); err != nil {
			return nil, err
		}
		return transform(cur, keys, func(v any) (any, bool) {
			f, ok := data.ToFloat(v)
			if !ok {
				return nil, false
			}
			s, _ := format.RoundToFixed(f, dp)
			return s, true
		})
	})
}

// ThreeCommaFormat groups the integer digits of numbers in threes. A
// numeric string scalar is accepted too.
func (w *Wrapper) ThreeCommaFormat(keys ...string) *Wrapper {
	return w.apply("threeCommaFormat", func(cur any) (any, error) {
		if !data.IsStructural(cur) {
			return format.ThreeComma(cur)
		}
		return transform(cur, keys, func(v any) (any, bool) {
			if !data.IsNumber(v) {
				return nil, false
			}
			s, err := format.ThreeComma(v)
			return s, err == nil
		})
	})
}

// ─────────────────────────────────────────────────────────────────────────────
// Extremes
// ─────────────────────────────────────────────────────────────────────────────

// Min replaces a sequence or mapping with its smallest number, ignoring
// everything else. Without any number the result is +Inf. A scalar is
// recorded unchanged.
func (w *Wrapper) Min() *Wrapper {
	return w.apply("min", func(cur any) (any, error) {
		return extreme(cur, math.Inf(1), func(a, b float64) bool { return a < b }), nil
	})
}

// Max is the counterpart of Min; without any number the result is -Inf.
func (w *Wrapper) Max() *Wrapper {
	return w.apply("max", func(cur any) (any, error) {
		return extreme(cur, math.Inf(-1), func(a, b float64) bool { return a > b }), nil
	})
}

func extreme(cur any, start float64, better func(a, b float64) bool) any {
	var values []any
	switch t := cur.(type) {
	case []any:
		values = t
	case *data.Map:
		if t == nil {
			return cur
		}
		values = t.Values()
	default:
		return cur
	}

	var best any = start
	bestF := start
	for _, v := range values {
		if f, ok := data.ToFloat(v); ok && better(f, bestF) {
			best, bestF = v, f
		}
	}
	return best
}

// ─────────────────────────────────────────────────────────────────────────────
// Removal
// ─────────────────────────────────────────────────────────────────────────────

// RemoveNegatives drops numbers that are not strictly positive, zero
// included. Non-numbers are kept.
func (w *Wrapper) RemoveNegatives(keys ...string) *Wrapper {
	return w.apply("removeNegatives", func(cur any) (any, error) {
		return remove(cur, keys, func(v any) bool {
			f, ok := data.ToFloat(v)
			return ok && !(f > 0)
		})
	})
}

// RemovePositives drops numbers that are not strictly negative, zero
// included. Non-numbers are kept.
func (w *Wrapper) RemovePositives(keys ...string) *Wrapper {
	return w.apply("removePositives", func(cur any) (any, error) {
		return remove(cur, keys, func(v any) bool {
			f, ok := data.ToFloat(v)
			return ok && !(f < 0)
		})
	})
}

// RemoveNumbers drops every number.
func (w *Wrapper) RemoveNumbers(keys ...string) *Wrapper {
	return w.apply("removeNumbers", func(cur any) (any, error) {
		return remove(cur, keys, data.IsNumber)
	})
}

// RemoveFalsey drops nil, false, numeric zero, NaN and empty strings.
func (w *Wrapper) RemoveFalsey(keys ...string) *Wrapper {
	return w.apply("removeFalsey", func(cur any) (any, error) {
		return remove(cur, keys, func(v any) bool { return !data.Truthy(v) })
	})
}
