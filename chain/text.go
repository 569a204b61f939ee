package chain

import (
	"fmt"
	"time"

	"github.com/hasbyte1/cronies/data"
	"github.com/hasbyte1/cronies/format"
)

// RemoveCharacters deletes every rune of chars, ignoring case, from string
// elements or a string scalar and trims the result. An empty chars removes
// ASCII letters.
func (w *Wrapper) RemoveCharacters(chars string, keys ...string) *Wrapper {
	return w.apply("removeCharacters", func(cur any) (any, error) {
		strip := format.CharacterRemover(chars)
		return transform(cur, keys, func(v any) (any, bool) {
			s, ok := v.(string)
			if !ok {
				return nil, false
			}
			return strip(s), true
		})
	})
}

// AppendStringAt inserts s into string elements, or a string scalar, before
// each rune offset in indexes.
func (w *Wrapper) AppendStringAt(s string, indexes ...int) *Wrapper {
	return w.apply("appendStringAt", func(cur any) (any, error) {
		return transform(cur, nil, func(v any) (any, bool) {
			str, ok := v.(string)
			if !ok {
				return nil, false
			}
			return format.AppendStringAt(str, s, indexes...), true
		})
	})
}

// ─────────────────────────────────────────────────────────────────────────────
// Dates
// ─────────────────────────────────────────────────────────────────────────────

// FormatDate renders dates and millisecond timestamps with pattern. See
// [format.DateFormatter] for the token set.
func (w *Wrapper) FormatDate(pattern string, keys ...string) *Wrapper {
	return w.apply("formatDate", func(cur any) (any, error) {
		return transform(cur, keys, func(v any) (any, bool) {
			s, ok := w.dates.FormatValue(v, pattern)
			return s, ok
		})
	})
}

// DayDifference replaces the current date with the number of days until to.
func (w *Wrapper) DayDifference(to time.Time) *Wrapper {
	return w.dateDifference("dayDifference", to, format.Day)
}

// HourDifference replaces the current date with the number of hours until to.
func (w *Wrapper) HourDifference(to time.Time) *Wrapper {
	return w.dateDifference("hourDifference", to, format.Hour)
}

// MinuteDifference replaces the current date with the number of minutes
// until to.
func (w *Wrapper) MinuteDifference(to time.Time) *Wrapper {
	return w.dateDifference("minuteDifference", to, format.Minute)
}

func (w *Wrapper) dateDifference(op string, to time.Time, unit time.Duration) *Wrapper {
	return w.apply(op, func(cur any) (any, error) {
		from, ok := cur.(time.Time)
		if !ok {
			return nil, fmt.Errorf("%w: %s is not a date", data.ErrInvalidArgument, data.TypeOf(cur))
		}
		return format.DateDifference(from, to, unit), nil
	})
}

// SetDayNames replaces the weekday names used by the EE token. names must
// hold seven entries, Monday first. Nothing is recorded.
func (w *Wrapper) SetDayNames(names []string) *Wrapper {
	if w.err != nil {
		return w
	}
	if len(names) != 7 {
		return w.fail("setDayNames", fmt.Errorf("%w: need 7 day names, got %d", data.ErrInvalidArgument, len(names)))
	}
	copy(w.dates.DayNames[:], names)
	return w
}
