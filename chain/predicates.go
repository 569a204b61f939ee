package chain

import (
	"github.com/hasbyte1/cronies/data"
	"github.com/hasbyte1/cronies/format"
)

// ─────────────────────────────────────────────────────────────────────────────
// Predicates
//
// These inspect the current value. They never record and ignore the chain's
// error.
// ─────────────────────────────────────────────────────────────────────────────

// TypeOf returns the short type name of the current value, as [data.TypeOf].
func (w *Wrapper) TypeOf() string { return data.TypeOf(w.current) }

// IsNumber reports whether the current value is a Go number.
func (w *Wrapper) IsNumber() bool { return data.IsNumber(w.current) }

// IsNumberLike reports whether the current value is a string holding a
// canonical non-negative integer.
func (w *Wrapper) IsNumberLike() bool { return format.IsNumberLike(w.current) }

// IsString reports whether the current value is a string.
func (w *Wrapper) IsString() bool {
	_, ok := w.current.(string)
	return ok
}

// IsSequence reports whether the current value is a sequence.
func (w *Wrapper) IsSequence() bool { return data.Classify(w.current) == data.Sequence }

// IsMapping reports whether the current value is a mapping.
func (w *Wrapper) IsMapping() bool { return data.Classify(w.current) == data.Mapping }

// IsStructural reports whether the current value is a sequence or mapping.
func (w *Wrapper) IsStructural() bool { return data.IsStructural(w.current) }

// IsDate reports whether the current value is a time.Time.
func (w *Wrapper) IsDate() bool { return data.IsDate(w.current) }

// NumIsBetween reports whether from <= current <= to.
func (w *Wrapper) NumIsBetween(from, to any) (bool, error) {
	return format.NumIsBetween(w.current, from, to)
}
