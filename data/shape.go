package data

// Shape classifies a value as a sequence, a mapping or a scalar.
type Shape int

const (
	// Scalar is any atomic value: numbers, strings, dates, booleans, nil and
	// every non-container Go value.
	Scalar Shape = iota
	// Sequence is an ordered, 0-indexed []any.
	Sequence
	// Mapping is an insertion-ordered *Map keyed by strings.
	Mapping
)

// String implements fmt.Stringer.
func (s Shape) String() string {
	switch s {
	case Sequence:
		return "sequence"
	case Mapping:
		return "mapping"
	default:
		return "scalar"
	}
}

// Classify returns the shape of v. Only the canonical containers ([]any and
// *Map) are structural; run native input through [Normalize] first.
func Classify(v any) Shape {
	switch t := v.(type) {
	case []any:
		return Sequence
	case *Map:
		if t == nil {
			return Scalar
		}
		return Mapping
	default:
		return Scalar
	}
}

// IsStructural reports whether v is a sequence or a mapping.
func IsStructural(v any) bool { return Classify(v) != Scalar }
