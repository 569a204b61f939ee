package data

import "errors"

// Sentinel errors returned by data helpers and re-exported by the chain
// package.
var (
	// ErrTypeMismatch is returned when an operation that needs a sequence or
	// mapping receives a scalar, or when two operands must share a shape and
	// do not.
	ErrTypeMismatch = errors.New("cronies: type mismatch")

	// ErrInvalidArgument is returned when an argument is not of the expected
	// primitive type or is out of range.
	ErrInvalidArgument = errors.New("cronies: invalid argument")

	// ErrInvalidPath is returned by [Set] when a dot path cannot be written.
	ErrInvalidPath = errors.New("cronies: invalid path")
)
