package chain

import (
	"errors"

	"github.com/hasbyte1/cronies/data"
)

// Sentinel errors reported through [Wrapper.Err]. Match them with errors.Is.
var (
	// ErrTypeMismatch is reported when an operation needs a sequence or
	// mapping and the wrapper holds a scalar, or when Merge operands have
	// different shapes.
	ErrTypeMismatch = data.ErrTypeMismatch

	// ErrInvalidArgument is reported when an argument or the held scalar is
	// not of the primitive type an operation needs.
	ErrInvalidArgument = data.ErrInvalidArgument

	// ErrEmptyHistory is reported by Backtrack when no operation is left to
	// undo.
	ErrEmptyHistory = errors.New("cronies: no history to backtrack")

	// ErrOperationNotFound is reported by Call for a name that is not in the
	// wrapper's registry.
	ErrOperationNotFound = errors.New("cronies: operation not found")
)
