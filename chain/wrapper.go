package chain

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/hasbyte1/cronies/data"
	"github.com/hasbyte1/cronies/format"
)

// Wrapper holds one value as it moves through a chain of operations,
// together with the history needed to undo them.
//
// Every transforming method computes a new value from the current one,
// pushes a snapshot of the current value onto the history and returns the
// same *Wrapper so calls can be chained:
//
//	w := chain.Wrap([]any{3, 1, 3, 2, 1}).
//	    Unique().
//	    Map(double)
//
// A failing operation leaves the value and history untouched and records
// its error; every later call is a no-op until the error is read with
// [Wrapper.Err] or [Wrapper.Result]. The error stays set.
//
// A Wrapper is not safe for concurrent use. Use one wrapper per pipeline.
type Wrapper struct {
	current  any
	original any
	previous any
	history  []any
	err      error

	logger   *zap.Logger
	dates    format.DateFormatter
	registry *Registry
}

// Wrap returns a Wrapper holding v. Structural input is normalized into a
// private deep copy (see [data.Normalize]), so later operations never
// touch the caller's value.
func Wrap(v any, opts ...Option) *Wrapper {
	w := &Wrapper{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(w)
	}
	w.dates.Logger = w.logger
	w.original = data.Normalize(v)
	w.current = data.DeepCopy(w.original)
	return w
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// Data returns the current value by reference. Mutating a returned sequence
// or mapping mutates the wrapper's state.
func (w *Wrapper) Data() any { return w.current }

// Original returns the value captured by Wrap.
func (w *Wrapper) Original() any { return w.original }

// Previous returns the value held before the most recent operation, or nil
// before the first one.
func (w *Wrapper) Previous() any { return w.previous }

// History returns the recorded snapshots, oldest first. The slice is a copy;
// its entries are not.
func (w *Wrapper) History() []any {
	out := make([]any, len(w.history))
	copy(out, w.history)
	return out
}

// Depth returns the number of operations that Backtrack can undo.
func (w *Wrapper) Depth() int { return len(w.history) }

// Err returns the first error raised in the chain, or nil.
func (w *Wrapper) Err() error { return w.err }

// Result returns the current value and the chain's error.
func (w *Wrapper) Result() (any, error) { return w.current, w.err }

// ─────────────────────────────────────────────────────────────────────────────
// History
// ─────────────────────────────────────────────────────────────────────────────

// record snapshots the current value and replaces it with result.
func (w *Wrapper) record(result any) {
	snapshot := w.current
	if data.IsStructural(snapshot) {
		snapshot = data.DeepCopy(snapshot)
	}
	w.history = append(w.history, snapshot)
	w.previous = snapshot
	w.current = result
}

// Backtrack undoes the most recent operation. Repeated calls keep undoing
// older ones; once the history is empty it reports [ErrEmptyHistory].
func (w *Wrapper) Backtrack() *Wrapper {
	if w.err != nil {
		return w
	}
	n := len(w.history)
	if n == 0 {
		return w.fail("backtrack", ErrEmptyHistory)
	}
	w.current = w.history[n-1]
	w.history = w.history[:n-1]
	if n > 1 {
		w.previous = w.history[n-2]
	} else {
		w.previous = data.DeepCopy(w.original)
	}
	return w
}

// apply runs one transforming operation: on success the result is recorded,
// on failure the error is kept and nothing changes.
func (w *Wrapper) apply(op string, fn func(current any) (any, error)) *Wrapper {
	if w.err != nil {
		return w
	}
	result, err := fn(w.current)
	if err != nil {
		return w.fail(op, err)
	}
	w.record(result)
	return w
}

func (w *Wrapper) fail(op string, err error) *Wrapper {
	w.err = fmt.Errorf("%s: %w", op, err)
	w.logger.Debug("operation failed", zap.String("op", op), zap.Error(err))
	return w
}
