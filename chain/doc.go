// Package chain provides Wrapper, a fluent holder for a single value (a
// number, string, date, sequence or mapping) that is transformed step by
// step and can undo its steps.
//
// # Overview
//
//	w := chain.Wrap([]any{3, 1, 3, 2, 1.005}).
//	    Unique().
//	    RoundTo(2)
//
//	v, err := w.Result() // [3 1 2 1], nil
//
// Sequences are held as []any and mappings as *data.Map, which keeps keys
// in insertion order. Native Go slices and maps given to [Wrap] are
// converted; maps are ordered by key.
//
// # Key restriction
//
// Most operations accept optional keys. With keys, only the elements whose
// index or name matches a key are visited, and the result contains only
// what the operation added for them:
//
//	chain.Wrap([]any{10, 20, 30, 40}).Map(double, "1,3") // [40 80]
//
// Numeric keys match indexes loosely: " 1" and "1.0" select index 1.
//
// # History
//
// Every transforming call pushes a snapshot of the value it replaced.
// [Wrapper.Backtrack] pops the most recent one. Snapshots of sequences and
// mappings are deep copies, so mutating the value returned by
// [Wrapper.Data] never changes the history.
//
// # Errors
//
// The first failing operation stores its error and turns every later call
// into a no-op. Inspect it with [Wrapper.Err] or [Wrapper.Result] and match
// it with errors.Is against the sentinels in this package.
//
// # Operations (runtime extension)
//
// Named operations live in an immutable [Registry] passed with
// [WithRegistry] and run through [Wrapper.Call]. [Wrapper.Apply] runs an
// [Operation] without naming it.
package chain
