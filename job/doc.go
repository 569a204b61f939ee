// Package job is the iteration engine behind every cronies operation.
//
// A job is prepared from a sequence or mapping and an optional key
// restriction. Running it calls a [Visitor] for each selected element; the
// visitor decides what, if anything, to add to an output container of the
// same shape as the input:
//
//	j, err := job.Prepare([]any{"a", "b", "c", "d"}, "1,3")
//	out := j.Run(func(v any, k job.Key, in any, add job.AddFunc) {
//	    add(strings.ToUpper(v.(string)), k)
//	})
//	// out == []any{"B", "D"}
//
// # Key restrictions
//
// Selectors are strings, either comma-separated in one argument or spread
// over several. Mapping keys match by string equality; sequence indices
// match loosely, so "1", " 1" and "1.0" all select index 1 and "" selects
// index 0. Elements are scanned in iteration order; each element is tested
// against the selectors not yet consumed, in their current order, and the
// first match consumes its selector. Elements matching no remaining selector
// are not visited and never appear in the output. Unknown selectors are
// ignored.
package job
