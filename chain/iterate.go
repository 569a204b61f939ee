package chain

import (
	"github.com/hasbyte1/cronies/data"
	"github.com/hasbyte1/cronies/job"
)

// MapFunc transforms one element. input is the whole value being iterated.
type MapFunc func(value any, key job.Key, input any) any

// Predicate reports whether an element should be kept.
type Predicate func(value any, key job.Key, input any) bool

// ReduceFunc folds one element into the accumulator.
type ReduceFunc func(acc, value any, key job.Key, input any) any

// run prepares a job over cur and runs visit over it.
func run(cur any, keys []string, visit job.Visitor) (any, error) {
	j, err := job.Prepare(cur, keys...)
	if err != nil {
		return nil, err
	}
	return j.Run(visit), nil
}

// Map replaces the current value with one built from fn's results. With a
// key restriction only the selected elements are visited, and only they
// appear in the result.
func (w *Wrapper) Map(fn MapFunc, keys ...string) *Wrapper {
	return w.apply("map", func(cur any) (any, error) {
		return run(cur, keys, func(v any, k job.Key, in any, add job.AddFunc) {
			add(data.Normalize(fn(v, k, in)), k)
		})
	})
}

// Filter keeps the elements for which pred returns true.
func (w *Wrapper) Filter(pred Predicate, keys ...string) *Wrapper {
	return w.apply("filter", func(cur any) (any, error) {
		return run(cur, keys, func(v any, k job.Key, in any, add job.AddFunc) {
			if pred(v, k, in) {
				add(v, k)
			}
		})
	})
}

// Reduce folds the selected elements into a single value, starting from
// initial. The final accumulator becomes the current value.
func (w *Wrapper) Reduce(fn ReduceFunc, initial any, keys ...string) *Wrapper {
	return w.apply("reduce", func(cur any) (any, error) {
		j, err := job.Prepare(cur, keys...)
		if err != nil {
			return nil, err
		}
		acc := initial
		j.Each(func(v any, k job.Key, in any) {
			acc = fn(acc, v, k, in)
		})
		return data.Normalize(acc), nil
	})
}

// Each calls fn for every selected element. Nothing is recorded.
func (w *Wrapper) Each(fn func(value any, key job.Key, input any), keys ...string) *Wrapper {
	if w.err != nil {
		return w
	}
	j, err := job.Prepare(w.current, keys...)
	if err != nil {
		return w.fail("each", err)
	}
	j.Each(fn)
	return w
}
