package chain

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/hasbyte1/cronies/data"
	"github.com/hasbyte1/cronies/job"
)

// Merge combines the current value with other, which must have the same
// shape. Sequences are concatenated. For mappings the current value wins
// on shared keys.
func (w *Wrapper) Merge(other any) *Wrapper {
	return w.apply("merge", func(cur any) (any, error) {
		return merge(cur, other, false)
	})
}

// MergeAndOverwrite is Merge with other winning every conflict. Sequences
// are overwritten index by index and grow when other is longer.
func (w *Wrapper) MergeAndOverwrite(other any) *Wrapper {
	return w.apply("mergeAndOverwrite", func(cur any) (any, error) {
		return merge(cur, other, true)
	})
}

func merge(cur, other any, overwrite bool) (any, error) {
	other = data.Normalize(other)
	shape := data.Classify(cur)
	if shape == data.Scalar || shape != data.Classify(other) {
		return nil, fmt.Errorf("%w: cannot merge %s with %s",
			data.ErrTypeMismatch, data.TypeOf(cur), data.TypeOf(other))
	}

	if shape == data.Sequence {
		a, b := cur.([]any), other.([]any)
		if !overwrite {
			out := make([]any, 0, len(a)+len(b))
			out = append(out, data.DeepCopy(a).([]any)...)
			return append(out, b...), nil
		}
		out := make([]any, max(len(a), len(b)))
		copy(out, data.DeepCopy(a).([]any))
		copy(out, b)
		return out, nil
	}

	out := data.DeepCopy(cur).(*data.Map)
	other.(*data.Map).Each(func(k string, v any) {
		if overwrite || !out.Has(k) {
			out.Set(k, v)
		}
	})
	return out, nil
}

// Flatten replaces the current value with a flat sequence of every scalar
// it contains, depth first. Mapping keys are discarded.
func (w *Wrapper) Flatten() *Wrapper {
	return w.apply("flatten", func(cur any) (any, error) {
		if !data.IsStructural(cur) {
			return nil, fmt.Errorf("%w: cannot flatten %s", data.ErrTypeMismatch, data.TypeOf(cur))
		}
		return flatten(cur), nil
	})
}

func flatten(v any) []any {
	out := make([]any, 0)
	var walk func(any)
	walk = func(x any) {
		switch t := x.(type) {
		case []any:
			for _, item := range t {
				walk(item)
			}
		case *data.Map:
			if t == nil {
				out = append(out, x)
				return
			}
			t.Each(func(_ string, item any) { walk(item) })
		default:
			out = append(out, x)
		}
	}
	walk(v)
	return out
}

// Unique drops repeated scalar elements, keeping the first occurrence.
// A nested sequence or mapping is deduplicated on its own, with the same
// key restriction, and replaced by the flattened result.
func (w *Wrapper) Unique(keys ...string) *Wrapper {
	return w.apply("unique", func(cur any) (any, error) {
		return unique(cur, keys)
	})
}

func unique(v any, keys []string) (any, error) {
	var seen []any
	return run(v, keys, func(val any, k job.Key, _ any, add job.AddFunc) {
		if data.IsStructural(val) {
			// val is structural, so the nested job cannot fail.
			nested, _ := unique(val, keys)
			add(flatten(nested), k)
			return
		}
		for _, s := range seen {
			if data.StrictEqual(s, val) {
				return
			}
		}
		seen = append(seen, val)
		add(val, k)
	})
}

// DeepCopy replaces the current value with a deep copy of v.
func (w *Wrapper) DeepCopy(v any) *Wrapper {
	return w.apply("deepCopy", func(any) (any, error) {
		out := data.Normalize(v)
		if !data.IsStructural(out) {
			w.logger.Warn("copying a scalar value", zap.String("type", data.TypeOf(v)))
		}
		return out, nil
	})
}

// ShallowCopy replaces the current value with a copy of v's top-level
// container; nested containers stay shared with v. Native Go containers
// have to be converted, so they are copied deeply.
func (w *Wrapper) ShallowCopy(v any) *Wrapper {
	return w.apply("shallowCopy", func(any) (any, error) {
		if data.IsStructural(v) {
			return data.ShallowCopy(v), nil
		}
		out := data.Normalize(v)
		if !data.IsStructural(out) {
			w.logger.Warn("copying a scalar value", zap.String("type", data.TypeOf(v)))
		}
		return out, nil
	})
}
