package data

import (
	"fmt"
	"reflect"
	"sort"
	"time"
)

// DeepCopy returns a structurally identical copy of v in which every nested
// sequence and mapping is freshly allocated. Scalars are returned unchanged.
//
// Cyclic structures are not supported.
func DeepCopy(v any) any {
	switch t := v.(type) {
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = DeepCopy(item)
		}
		return out
	case *Map:
		if t == nil {
			return v
		}
		out := NewMap(t.Len())
		for _, k := range t.keys {
			out.Set(k, DeepCopy(t.values[k]))
		}
		return out
	default:
		return v
	}
}

// ShallowCopy rebuilds only the top-level container of v. Nested sequences
// and mappings are shared with the input. Scalars are returned unchanged.
func ShallowCopy(v any) any {
	switch t := v.(type) {
	case []any:
		out := make([]any, len(t))
		copy(out, t)
		return out
	case *Map:
		if t == nil {
			return v
		}
		out := NewMap(t.Len())
		for _, k := range t.keys {
			out.Set(k, t.values[k])
		}
		return out
	default:
		return v
	}
}

var timeType = reflect.TypeOf(time.Time{})

// Normalize returns a deep copy of v in canonical form: every slice or array
// becomes []any and every map becomes a *Map. Native Go maps have no order,
// so their keys are sorted; non-string keys are formatted with fmt.Sprint.
// Byte slices, structs, pointers and funcs stay scalar.
func Normalize(v any) any {
	switch t := v.(type) {
	case nil:
		return nil
	case []any, *Map:
		return normalizeNested(t)
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		out := NewMap(len(keys))
		for _, k := range keys {
			out.Set(k, Normalize(t[k]))
		}
		return out
	case []byte, string, time.Time:
		return v
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return v
		}
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = Normalize(rv.Index(i).Interface())
		}
		return out
	case reflect.Map:
		if rv.IsNil() {
			return v
		}
		type entry struct {
			key   string
			value any
		}
		entries := make([]entry, 0, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			entries = append(entries, entry{
				key:   fmt.Sprint(iter.Key().Interface()),
				value: iter.Value().Interface(),
			})
		}
		sort.Slice(entries, func(i, j int) bool { return entries[i].key < entries[j].key })
		out := NewMap(len(entries))
		for _, e := range entries {
			out.Set(e.key, Normalize(e.value))
		}
		return out
	}
	return v
}

// normalizeNested converts native containers nested inside canonical ones.
func normalizeNested(v any) any {
	switch t := v.(type) {
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = Normalize(item)
		}
		return out
	case *Map:
		if t == nil {
			return v
		}
		out := NewMap(t.Len())
		for _, k := range t.keys {
			out.Set(k, Normalize(t.values[k]))
		}
		return out
	}
	return v
}
