package data

import (
	"fmt"
	"strconv"
	"strings"
)

// ─────────────────────────────────────────────────────────────────────────────
// Dot-path helpers for canonical values
//
// A path is a dot-separated list of segments. A segment addresses a key when
// the container is a *Map and a 0-based index when it is a []any:
//
//	v := data.MapOf("user", data.MapOf("scores", []any{3, 9, 4}))
//
//	Get(v, "user.scores.1")   → 9
//	Has(v, "user.name")       → false
//	Set(v, "user.name", "Jo")
//	Dot(v)                    → {"user.scores.0":3, "user.scores.1":9, ...}
//
// The empty path addresses v itself.
// ─────────────────────────────────────────────────────────────────────────────

func splitPath(path string) []string {
	if path == "" {
		return nil
	}
	return strings.Split(path, ".")
}

func child(v any, seg string) (any, bool) {
	switch t := v.(type) {
	case *Map:
		if t == nil {
			return nil, false
		}
		return t.Get(seg)
	case []any:
		i, err := strconv.Atoi(seg)
		if err != nil || i < 0 || i >= len(t) {
			return nil, false
		}
		return t[i], true
	}
	return nil, false
}

// Get returns the value at path, or def[0] (or nil) when it does not exist.
func Get(v any, path string, def ...any) any {
	current := v
	for _, seg := range splitPath(path) {
		next, ok := child(current, seg)
		if !ok {
			if len(def) > 0 {
				return def[0]
			}
			return nil
		}
		current = next
	}
	return current
}

// Has reports whether path exists in v.
func Has(v any, path string) bool {
	current := v
	for _, seg := range splitPath(path) {
		next, ok := child(current, seg)
		if !ok {
			return false
		}
		current = next
	}
	return true
}

// Set writes value at path inside v, creating intermediate mappings for
// missing map keys. Sequence segments must address an existing index.
func Set(v any, path string, value any) error {
	segments := splitPath(path)
	if len(segments) == 0 {
		return fmt.Errorf("%w: empty path", ErrInvalidPath)
	}
	current := v
	for i, seg := range segments {
		last := i == len(segments)-1
		switch t := current.(type) {
		case *Map:
			if t == nil {
				return fmt.Errorf("%w: nil mapping at %q", ErrInvalidPath, seg)
			}
			if last {
				t.Set(seg, value)
				return nil
			}
			next, ok := t.Get(seg)
			if !ok || !IsStructural(next) {
				next = NewMap(0)
				t.Set(seg, next)
			}
			current = next
		case []any:
			idx, err := strconv.Atoi(seg)
			if err != nil || idx < 0 || idx >= len(t) {
				return fmt.Errorf("%w: index %q out of range", ErrInvalidPath, seg)
			}
			if last {
				t[idx] = value
				return nil
			}
			if !IsStructural(t[idx]) {
				t[idx] = NewMap(0)
			}
			current = t[idx]
		default:
			return fmt.Errorf("%w: %q is not inside a sequence or mapping", ErrInvalidPath, seg)
		}
	}
	return nil
}

// Dot flattens a nested structure into a single-level mapping whose keys are
// dot paths to every scalar leaf. Empty containers are kept as leaves.
func Dot(v any) *Map {
	out := NewMap(0)
	dotFlatten("", v, out)
	return out
}

func dotFlatten(prefix string, v any, out *Map) {
	join := func(seg string) string {
		if prefix == "" {
			return seg
		}
		return prefix + "." + seg
	}
	switch t := v.(type) {
	case *Map:
		if t == nil {
			out.Set(prefix, nil)
			return
		}
		if t.Len() == 0 && prefix != "" {
			out.Set(prefix, t)
			return
		}
		t.Each(func(k string, item any) { dotFlatten(join(k), item, out) })
	case []any:
		if len(t) == 0 && prefix != "" {
			out.Set(prefix, t)
			return
		}
		for i, item := range t {
			dotFlatten(join(strconv.Itoa(i)), item, out)
		}
	default:
		out.Set(prefix, v)
	}
}
