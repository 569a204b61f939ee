package data

import "fmt"

// Map is an insertion-ordered string-keyed mapping.
//
// Keys enumerate in the order they were first set; overwriting an existing
// key keeps its position. Deleting a key removes it from the order. The zero
// value is not usable; create maps with [NewMap] or [MapOf].
type Map struct {
	keys   []string
	values map[string]any
}

// NewMap returns an empty Map with room for capacity entries.
func NewMap(capacity int) *Map {
	if capacity < 0 {
		capacity = 0
	}
	return &Map{
		keys:   make([]string, 0, capacity),
		values: make(map[string]any, capacity),
	}
}

// MapOf builds a Map from alternating key/value arguments:
//
//	data.MapOf("a", 1, "b", 2) // {"a":1,"b":2}
//
// It panics when given an odd number of arguments or a non-string key, so it
// is meant for literals and tests.
func MapOf(kv ...any) *Map {
	if len(kv)%2 != 0 {
		panic("data: MapOf needs an even number of arguments")
	}
	m := NewMap(len(kv) / 2)
	for i := 0; i < len(kv); i += 2 {
		k, ok := kv[i].(string)
		if !ok {
			panic(fmt.Sprintf("data: MapOf key %v is not a string", kv[i]))
		}
		m.Set(k, kv[i+1])
	}
	return m
}

// Len returns the number of entries.
func (m *Map) Len() int { return len(m.keys) }

// Keys returns a copy of the keys in enumeration order.
func (m *Map) Keys() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Values returns the values in key enumeration order.
func (m *Map) Values() []any {
	out := make([]any, len(m.keys))
	for i, k := range m.keys {
		out[i] = m.values[k]
	}
	return out
}

// Get returns the value stored at key and whether it was present.
func (m *Map) Get(key string) (any, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Has reports whether key is present.
func (m *Map) Has(key string) bool {
	_, ok := m.values[key]
	return ok
}

// Set stores value at key. A new key is appended to the enumeration order.
func (m *Map) Set(key string, value any) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Delete removes key. Deleting a missing key is a no-op.
func (m *Map) Delete(key string) {
	if _, ok := m.values[key]; !ok {
		return
	}
	delete(m.values, key)
	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
}

// Each calls fn for every entry in enumeration order.
func (m *Map) Each(fn func(key string, value any)) {
	for _, k := range m.keys {
		fn(k, m.values[k])
	}
}

// String returns the JSON representation of m.
func (m *Map) String() string {
	b, err := m.MarshalJSON()
	if err != nil {
		return fmt.Sprintf("%v", m.values)
	}
	return string(b)
}
