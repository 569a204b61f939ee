package job

import (
	"strconv"
	"strings"
)

// Key identifies an element of a sequence (by index) or of a mapping (by
// name).
type Key struct {
	// Name is the mapping key. For sequence elements it holds the decimal
	// index.
	Name string
	// Index is the 0-based sequence index, or -1 for mapping entries.
	Index int
}

// IndexKey returns the key of sequence element i.
func IndexKey(i int) Key { return Key{Name: strconv.Itoa(i), Index: i} }

// NameKey returns the key of mapping entry name.
func NameKey(name string) Key { return Key{Name: name, Index: -1} }

// IsIndex reports whether k addresses a sequence element.
func (k Key) IsIndex() bool { return k.Index >= 0 }

// String returns the index or name.
func (k Key) String() string { return k.Name }

// Matches reports whether selector loosely equals k. Mapping keys compare as
// strings. Sequence indices compare numerically against the trimmed
// selector, with the empty selector reading as 0.
func (k Key) Matches(selector string) bool {
	if !k.IsIndex() {
		return k.Name == selector
	}
	s := strings.TrimSpace(selector)
	if s == "" {
		return k.Index == 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return false
	}
	return f == float64(k.Index)
}

// ParseKeys splits comma-separated selector arguments into a flat selector
// list. It returns nil, meaning "no restriction", when every argument is
// empty.
func ParseKeys(keys ...string) []string {
	restricted := false
	for _, k := range keys {
		if k != "" {
			restricted = true
			break
		}
	}
	if !restricted {
		return nil
	}
	var out []string
	for _, k := range keys {
		out = append(out, strings.Split(k, ",")...)
	}
	return out
}
