package data

import (
	"math"
	"reflect"
	"time"
)

// ─────────────────────────────────────────────────────────────────────────────
// Scalar predicates
// ─────────────────────────────────────────────────────────────────────────────

// ToFloat converts any Go integer or floating-point value to float64.
// Strings and other types are not numbers and report false.
func ToFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case float32:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	case int16:
		return float64(n), true
	case int8:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint64:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint8:
		return float64(n), true
	}
	return 0, false
}

// IsNumber reports whether v is a Go numeric value.
func IsNumber(v any) bool {
	_, ok := ToFloat(v)
	return ok
}

// IsDate reports whether v is a time.Time.
func IsDate(v any) bool {
	_, ok := v.(time.Time)
	return ok
}

// StrictEqual compares two scalars the way identity-free strict equality
// does: numbers are equal when their values are equal regardless of Go type,
// other values must share a comparable type and compare equal with ==.
// Uncomparable values (funcs, containers, structs holding them) are never
// equal. NaN is never
// equal to anything.
func StrictEqual(a, b any) bool {
	fa, aNum := ToFloat(a)
	fb, bNum := ToFloat(b)
	if aNum || bNum {
		return aNum && bNum && fa == fb
	}
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	switch ta.Kind() {
	case reflect.Func, reflect.Slice, reflect.Map:
		return false
	}
	// A comparable static type can still hold uncomparable dynamic values,
	// such as a struct with an interface field holding a slice.
	if !reflect.ValueOf(a).Comparable() || !reflect.ValueOf(b).Comparable() {
		return false
	}
	return a == b
}

// Truthy reports whether v would survive a falsey-value filter: nil, false,
// numeric zero, NaN and the empty string are falsey; everything else,
// including empty containers, is truthy.
func Truthy(v any) bool {
	if v == nil {
		return false
	}
	if f, ok := ToFloat(v); ok {
		return f != 0 && !math.IsNaN(f)
	}
	switch t := v.(type) {
	case bool:
		return t
	case string:
		return t != ""
	case *Map:
		return t != nil
	}
	return true
}

// TypeOf returns a short name for the type of v: "sequence", "mapping",
// "number", "string", "date", "boolean", "null", "function", or the reflect
// kind name for anything else.
func TypeOf(v any) string {
	switch Classify(v) {
	case Sequence:
		return "sequence"
	case Mapping:
		return "mapping"
	}
	if v == nil {
		return "null"
	}
	if IsNumber(v) {
		return "number"
	}
	switch v.(type) {
	case string:
		return "string"
	case bool:
		return "boolean"
	case time.Time:
		return "date"
	}
	kind := reflect.TypeOf(v).Kind()
	if kind == reflect.Func {
		return "function"
	}
	return kind.String()
}
