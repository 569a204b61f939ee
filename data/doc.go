// Package data defines the value model shared by the cronies packages:
// shape classification, an insertion-ordered mapping, structural copying,
// dot-path access and an order-preserving JSON/YAML codec.
//
// # Canonical values
//
// A value is one of three shapes:
//
//   - Sequence: []any, ordered and 0-indexed.
//   - Mapping: *Map, string keys in insertion order.
//   - Scalar: anything else (numbers, strings, time.Time, bool, nil, ...).
//
// Native Go input such as map[string]any or []int is converted with
// [Normalize]; the conversion sorts native map keys so that enumeration is
// deterministic.
//
//	v := data.Normalize(map[string]any{"b": []int{1, 2}, "a": 3})
//	data.Classify(v)             // data.Mapping
//	v.(*data.Map).Keys()         // [a b]
//	data.Get(v, "b.1")           // 2
//
// # Copying
//
// [DeepCopy] rebuilds every nested container; [ShallowCopy] rebuilds only
// the outer one. Both return scalars unchanged. Cyclic values are not
// supported.
package data
