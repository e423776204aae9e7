// Package jsonvalue provides a closed representation of JSON-like values.
//
// A Value is exactly one of:
//
//   - Mapping: unique keys mapped to Values
//   - Sequence: an ordered list of Values
//   - Scalar: a string, number, boolean or null (or an opaque Go value
//     that is carried through untouched)
//
// Mapping keys are themselves a closed variant: TextKey for ordinary
// string keys and OtherKey for anything else a decoder can produce, such
// as the integer keys YAML allows. Code that rewrites keys switches on the
// key variant instead of guessing from a dynamic type.
//
// Values are treated as immutable. Every operation that changes a value
// returns a new one.
//
// # Decoding and encoding
//
//	v, err := jsonvalue.Decode([]byte(`{"task_title":"a","is_done":false}`))
//	if err != nil {
//		// err wraps todoerrors.ErrDecode
//	}
//	out, err := jsonvalue.Encode(v)
//
// Decoded mappings are ordered by key; mappings built with NewMapping keep
// the order they were built in. Encode writes entries in stored order.
//
// # Interop with decoded Go values
//
// FromAny converts the output of encoding/json or go.yaml.in/yaml/v4
// (map[string]any, map[any]any, []any and scalars) into a Value; ToAny
// converts back.
package jsonvalue
