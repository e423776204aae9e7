package jsonvalue

import (
	"fmt"
	"iter"
	"reflect"
)

// Value is a JSON-like value: a Mapping, a Sequence or a Scalar.
// The set of implementations is closed.
type Value interface {
	isValue()
}

// Key is a mapping key: a TextKey or an OtherKey.
type Key interface {
	isKey()
	// String renders the key as text, as used when encoding to JSON.
	String() string
}

// TextKey is a string mapping key.
type TextKey string

func (TextKey) isKey() {}

func (k TextKey) String() string { return string(k) }

// OtherKey is a non-string mapping key, for example an integer key
// decoded from YAML.
type OtherKey struct {
	value any
}

func (OtherKey) isKey() {}

// Value returns the underlying key value.
func (k OtherKey) Value() any { return k.value }

func (k OtherKey) String() string { return fmt.Sprint(k.value) }

// Text returns a TextKey.
func Text(s string) Key { return TextKey(s) }

// Other returns a key for v. Strings still produce a TextKey so that the
// variant always reflects the key's real type.
func Other(v any) Key {
	if s, ok := v.(string); ok {
		return TextKey(s)
	}
	return OtherKey{value: v}
}

func keysEqual(a, b Key) bool {
	switch a := a.(type) {
	case TextKey:
		b, ok := b.(TextKey)
		return ok && a == b
	case OtherKey:
		b, ok := b.(OtherKey)
		if !ok {
			return false
		}
		if a.value == nil || b.value == nil {
			return a.value == nil && b.value == nil
		}
		ta, tb := reflect.TypeOf(a.value), reflect.TypeOf(b.value)
		if ta != tb || !ta.Comparable() {
			return false
		}
		return a.value == b.value
	default:
		return false
	}
}

// Entry is one key/value pair of a Mapping.
type Entry struct {
	Key   Key
	Value Value
}

// Mapping is a set of uniquely keyed entries.
// The zero Mapping is empty and ready to use.
type Mapping struct {
	entries []Entry
}

func (Mapping) isValue() {}

// NewMapping builds a Mapping from entries. When a key appears more than
// once the later value wins and the entry keeps the position of the first
// occurrence. Nil values are stored as Null.
func NewMapping(entries ...Entry) Mapping {
	out := make([]Entry, 0, len(entries))
	textIndex := make(map[TextKey]int, len(entries))
	for _, e := range entries {
		if e.Key == nil {
			continue
		}
		if e.Value == nil {
			e.Value = Null()
		}
		if tk, ok := e.Key.(TextKey); ok {
			if i, seen := textIndex[tk]; seen {
				out[i].Value = e.Value
				continue
			}
			textIndex[tk] = len(out)
			out = append(out, e)
			continue
		}
		if i := indexOf(out, e.Key); i >= 0 {
			out[i].Value = e.Value
			continue
		}
		out = append(out, e)
	}
	return Mapping{entries: out}
}

func indexOf(entries []Entry, k Key) int {
	for i, e := range entries {
		if keysEqual(e.Key, k) {
			return i
		}
	}
	return -1
}

// Len returns the number of entries.
func (m Mapping) Len() int { return len(m.entries) }

// Entries returns a copy of the entries in stored order.
func (m Mapping) Entries() []Entry {
	out := make([]Entry, len(m.entries))
	copy(out, m.entries)
	return out
}

// All iterates over the entries in stored order.
func (m Mapping) All() iter.Seq2[Key, Value] {
	return func(yield func(Key, Value) bool) {
		for _, e := range m.entries {
			if !yield(e.Key, e.Value) {
				return
			}
		}
	}
}

// Get returns the value stored under k.
func (m Mapping) Get(k Key) (Value, bool) {
	if i := indexOf(m.entries, k); i >= 0 {
		return m.entries[i].Value, true
	}
	return nil, false
}

// Lookup returns the value stored under the text key name.
func (m Mapping) Lookup(name string) (Value, bool) {
	return m.Get(TextKey(name))
}

// Has reports whether the text key name is present.
func (m Mapping) Has(name string) bool {
	_, ok := m.Lookup(name)
	return ok
}

// With returns a copy of m with k set to v.
func (m Mapping) With(k Key, v Value) Mapping {
	entries := make([]Entry, len(m.entries), len(m.entries)+1)
	copy(entries, m.entries)
	return NewMapping(append(entries, Entry{Key: k, Value: v})...)
}

// Sequence is an ordered list of values.
type Sequence []Value

func (Sequence) isValue() {}

// Kind identifies what a Scalar holds.
type Kind int

// Scalar kinds.
const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindOpaque
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	default:
		return "opaque"
	}
}

// Scalar is a leaf value. The zero Scalar is null.
type Scalar struct {
	v any
}

func (Scalar) isValue() {}

// Null returns the null scalar.
func Null() Scalar { return Scalar{} }

// String returns a string scalar.
func String(s string) Scalar { return Scalar{v: s} }

// Number returns a floating point number scalar.
func Number(f float64) Scalar { return Scalar{v: f} }

// Int returns an integer number scalar.
func Int(i int64) Scalar { return Scalar{v: i} }

// Bool returns a boolean scalar.
func Bool(b bool) Scalar { return Scalar{v: b} }

// Opaque wraps an arbitrary Go value that should pass through untouched.
func Opaque(v any) Scalar { return Scalar{v: v} }

// Kind reports what the scalar holds.
func (s Scalar) Kind() Kind {
	switch s.v.(type) {
	case nil:
		return KindNull
	case bool:
		return KindBool
	case string:
		return KindString
	case float64, float32, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, numberLike:
		return KindNumber
	default:
		return KindOpaque
	}
}

// numberLike matches json.Number from encoding/json and compatible
// decoders.
type numberLike interface {
	Float64() (float64, error)
	Int64() (int64, error)
	String() string
}

// Interface returns the underlying Go value.
func (s Scalar) Interface() any { return s.v }

// IsNull reports whether the scalar is null.
func (s Scalar) IsNull() bool { return s.v == nil }

// AsString returns the string value if the scalar is a string.
func (s Scalar) AsString() (string, bool) {
	str, ok := s.v.(string)
	return str, ok
}

// AsBool returns the boolean value if the scalar is a boolean.
func (s Scalar) AsBool() (bool, bool) {
	b, ok := s.v.(bool)
	return b, ok
}

// AsFloat returns the numeric value as a float64 if the scalar is a number.
func (s Scalar) AsFloat() (float64, bool) {
	switch n := s.v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case numberLike:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

func (s Scalar) String() string {
	if s.v == nil {
		return "null"
	}
	return fmt.Sprint(s.v)
}
