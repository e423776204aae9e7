package jsonvalue

import (
	"fmt"
	"reflect"
	"sort"
)

// FromAny converts a decoded Go value into a Value.
//
// map[string]any, map[any]any and []any (the shapes produced by JSON and
// YAML decoders) are handled directly; other maps, slices and arrays are
// walked with reflection. Values that are already a Value are returned
// as is. Anything else becomes a Scalar, so the conversion never fails.
//
// Mapping entries are ordered by key: text keys first, alphabetically,
// then other keys ordered by their text rendering.
func FromAny(v any) Value {
	switch x := v.(type) {
	case nil:
		return Null()
	case Value:
		return x
	case map[string]any:
		if x == nil {
			return Null()
		}
		entries := make([]Entry, 0, len(x))
		for k, val := range x {
			entries = append(entries, Entry{Key: TextKey(k), Value: FromAny(val)})
		}
		sortEntries(entries)
		return NewMapping(entries...)
	case map[any]any:
		if x == nil {
			return Null()
		}
		entries := make([]Entry, 0, len(x))
		for k, val := range x {
			entries = append(entries, Entry{Key: Other(k), Value: FromAny(val)})
		}
		sortEntries(entries)
		return NewMapping(entries...)
	case []any:
		if x == nil {
			return Null()
		}
		seq := make(Sequence, len(x))
		for i, el := range x {
			seq[i] = FromAny(el)
		}
		return seq
	case string, bool, float64, float32, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return Scalar{v: x}
	}
	return fromReflect(reflect.ValueOf(v))
}

func fromReflect(rv reflect.Value) Value {
	switch rv.Kind() {
	case reflect.Map:
		if rv.IsNil() {
			return Null()
		}
		entries := make([]Entry, 0, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			k := iter.Key()
			var key Key
			if k.Kind() == reflect.String {
				key = TextKey(k.String())
			} else {
				key = Other(k.Interface())
			}
			entries = append(entries, Entry{Key: key, Value: FromAny(iter.Value().Interface())})
		}
		sortEntries(entries)
		return NewMapping(entries...)
	case reflect.Slice:
		if rv.IsNil() {
			return Null()
		}
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return Opaque(rv.Interface())
		}
		fallthrough
	case reflect.Array:
		seq := make(Sequence, rv.Len())
		for i := range seq {
			seq[i] = FromAny(rv.Index(i).Interface())
		}
		return seq
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return Null()
		}
		return Opaque(rv.Interface())
	}
	return Opaque(rv.Interface())
}

func sortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		ti, iText := entries[i].Key.(TextKey)
		tj, jText := entries[j].Key.(TextKey)
		switch {
		case iText && jText:
			return ti < tj
		case iText != jText:
			return iText
		default:
			return fmt.Sprint(entries[i].Key) < fmt.Sprint(entries[j].Key)
		}
	})
}

// ToAny converts a Value back into plain Go values.
//
// A Mapping whose keys are all TextKeys becomes map[string]any; a Mapping
// with any OtherKey becomes map[any]any. Sequences become []any (never
// nil) and Scalars return their underlying value.
func ToAny(v Value) any {
	switch x := v.(type) {
	case Mapping:
		if allText(x) {
			out := make(map[string]any, x.Len())
			for _, e := range x.entries {
				out[string(e.Key.(TextKey))] = ToAny(e.Value)
			}
			return out
		}
		out := make(map[any]any, x.Len())
		for _, e := range x.entries {
			switch k := e.Key.(type) {
			case TextKey:
				out[string(k)] = ToAny(e.Value)
			case OtherKey:
				out[k.value] = ToAny(e.Value)
			}
		}
		return out
	case Sequence:
		out := make([]any, len(x))
		for i, el := range x {
			out[i] = ToAny(el)
		}
		return out
	case Scalar:
		return x.v
	default:
		return nil
	}
}

func allText(m Mapping) bool {
	for _, e := range m.entries {
		if _, ok := e.Key.(TextKey); !ok {
			return false
		}
	}
	return true
}
