package jsonvalue

import (
	"github.com/segmentio/encoding/json"

	"github.com/erraggy/mosscow/todoerrors"
)

// Decode parses JSON text into a Value.
// Malformed input returns a *todoerrors.DecodeError.
func Decode(data []byte) (Value, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &todoerrors.DecodeError{Source: "json", Message: "invalid JSON", Cause: err}
	}
	return FromAny(raw), nil
}

// DecodeMapping parses JSON text that must hold an object.
func DecodeMapping(data []byte) (Mapping, error) {
	v, err := Decode(data)
	if err != nil {
		return Mapping{}, err
	}
	m, ok := v.(Mapping)
	if !ok {
		return Mapping{}, &todoerrors.DecodeError{Source: "json", Message: "expected a JSON object"}
	}
	return m, nil
}

// Encode renders v as compact JSON. Mapping entries are written in stored
// order and OtherKeys are rendered with their text form. Entries whose
// keys render to the same text are merged like duplicates in NewMapping:
// the later value is written at the first key's position. HTML
// characters are not escaped.
func Encode(v Value) ([]byte, error) {
	return appendValue(make([]byte, 0, 128), v)
}

func appendValue(b []byte, v Value) ([]byte, error) {
	var err error
	switch x := v.(type) {
	case Mapping:
		b = append(b, '{')
		for i, e := range wireEntries(x.entries) {
			if i > 0 {
				b = append(b, ',')
			}
			if b, err = json.Append(b, e.Key.String(), 0); err != nil {
				return nil, err
			}
			b = append(b, ':')
			if b, err = appendValue(b, e.Value); err != nil {
				return nil, err
			}
		}
		return append(b, '}'), nil
	case Sequence:
		b = append(b, '[')
		for i, el := range x {
			if i > 0 {
				b = append(b, ',')
			}
			if b, err = appendValue(b, el); err != nil {
				return nil, err
			}
		}
		return append(b, ']'), nil
	case Scalar:
		return json.Append(b, x.v, 0)
	default:
		return append(b, "null"...), nil
	}
}

// wireEntries merges entries whose keys share a JSON name. entries is
// returned unchanged when there is nothing to merge.
func wireEntries(entries []Entry) []Entry {
	seen := make(map[string]int, len(entries))
	var out []Entry
	for i, e := range entries {
		name := e.Key.String()
		j, dup := seen[name]
		if !dup {
			seen[name] = len(seen)
			if out != nil {
				out = append(out, e)
			}
			continue
		}
		if out == nil {
			out = append(make([]Entry, 0, len(entries)), entries[:i]...)
		}
		out[j].Value = e.Value
	}
	if out == nil {
		return entries
	}
	return out
}

// MarshalJSON implements json.Marshaler.
func (m Mapping) MarshalJSON() ([]byte, error) { return Encode(m) }

// MarshalJSON implements json.Marshaler.
func (s Sequence) MarshalJSON() ([]byte, error) { return Encode(s) }

// MarshalJSON implements json.Marshaler.
func (s Scalar) MarshalJSON() ([]byte, error) { return Encode(s) }
