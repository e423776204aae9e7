package keycase

import "github.com/erraggy/mosscow/jsonvalue"

// Format returns a copy of v with every text mapping key rewritten to the
// target convention, recursing through mappings and sequences. Scalars are
// returned unchanged and v itself is never modified.
//
// When two keys of one mapping convert to the same text, the later value
// wins and keeps the position of the first.
func Format(v jsonvalue.Value, target Convention) jsonvalue.Value {
	switch x := v.(type) {
	case jsonvalue.Mapping:
		return FormatMapping(x, target)
	case jsonvalue.Sequence:
		if x == nil {
			return x
		}
		out := make(jsonvalue.Sequence, len(x))
		for i, el := range x {
			out[i] = Format(el, target)
		}
		return out
	case jsonvalue.Scalar:
		return x
	default:
		return v
	}
}

// FormatMapping is Format for a value already known to be a Mapping.
func FormatMapping(m jsonvalue.Mapping, target Convention) jsonvalue.Mapping {
	entries := make([]jsonvalue.Entry, 0, m.Len())
	for k, val := range m.All() {
		entries = append(entries, jsonvalue.Entry{
			Key:   convertKey(k, target),
			Value: Format(val, target),
		})
	}
	return jsonvalue.NewMapping(entries...)
}

func convertKey(k jsonvalue.Key, target Convention) jsonvalue.Key {
	switch k := k.(type) {
	case jsonvalue.TextKey:
		return jsonvalue.TextKey(target.Convert(string(k)))
	default:
		return k
	}
}

// FormatAny formats a plain decoded Go value, such as the output of
// encoding/json or a YAML decoder, and converts the result back.
func FormatAny(v any, target Convention) any {
	return jsonvalue.ToAny(Format(jsonvalue.FromAny(v), target))
}
