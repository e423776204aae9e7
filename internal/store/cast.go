package store

import (
	"math"
	"strconv"
	"strings"

	"github.com/erraggy/mosscow/jsonvalue"
)

// falseValues are the inputs a boolean column treats as false. Any other
// non-blank input is true.
var falseValues = map[string]bool{
	"0": true, "f": true, "F": true, "false": true, "FALSE": true, "off": true, "OFF": true,
}

// castText casts v for a text column. Null and missing values stay nil;
// booleans become "t" or "f"; containers are stored as their JSON text.
func castText(v jsonvalue.Value) *string {
	var s string
	switch x := v.(type) {
	case nil:
		return nil
	case jsonvalue.Scalar:
		switch x.Kind() {
		case jsonvalue.KindNull:
			return nil
		case jsonvalue.KindBool:
			if b, _ := x.AsBool(); b {
				s = "t"
			} else {
				s = "f"
			}
		case jsonvalue.KindNumber:
			f, _ := x.AsFloat()
			s = formatNumber(f)
		default:
			s = x.String()
		}
	default:
		out, err := jsonvalue.Encode(v)
		if err != nil {
			return nil
		}
		s = string(out)
	}
	return &s
}

// castBool casts v for a boolean column. Null, missing and blank strings
// are nil.
func castBool(v jsonvalue.Value) *bool {
	var b bool
	switch x := v.(type) {
	case nil:
		return nil
	case jsonvalue.Scalar:
		switch x.Kind() {
		case jsonvalue.KindNull:
			return nil
		case jsonvalue.KindBool:
			b, _ = x.AsBool()
		case jsonvalue.KindNumber:
			f, _ := x.AsFloat()
			b = f != 0
		default:
			s := x.String()
			if strings.TrimSpace(s) == "" {
				return nil
			}
			b = !falseValues[s]
		}
	default:
		b = true
	}
	return &b
}

// castInteger casts v for an integer column. Fractions are truncated.
// The second result is false when v is present but not a number, which
// validation reports.
func castInteger(v jsonvalue.Value) (*int64, bool) {
	x, ok := v.(jsonvalue.Scalar)
	if v == nil || (ok && x.IsNull()) {
		return nil, true
	}
	if !ok {
		return nil, false
	}
	switch x.Kind() {
	case jsonvalue.KindNumber:
		if n, exact, ok := exactInteger(x.Interface()); exact {
			return n, ok
		}
		f, _ := x.AsFloat()
		return truncate(f)
	case jsonvalue.KindString:
		s, _ := x.AsString()
		s = strings.TrimSpace(s)
		if s == "" {
			return nil, true
		}
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return &n, true
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, false
		}
		return truncate(f)
	default:
		return nil, false
	}
}

// exactInteger handles Go integer values without going through float64.
// exact is false for any other type.
func exactInteger(v any) (n *int64, exact, ok bool) {
	var i int64
	switch x := v.(type) {
	case int:
		i = int64(x)
	case int8:
		i = int64(x)
	case int16:
		i = int64(x)
	case int32:
		i = int64(x)
	case int64:
		i = x
	case uint:
		if uint64(x) > math.MaxInt64 {
			return nil, true, false
		}
		i = int64(x)
	case uint8:
		i = int64(x)
	case uint16:
		i = int64(x)
	case uint32:
		i = int64(x)
	case uint64:
		if x > math.MaxInt64 {
			return nil, true, false
		}
		i = int64(x)
	case interface{ Int64() (int64, error) }:
		parsed, err := x.Int64()
		if err != nil {
			return nil, false, false
		}
		i = parsed
	default:
		return nil, false, false
	}
	return &i, true, true
}

// truncate drops the fraction of f. Values outside the int64 range are
// not numbers an integer column can hold.
func truncate(f float64) (*int64, bool) {
	if math.IsNaN(f) || f < -0x1p63 || f >= 0x1p63 {
		return nil, false
	}
	n := int64(f)
	return &n, true
}

func formatNumber(f float64) string {
	if f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
