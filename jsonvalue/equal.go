package jsonvalue

import "reflect"

// Equal reports whether a and b are structurally equal.
// Mapping entry order is ignored; Sequence order is not. Numbers compare
// by value regardless of their Go type, so Int(3) equals Number(3).
func Equal(a, b Value) bool {
	switch x := a.(type) {
	case Mapping:
		y, ok := b.(Mapping)
		if !ok || x.Len() != y.Len() {
			return false
		}
		for _, e := range x.entries {
			other, found := y.Get(e.Key)
			if !found || !Equal(e.Value, other) {
				return false
			}
		}
		return true
	case Sequence:
		y, ok := b.(Sequence)
		if !ok || len(x) != len(y) {
			return false
		}
		for i := range x {
			if !Equal(x[i], y[i]) {
				return false
			}
		}
		return true
	case Scalar:
		y, ok := b.(Scalar)
		if !ok || x.Kind() != y.Kind() {
			return false
		}
		if x.Kind() == KindNumber {
			fx, _ := x.AsFloat()
			fy, _ := y.AsFloat()
			return fx == fy
		}
		return reflect.DeepEqual(x.v, y.v)
	default:
		return a == nil && b == nil
	}
}
