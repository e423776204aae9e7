package store

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/erraggy/mosscow/jsonvalue"
)

func TestCastText(t *testing.T) {
	tests := []struct {
		name string
		in   jsonvalue.Value
		want *string
	}{
		{name: "missing", in: nil, want: nil},
		{name: "null", in: jsonvalue.Null(), want: nil},
		{name: "string", in: jsonvalue.String("a"), want: ptr("a")},
		{name: "integral number", in: jsonvalue.Number(12), want: ptr("12")},
		{name: "fraction", in: jsonvalue.Number(1.5), want: ptr("1.5")},
		{name: "true", in: jsonvalue.Bool(true), want: ptr("t")},
		{name: "false", in: jsonvalue.Bool(false), want: ptr("f")},
		{name: "sequence", in: jsonvalue.Sequence{jsonvalue.Int(1)}, want: ptr("[1]")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, castText(tt.in))
		})
	}
}

func TestCastBool(t *testing.T) {
	tests := []struct {
		name string
		in   jsonvalue.Value
		want *bool
	}{
		{name: "missing", in: nil, want: nil},
		{name: "null", in: jsonvalue.Null(), want: nil},
		{name: "blank", in: jsonvalue.String(" "), want: nil},
		{name: "true", in: jsonvalue.Bool(true), want: ptr(true)},
		{name: "false", in: jsonvalue.Bool(false), want: ptr(false)},
		{name: "zero", in: jsonvalue.Int(0), want: ptr(false)},
		{name: "one", in: jsonvalue.Int(1), want: ptr(true)},
		{name: "string f", in: jsonvalue.String("f"), want: ptr(false)},
		{name: "string FALSE", in: jsonvalue.String("FALSE"), want: ptr(false)},
		{name: "string off", in: jsonvalue.String("off"), want: ptr(false)},
		{name: "string t", in: jsonvalue.String("t"), want: ptr(true)},
		{name: "any other string", in: jsonvalue.String("nope"), want: ptr(true)},
		{name: "mapping", in: jsonvalue.NewMapping(), want: ptr(true)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, castBool(tt.in))
		})
	}
}

func TestCastInteger(t *testing.T) {
	tests := []struct {
		name   string
		in     jsonvalue.Value
		want   *int64
		wantOK bool
	}{
		{name: "missing", in: nil, want: nil, wantOK: true},
		{name: "null", in: jsonvalue.Null(), want: nil, wantOK: true},
		{name: "blank string", in: jsonvalue.String(""), want: nil, wantOK: true},
		{name: "number", in: jsonvalue.Number(4), want: ptr(int64(4)), wantOK: true},
		{name: "truncated", in: jsonvalue.Number(-2.7), want: ptr(int64(-2)), wantOK: true},
		{name: "numeric string", in: jsonvalue.String(" 12 "), want: ptr(int64(12)), wantOK: true},
		{name: "float string", in: jsonvalue.String("2.5"), want: ptr(int64(2)), wantOK: true},
		{name: "word", in: jsonvalue.String("abc"), want: nil, wantOK: false},
		{name: "largest int64", in: jsonvalue.Int(math.MaxInt64), want: ptr(int64(math.MaxInt64)), wantOK: true},
		{name: "smallest int64 as float", in: jsonvalue.Number(-0x1p63), want: ptr(int64(math.MinInt64)), wantOK: true},
		{name: "number above int64", in: jsonvalue.Number(1e20), want: nil, wantOK: false},
		{name: "number below int64", in: jsonvalue.Number(-1e19), want: nil, wantOK: false},
		{name: "string above int64", in: jsonvalue.String("1e20"), want: nil, wantOK: false},
		{name: "infinite string", in: jsonvalue.String("Inf"), want: nil, wantOK: false},
		{name: "uint above int64", in: jsonvalue.Opaque(uint64(math.MaxUint64)), want: nil, wantOK: false},
		{name: "boolean", in: jsonvalue.Bool(true), want: nil, wantOK: false},
		{name: "sequence", in: jsonvalue.Sequence{}, want: nil, wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := castInteger(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func ptr[T any](v T) *T { return &v }
