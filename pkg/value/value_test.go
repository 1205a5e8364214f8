package value

import (
	"testing"

	"slisp/pkg/interner"
)

func TestTruthy(t *testing.T) {
	if FromBoolean(false).Truthy() {
		t.Error("Boolean(false) should not be truthy")
	}
	cases := []Value{FromBoolean(true), FromInteger(0), FromString(""), Nil}
	for _, v := range cases {
		if !v.Truthy() {
			t.Errorf("%+v should be truthy", v)
		}
	}
}

func TestEqualRequiresMatchingKind(t *testing.T) {
	if Equal(FromInteger(1), FromFloat(1.0)) {
		t.Error("Integer(1) should not equal Float(1.0)")
	}
}

func TestEqualLists(t *testing.T) {
	a := FromList(FromSlice([]Value{FromInteger(1), FromInteger(2)}))
	b := FromList(FromSlice([]Value{FromInteger(1), FromInteger(2)}))
	c := FromList(FromSlice([]Value{FromInteger(1)}))
	if !Equal(a, b) {
		t.Error("equal-length, equal-element lists should be Equal")
	}
	if Equal(a, c) {
		t.Error("lists of different length should not be Equal")
	}
}

func TestFunctionsNeverEqual(t *testing.T) {
	fn := FromFunction(NewNative(func(interface{}, []Value) (Value, error) { return Nil, nil }))
	if Equal(fn, fn) {
		t.Error("Function values should never compare equal, even to themselves")
	}
}

func TestFormat(t *testing.T) {
	in := interner.New()
	sym := in.Intern("x")
	list := FromList(FromSlice([]Value{FromInteger(1), FromBoolean(true)}))

	tests := []struct {
		v    Value
		want string
	}{
		{FromBoolean(true), "true"},
		{FromInteger(42), "42"},
		{FromString("hi"), "hi"},
		{FromSymbol(sym), "x"},
		{list, "(1 true)"},
	}
	for _, tt := range tests {
		if got := tt.v.Format(in); got != tt.want {
			t.Errorf("Format(%+v) = %q, want %q", tt.v, got, tt.want)
		}
	}
}

func TestZeroValueIsNil(t *testing.T) {
	var v Value
	l, ok := v.AsList()
	if !ok || !l.Empty() {
		t.Error("the zero Value should be the empty list")
	}
}
