package rte

import (
	"testing"

	"slisp/pkg/value"
)

func TestGetImmediateFrame(t *testing.T) {
	f := Extend(nil, []value.Value{value.FromInteger(1), value.FromInteger(2)})
	v, err := Get(f, 0, 1)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if got, _ := v.AsInteger(); got != 2 {
		t.Errorf("Get(f,0,1) = %v, want 2", got)
	}
}

func TestGetWalksParents(t *testing.T) {
	outer := Extend(nil, []value.Value{value.FromInteger(10)})
	inner := Extend(outer, []value.Value{value.FromInteger(20)})

	v, err := Get(inner, 1, 0)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if got, _ := v.AsInteger(); got != 10 {
		t.Errorf("Get(inner,1,0) = %v, want 10", got)
	}
}

func TestGetOutOfRangeErrors(t *testing.T) {
	f := Extend(nil, []value.Value{value.FromInteger(1)})
	if _, err := Get(f, 0, 5); err == nil {
		t.Error("expected an error for an out-of-range slot index")
	}
	if _, err := Get(f, 3, 0); err == nil {
		t.Error("expected an error for a too-deep lexical address")
	}
}
