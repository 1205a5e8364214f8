package interner

import "testing"

func TestInternSameStringSameSymbol(t *testing.T) {
	in := New()
	a := in.Intern("foo")
	b := in.Intern("foo")
	if a != b {
		t.Errorf("Intern(\"foo\") twice = %d, %d; want equal", a, b)
	}
}

func TestInternDistinctStringsDistinctSymbols(t *testing.T) {
	in := New()
	a := in.Intern("foo")
	b := in.Intern("bar")
	if a == b {
		t.Errorf("Intern(\"foo\") and Intern(\"bar\") collided as %d", a)
	}
}

func TestResolveRoundTrip(t *testing.T) {
	in := New()
	sym := in.Intern("hello")
	got, ok := in.Resolve(sym)
	if !ok || got != "hello" {
		t.Errorf("Resolve(sym) = %q, %v; want \"hello\", true", got, ok)
	}
}

func TestMustResolveUnknownSymbol(t *testing.T) {
	in := New()
	if got := in.MustResolve(Symbol(999)); got != "<>" {
		t.Errorf("MustResolve(unknown) = %q, want \"<>\"", got)
	}
}
