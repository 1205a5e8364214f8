package ast

import "testing"

func TestAtomString(t *testing.T) {
	tests := []struct {
		lit  Literal
		want string
	}{
		{Literal{Kind: LitBoolean, Boolean: true}, "true"},
		{Literal{Kind: LitBoolean, Boolean: false}, "false"},
		{Literal{Kind: LitInteger, Integer: -7}, "-7"},
		{Literal{Kind: LitFloat, Float: 3.5}, "3.5"},
		{Literal{Kind: LitString, String: "hi"}, `"hi"`},
		{Literal{Kind: LitSymbol, Symbol: "x"}, "x"},
	}
	for _, tt := range tests {
		if got := Atom(tt.lit).String(); got != tt.want {
			t.Errorf("Atom(%+v).String() = %q, want %q", tt.lit, got, tt.want)
		}
	}
}

func TestListString(t *testing.T) {
	expr := List([]SExpression{
		Atom(Literal{Kind: LitSymbol, Symbol: "+"}),
		Atom(Literal{Kind: LitInteger, Integer: 1}),
		Atom(Literal{Kind: LitInteger, Integer: 2}),
	})
	if got, want := expr.String(), "(+ 1 2)"; got != want {
		t.Errorf("List.String() = %q, want %q", got, want)
	}
}

func TestNestedListString(t *testing.T) {
	inner := List([]SExpression{Atom(Literal{Kind: LitSymbol, Symbol: "a"})})
	outer := List([]SExpression{inner, Atom(Literal{Kind: LitSymbol, Symbol: "b"})})
	if got, want := outer.String(), "((a) b)"; got != want {
		t.Errorf("nested List.String() = %q, want %q", got, want)
	}
}

func TestEmptyListString(t *testing.T) {
	if got, want := List(nil).String(), "()"; got != want {
		t.Errorf("empty List.String() = %q, want %q", got, want)
	}
}
