package parser

import (
	"testing"

	"slisp/pkg/ast"
	"slisp/pkg/lexer"
)

func parseAll(t *testing.T, input string) []ast.SExpression {
	t.Helper()
	p := New(lexer.New(input), "<test>")
	exprs, err := p.ParseModule()
	if err != nil {
		t.Fatalf("ParseModule(%q) error: %v", input, err)
	}
	return exprs
}

func TestParseAtoms(t *testing.T) {
	exprs := parseAll(t, `true false 42 -7 3.14 "hi" sym`)
	if len(exprs) != 7 {
		t.Fatalf("got %d expressions, want 7", len(exprs))
	}
	if exprs[0].Lit.Kind != ast.LitBoolean || !exprs[0].Lit.Boolean {
		t.Errorf("expr[0] = %+v, want true", exprs[0])
	}
	if exprs[2].Lit.Kind != ast.LitInteger || exprs[2].Lit.Integer != 42 {
		t.Errorf("expr[2] = %+v, want Integer 42", exprs[2])
	}
	if exprs[3].Lit.Integer != -7 {
		t.Errorf("expr[3] = %+v, want Integer -7", exprs[3])
	}
	if exprs[6].Lit.Kind != ast.LitSymbol || exprs[6].Lit.Symbol != "sym" {
		t.Errorf("expr[6] = %+v, want Symbol sym", exprs[6])
	}
}

func TestParseNestedList(t *testing.T) {
	exprs := parseAll(t, `(def add (lambda (x y) (+ x y)))`)
	if len(exprs) != 1 {
		t.Fatalf("got %d expressions, want 1", len(exprs))
	}
	if got, want := exprs[0].String(), "(def add (lambda (x y) (+ x y)))"; got != want {
		t.Errorf("round-trip = %q, want %q", got, want)
	}
}

func TestParseEmptyList(t *testing.T) {
	exprs := parseAll(t, `()`)
	if len(exprs) != 1 || !exprs[0].IsList || len(exprs[0].Elements) != 0 {
		t.Fatalf("expected a single empty list, got %+v", exprs)
	}
}

func TestUnterminatedListIsSyntaxError(t *testing.T) {
	p := New(lexer.New(`(+ 1 2`), "<test>")
	if _, err := p.ParseModule(); err == nil {
		t.Fatal("expected a syntax error for an unterminated list")
	}
}

func TestEmptyInputIsSyntaxError(t *testing.T) {
	p := New(lexer.New(``), "<test>")
	if _, err := p.ParseModule(); err == nil {
		t.Fatal("expected a syntax error for empty input: a module needs at least one form")
	}
}

func TestUnbalancedCloseParenIsSyntaxError(t *testing.T) {
	p := New(lexer.New(`)`), "<test>")
	if _, err := p.ParseModule(); err == nil {
		t.Fatal("expected a syntax error for a stray close paren")
	}
}
