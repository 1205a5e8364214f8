package lexer

import (
	"testing"

	"slisp/pkg/token"
)

func TestNextToken(t *testing.T) {
	input := `(def add (lambda (x y) (+ x y)))`

	tests := []struct {
		expectedType    token.TokenType
		expectedLiteral string
	}{
		{token.LPAREN, "("},
		{token.SYMBOL, "def"},
		{token.SYMBOL, "add"},
		{token.LPAREN, "("},
		{token.SYMBOL, "lambda"},
		{token.LPAREN, "("},
		{token.SYMBOL, "x"},
		{token.SYMBOL, "y"},
		{token.RPAREN, ")"},
		{token.LPAREN, "("},
		{token.SYMBOL, "+"},
		{token.SYMBOL, "x"},
		{token.SYMBOL, "y"},
		{token.RPAREN, ")"},
		{token.RPAREN, ")"},
		{token.RPAREN, ")"},
		{token.EOF, ""},
	}

	l := New(input)
	for i, tt := range tests {
		tok := l.NextToken()
		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q, got=%q, literal=%q",
				i, tt.expectedType, tok.Type, tok.Literal)
		}
		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q",
				i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestLiterals(t *testing.T) {
	input := `true false 42 -7 3.14 .5 "hello\nworld"`

	tests := []struct {
		expectedType    token.TokenType
		expectedLiteral string
	}{
		{token.TRUE, "true"},
		{token.FALSE, "false"},
		{token.INT, "42"},
		{token.INT, "-7"},
		{token.FLOAT, "3.14"},
		{token.FLOAT, ".5"},
		{token.STRING, "hello\nworld"},
		{token.EOF, ""},
	}

	l := New(input)
	for i, tt := range tests {
		tok := l.NextToken()
		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q, got=%q, literal=%q",
				i, tt.expectedType, tok.Type, tok.Literal)
		}
		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q",
				i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestUnterminatedString(t *testing.T) {
	l := New(`"oops`)
	tok := l.NextToken()
	if tok.Type != token.ILLEGAL {
		t.Fatalf("expected ILLEGAL for unterminated string, got %q", tok.Type)
	}
}

func TestRadixIntegers(t *testing.T) {
	input := `0b101 0o17 0x1F`
	tests := []struct {
		expectedType    token.TokenType
		expectedLiteral string
	}{
		{token.INT, "0b101"},
		{token.INT, "0o17"},
		{token.INT, "0x1F"},
		{token.EOF, ""},
	}

	l := New(input)
	for i, tt := range tests {
		tok := l.NextToken()
		if tok.Type != tt.expectedType || tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - got=(%q,%q) want=(%q,%q)", i, tok.Type, tok.Literal, tt.expectedType, tt.expectedLiteral)
		}
	}
}

func TestParseIntLiteral(t *testing.T) {
	tests := []struct {
		word string
		want int64
		ok   bool
	}{
		{"42", 42, true},
		{"-7", -7, true},
		{"0b101", 5, true},
		{"0o17", 15, true},
		{"0x1F", 31, true},
		{"1_000", 1000, true},
		{"abc", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseIntLiteral(tt.word)
		if ok != tt.ok {
			t.Fatalf("ParseIntLiteral(%q) ok = %v, want %v", tt.word, ok, tt.ok)
		}
		if ok && got != tt.want {
			t.Fatalf("ParseIntLiteral(%q) = %d, want %d", tt.word, got, tt.want)
		}
	}
}
