// Package ast defines the parsed S-expression tree produced by
// pkg/parser: the input to the compiler's lowering pass.
package ast

import (
	"strconv"
	"strings"
)

// LiteralKind tags the variant held by a Literal node.
type LiteralKind int

const (
	LitBoolean LiteralKind = iota
	LitInteger
	LitFloat
	LitString
	LitSymbol
)

// Literal is a single atomic reader token already classified and
// converted to its host representation.
type Literal struct {
	Kind    LiteralKind
	Boolean bool
	Integer int64
	Float   float64
	String  string
	Symbol  string // unresolved textual symbol name; interned by the compiler
}

// text renders l as source text. It is not named String because
// Literal already has a String field.
func (l Literal) text() string {
	switch l.Kind {
	case LitBoolean:
		if l.Boolean {
			return "true"
		}
		return "false"
	case LitInteger:
		return strconv.FormatInt(l.Integer, 10)
	case LitFloat:
		return strconv.FormatFloat(l.Float, 'g', -1, 64)
	case LitString:
		return strconv.Quote(l.String)
	case LitSymbol:
		return l.Symbol
	default:
		return "<?>"
	}
}

// SExpression is either a Literal atom or a List of child
// SExpressions. Exactly one of Lit/Elements is meaningful, selected
// by IsList.
type SExpression struct {
	IsList   bool
	Lit      Literal
	Elements []SExpression
}

func Atom(l Literal) SExpression {
	return SExpression{IsList: false, Lit: l}
}

func List(elements []SExpression) SExpression {
	return SExpression{IsList: true, Elements: elements}
}

func (s SExpression) String() string {
	if !s.IsList {
		return s.Lit.text()
	}
	parts := make([]string, len(s.Elements))
	for i, e := range s.Elements {
		parts[i] = e.String()
	}
	return "(" + strings.Join(parts, " ") + ")"
}
