// Package parser reads a token stream into a sequence of
// ast.SExpression trees: one or more top-level forms per spec.md
// §6 ("A module is a sequence of one or more S-expressions").
package parser

import (
	"slisp/pkg/ast"
	"slisp/pkg/errs"
	"slisp/pkg/lexer"
	"slisp/pkg/token"
)

type Parser struct {
	l        *lexer.Lexer
	filename string

	cur  token.Token
	peek token.Token
}

func New(l *lexer.Lexer, filename string) *Parser {
	p := &Parser{l: l, filename: filename}
	p.next()
	p.next()
	return p
}

func (p *Parser) next() {
	p.cur = p.peek
	p.peek = p.l.NextToken()
}

// ParseModule reads every top-level S-expression until EOF.
func (p *Parser) ParseModule() ([]ast.SExpression, error) {
	var exprs []ast.SExpression

	for p.cur.Type != token.EOF {
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, expr)
	}

	if len(exprs) == 0 {
		return nil, p.errorf("unexpected token", p.cur)
	}

	return exprs, nil
}

func (p *Parser) parseExpression() (ast.SExpression, error) {
	switch p.cur.Type {
	case token.LPAREN:
		return p.parseList()
	case token.TRUE:
		lit := ast.Literal{Kind: ast.LitBoolean, Boolean: true}
		p.next()
		return ast.Atom(lit), nil
	case token.FALSE:
		lit := ast.Literal{Kind: ast.LitBoolean, Boolean: false}
		p.next()
		return ast.Atom(lit), nil
	case token.INT:
		value, ok := lexer.ParseIntLiteral(p.cur.Literal)
		if !ok {
			return ast.SExpression{}, p.errorf("integer literal overflow", p.cur)
		}
		lit := ast.Literal{Kind: ast.LitInteger, Integer: value}
		p.next()
		return ast.Atom(lit), nil
	case token.FLOAT:
		value, ok := lexer.ParseFloatLiteral(p.cur.Literal)
		if !ok {
			return ast.SExpression{}, p.errorf("malformed float literal", p.cur)
		}
		lit := ast.Literal{Kind: ast.LitFloat, Float: value}
		p.next()
		return ast.Atom(lit), nil
	case token.STRING:
		lit := ast.Literal{Kind: ast.LitString, String: p.cur.Literal}
		p.next()
		return ast.Atom(lit), nil
	case token.SYMBOL:
		lit := ast.Literal{Kind: ast.LitSymbol, Symbol: p.cur.Literal}
		p.next()
		return ast.Atom(lit), nil
	case token.ILLEGAL:
		return ast.SExpression{}, p.errorf("invalid token", p.cur)
	default:
		return ast.SExpression{}, p.errorf("unexpected token", p.cur)
	}
}

func (p *Parser) parseList() (ast.SExpression, error) {
	p.next() // consume '('

	var elements []ast.SExpression
	for p.cur.Type != token.RPAREN {
		if p.cur.Type == token.EOF {
			return ast.SExpression{}, p.errorf("unexpected end of input, expected )", p.cur)
		}
		expr, err := p.parseExpression()
		if err != nil {
			return ast.SExpression{}, err
		}
		elements = append(elements, expr)
	}
	p.next() // consume ')'

	return ast.List(elements), nil
}

func (p *Parser) errorf(reason string, tok token.Token) error {
	return &errs.SyntaxError{
		Filename: p.filename,
		Line:     tok.Line,
		Col:      tok.Column,
		Token:    tok.Literal,
		Reason:   reason,
	}
}
