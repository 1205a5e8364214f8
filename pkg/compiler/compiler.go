// Package compiler lowers a parsed S-expression tree into an
// intermediate op tree, resolving every variable reference to either
// a global symbol fetch or a lexical address, per spec.md §4.1.
//
// Grounded on the teacher's pkg/compiler/compiler.go SymbolTable
// (Define/Resolve over an Outer-linked chain, distinguishing
// "GLOBAL" vs "LOCAL" scope) generalized to full (depth, index)
// lexical addressing via pkg/cte, and on
// original_source/backend/src/interpreter/builtins.rs's special-form
// dispatch shape.
package compiler

import (
	"fmt"

	"slisp/pkg/ast"
	"slisp/pkg/cte"
	"slisp/pkg/errs"
	"slisp/pkg/globalenv"
	"slisp/pkg/interner"
	"slisp/pkg/optree"
	"slisp/pkg/value"
)

type specialForm int

const (
	formQuote specialForm = iota
	formDef
	formSet
	formIf
	formLambda
	formLet
	formPrintln
)

// Compiler lowers ast.SExpression trees into optree.Node trees. Its
// only state across calls is the interner and the cached special-form
// symbol IDs — dispatch compares interned symbol identity rather than
// re-resolving strings at every call site (spec.md §9's design note).
type Compiler struct {
	in    *interner.Interner
	forms map[interner.Symbol]specialForm
}

func New(in *interner.Interner) *Compiler {
	c := &Compiler{in: in, forms: make(map[interner.Symbol]specialForm)}
	c.forms[in.Intern("quote")] = formQuote
	c.forms[in.Intern("def")] = formDef
	c.forms[in.Intern("set!")] = formSet
	c.forms[in.Intern("if")] = formIf
	c.forms[in.Intern("lambda")] = formLambda
	c.forms[in.Intern("let")] = formLet
	c.forms[in.Intern("println")] = formPrintln
	return c
}

// Compile lowers a single S-expression within the given CTE frame.
func (c *Compiler) Compile(expr ast.SExpression, frame *cte.Frame) (*optree.Node, error) {
	if !expr.IsList {
		return c.compileLiteral(expr.Lit, frame)
	}
	return c.compileList(expr.Elements, frame)
}

func (c *Compiler) compileLiteral(lit ast.Literal, frame *cte.Frame) (*optree.Node, error) {
	switch lit.Kind {
	case ast.LitBoolean:
		return optree.Finish(value.FromBoolean(lit.Boolean)), nil
	case ast.LitInteger:
		return optree.Finish(value.FromInteger(lit.Integer)), nil
	case ast.LitFloat:
		return optree.Finish(value.FromFloat(lit.Float)), nil
	case ast.LitString:
		return optree.Finish(value.FromString(lit.String)), nil
	case ast.LitSymbol:
		sym := c.in.Intern(lit.Symbol)
		if depth, index, found := frame.Lookup(sym); found {
			return optree.RefRte(depth, index), nil
		}
		if frame.DefinedGlobally(sym) {
			return optree.FetchGle(sym), nil
		}
		return nil, &errs.UndefinedSymbolError{Name: lit.Symbol}
	default:
		return nil, fmt.Errorf("compiler: unknown literal kind %d", lit.Kind)
	}
}

func (c *Compiler) compileList(elements []ast.SExpression, frame *cte.Frame) (*optree.Node, error) {
	if len(elements) == 0 {
		return optree.Finish(value.Nil), nil
	}

	head := elements[0]
	rest := elements[1:]

	if !head.IsList && head.Lit.Kind == ast.LitSymbol {
		sym := c.in.Intern(head.Lit.Symbol)
		if form, ok := c.forms[sym]; ok {
			return c.compileSpecialForm(form, rest, frame)
		}
	}

	fnOp, err := c.Compile(head, frame)
	if err != nil {
		return nil, err
	}
	argOps, err := c.compileAll(rest, frame)
	if err != nil {
		return nil, err
	}
	return optree.Apply(fnOp, argOps), nil
}

func (c *Compiler) compileAll(exprs []ast.SExpression, frame *cte.Frame) ([]*optree.Node, error) {
	ops := make([]*optree.Node, len(exprs))
	for i, e := range exprs {
		op, err := c.Compile(e, frame)
		if err != nil {
			return nil, err
		}
		ops[i] = op
	}
	return ops, nil
}

func (c *Compiler) compileSpecialForm(form specialForm, args []ast.SExpression, frame *cte.Frame) (*optree.Node, error) {
	switch form {
	case formQuote:
		return c.compileQuote(args)
	case formDef:
		return c.compileDef(args, frame)
	case formSet:
		return c.compileSet(args, frame)
	case formIf:
		return c.compileIf(args, frame)
	case formLambda:
		return c.compileLambda(args, frame)
	case formLet:
		return c.compileLet(args, frame)
	case formPrintln:
		return c.compilePrintln(args, frame)
	default:
		return nil, fmt.Errorf("compiler: unhandled special form %d", form)
	}
}

func (c *Compiler) compileQuote(args []ast.SExpression) (*optree.Node, error) {
	if err := errs.AssertArity(1, len(args)); err != nil {
		return nil, err
	}
	return optree.Finish(c.sexprToValue(args[0])), nil
}

// sexprToValue converts an unevaluated S-expression directly into a
// Value, for `quote`: symbols intern to Symbol values, lists recurse
// into list Values, atoms map one-to-one onto their Value kind.
func (c *Compiler) sexprToValue(e ast.SExpression) value.Value {
	if !e.IsList {
		switch e.Lit.Kind {
		case ast.LitBoolean:
			return value.FromBoolean(e.Lit.Boolean)
		case ast.LitInteger:
			return value.FromInteger(e.Lit.Integer)
		case ast.LitFloat:
			return value.FromFloat(e.Lit.Float)
		case ast.LitString:
			return value.FromString(e.Lit.String)
		case ast.LitSymbol:
			return value.FromSymbol(c.in.Intern(e.Lit.Symbol))
		}
	}
	items := make([]value.Value, len(e.Elements))
	for i, el := range e.Elements {
		items[i] = c.sexprToValue(el)
	}
	return value.FromList(value.FromSlice(items))
}

// symbolArg validates that expr is a bare symbol literal, returning
// its interned Symbol and textual name.
func (c *Compiler) symbolArg(expr ast.SExpression) (interner.Symbol, string, error) {
	if expr.IsList || expr.Lit.Kind != ast.LitSymbol {
		return 0, "", errs.NewTypeError("Symbol", astKindName(expr))
	}
	name := expr.Lit.Symbol
	return c.in.Intern(name), name, nil
}

func astKindName(e ast.SExpression) string {
	if e.IsList {
		return "List"
	}
	switch e.Lit.Kind {
	case ast.LitBoolean:
		return "Boolean"
	case ast.LitInteger:
		return "Integer"
	case ast.LitFloat:
		return "Float"
	case ast.LitString:
		return "String"
	case ast.LitSymbol:
		return "Symbol"
	default:
		return "?"
	}
}

// compileDef lowers (def name value) into Apply(Finish(native-define),
// [valueOp]) — the synthetic native closure captures the target
// symbol and writes it into the global environment when applied. This
// keeps `def` inside the seven op kinds of spec.md §3 without a
// dedicated Def node.
func (c *Compiler) compileDef(args []ast.SExpression, frame *cte.Frame) (*optree.Node, error) {
	if err := errs.AssertArity(2, len(args)); err != nil {
		return nil, err
	}
	sym, _, err := c.symbolArg(args[0])
	if err != nil {
		return nil, err
	}

	frame.DefineGlobal(sym)

	valueOp, err := c.Compile(args[1], frame)
	if err != nil {
		return nil, err
	}

	defineFn := value.NewNative(func(gleIface interface{}, argv []value.Value) (value.Value, error) {
		gle := gleIface.(*globalenv.Env)
		gle.Define(sym, argv[0])
		return argv[0], nil
	})

	return optree.Apply(optree.Finish(value.FromFunction(defineFn)), []*optree.Node{valueOp}), nil
}

// compileSet lowers (set! name value) the same way as compileDef, but
// targets globalenv.Env.Set (which fails on an undefined name) and is
// rejected at compile time when name resolves to a lexical binding —
// the RTE has no mutation primitive, per spec.md §9's open-question
// resolution.
func (c *Compiler) compileSet(args []ast.SExpression, frame *cte.Frame) (*optree.Node, error) {
	if err := errs.AssertArity(2, len(args)); err != nil {
		return nil, err
	}
	sym, name, err := c.symbolArg(args[0])
	if err != nil {
		return nil, err
	}

	if _, _, found := frame.Lookup(sym); found {
		return nil, errs.NewTypeError("global binding", "lexical binding ("+name+")")
	}

	valueOp, err := c.Compile(args[1], frame)
	if err != nil {
		return nil, err
	}

	setFn := value.NewNative(func(gleIface interface{}, argv []value.Value) (value.Value, error) {
		gle := gleIface.(*globalenv.Env)
		if err := gle.Set(sym, argv[0], name); err != nil {
			return value.Value{}, err
		}
		return argv[0], nil
	})

	return optree.Apply(optree.Finish(value.FromFunction(setFn)), []*optree.Node{valueOp}), nil
}

func (c *Compiler) compileIf(args []ast.SExpression, frame *cte.Frame) (*optree.Node, error) {
	if err := errs.AssertArity(3, len(args)); err != nil {
		return nil, err
	}
	test, err := c.Compile(args[0], frame)
	if err != nil {
		return nil, err
	}
	then, err := c.Compile(args[1], frame)
	if err != nil {
		return nil, err
	}
	els, err := c.Compile(args[2], frame)
	if err != nil {
		return nil, err
	}
	return optree.If(test, then, els), nil
}

func (c *Compiler) compileLambda(args []ast.SExpression, frame *cte.Frame) (*optree.Node, error) {
	if err := errs.AssertArity(2, len(args)); err != nil {
		return nil, err
	}

	params, err := c.paramList(args[0])
	if err != nil {
		return nil, err
	}

	inner := cte.Extend(frame)
	for _, sym := range params {
		inner.Define(sym)
	}

	body, err := c.Compile(args[1], inner)
	if err != nil {
		return nil, err
	}

	return optree.Enclose(value.Template{ParamCount: len(params), Body: body}), nil
}

// paramList validates that expr is a list of bare symbols and returns
// their interned forms in declaration order.
func (c *Compiler) paramList(expr ast.SExpression) ([]interner.Symbol, error) {
	if !expr.IsList {
		return nil, errs.NewTypeError("List", astKindName(expr))
	}
	params := make([]interner.Symbol, len(expr.Elements))
	for i, el := range expr.Elements {
		sym, _, err := c.symbolArg(el)
		if err != nil {
			return nil, err
		}
		params[i] = sym
	}
	return params, nil
}

// compileLet desugars (let ((n v) ...) body) into an immediately
// applied lambda: Apply(Enclose(template), valueOps). Value
// expressions compile in the outer frame; the body compiles in a
// frame extended with each name, matching ordinary lambda scoping.
func (c *Compiler) compileLet(args []ast.SExpression, frame *cte.Frame) (*optree.Node, error) {
	if err := errs.AssertArity(2, len(args)); err != nil {
		return nil, err
	}
	if !args[0].IsList {
		return nil, errs.NewTypeError("List", astKindName(args[0]))
	}

	decls := args[0].Elements
	names := make([]interner.Symbol, len(decls))
	valueOps := make([]*optree.Node, len(decls))

	for i, decl := range decls {
		if !decl.IsList || len(decl.Elements) != 2 {
			return nil, errs.NewTypeError("(name value) pair", astKindName(decl))
		}
		sym, _, err := c.symbolArg(decl.Elements[0])
		if err != nil {
			return nil, err
		}
		valueOp, err := c.Compile(decl.Elements[1], frame)
		if err != nil {
			return nil, err
		}
		names[i] = sym
		valueOps[i] = valueOp
	}

	inner := cte.Extend(frame)
	for _, sym := range names {
		inner.Define(sym)
	}

	body, err := c.Compile(args[1], inner)
	if err != nil {
		return nil, err
	}

	tmpl := value.Template{ParamCount: len(names), Body: body}
	return optree.Apply(optree.Enclose(tmpl), valueOps), nil
}

func (c *Compiler) compilePrintln(args []ast.SExpression, frame *cte.Frame) (*optree.Node, error) {
	if err := errs.AssertAtLeast(1, len(args)); err != nil {
		return nil, err
	}
	argOps, err := c.compileAll(args, frame)
	if err != nil {
		return nil, err
	}
	return optree.Println(argOps), nil
}
