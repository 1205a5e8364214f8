package primitives

import (
	"slisp/pkg/ast"
	"slisp/pkg/compiler"
	"slisp/pkg/cte"
	"slisp/pkg/errs"
	"slisp/pkg/eval"
	"slisp/pkg/globalenv"
	"slisp/pkg/interner"
	"slisp/pkg/value"
)

// valueToSExpr converts a runtime Value back into an S-expression,
// the inverse of the compiler's quote-time sexprToValue conversion.
// It is what lets the `eval` primitive treat data produced by `quote`
// or `list` as code, per
// original_source/backend/src/eval/primitives/eval.rs.
func valueToSExpr(v value.Value, in *interner.Interner) (ast.SExpression, error) {
	switch v.Kind() {
	case value.Boolean:
		b, _ := v.AsBoolean()
		return ast.Atom(ast.Literal{Kind: ast.LitBoolean, Boolean: b}), nil
	case value.Integer:
		i, _ := v.AsInteger()
		return ast.Atom(ast.Literal{Kind: ast.LitInteger, Integer: i}), nil
	case value.Float:
		f, _ := v.AsFloat()
		return ast.Atom(ast.Literal{Kind: ast.LitFloat, Float: f}), nil
	case value.String:
		s, _ := v.AsString()
		return ast.Atom(ast.Literal{Kind: ast.LitString, String: s}), nil
	case value.Symbol:
		sym, _ := v.AsSymbol()
		return ast.Atom(ast.Literal{Kind: ast.LitSymbol, Symbol: in.MustResolve(sym)}), nil
	case value.ListKind:
		l, _ := v.AsList()
		items := l.Items()
		elems := make([]ast.SExpression, len(items))
		for i, it := range items {
			e, err := valueToSExpr(it, in)
			if err != nil {
				return ast.SExpression{}, err
			}
			elems[i] = e
		}
		return ast.List(elems), nil
	default:
		return ast.SExpression{}, errs.NewTypeError("quotable form", v.Kind().String())
	}
}

// makeEval binds `eval` to a compiler/global-frame pair captured at
// registration time, so the primitive can compile a Value back into
// an op tree and drive it through the same trampoline as any other
// form, at global scope.
func makeEval(comp *compiler.Compiler, frame *cte.Frame, in *interner.Interner) value.Native {
	return func(gleIface interface{}, args []value.Value) (value.Value, error) {
		if err := errs.AssertArity(1, len(args)); err != nil {
			return value.Value{}, err
		}
		gle := gleIface.(*globalenv.Env)
		expr, err := valueToSExpr(args[0], in)
		if err != nil {
			return value.Value{}, err
		}
		op, err := comp.Compile(expr, frame)
		if err != nil {
			return value.Value{}, err
		}
		return eval.Eval(gle, in, nil, op)
	}
}
