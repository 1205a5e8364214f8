// Package eval implements the trampolined op tree evaluator of
// spec.md §4.2: Eval walks an optree.Node against a global and
// runtime environment, looping in place for the two tail positions
// (an If's chosen branch, a Closure's body) instead of recursing, so
// that self- and mutually-tail-recursive slisp programs run in
// constant Go stack depth.
//
// Grounded on the teacher's pkg/vm/vm.go dispatch loop (a single
// `for` driving a switch over the current instruction, reassigning
// the instruction pointer rather than recursing for straight-line
// control flow) generalized from a flat bytecode counter to an op
// tree cursor.
package eval

import (
	"fmt"
	"strings"

	"slisp/pkg/errs"
	"slisp/pkg/globalenv"
	"slisp/pkg/interner"
	"slisp/pkg/optree"
	"slisp/pkg/rte"
	"slisp/pkg/value"
)

// Eval drives the trampoline to completion and returns the final
// Value (or the first error encountered).
func Eval(gle *globalenv.Env, in *interner.Interner, frame *rte.Frame, op *optree.Node) (value.Value, error) {
	for {
		switch op.Tag {
		case optree.TagFinish:
			return op.Const, nil

		case optree.TagFetchGle:
			v, ok := gle.Get(op.Sym)
			if !ok {
				return value.Value{}, &errs.UndefinedSymbolError{Name: in.MustResolve(op.Sym)}
			}
			return v, nil

		case optree.TagRefRte:
			return rte.Get(frame, op.Depth, op.Index)

		case optree.TagIf:
			test, err := Eval(gle, in, frame, op.Test)
			if err != nil {
				return value.Value{}, err
			}
			if test.Truthy() {
				op = op.Then
			} else {
				op = op.Else
			}
			continue // tail position: loop instead of recursing

		case optree.TagEnclose:
			clo := value.Closure{Template: op.Template, Captured: frame}
			return value.FromFunction(value.NewClosure(clo)), nil

		case optree.TagApply:
			// spec.md §4.2 evaluates every arg_op before fn_op, so an
			// error in an argument surfaces ahead of one in the
			// function position.
			args := make([]value.Value, len(op.Args))
			for i, argOp := range op.Args {
				v, err := Eval(gle, in, frame, argOp)
				if err != nil {
					return value.Value{}, err
				}
				args[i] = v
			}

			fnVal, err := Eval(gle, in, frame, op.Fn)
			if err != nil {
				return value.Value{}, err
			}
			fn, ok := fnVal.AsFunction()
			if !ok {
				return value.Value{}, errs.NewTypeError("Function", fnVal.Kind().String())
			}

			switch fn.Variant {
			case value.FnNative:
				return fn.Nat(gle, args)

			case value.FnClosure:
				tmpl := fn.Clo.Template
				if err := errs.AssertArity(tmpl.ParamCount, len(args)); err != nil {
					return value.Value{}, err
				}
				captured, _ := fn.Clo.Captured.(*rte.Frame)
				frame = rte.Extend(captured, args)
				op = tmpl.Body.(*optree.Node)
				continue // tail position: the closure's body, looped in place

			case value.FnTemplate:
				return value.Value{}, errs.NewTypeError("Function", "Template (not enclosed)")

			default:
				return value.Value{}, fmt.Errorf("eval: unknown function variant %d", fn.Variant)
			}

		case optree.TagPrintln:
			parts := make([]string, len(op.PrintArgs))
			for i, argOp := range op.PrintArgs {
				v, err := Eval(gle, in, frame, argOp)
				if err != nil {
					return value.Value{}, err
				}
				parts[i] = v.Format(in)
			}
			fmt.Println(strings.Join(parts, " "))
			return value.Nil, nil

		default:
			return value.Value{}, fmt.Errorf("eval: unknown op tag %d", op.Tag)
		}
	}
}
