package eval

import (
	"testing"

	"slisp/pkg/globalenv"
	"slisp/pkg/interner"
	"slisp/pkg/optree"
	"slisp/pkg/rte"
	"slisp/pkg/value"
)

func TestEvalFinish(t *testing.T) {
	gle := globalenv.New()
	in := interner.New()
	result, err := Eval(gle, in, nil, optree.Finish(value.FromInteger(5)))
	if err != nil {
		t.Fatalf("Eval returned error: %v", err)
	}
	if i, _ := result.AsInteger(); i != 5 {
		t.Errorf("result = %+v, want 5", result)
	}
}

func TestEvalFetchGleUndefined(t *testing.T) {
	gle := globalenv.New()
	in := interner.New()
	sym := in.Intern("missing")
	if _, err := Eval(gle, in, nil, optree.FetchGle(sym)); err == nil {
		t.Error("expected an UndefinedSymbol error fetching an undefined global")
	}
}

func TestEvalIfBranches(t *testing.T) {
	gle := globalenv.New()
	in := interner.New()
	node := optree.If(
		optree.Finish(value.FromBoolean(false)),
		optree.Finish(value.FromInteger(1)),
		optree.Finish(value.FromInteger(2)),
	)
	result, err := Eval(gle, in, nil, node)
	if err != nil {
		t.Fatalf("Eval returned error: %v", err)
	}
	if i, _ := result.AsInteger(); i != 2 {
		t.Errorf("result = %+v, want 2 (else branch)", result)
	}
}

// TestEvalTailRecursionStaysInConstantStack drives a deep
// self-recursive closure (a manually built countdown) through the
// trampoline and checks it completes rather than stack-overflowing,
// exercising the Apply->Closure tail loop of spec.md §4.2.
func TestEvalTailRecursionStaysInConstantStack(t *testing.T) {
	gle := globalenv.New()
	in := interner.New()
	countSym := in.Intern("count")

	// (lambda (n) (if (= n 0) 0 (count (- n 1))))
	// `=` and `-` are natives and `count` is a closure, all defined
	// directly in gle.
	gle.Define(in.Intern("="), value.FromFunction(value.NewNative(
		func(_ interface{}, args []value.Value) (value.Value, error) {
			a, _ := args[0].AsInteger()
			b, _ := args[1].AsInteger()
			return value.FromBoolean(a == b), nil
		})))
	gle.Define(in.Intern("-"), value.FromFunction(value.NewNative(
		func(_ interface{}, args []value.Value) (value.Value, error) {
			a, _ := args[0].AsInteger()
			b, _ := args[1].AsInteger()
			return value.FromInteger(a - b), nil
		})))

	body := optree.If(
		optree.Apply(optree.FetchGle(in.Intern("=")), []*optree.Node{
			optree.RefRte(0, 0),
			optree.Finish(value.FromInteger(0)),
		}),
		optree.Finish(value.FromInteger(0)),
		optree.Apply(optree.FetchGle(countSym), []*optree.Node{
			optree.Apply(optree.FetchGle(in.Intern("-")), []*optree.Node{
				optree.RefRte(0, 0),
				optree.Finish(value.FromInteger(1)),
			}),
		}),
	)
	tmpl := value.Template{ParamCount: 1, Body: body}
	closure := value.FromFunction(value.NewClosure(value.Closure{Template: tmpl, Captured: (*rte.Frame)(nil)}))
	gle.Define(countSym, closure)

	call := optree.Apply(optree.FetchGle(countSym), []*optree.Node{
		optree.Finish(value.FromInteger(200000)),
	})

	result, err := Eval(gle, in, nil, call)
	if err != nil {
		t.Fatalf("Eval returned error: %v", err)
	}
	if i, _ := result.AsInteger(); i != 0 {
		t.Errorf("result = %+v, want 0", result)
	}
}

// TestEvalApplyEvaluatesArgsBeforeFn confirms spec.md §4.2's
// documented Apply order: an undefined argument symbol is reported
// ahead of an undefined function symbol, since arg_ops evaluate first.
func TestEvalApplyEvaluatesArgsBeforeFn(t *testing.T) {
	gle := globalenv.New()
	in := interner.New()

	node := optree.Apply(
		optree.FetchGle(in.Intern("undefined-fn")),
		[]*optree.Node{optree.FetchGle(in.Intern("undefined-arg"))},
	)
	_, err := Eval(gle, in, nil, node)
	if err == nil {
		t.Fatal("expected an UndefinedSymbol error")
	}
	if got, want := err.Error(), "UndefinedSymbol: undefined-arg"; got != want {
		t.Errorf("Eval error = %q, want %q (the argument's error, not the function's)", got, want)
	}
}

func TestEvalPrintlnReturnsNil(t *testing.T) {
	gle := globalenv.New()
	in := interner.New()
	result, err := Eval(gle, in, nil, optree.Println([]*optree.Node{optree.Finish(value.FromInteger(1))}))
	if err != nil {
		t.Fatalf("Eval returned error: %v", err)
	}
	if !result.IsList() {
		t.Errorf("println result = %+v, want NIL", result)
	}
}
