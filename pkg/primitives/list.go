package primitives

import (
	"slisp/pkg/errs"
	"slisp/pkg/value"
)

// listArg requires v to be a List, per
// original_source/backend/src/eval/primitives/list.rs's assert_type
// calls ahead of every cons/car/cdr.
func listArg(v value.Value) (value.List, error) {
	l, ok := v.AsList()
	if !ok {
		return value.List{}, errs.NewTypeError("List", v.Kind().String())
	}
	return l, nil
}

func primCons(_ interface{}, args []value.Value) (value.Value, error) {
	if err := errs.AssertArity(2, len(args)); err != nil {
		return value.Value{}, err
	}
	l, err := listArg(args[1])
	if err != nil {
		return value.Value{}, err
	}
	return value.FromList(l.Cons(args[0])), nil
}

func primCar(_ interface{}, args []value.Value) (value.Value, error) {
	if err := errs.AssertArity(1, len(args)); err != nil {
		return value.Value{}, err
	}
	l, err := listArg(args[0])
	if err != nil {
		return value.Value{}, err
	}
	return l.Car()
}

func primCdr(_ interface{}, args []value.Value) (value.Value, error) {
	if err := errs.AssertArity(1, len(args)); err != nil {
		return value.Value{}, err
	}
	l, err := listArg(args[0])
	if err != nil {
		return value.Value{}, err
	}
	return value.FromList(l.Cdr()), nil
}

// primList builds a list out of its (already evaluated) arguments in
// order, the variadic constructor complementing cons/car/cdr.
func primList(_ interface{}, args []value.Value) (value.Value, error) {
	return value.FromList(value.FromSlice(args)), nil
}

// primNot implements the unary boolean negation primitive.
func primNot(_ interface{}, args []value.Value) (value.Value, error) {
	if err := errs.AssertArity(1, len(args)); err != nil {
		return value.Value{}, err
	}
	return value.FromBoolean(!args[0].Truthy()), nil
}
