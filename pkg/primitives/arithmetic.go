// Package primitives implements the native functions seeded into the
// global environment at startup: arithmetic, comparison, equality,
// list construction/eval, and the domain-stack primitives
// (hash-password, jwt-sign, send-mail, ...), per spec.md §6/§7 and
// SPEC_FULL.md's Domain Stack section.
//
// Grounded on original_source/backend/src/env/primitives and
// original_source/backend/src/eval/primitives (the two-tier
// Env-primitive / VM-primitive split of the source), and on the
// teacher's pkg/vm/vm.go builtin table for the "plain Go function
// wrapped as a callable slot" shape.
package primitives

import (
	"slisp/pkg/errs"
	"slisp/pkg/value"
)

func intArg(v value.Value) (int64, error) {
	i, ok := v.AsInteger()
	if !ok {
		return 0, errs.NewTypeError("Integer", v.Kind().String())
	}
	return i, nil
}

func floatArg(v value.Value) (float64, error) {
	f, ok := v.AsFloat()
	if !ok {
		return 0, errs.NewTypeError("Float", v.Kind().String())
	}
	return f, nil
}

// iadd, isub, imul, idiv implement +, -, *, / over at-least-two
// Integer arguments, matching
// original_source/backend/src/env/primitives/arithmetic.rs's
// accumulate-left-to-right contract.
func iadd(_ interface{}, args []value.Value) (value.Value, error) {
	if err := errs.AssertAtLeast(2, len(args)); err != nil {
		return value.Value{}, err
	}
	var result int64
	for _, a := range args {
		v, err := intArg(a)
		if err != nil {
			return value.Value{}, err
		}
		result += v
	}
	return value.FromInteger(result), nil
}

func isub(_ interface{}, args []value.Value) (value.Value, error) {
	if err := errs.AssertAtLeast(2, len(args)); err != nil {
		return value.Value{}, err
	}
	result, err := intArg(args[0])
	if err != nil {
		return value.Value{}, err
	}
	for _, a := range args[1:] {
		v, err := intArg(a)
		if err != nil {
			return value.Value{}, err
		}
		result -= v
	}
	return value.FromInteger(result), nil
}

func imul(_ interface{}, args []value.Value) (value.Value, error) {
	if err := errs.AssertAtLeast(2, len(args)); err != nil {
		return value.Value{}, err
	}
	result := int64(1)
	for _, a := range args {
		v, err := intArg(a)
		if err != nil {
			return value.Value{}, err
		}
		result *= v
	}
	return value.FromInteger(result), nil
}

func idiv(_ interface{}, args []value.Value) (value.Value, error) {
	if err := errs.AssertAtLeast(2, len(args)); err != nil {
		return value.Value{}, err
	}
	result, err := intArg(args[0])
	if err != nil {
		return value.Value{}, err
	}
	for _, a := range args[1:] {
		v, err := intArg(a)
		if err != nil {
			return value.Value{}, err
		}
		if v == 0 {
			return value.Value{}, errs.NewTypeError("non-zero divisor", "0")
		}
		result /= v
	}
	return value.FromInteger(result), nil
}

// fadd, fsub, fmul, fdiv are the Float counterparts, bound to
// .+ .- .* ./ per spec.md §6's dotted-operator naming.
func fadd(_ interface{}, args []value.Value) (value.Value, error) {
	if err := errs.AssertAtLeast(2, len(args)); err != nil {
		return value.Value{}, err
	}
	var result float64
	for _, a := range args {
		v, err := floatArg(a)
		if err != nil {
			return value.Value{}, err
		}
		result += v
	}
	return value.FromFloat(result), nil
}

func fsub(_ interface{}, args []value.Value) (value.Value, error) {
	if err := errs.AssertAtLeast(2, len(args)); err != nil {
		return value.Value{}, err
	}
	result, err := floatArg(args[0])
	if err != nil {
		return value.Value{}, err
	}
	for _, a := range args[1:] {
		v, err := floatArg(a)
		if err != nil {
			return value.Value{}, err
		}
		result -= v
	}
	return value.FromFloat(result), nil
}

func fmul(_ interface{}, args []value.Value) (value.Value, error) {
	if err := errs.AssertAtLeast(2, len(args)); err != nil {
		return value.Value{}, err
	}
	result := 1.0
	for _, a := range args {
		v, err := floatArg(a)
		if err != nil {
			return value.Value{}, err
		}
		result *= v
	}
	return value.FromFloat(result), nil
}

func fdiv(_ interface{}, args []value.Value) (value.Value, error) {
	if err := errs.AssertAtLeast(2, len(args)); err != nil {
		return value.Value{}, err
	}
	result, err := floatArg(args[0])
	if err != nil {
		return value.Value{}, err
	}
	for _, a := range args[1:] {
		v, err := floatArg(a)
		if err != nil {
			return value.Value{}, err
		}
		result /= v
	}
	return value.FromFloat(result), nil
}
