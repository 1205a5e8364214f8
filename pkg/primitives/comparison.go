package primitives

import (
	"slisp/pkg/errs"
	"slisp/pkg/value"
)

// intChain implements the corrected chained-comparison contract of
// SPEC_FULL.md §11: true iff every adjacent pair in args satisfies
// cmp, not just the last pair. original_source's
// env/primitives/comparison.rs reassigns `result` on each iteration
// instead of AND-ing it, so only the final pair's outcome survives —
// a bug confirmed by inspection, not the intended contract.
func intChain(args []value.Value, cmp func(a, b int64) bool) (value.Value, error) {
	if err := errs.AssertAtLeast(2, len(args)); err != nil {
		return value.Value{}, err
	}
	prev, err := intArg(args[0])
	if err != nil {
		return value.Value{}, err
	}
	for _, a := range args[1:] {
		cur, err := intArg(a)
		if err != nil {
			return value.Value{}, err
		}
		if !cmp(prev, cur) {
			return value.FromBoolean(false), nil
		}
		prev = cur
	}
	return value.FromBoolean(true), nil
}

func floatChain(args []value.Value, cmp func(a, b float64) bool) (value.Value, error) {
	if err := errs.AssertAtLeast(2, len(args)); err != nil {
		return value.Value{}, err
	}
	prev, err := floatArg(args[0])
	if err != nil {
		return value.Value{}, err
	}
	for _, a := range args[1:] {
		cur, err := floatArg(a)
		if err != nil {
			return value.Value{}, err
		}
		if !cmp(prev, cur) {
			return value.FromBoolean(false), nil
		}
		prev = cur
	}
	return value.FromBoolean(true), nil
}

func ilt(_ interface{}, args []value.Value) (value.Value, error) {
	return intChain(args, func(a, b int64) bool { return a < b })
}
func ilte(_ interface{}, args []value.Value) (value.Value, error) {
	return intChain(args, func(a, b int64) bool { return a <= b })
}
func igt(_ interface{}, args []value.Value) (value.Value, error) {
	return intChain(args, func(a, b int64) bool { return a > b })
}
func igte(_ interface{}, args []value.Value) (value.Value, error) {
	return intChain(args, func(a, b int64) bool { return a >= b })
}

func flt(_ interface{}, args []value.Value) (value.Value, error) {
	return floatChain(args, func(a, b float64) bool { return a < b })
}
func flte(_ interface{}, args []value.Value) (value.Value, error) {
	return floatChain(args, func(a, b float64) bool { return a <= b })
}
func fgt(_ interface{}, args []value.Value) (value.Value, error) {
	return floatChain(args, func(a, b float64) bool { return a > b })
}
func fgte(_ interface{}, args []value.Value) (value.Value, error) {
	return floatChain(args, func(a, b float64) bool { return a >= b })
}

// eq, ne implement the polymorphic = and != over every adjacent pair
// of two or more Values, the same chained contract as the ordering
// comparisons above.
func eq(_ interface{}, args []value.Value) (value.Value, error) {
	if err := errs.AssertAtLeast(2, len(args)); err != nil {
		return value.Value{}, err
	}
	for i := 1; i < len(args); i++ {
		if !value.Equal(args[i-1], args[i]) {
			return value.FromBoolean(false), nil
		}
	}
	return value.FromBoolean(true), nil
}

func ne(_ interface{}, args []value.Value) (value.Value, error) {
	if err := errs.AssertAtLeast(2, len(args)); err != nil {
		return value.Value{}, err
	}
	for i := 1; i < len(args); i++ {
		if value.Equal(args[i-1], args[i]) {
			return value.FromBoolean(false), nil
		}
	}
	return value.FromBoolean(true), nil
}
