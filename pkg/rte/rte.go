// Package rte implements the runtime environment: a chain of indexed
// value frames mirroring the CTE's slot layout, per spec.md §3/§4.4.
// Frames are created on closure application and shared by any closure
// that escapes the call that created them — the reference graph is a
// DAG of parent links, never mutated after creation (spec.md §5/§9).
package rte

import (
	"slisp/pkg/errs"
	"slisp/pkg/value"
)

// Frame is one call's local value slots, parented on the frame chain
// captured by the closure being applied.
type Frame struct {
	Parent *Frame
	Values []value.Value
}

// Extend allocates a new frame holding values, parented on parent.
// parent may be nil for a top-level call with no lexical parent.
func Extend(parent *Frame, values []value.Value) *Frame {
	return &Frame{Parent: parent, Values: values}
}

// Get resolves a lexical address (depth, index) against f: walk depth
// parents, then index into that frame's slots. An out-of-range access
// is a compiler bug, not a user error (spec.md §4.2) — it still
// surfaces as UndefinedSymbol, with a generic detail, rather than
// panicking.
func Get(f *Frame, depth, index int) (value.Value, error) {
	cur := f
	for i := 0; i < depth; i++ {
		if cur == nil {
			return value.Value{}, &errs.UndefinedSymbolError{Name: "<lexical address out of range>"}
		}
		cur = cur.Parent
	}
	if cur == nil || index < 0 || index >= len(cur.Values) {
		return value.Value{}, &errs.UndefinedSymbolError{Name: "<lexical address out of range>"}
	}
	return cur.Values[index], nil
}
