// Package cte implements the compile-time environment: a chain of
// frames mapping symbols to slot indices, used by the compiler to
// resolve every variable reference to either a lexical address
// (depth, index) or a global fetch, per spec.md §3/§4.4.
package cte

import "slisp/pkg/interner"

// Frame is one scope in the CTE chain. The outermost frame (Parent ==
// nil) is the global frame: its contents mirror the global
// environment's key set at startup, plus any symbol introduced by a
// later `def`.
type Frame struct {
	Parent *Frame
	names  []interner.Symbol
	index  map[interner.Symbol]int
}

// NewGlobal creates the root (parentless) frame.
func NewGlobal() *Frame {
	return &Frame{index: make(map[interner.Symbol]int)}
}

// Extend creates a new lexical frame nested inside parent, used when
// compiling a lambda or let body.
func Extend(parent *Frame) *Frame {
	return &Frame{Parent: parent, index: make(map[interner.Symbol]int)}
}

// Define appends sym to this frame at the next free slot index,
// returning that index. Redefining a name already in this frame
// rebinds it to a fresh slot, shadowing the old one (matching the
// source's append-only frame growth).
func (f *Frame) Define(sym interner.Symbol) int {
	idx := len(f.names)
	f.names = append(f.names, sym)
	f.index[sym] = idx
	return idx
}

func (f *Frame) IsGlobal() bool { return f.Parent == nil }

// Global walks up to the root frame.
func (f *Frame) Global() *Frame {
	cur := f
	for cur.Parent != nil {
		cur = cur.Parent
	}
	return cur
}

// Lookup searches f and its lexical ancestors (stopping before the
// global frame, which has no slot addressing) for sym, returning the
// depth (number of parent hops) and slot index of the first hit.
// found is false when sym is not lexically bound anywhere in the
// chain — the compiler then falls back to checking the global frame
// directly via DefinedGlobally.
func (f *Frame) Lookup(sym interner.Symbol) (depth, index int, found bool) {
	depth = 0
	for cur := f; cur != nil && cur.Parent != nil; cur = cur.Parent {
		if idx, ok := cur.index[sym]; ok {
			return depth, idx, true
		}
		depth++
	}
	return -1, -1, false
}

// DefinedGlobally reports whether sym is present in f's global frame.
func (f *Frame) DefinedGlobally(sym interner.Symbol) bool {
	_, ok := f.Global().index[sym]
	return ok
}

// DefineGlobal registers sym in the global frame (used by `def`). It
// is a no-op (but harmless) if sym is already present, matching
// GLE.define's unconditional-set semantics at the value level — the
// CTE only needs to remember that the name now resolves to a global.
func (f *Frame) DefineGlobal(sym interner.Symbol) {
	g := f.Global()
	if _, ok := g.index[sym]; ok {
		return
	}
	g.Define(sym)
}
