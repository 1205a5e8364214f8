// Package interner implements the string interner the language core
// treats as an external collaborator (spec.md §1): a symbol↔string
// mapping producing opaque, hashable, equality-comparable Symbol
// values. Two symbols are equal iff interned from equal strings by
// the same Interner, per the data model.
//
// No interning library surfaced in the retrieved corpus (the Rust
// original leans on the `string_interner` crate via
// original_source/common/src/lib.rs); this is a direct, minimal port
// of that crate's get_or_intern/resolve contract onto Go's standard
// map, not a third-party dependency this module could have reused.
package interner

import "sync"

// Symbol is an opaque, comparable identifier for an interned string.
// The zero value is never produced by Interner.Intern.
type Symbol uint32

// Interner maps strings to Symbols and back. Safe for concurrent use.
type Interner struct {
	mu      sync.RWMutex
	strings []string
	ids     map[string]Symbol
}

func New() *Interner {
	return &Interner{
		ids: make(map[string]Symbol),
	}
}

// Intern returns the Symbol for s, interning it if this is the first
// occurrence.
func (in *Interner) Intern(s string) Symbol {
	in.mu.RLock()
	if id, ok := in.ids[s]; ok {
		in.mu.RUnlock()
		return id
	}
	in.mu.RUnlock()

	in.mu.Lock()
	defer in.mu.Unlock()
	if id, ok := in.ids[s]; ok {
		return id
	}
	in.strings = append(in.strings, s)
	id := Symbol(len(in.strings))
	in.ids[s] = id
	return id
}

// Resolve returns the string a Symbol was interned from, or "", false
// if the Symbol is unknown to this Interner.
func (in *Interner) Resolve(sym Symbol) (string, bool) {
	in.mu.RLock()
	defer in.mu.RUnlock()
	idx := int(sym) - 1
	if idx < 0 || idx >= len(in.strings) {
		return "", false
	}
	return in.strings[idx], true
}

// MustResolve resolves sym, returning "<>" for an unknown symbol,
// matching the formatting rule used when displaying a Symbol value
// that escaped its originating interner.
func (in *Interner) MustResolve(sym Symbol) string {
	if s, ok := in.Resolve(sym); ok {
		return s
	}
	return "<>"
}
