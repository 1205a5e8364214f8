package value

import "slisp/pkg/errs"

// cons is a single persistent list node: an owned car Value and a
// shared pointer to the rest of the chain. Nodes are immutable once
// built, so sharing a tail between two lists is always safe.
type cons struct {
	car Value
	cdr *cons
}

// List is a singly linked, shared-tail cons sequence. The zero List
// is NIL, per spec.md §4.3.
type List struct {
	head *cons
}

// NilList is the empty list.
var NilList = List{}

func (l List) Empty() bool { return l.head == nil }

// Car returns the first element, failing with NilValueError if l is
// empty (spec.md §4.3: "the source raises on car(NIL)").
func (l List) Car() (Value, error) {
	if l.head == nil {
		return Value{}, &errs.NilValueError{Detail: "car called on empty list"}
	}
	return l.head.car, nil
}

// Cdr returns the tail of l, or NIL if l is empty or a singleton.
func (l List) Cdr() List {
	if l.head == nil {
		return NilList
	}
	return List{head: l.head.cdr}
}

// Cons returns a new list whose head owns v and shares l's chain as
// its tail.
func (l List) Cons(v Value) List {
	return List{head: &cons{car: v, cdr: l.head}}
}

// Items materializes the list's car values in order. O(n); iteration
// itself (via an explicit walk) is O(1) per step and never mutates
// the list, but callers that just want a snapshot use this.
func (l List) Items() []Value {
	var out []Value
	for n := l.head; n != nil; n = n.cdr {
		out = append(out, n.car)
	}
	return out
}

// Len walks the chain counting nodes.
func (l List) Len() int {
	n := 0
	for c := l.head; c != nil; c = c.cdr {
		n++
	}
	return n
}

// FromSlice builds a list containing items in order, i.e. FromSlice
// preserves the slice's left-to-right order as the list's car order.
func FromSlice(items []Value) List {
	l := NilList
	for i := len(items) - 1; i >= 0; i-- {
		l = l.Cons(items[i])
	}
	return l
}
