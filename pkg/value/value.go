// Package value implements the runtime Value model: a tagged sum over
// Boolean, Integer, Float, String, Symbol, List and Function, per
// spec.md §3. The zero Value is the empty list, matching the source's
// Default impl (original_source/backend/src/data/value.rs).
package value

import (
	"fmt"
	"strconv"
	"strings"

	"slisp/pkg/interner"
)

type Kind int

// ListKind is the zero Kind so that the zero Value is the empty list.
const (
	ListKind Kind = iota
	Boolean
	Integer
	Float
	String
	Symbol
	FunctionKind
)

func (k Kind) String() string {
	switch k {
	case Boolean:
		return "Boolean"
	case Integer:
		return "Integer"
	case Float:
		return "Float"
	case String:
		return "String"
	case Symbol:
		return "Symbol"
	case ListKind:
		return "List"
	case FunctionKind:
		return "Function"
	default:
		return "?"
	}
}

// Value is the tagged union every op and primitive passes around. It
// is cheap to copy: aggregates (String, List, Function) share their
// payload rather than deep-copying it.
type Value struct {
	kind    Kind
	boolean bool
	integer int64
	float   float64
	str     string
	sym     interner.Symbol
	list    List
	fn      *Function
}

// Nil is the empty list value, also the zero Value.
var Nil = Value{kind: ListKind}

func FromBoolean(b bool) Value { return Value{kind: Boolean, boolean: b} }
func FromInteger(i int64) Value { return Value{kind: Integer, integer: i} }
func FromFloat(f float64) Value { return Value{kind: Float, float: f} }
func FromString(s string) Value { return Value{kind: String, str: s} }
func FromSymbol(s interner.Symbol) Value { return Value{kind: Symbol, sym: s} }
func FromList(l List) Value { return Value{kind: ListKind, list: l} }
func FromFunction(f *Function) Value { return Value{kind: FunctionKind, fn: f} }

func (v Value) Kind() Kind { return v.kind }

func (v Value) IsBoolean() bool  { return v.kind == Boolean }
func (v Value) IsInteger() bool  { return v.kind == Integer }
func (v Value) IsFloat() bool    { return v.kind == Float }
func (v Value) IsString() bool   { return v.kind == String }
func (v Value) IsSymbol() bool   { return v.kind == Symbol }
func (v Value) IsList() bool     { return v.kind == ListKind }
func (v Value) IsFunction() bool { return v.kind == FunctionKind }

func (v Value) AsBoolean() (bool, bool)  { return v.boolean, v.kind == Boolean }
func (v Value) AsInteger() (int64, bool) { return v.integer, v.kind == Integer }
func (v Value) AsFloat() (float64, bool) { return v.float, v.kind == Float }
func (v Value) AsString() (string, bool) { return v.str, v.kind == String }
func (v Value) AsSymbol() (interner.Symbol, bool) { return v.sym, v.kind == Symbol }
func (v Value) AsList() (List, bool)     { return v.list, v.kind == ListKind }
func (v Value) AsFunction() (*Function, bool) { return v.fn, v.kind == FunctionKind }

// Truthy implements spec.md §4.2's truthiness rule: only Boolean(false)
// is false. Every other value, including NIL and zero, is truthy.
func (v Value) Truthy() bool {
	if v.kind == Boolean {
		return v.boolean
	}
	return true
}

// Format renders v per the println/REPL display rule of spec.md §4.2.
func (v Value) Format(in *interner.Interner) string {
	switch v.kind {
	case Boolean:
		return strconv.FormatBool(v.boolean)
	case Integer:
		return strconv.FormatInt(v.integer, 10)
	case Float:
		return strconv.FormatFloat(v.float, 'g', -1, 64)
	case String:
		return v.str
	case Symbol:
		return in.MustResolve(v.sym)
	case ListKind:
		items := make([]string, 0)
		for _, item := range v.list.Items() {
			items = append(items, item.Format(in))
		}
		return "(" + strings.Join(items, " ") + ")"
	case FunctionKind:
		return fmt.Sprintf("[function %p]", v.fn)
	default:
		return "<?>"
	}
}

// Equal implements the polymorphic `=`/`!=` contract: types must match
// exactly, lists compare elementwise (and by length), functions are
// never equal.
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case Boolean:
		return a.boolean == b.boolean
	case Integer:
		return a.integer == b.integer
	case Float:
		return a.float == b.float
	case String:
		return a.str == b.str
	case Symbol:
		return a.sym == b.sym
	case ListKind:
		ai, bi := a.list.Items(), b.list.Items()
		if len(ai) != len(bi) {
			return false
		}
		for i := range ai {
			if !Equal(ai[i], bi[i]) {
				return false
			}
		}
		return true
	case FunctionKind:
		return false
	default:
		return false
	}
}
