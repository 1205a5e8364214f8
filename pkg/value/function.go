package value

// Native is a host-implemented primitive: it receives the global
// environment and an argument vector and returns a Result-like
// (Value, error) pair, per spec.md §3/§6's calling convention. The
// global environment is passed as an opaque interface{} here to avoid
// an import cycle between pkg/value and pkg/globalenv; callers type-
// assert it back to *globalenv.Env.
type Native func(gle interface{}, args []Value) (Value, error)

// Template is a compiled lambda body: a parameter count and an
// opaque pointer to its compiled op tree (pkg/optree.Node, kept as
// interface{} here for the same reason as Native's gle parameter).
// Templates alone are not callable — only an Enclose op turns one
// into a Closure (spec.md §4.1's design note).
type Template struct {
	ParamCount int
	Body       interface{} // *optree.Node
}

// Closure pairs a Template with the captured lexical frame chain it
// closed over. This is the only callable lambda-derived form.
type Closure struct {
	Template Template
	Captured interface{} // *rte.Frame
}

// Function is the three-variant Function value described in
// spec.md §3. Exactly one of Nat/Tmpl/Clo is meaningful, selected by
// Variant.
type Function struct {
	Variant  FunctionVariant
	Nat      Native
	Tmpl     Template
	Clo      Closure
}

type FunctionVariant int

const (
	FnNative FunctionVariant = iota
	FnTemplate
	FnClosure
)

func NewNative(fn Native) *Function {
	return &Function{Variant: FnNative, Nat: fn}
}

func NewTemplate(t Template) *Function {
	return &Function{Variant: FnTemplate, Tmpl: t}
}

func NewClosure(c Closure) *Function {
	return &Function{Variant: FnClosure, Clo: c}
}
