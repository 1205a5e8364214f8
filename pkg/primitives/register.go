package primitives

import (
	"os"

	"slisp/pkg/compiler"
	"slisp/pkg/cte"
	"slisp/pkg/errs"
	"slisp/pkg/globalenv"
	"slisp/pkg/interner"
	"slisp/pkg/value"
)

// primExit implements the `exit` primitive of
// original_source/backend/src/env/primitives/proc.rs: terminates the
// process with the given Integer status, defaulting to 0.
func primExit(_ interface{}, args []value.Value) (value.Value, error) {
	if len(args) > 1 {
		return value.Value{}, errs.TooManyArguments(1, len(args))
	}
	code := 0
	if len(args) == 1 {
		i, err := intArg(args[0])
		if err != nil {
			return value.Value{}, err
		}
		code = int(i)
	}
	os.Exit(code)
	return value.Nil, nil
}

// Register seeds gle and frame with every native primitive, matching
// original_source/backend/src/env/default.rs's default_env table
// plus the domain-stack primitives added by SPEC_FULL.md. comp and
// frame are also wired into the `eval` primitive so quoted forms can
// be compiled and run against the same global scope.
func Register(gle *globalenv.Env, frame *cte.Frame, in *interner.Interner, comp *compiler.Compiler) {
	define := func(name string, fn value.Native) {
		sym := in.Intern(name)
		gle.Define(sym, value.FromFunction(value.NewNative(fn)))
		frame.DefineGlobal(sym)
	}

	define("+", iadd)
	define("-", isub)
	define("*", imul)
	define("/", idiv)
	define(".+", fadd)
	define(".-", fsub)
	define(".*", fmul)
	define("./", fdiv)

	define("<", ilt)
	define("<=", ilte)
	define(">", igt)
	define(">=", igte)
	define(".<", flt)
	define(".<=", flte)
	define(".>", fgt)
	define(".>=", fgte)

	define("=", eq)
	define("!=", ne)

	define("cons", primCons)
	define("car", primCar)
	define("cdr", primCdr)
	define("list", primList)
	define("not", primNot)

	define("exit", primExit)

	define("eval", makeEval(comp, frame, in))

	define("hash-password", hashPassword)
	define("check-password", checkPassword)
	define("jwt-sign", makeJwtSign(in))
	define("jwt-verify", makeJwtVerify(in))
	define("send-mail", sendMail)
}
