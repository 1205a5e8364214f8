// Command slisp opens an interactive prompt, optionally preloading a
// script file first via --input/-i. Grounded on the teacher's
// cmd/flowa/main.go (flag-based CLI, optional .env loading ahead of
// everything else, file-read-then-pipeline shape), adapted to load
// .env through joho/godotenv instead of a hand-rolled parser and to
// log through zerolog instead of bare fmt.Fprintf.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"slisp/pkg/compiler"
	"slisp/pkg/cte"
	"slisp/pkg/errs"
	"slisp/pkg/eval"
	"slisp/pkg/globalenv"
	"slisp/pkg/interner"
	"slisp/pkg/lexer"
	"slisp/pkg/parser"
	"slisp/pkg/primitives"
	"slisp/pkg/repl"
)

const version = "0.1.0"

func printUsage() {
	fmt.Println("slisp - a small Lisp")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  slisp                        Start the interactive prompt")
	fmt.Println("  slisp --input <path>        Evaluate a script, then start the interactive prompt")
	fmt.Println("  slisp -i <path>              Same as --input")
	fmt.Println("  slisp --help, -h             Show this help message")
	fmt.Println("  slisp --version, -v          Show version information")
}

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg("failed to load .env")
	}

	level := zerolog.InfoLevel
	if name := os.Getenv("SLISP_LOG_LEVEL"); name != "" {
		if parsed, err := zerolog.ParseLevel(name); err == nil {
			level = parsed
		}
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	helpFlag := flag.Bool("help", false, "Show help message")
	helpShort := flag.Bool("h", false, "Show help message")
	versionFlag := flag.Bool("version", false, "Show version information")
	versionShort := flag.Bool("v", false, "Show version information")
	inputFlag := flag.String("input", "", "Evaluate a script before the prompt starts")
	inputShort := flag.String("i", "", "Same as --input")
	flag.Usage = printUsage
	flag.Parse()

	if *helpFlag || *helpShort {
		printUsage()
		os.Exit(0)
	}
	if *versionFlag || *versionShort {
		fmt.Printf("slisp version %s\n", version)
		os.Exit(0)
	}

	gle, frame, in, comp := bootstrap()

	inputPath := *inputFlag
	if inputPath == "" {
		inputPath = *inputShort
	}
	if inputPath != "" {
		if err := runFile(gle, frame, in, comp, inputPath); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(exitCodeFor(err))
		}
	}

	os.Exit(repl.Run(gle, frame, in, comp))
}

// bootstrap builds the global environment and seeds it with every
// native primitive, per spec.md §3's GLE/CTE split.
func bootstrap() (*globalenv.Env, *cte.Frame, *interner.Interner, *compiler.Compiler) {
	in := interner.New()
	gle := globalenv.New()
	frame := cte.NewGlobal()
	comp := compiler.New(in)
	primitives.Register(gle, frame, in, comp)
	return gle, frame, in, comp
}

// runFile evaluates filename's forms against gle/frame, preloading
// definitions into the environment that the REPL then continues in
// (SPEC_FULL.md §8's `--input`/`-i` flag). It reports the first error
// encountered rather than exiting, so the caller decides whether to
// still start the prompt.
func runFile(gle *globalenv.Env, frame *cte.Frame, in *interner.Interner, comp *compiler.Compiler, filename string) error {
	content, err := os.ReadFile(filename)
	if err != nil {
		return errs.NewIOError(err)
	}

	l := lexer.New(string(content))
	p := parser.New(l, filename)
	exprs, err := p.ParseModule()
	if err != nil {
		return err
	}

	// Each top-level form is compiled then immediately evaluated, so
	// a `def` lands in the global environment before the next form's
	// compile step checks DefinedGlobally (spec.md §9's compile/eval
	// lockstep design note).
	for _, expr := range exprs {
		op, err := comp.Compile(expr, frame)
		if err != nil {
			return err
		}
		if _, err := eval.Eval(gle, in, nil, op); err != nil {
			return err
		}
	}
	return nil
}

// exitCodeFor reports the exit code for a failed --input preload:
// always 1, per SPEC_FULL.md §8.
func exitCodeFor(error) int {
	return 1
}
