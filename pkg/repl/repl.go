// Package repl implements the interactive prompt of spec.md §6: read
// one S-expression group at a time, compile it against the
// accumulating global scope, evaluate it, print errors without
// killing the session. Grounded on the manifests that pulled in
// github.com/chzyer/readline for this purpose (wudi-hey, dekarrin-
// tunaq, launix-de-memcp), standing in for the original Rust REPL's
// rustyline (original_source/repl/src/main.rs).
package repl

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog/log"

	"slisp/pkg/compiler"
	"slisp/pkg/cte"
	"slisp/pkg/eval"
	"slisp/pkg/globalenv"
	"slisp/pkg/interner"
	"slisp/pkg/lexer"
	"slisp/pkg/parser"
	"slisp/pkg/value"
)

const prompt = ">>> "

// Run drives the interactive loop until EOF (Ctrl-D) or a line-editor
// error, returning the process exit code to use.
func Run(gle *globalenv.Env, frame *cte.Frame, in *interner.Interner, comp *compiler.Compiler) int {
	historyFile := os.Getenv("SLISP_HISTORY_FILE")

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		HistoryFile:     historyFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "",
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to start line editor")
		return 1
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			return 0
		}
		if err != nil {
			log.Error().Err(err).Msg("readline error")
			return 1
		}
		if line == "" {
			continue
		}

		evalLine(gle, frame, in, comp, line)
	}
}

func evalLine(gle *globalenv.Env, frame *cte.Frame, in *interner.Interner, comp *compiler.Compiler, line string) {
	l := lexer.New(line)
	p := parser.New(l, "<repl>")
	exprs, err := p.ParseModule()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	if len(exprs) == 0 {
		return
	}

	var result value.Value
	for _, expr := range exprs {
		op, err := comp.Compile(expr, frame)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return
		}
		result, err = eval.Eval(gle, in, nil, op)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return
		}
	}
	fmt.Println(result.Format(in))
}
