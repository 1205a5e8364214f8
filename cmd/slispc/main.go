// Command slispc compiles a script and prints its op tree without
// evaluating it, standing in for the teacher's cmd/flowac bytecode
// dumper.
package main

import (
	"fmt"
	"os"

	"slisp/pkg/compiler"
	"slisp/pkg/cte"
	"slisp/pkg/globalenv"
	"slisp/pkg/interner"
	"slisp/pkg/lexer"
	"slisp/pkg/optree"
	"slisp/pkg/parser"
	"slisp/pkg/primitives"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: slispc <script.sl>")
		os.Exit(1)
	}

	content, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	in := interner.New()
	gle := globalenv.New()
	frame := cte.NewGlobal()
	comp := compiler.New(in)
	primitives.Register(gle, frame, in, comp)

	l := lexer.New(string(content))
	p := parser.New(l, os.Args[1])
	exprs, err := p.ParseModule()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	for i, expr := range exprs {
		op, err := comp.Compile(expr, frame)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Printf("--- form %d ---\n", i)
		dump(op, in, 0)
	}
}

func dump(n *optree.Node, in *interner.Interner, depth int) {
	indent := ""
	for i := 0; i < depth; i++ {
		indent += "  "
	}
	switch n.Tag {
	case optree.TagFinish:
		fmt.Printf("%sFinish %s\n", indent, n.Const.Format(in))
	case optree.TagFetchGle:
		fmt.Printf("%sFetchGle %s\n", indent, in.MustResolve(n.Sym))
	case optree.TagRefRte:
		fmt.Printf("%sRefRte depth=%d index=%d\n", indent, n.Depth, n.Index)
	case optree.TagIf:
		fmt.Printf("%sIf\n", indent)
		dump(n.Test, in, depth+1)
		dump(n.Then, in, depth+1)
		dump(n.Else, in, depth+1)
	case optree.TagEnclose:
		fmt.Printf("%sEnclose params=%d\n", indent, n.Template.ParamCount)
		if body, ok := n.Template.Body.(*optree.Node); ok {
			dump(body, in, depth+1)
		}
	case optree.TagApply:
		fmt.Printf("%sApply\n", indent)
		dump(n.Fn, in, depth+1)
		for _, a := range n.Args {
			dump(a, in, depth+1)
		}
	case optree.TagPrintln:
		fmt.Printf("%sPrintln\n", indent)
		for _, a := range n.PrintArgs {
			dump(a, in, depth+1)
		}
	}
}
