package main

import (
	"fmt"
	"os"

	"slisp/pkg/lexer"
	"slisp/pkg/parser"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: debug_parser '<code>'")
		os.Exit(1)
	}

	input := os.Args[1]
	l := lexer.New(input)
	p := parser.New(l, "<debug_parser>")

	exprs, err := p.ParseModule()
	if err != nil {
		fmt.Println("Parse error:")
		fmt.Printf("  %s\n", err)
		os.Exit(1)
	}

	fmt.Println("AST:")
	for _, e := range exprs {
		fmt.Println(e.String())
	}
}
