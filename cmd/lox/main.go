// Command lox is the interpreter's command-line front end: tokenize,
// parse, evaluate, and run subcommands over a single source file (spec
// §6). Grounded on smog's cmd/smog/main.go for the overall os.Args
// switch-dispatch shape, with the subcommand set and exit-code policy
// (65 for scan/parse errors, 70 for runtime errors) taken from spec.md
// §6/§7 rather than smog's own run/compile/disassemble commands.
package main

import (
	"fmt"
	"os"

	"github.com/kristofer/loxgo/internal/ast"
	"github.com/kristofer/loxgo/internal/parser"
	"github.com/kristofer/loxgo/internal/scanner"
	"github.com/kristofer/loxgo/internal/token"
)

func main() {
	if len(os.Args) < 3 {
		printUsage()
		os.Exit(1)
	}

	filename := os.Args[1]
	command := os.Args[2]

	data, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
		os.Exit(1)
	}
	source := string(data)

	switch command {
	case "tokenize":
		os.Exit(tokenize(source))
	case "parse":
		os.Exit(parseCmd(source))
	case "evaluate":
		os.Exit(evaluateCmd(source))
	case "run":
		os.Exit(runCmd(source))
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Usage: lox <file> <command>")
	fmt.Println("\nCommands:")
	fmt.Println("  tokenize   print every token")
	fmt.Println("  parse      print every parsed expression, prefix form")
	fmt.Println("  evaluate   print the value of every top-level expression")
	fmt.Println("  run        execute every top-level expression for its side effects")
}

// tokenize prints one token per line, EOF included, continuing past
// lexical errors (spec §6, §7). Exit 65 iff any lexical error occurred.
func tokenize(source string) int {
	sc := scanner.New(source)
	for {
		t := sc.Next(func(err error) { fmt.Fprintln(os.Stderr, err) })
		fmt.Println(t.String())
		if t.Kind == token.EOF {
			break
		}
	}
	if sc.HadError() {
		return 65
	}
	return 0
}

// parseCmd prints the rendered prefix form of every top-level expression
// that was successfully parsed, stopping the parse itself at the first
// parse error (spec §6). A lexical error elsewhere in the source does not
// withhold the render output — the scanner already continued past it
// (internal/scanner.Scanner.Next), the same way "tokenize" keeps printing
// tokens after a lexical error.
func parseCmd(source string) int {
	p := parser.New(source)
	results, err := p.Parse()
	for _, scanErr := range p.ScanErrors() {
		fmt.Fprintln(os.Stderr, scanErr)
	}
	for _, r := range results {
		fmt.Println(r.Expr.Render())
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 65
	}
	if p.HadScanError() {
		return 65
	}
	return 0
}

// evaluateCmd parses the whole file, then evaluates each top-level
// expression in order, printing its value; a print or var statement only
// performs its side effect and has no value printed. A scan or parse
// error short circuits before any evaluation; a runtime error stops
// evaluation at that statement (spec §6, §7).
func evaluateCmd(source string) int {
	p := parser.New(source)
	results, err := p.Parse()
	for _, scanErr := range p.ScanErrors() {
		fmt.Fprintln(os.Stderr, scanErr)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 65
	}
	if p.HadScanError() {
		return 65
	}
	for _, r := range results {
		v, err := r.Expr.Evaluate(r.Scope)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 70
		}
		if _, isStmt := r.Expr.(*ast.Stmt); isStmt {
			continue
		}
		fmt.Println(v.Display())
	}
	return 0
}

// runCmd parses the entire file first; only if parsing succeeds does it
// execute each expression in order for its side effects (spec §6).
func runCmd(source string) int {
	p := parser.New(source)
	results, err := p.Parse()
	for _, scanErr := range p.ScanErrors() {
		fmt.Fprintln(os.Stderr, scanErr)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 65
	}
	if p.HadScanError() {
		return 65
	}
	for _, r := range results {
		if _, err := r.Expr.Evaluate(r.Scope); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 70
		}
	}
	return 0
}
