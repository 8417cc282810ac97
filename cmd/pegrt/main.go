// Command pegrt parses a source file with the library's demonstration
// grammar and prints the resulting AST to stdout, or, on failure, a
// rendered diagnostic to stderr.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/hokaccha/go-prettyjson"
	"github.com/mattn/go-isatty"

	"github.com/pegrt/pegrt/diagnostics"
	"github.com/pegrt/pegrt/internal/demogrammar"
	"github.com/pegrt/pegrt/lexer"
	"github.com/pegrt/pegrt/runner"
)

func main() {
	noColor := flag.Bool("no-color", false, "print the AST as plain-indented JSON instead of colorized")
	flag.Parse()
	args := flag.Args()
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "usage: pegrt [-no-color] <file>")
		os.Exit(2)
	}

	src, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	lex := lexer.FromFile(args[0], string(src))
	node, err := runner.RunParser(lex, demogrammar.Module, runner.ModeAST, demogrammar.Keywords)
	if err != nil {
		diagnostics.Print(os.Stderr, err)
		os.Exit(1)
	}

	out, err := renderJSON(node, *noColor)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	os.Stdout.Write(out)
	fmt.Println()
}

// renderJSON pretty-prints node as colorized JSON when stdout is a
// terminal and colorization wasn't suppressed, plain indented JSON
// otherwise.
func renderJSON(node any, noColor bool) ([]byte, error) {
	if noColor || !isatty.IsTerminal(os.Stdout.Fd()) {
		return json.MarshalIndent(node, "", "  ")
	}
	return prettyjson.Marshal(node)
}
