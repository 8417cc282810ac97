package fstring

import (
	"fmt"

	"github.com/pegrt/pegrt/arena"
	"github.com/pegrt/pegrt/ast"
	"github.com/pegrt/pegrt/lexer"
	"github.com/pegrt/pegrt/parser"
	"github.com/pegrt/pegrt/token"
)

// Subparser builds the ExprParser callback Decode needs to turn an
// f-string expression's source text into an AST node, by constructing a
// private parser.State for every call. It shares the outer arena and
// keyword table (SPEC_FULL.md §5 resource ownership: "the f-string
// sub-parser shares the outer arena but owns its own token buffer") but
// never the outer token buffer — each call gets a fresh one, scoped to
// that call, via a fresh lexer.FromString.
//
// Start is grammar-agnostic on purpose: this package takes a
// caller-supplied rule rather than importing a concrete grammar package,
// so it never creates an import cycle back into whatever package defines
// the real parenthesized-expression rule.
type Subparser struct {
	Arena    arena.Arena
	Keywords *token.KeywordTable
	Start    parser.Rule[ast.Expr]
	Logger   parser.Logger
	Depth    int
}

// Parse wraps src in parens and drives Start to completion over it,
// returning the resulting expression. Wrapping in parens lets a bare
// expression span multiple lines and reuses the grammar's own
// parenthesized-expression handling rather than needing a second entry
// point for "bare expression, no statement wrapper".
func (sp *Subparser) Parse(src string) (ast.Expr, error) {
	if sp.Logger != nil {
		sp.Logger.FStringRecurse(sp.Depth)
	}

	lx := lexer.FromString("(" + src + ")")
	var opts []parser.Option
	if sp.Logger != nil {
		opts = append(opts, parser.WithLoggerInstance(sp.Logger))
	}
	s := parser.New(lx, sp.Arena, sp.Keywords, opts...)

	expr, ok := sp.Start(s)
	if !ok {
		return nil, fmt.Errorf("fstring: failed to parse embedded expression %q", src)
	}
	return expr, nil
}

// AsExprParser adapts sp into the ExprParser shape Decode expects. Every
// call reports sp.Depth through sp.Logger; Decode does not change it.
func (sp *Subparser) AsExprParser() ExprParser {
	return sp.Parse
}
