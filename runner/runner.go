// Package runner provides the top-level entry point that drives a
// parser.State to completion and maps the outcome onto the modes and
// error kinds SPEC_FULL.md §6-7 describe: a unit success sentinel, the
// parsed AST, or (via an injected Compiler) a compiled code object.
package runner

import (
	"fmt"

	"github.com/pegrt/pegrt/arena"
	"github.com/pegrt/pegrt/ast"
	"github.com/pegrt/pegrt/lexer"
	"github.com/pegrt/pegrt/parser"
	"github.com/pegrt/pegrt/token"
)

// Mode selects what RunParser returns on success.
type Mode int

const (
	// ModeUnit returns Unit{} — the caller only cares whether the source
	// parses, not what it parses to.
	ModeUnit Mode = iota
	// ModeAST returns the parsed AST root as a dynamic value.
	ModeAST
	// ModeCode returns a compiled code object, produced by the Compiler
	// supplied via WithCompiler. The actual compiler back-end is out of
	// scope for this library; Compiler is an injection point only.
	ModeCode
)

// Unit is the sentinel ModeUnit succeeds with.
type Unit struct{}

// Compiler turns a parsed module into a back-end-specific code object.
// Left entirely to the caller to implement; RunParser only calls it.
type Compiler interface {
	Compile(mod *ast.Module) (any, error)
}

// config collects the optional knobs RunParser accepts.
type config struct {
	arena    arena.Arena
	logger   parser.Logger
	compiler Compiler
}

// Option configures a RunParser call.
type Option func(*config)

// WithArena supplies the arena AST nodes are allocated from. If omitted,
// RunParser creates one and frees it before returning — matching
// SPEC_FULL.md §5's "a parse runs to completion or fails" lifecycle when
// the caller has no reason to keep nodes alive past inspecting the
// result (ModeUnit, or a ModeCode caller that only needs the compiled
// object back).
func WithArena(a arena.Arena) Option {
	return func(c *config) { c.arena = a }
}

// WithLogger attaches a trace logger to the parser session; see
// parser.Logger.
func WithLogger(log parser.Logger) Option {
	return func(c *config) { c.logger = log }
}

// WithCompiler supplies the Compiler ModeCode delegates to. Required for
// ModeCode; ignored otherwise.
func WithCompiler(c Compiler) Option {
	return func(cfg *config) { cfg.compiler = c }
}

// RunParser drives start to completion over src and returns a value
// shaped by mode. On a parse failure it returns a *SyntaxError following
// the message rule in SPEC_FULL.md §6: a lexer failure becomes Kind
// KindTokenizerFailure carrying the lexer's error text; otherwise "error
// at start before reading any input" when nothing was ever read, or
// "invalid syntax" anchored at the last materialized token.
func RunParser(src lexer.Lexer, start parser.Rule[ast.Node], mode Mode, keywords *token.KeywordTable, opts ...Option) (any, error) {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	a := cfg.arena
	ownsArena := a == nil
	if ownsArena {
		a = arena.New()
	}
	if ownsArena {
		defer a.Free()
	}

	var popts []parser.Option
	if cfg.logger != nil {
		popts = append(popts, parser.WithLoggerInstance(cfg.logger))
	}
	s := parser.New(src, a, keywords, popts...)

	node, ok := start(s)
	if !ok {
		return nil, buildFailure(s, src)
	}

	switch mode {
	case ModeUnit:
		return Unit{}, nil
	case ModeAST:
		return node, nil
	case ModeCode:
		if cfg.compiler == nil {
			return nil, fmt.Errorf("runner: ModeCode requires WithCompiler")
		}
		mod, ok := node.(*ast.Module)
		if !ok {
			return nil, fmt.Errorf("runner: ModeCode requires the start rule to produce a *ast.Module")
		}
		return cfg.compiler.Compile(mod)
	default:
		return nil, fmt.Errorf("runner: unknown mode %d", mode)
	}
}

// buildFailure classifies why start failed: a sticky lexer error becomes
// a tokenizer-failure SyntaxError, an empty buffer becomes the
// before-any-input message, and anything else anchors "invalid syntax"
// at the last materialized token.
func buildFailure(s *parser.State, src lexer.Lexer) error {
	if fe := s.FatalErr(); fe != nil {
		if se, ok := fe.(*SyntaxError); ok {
			return se
		}
		return newSyntaxError(KindInvalidSyntax, src, token.Token{}, fe.Error())
	}

	fill := s.Fill()
	if tok, err := s.CurrentToken(); err != nil {
		return newSyntaxError(KindTokenizerFailure, src, tok, err.Error())
	}

	if fill == 0 {
		return newSyntaxError(KindInvalidSyntax, src, token.Token{}, "error at start before reading any input")
	}

	tok, ok := s.LastNonwhitespaceToken()
	if !ok {
		return newSyntaxError(KindInvalidSyntax, src, token.Token{}, "invalid syntax")
	}
	return newSyntaxError(KindInvalidSyntax, src, tok, "invalid syntax")
}
