package fstring

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pegrt/pegrt/arena"
	"github.com/pegrt/pegrt/ast"
	"github.com/pegrt/pegrt/lexer"
	"github.com/pegrt/pegrt/parser"
	"github.com/pegrt/pegrt/token"
)

// parenName is a minimal stand-in for a real "parenthesized expression"
// grammar rule: "(" NAME ")".
func parenName(s *parser.State) (ast.Expr, bool) {
	start := s.Mark()
	if _, ok := s.ExpectToken(lexer.LPAREN); !ok {
		return nil, false
	}
	nameTok, ok := s.ExpectToken(token.NAME)
	if !ok {
		s.Reset(start)
		return nil, false
	}
	if _, ok := s.ExpectToken(lexer.RPAREN); !ok {
		s.Reset(start)
		return nil, false
	}
	return &ast.Name{Id: nameTok.Literal, Ctx: ast.Load}, true
}

func TestSubparserWrapsInParensAndSharesArena(t *testing.T) {
	a := arena.New()
	defer a.Free()

	sp := &Subparser{Arena: a, Start: parenName}
	expr, err := sp.Parse("x")
	require.NoError(t, err)
	require.Equal(t, "x", expr.(*ast.Name).Id)
}

func TestSubparserLogsRecursionWhenLoggerSet(t *testing.T) {
	a := arena.New()
	defer a.Free()

	rec := &recordingLogger{}
	sp := &Subparser{Arena: a, Start: parenName, Logger: rec, Depth: 1}
	_, err := sp.Parse("x")
	require.NoError(t, err)
	require.Equal(t, 1, rec.recurseDepth)
}

type recordingLogger struct {
	recurseDepth int
}

func (r *recordingLogger) MemoHit(ruleID, mark int)  {}
func (r *recordingLogger) MemoMiss(ruleID, mark int) {}
func (r *recordingLogger) FStringRecurse(depth int)  { r.recurseDepth = depth }
