package parser

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pegrt/pegrt/arena"
	"github.com/pegrt/pegrt/lexer"
	"github.com/pegrt/pegrt/token"
)

func newTestState(t *testing.T, src string) *State {
	t.Helper()
	a := arena.New()
	t.Cleanup(a.Free)
	return New(lexer.FromString(src), a, nil)
}

func TestExpectTokenConsumesOnMatch(t *testing.T) {
	s := newTestState(t, "x")
	tok, ok := s.ExpectToken(token.NAME)
	require.True(t, ok)
	require.Equal(t, "x", tok.Literal)
	require.Equal(t, 1, s.Mark())
}

func TestExpectTokenRestoresMarkOnMismatch(t *testing.T) {
	s := newTestState(t, "1")
	_, ok := s.ExpectToken(token.NAME)
	require.False(t, ok)
	require.Equal(t, 0, s.Mark())
}

func TestExpectKeywordMatchesAndRewinds(t *testing.T) {
	s := newTestState(t, "import x")
	_, ok := s.ExpectKeyword("import")
	require.True(t, ok)
	require.Equal(t, 1, s.Mark())

	_, ok = s.ExpectKeyword("export")
	require.False(t, ok, "a NAME token not matching the keyword text must not be consumed")
	require.Equal(t, 1, s.Mark())
}

func TestLookaheadRestoresMarkRegardlessOfResult(t *testing.T) {
	s := newTestState(t, "x y")
	ok := Lookahead(s, true, func(s *State) bool {
		_, matched := s.ExpectToken(token.NAME)
		return matched
	})
	require.True(t, ok)
	require.Equal(t, 0, s.Mark(), "lookahead must never consume, win or lose")

	notOk := Lookahead(s, false, func(s *State) bool {
		_, matched := s.ExpectToken(token.NUMBER)
		return matched
	})
	require.True(t, notOk, "negative lookahead succeeds when f fails")
	require.Equal(t, 0, s.Mark())
}

func TestLastNonwhitespaceTokenSkipsNewlines(t *testing.T) {
	s := newTestState(t, "x = 1\ny")
	// advance mark past "x", "=", "1", NEWLINE
	for i := 0; i < 4; i++ {
		_, err := s.CurrentToken()
		require.NoError(t, err)
		s.mark++
	}
	tok, ok := s.LastNonwhitespaceToken()
	require.True(t, ok)
	require.Equal(t, "1", tok.Literal)
}

func TestMemoizedCachesAcrossCalls(t *testing.T) {
	s := newTestState(t, "x")
	ruleID := s.NextRuleID()
	calls := 0
	rule := func(s *State) (token.Token, bool) {
		calls++
		return s.ExpectToken(token.NAME)
	}

	tok1, ok1 := Memoized(s, ruleID, rule)
	require.True(t, ok1)
	require.Equal(t, "x", tok1.Literal)
	require.Equal(t, 1, calls)

	s.Reset(0)
	tok2, ok2 := Memoized(s, ruleID, rule)
	require.True(t, ok2)
	require.Equal(t, "x", tok2.Literal)
	require.Equal(t, 1, calls, "second attempt at the same mark must hit the memo cache, not re-run fn")
	require.Equal(t, 1, s.Mark())
}

func TestMemoizedCachesFailure(t *testing.T) {
	s := newTestState(t, "1")
	ruleID := s.NextRuleID()
	calls := 0
	rule := func(s *State) (token.Token, bool) {
		calls++
		return s.ExpectToken(token.NAME)
	}

	_, ok1 := Memoized(s, ruleID, rule)
	require.False(t, ok1)
	require.Equal(t, 0, s.Mark())

	s.Reset(0)
	_, ok2 := Memoized(s, ruleID, rule)
	require.False(t, ok2)
	require.Equal(t, 1, calls, "a memoized failure must not re-invoke fn")
}

func TestKeywordRewriteAppliesAtFillTime(t *testing.T) {
	kw := token.NewKeywordTable(token.KeywordEntry{Literal: "import", Kind: token.FirstOperator + 1})
	s := New(lexer.FromString("import"), arena.New(), kw)
	tok, ok := s.ExpectToken(token.FirstOperator + 1)
	require.True(t, ok)
	require.Equal(t, "import", tok.Literal)
}

func TestSetFatalStickyToFirstError(t *testing.T) {
	s := newTestState(t, "x")
	require.Nil(t, s.FatalErr())
	first := errDummy("first")
	s.SetFatal(first)
	s.SetFatal(errDummy("second"))
	require.Equal(t, error(first), s.FatalErr())
}

func TestLexerExposesUnderlyingCollaborator(t *testing.T) {
	lx := lexer.FromString("x")
	s := New(lx, arena.New(), nil)
	require.Equal(t, lx, s.Lexer())
}

type errDummy string

func (e errDummy) Error() string { return string(e) }
