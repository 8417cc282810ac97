// Package parser implements the generated-rule runtime: parser state,
// the mark/rewind discipline, and the primitive combinators every
// generated rule function is built from (SPEC_FULL.md §4.B, §4.D).
package parser

import (
	"github.com/pegrt/pegrt/arena"
	"github.com/pegrt/pegrt/internal/memo"
	"github.com/pegrt/pegrt/lexer"
	"github.com/pegrt/pegrt/token"
)

// Rule is the shape every generated grammar rule has: given a *State,
// attempt a match at the current mark, returning the node and true on
// success. On failure it must return (nil, false) having restored mark
// to the value it held on entry — the rewind discipline the memo cache
// depends on.
type Rule[T any] func(s *State) (T, bool)

// State owns everything a generated rule needs: the token buffer, the
// current cursor (mark), the arena every AST node is allocated from, and
// the keyword table used to reinterpret NAME tokens. mark only ever
// moves forward on success; every primitive below restores it on
// failure.
type State struct {
	buf      *memo.Buffer
	mark     int
	arena    arena.Arena
	kw       *token.KeywordTable
	logger   Logger
	ruleSeq  int // next unused rule-id, handed out by RuleID for memoized rules
	fatalErr error
}

// New constructs parser state over lx, allocating AST nodes from a. kw
// may be nil if the grammar has no keywords to distinguish from plain
// names.
func New(lx lexer.Lexer, a arena.Arena, kw *token.KeywordTable, opts ...Option) *State {
	buf := memo.NewBuffer(lx)
	if kw != nil {
		buf.SetKeywordRewrite(func(tok token.Token) token.Token {
			if tok.Kind != token.NAME {
				return tok
			}
			if kind, ok := kw.Lookup(tok.Literal); ok {
				tok.Kind = kind
			}
			return tok
		})
	}
	s := &State{buf: buf, arena: a, kw: kw}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Mark returns the current cursor position.
func (s *State) Mark() int { return s.mark }

// Reset rewinds the cursor to a previously-saved mark. Every combinator
// that can fail calls this on the failure path; generated rules do the
// same around each alternative they try.
func (s *State) Reset(mark int) { s.mark = mark }

// Arena exposes the arena handle for node construction helpers.
func (s *State) Arena() arena.Arena { return s.arena }

// Lexer exposes the token source, for a rule that needs to build a
// diagnostic (filename, source line text) beyond what a token's own
// Start/End positions carry.
func (s *State) Lexer() lexer.Lexer { return s.buf.Lexer() }

// Logger exposes the optional trace logger (nil unless WithLogger or
// WithLoggerInstance was passed to New), so collaborators like the f-string sub-parser can log
// their own events through the same session.
func (s *State) Logger() Logger { return s.logger }

// NextRuleID hands out a fresh, stable rule identifier for memoization.
// Generated code calls this once per rule at init time and reuses the
// result across calls, mirroring the source design's per-rule integer
// constants.
func (s *State) NextRuleID() int {
	id := s.ruleSeq
	s.ruleSeq++
	return id
}

// Token returns the token at the given buffer position, materializing
// tokens up to it first. It reports a tokenizer-failure error exactly as
// internal/memo.Ensure does.
func (s *State) Token(at int) (token.Token, error) {
	if err := s.buf.Ensure(at); err != nil {
		return token.Token{}, err
	}
	return s.buf.At(at), nil
}

// CurrentToken is a convenience for Token(s.Mark()).
func (s *State) CurrentToken() (token.Token, error) {
	return s.Token(s.mark)
}

// SetFatal records an unrecoverable error a rule detected mid-match — an
// invalid string escape, a non-ASCII byte in a bytes literal, a
// malformed f-string expression, an annotated-assignment target shaped
// like a list or multi-element tuple. Unlike an ordinary rule failure,
// this is never meant to be backtracked past: generated rules check
// FatalErr after each alternative they try and stop immediately once it
// is set, mirroring the source's p->error_indicator short-circuit. Only
// the first fatal error sticks.
func (s *State) SetFatal(err error) {
	if s.fatalErr == nil {
		s.fatalErr = err
	}
}

// FatalErr reports the first error SetFatal recorded, or nil.
func (s *State) FatalErr() error {
	return s.fatalErr
}

// Fill reports how many tokens have been materialized into the buffer so
// far. Entry points (runner.RunParser) use this to distinguish "nothing
// was ever read" from "some tokens were read before the parse failed"
// when building a diagnostic for a failed start rule.
func (s *State) Fill() int {
	return s.buf.Fill()
}

// Memoized runs Rule fn at the current mark under ruleID, consulting and
// populating the memo cache (SPEC_FULL.md §4.C). Generated left-recursive
// rules instead drive internal/memo directly so they can seed a failure
// result before recursing; this wrapper covers the common non-recursive
// case.
func Memoized[T any](s *State, ruleID int, fn Rule[T]) (T, bool) {
	startMark := s.mark
	if cached, endAt, ok, hit := s.buf.IsMemoized(startMark, ruleID); hit {
		if s.logger != nil {
			s.logger.MemoHit(ruleID, startMark)
		}
		s.mark = endAt
		if !ok {
			var zero T
			return zero, false
		}
		node, _ := any(cached).(T)
		return node, true
	}
	if s.logger != nil {
		s.logger.MemoMiss(ruleID, startMark)
	}
	result, ok := fn(s)
	if !ok {
		s.buf.InsertMemo(startMark, ruleID, nil, false, startMark)
		s.mark = startMark
		var zero T
		return zero, false
	}
	s.buf.InsertMemo(startMark, ruleID, any(result), true, s.mark)
	return result, true
}
