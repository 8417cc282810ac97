package parser

import "github.com/pegrt/pegrt/token"

// ExpectToken consumes the token at the current mark if its kind equals
// kind, advancing mark and returning it; otherwise it returns (zero,
// false) without moving mark.
func (s *State) ExpectToken(kind token.Kind) (token.Token, bool) {
	tok, err := s.CurrentToken()
	if err != nil || tok.Kind != kind {
		return token.Token{}, false
	}
	s.mark++
	return tok, true
}

// ExpectKeyword behaves like ExpectToken(token.NAME) followed by a byte
// comparison against text; on mismatch it rewinds (no-op here since
// ExpectToken itself never advances on a kind mismatch, but a NAME token
// whose literal differs from text must still not be consumed).
func (s *State) ExpectKeyword(text string) (token.Token, bool) {
	mark := s.mark
	tok, err := s.CurrentToken()
	if err != nil || tok.Kind != token.NAME || tok.Literal != text {
		s.mark = mark
		return token.Token{}, false
	}
	s.mark++
	return tok, true
}

// Lookahead saves mark, invokes f, restores mark, and reports whether
// f's success matches the polarity requested by positive. A single
// closure-based primitive replaces the source design's three fixed
// arities (no-arg, string-arg, int-arg lookahead) — callers simply
// close over whatever argument f needs.
func Lookahead(s *State, positive bool, f func(s *State) bool) bool {
	mark := s.mark
	matched := f(s)
	s.mark = mark
	return matched == positive
}

// isWhitespaceKind reports the kinds LastNonwhitespaceToken walks past
// when searching backward from mark-1.
func isWhitespaceKind(k token.Kind) bool {
	switch k {
	case token.NEWLINE, token.INDENT, token.DEDENT, token.ENDMARKER:
		return true
	default:
		return false
	}
}

// LastNonwhitespaceToken walks backward from mark-1, skipping
// NEWLINE/INDENT/DEDENT/ENDMARKER, and returns the first token found.
// Used for diagnostics (e.g. pointing at "the token before the one that
// failed to match"), never for parsing decisions.
func (s *State) LastNonwhitespaceToken() (token.Token, bool) {
	for i := s.mark - 1; i >= 0; i-- {
		tok, err := s.Token(i)
		if err != nil {
			return token.Token{}, false
		}
		if !isWhitespaceKind(tok.Kind) {
			return tok, true
		}
	}
	return token.Token{}, false
}
