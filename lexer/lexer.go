// Package lexer declares the token-source collaborator that the parser
// engine depends on, and provides a minimal reference implementation
// sufficient to drive this library's own tests end-to-end.
//
// The real lexer for a production grammar is generated/maintained outside
// this library (see SPEC_FULL.md §1 scope cut); in particular this
// reference implementation does not perform significant-whitespace
// INDENT/DEDENT bookkeeping, since that is entirely the token source's
// concern and the core engine only ever compares INDENT/DEDENT kinds by
// value.
package lexer

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pegrt/pegrt/token"
)

// Lexer is the capability set the parser engine requires of a token
// source. Next returns one token per call and advances internal state;
// an error return indicates a tokenizer-failure (§7) and is sticky: once
// an error has been produced, every subsequent call returns the same
// error without consuming further input.
type Lexer interface {
	Next() (token.Token, error)

	// Filename is the name to report in diagnostics; empty for in-memory
	// sources constructed with FromString.
	Filename() string

	// Lineno and FirstLineno report the current (0-indexed) line and,
	// for tokens that span multiple lines (triple-quoted strings), the
	// line the token started on.
	Lineno() int
	FirstLineno() int

	// LineStart is the byte offset of the start of the current line;
	// MultiLineStart is the byte offset of the start of the line a
	// multi-line token began on. The reference scanner records each
	// token's column in its Start position itself; the token buffer
	// (internal/memo) does not read these two values.
	LineStart() int
	MultiLineStart() int

	// GetLineText returns the full source line containing tok, for use
	// in diagnostics. Returns "" if the line cannot be recovered.
	GetLineText(tok token.Token) string
}

// scanner is the reference Lexer implementation.
type scanner struct {
	filename string
	src      string
	pos      int // byte offset of next unread byte
	line     int // 0-indexed
	lineFrom int // byte offset of start of current line

	// multiLineFrom/firstLineno describe the token currently being
	// scanned, valid only while inside Next.
	multiLineFrom int
	firstLineno   int

	err error // sticky tokenizer error, once set
}

// FromString builds a reference Lexer over in-memory source text.
func FromString(src string) Lexer {
	return &scanner{src: src}
}

// FromFile builds a reference Lexer over src, reporting filename in
// diagnostics. It does not itself perform file I/O (file I/O wrappers are
// out of scope per SPEC_FULL.md §1); callers read the file and pass its
// contents here.
func FromFile(filename, src string) Lexer {
	return &scanner{filename: filename, src: src}
}

func (s *scanner) Filename() string    { return s.filename }
func (s *scanner) Lineno() int         { return s.line }
func (s *scanner) FirstLineno() int    { return s.firstLineno }
func (s *scanner) LineStart() int      { return s.lineFrom }
func (s *scanner) MultiLineStart() int { return s.multiLineFrom }

func (s *scanner) GetLineText(tok token.Token) string {
	start := tok.Start.LineStart
	if start < 0 || start > len(s.src) {
		return ""
	}
	end := strings.IndexByte(s.src[start:], '\n')
	if end < 0 {
		return s.src[start:]
	}
	return s.src[start : start+end]
}

func (s *scanner) pos0() token.Position {
	return token.Position{
		Char:      s.pos,
		LineStart: s.lineFrom,
		Line:      s.line,
		Column:    s.pos - s.lineFrom,
		File:      s.filename,
	}
}

func (s *scanner) errorf(start token.Position, format string, args ...any) (token.Token, error) {
	err := fmt.Errorf(format, args...)
	if s.err == nil {
		s.err = err
	}
	return token.Token{Kind: token.ERROR, Literal: "", Start: start, End: s.pos0()}, s.err
}

func (s *scanner) peek() byte {
	if s.pos >= len(s.src) {
		return 0
	}
	return s.src[s.pos]
}

func (s *scanner) peekAt(n int) byte {
	if s.pos+n >= len(s.src) {
		return 0
	}
	return s.src[s.pos+n]
}

func (s *scanner) advance() byte {
	c := s.src[s.pos]
	s.pos++
	if c == '\n' {
		s.line++
		s.lineFrom = s.pos
	}
	return c
}

// Next implements Lexer.
func (s *scanner) Next() (token.Token, error) {
	if s.err != nil {
		return token.Token{Kind: token.ERROR}, s.err
	}
	s.skipWhitespaceAndComments()

	start := s.pos0()
	s.firstLineno = s.line
	s.multiLineFrom = s.lineFrom

	if s.pos >= len(s.src) {
		return token.Token{Kind: token.ENDMARKER, Start: start, End: start}, nil
	}

	c := s.peek()
	switch {
	case c == '\n':
		s.advance()
		return token.Token{Kind: token.NEWLINE, Literal: "\n", Start: start, End: s.pos0()}, nil
	case isStringPrefix(c) && isQuote(s.afterPrefix()):
		return s.scanPrefixedString(start)
	case isIdentStart(c):
		return s.scanName(start)
	case isDigit(c):
		return s.scanNumber(start)
	case c == '\'' || c == '"':
		return s.scanString(start, "")
	default:
		return s.scanOperator(start)
	}
}

func (s *scanner) skipWhitespaceAndComments() {
	for s.pos < len(s.src) {
		c := s.peek()
		switch {
		case c == ' ' || c == '\t' || c == '\r':
			s.advance()
		case c == '\\' && s.peekAt(1) == '\n':
			// line continuation: consume both bytes, do not emit NEWLINE
			s.advance()
			s.advance()
		case c == '#':
			for s.pos < len(s.src) && s.peek() != '\n' {
				s.advance()
			}
		default:
			return
		}
	}
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c >= utf8.RuneSelf
}

func isIdentCont(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isQuote(c byte) bool { return c == '\'' || c == '"' }

func isStringPrefix(c byte) bool {
	switch c {
	case 'r', 'R', 'b', 'B', 'u', 'U', 'f', 'F':
		return true
	default:
		return false
	}
}

// afterPrefix looks one or two bytes ahead to see whether a prefix letter
// is immediately followed (possibly via a second prefix letter) by a
// quote, without consuming anything.
func (s *scanner) afterPrefix() byte {
	if isStringPrefix(s.peekAt(1)) {
		return s.peekAt(2)
	}
	return s.peekAt(1)
}

func (s *scanner) scanName(start token.Position) (token.Token, error) {
	begin := s.pos
	for s.pos < len(s.src) && isIdentCont(s.peek()) {
		s.advance()
	}
	lit := s.src[begin:s.pos]
	return token.Token{Kind: token.NAME, Literal: lit, Start: start, End: s.pos0()}, nil
}

func (s *scanner) scanNumber(start token.Position) (token.Token, error) {
	begin := s.pos
	if s.peek() == '0' && (s.peekAt(1) == 'x' || s.peekAt(1) == 'X') {
		s.advance()
		s.advance()
		for s.pos < len(s.src) && isHexDigit(s.peek()) {
			s.advance()
		}
		return token.Token{Kind: token.NUMBER, Literal: s.src[begin:s.pos], Start: start, End: s.pos0()}, nil
	}
	for s.pos < len(s.src) && isDigit(s.peek()) {
		s.advance()
	}
	if s.peek() == '.' && isDigit(s.peekAt(1)) {
		s.advance()
		for s.pos < len(s.src) && isDigit(s.peek()) {
			s.advance()
		}
	}
	if s.peek() == 'e' || s.peek() == 'E' {
		save := s.pos
		s.advance()
		if s.peek() == '+' || s.peek() == '-' {
			s.advance()
		}
		if isDigit(s.peek()) {
			for s.pos < len(s.src) && isDigit(s.peek()) {
				s.advance()
			}
		} else {
			s.pos = save
		}
	}
	return token.Token{Kind: token.NUMBER, Literal: s.src[begin:s.pos], Start: start, End: s.pos0()}, nil
}

func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func (s *scanner) scanPrefixedString(start token.Position) (token.Token, error) {
	begin := s.pos
	s.advance() // first prefix letter
	if isStringPrefix(s.peek()) {
		s.advance() // second prefix letter (e.g. rb)
	}
	tok, err := s.scanQuotedBody(start, begin)
	return tok, err
}

func (s *scanner) scanString(start token.Position, _ string) (token.Token, error) {
	return s.scanQuotedBody(start, s.pos)
}

// scanQuotedBody scans the quote delimiters and body starting at s.pos
// (which must be positioned at the opening quote), returning a STRING
// token whose Literal is the *entire* raw span from begin (including any
// prefix letters already consumed by the caller) through the closing
// quote(s). Decoding prefixes/quotes/escapes is strlit's job, not the
// lexer's: the lexer only needs to find where the literal ends.
func (s *scanner) scanQuotedBody(start token.Position, begin int) (token.Token, error) {
	quote := s.peek()
	s.advance()
	triple := s.peek() == quote && s.peekAt(1) == quote
	if triple {
		s.advance()
		s.advance()
	}
	for {
		if s.pos >= len(s.src) {
			return s.errorf(start, "unterminated string literal")
		}
		c := s.peek()
		if c == '\\' {
			s.advance()
			if s.pos < len(s.src) {
				s.advance()
			}
			continue
		}
		if c == quote {
			if !triple {
				s.advance()
				break
			}
			if s.peekAt(1) == quote && s.peekAt(2) == quote {
				s.advance()
				s.advance()
				s.advance()
				break
			}
			s.advance()
			continue
		}
		if c == '\n' && !triple {
			return s.errorf(start, "unterminated string literal (single-quoted string cannot span a newline)")
		}
		s.advance()
	}
	return token.Token{Kind: token.STRING, Literal: s.src[begin:s.pos], Start: start, End: s.pos0()}, nil
}

// operators is ordered longest-match-first within each starting byte.
var operators = []struct {
	text string
	kind token.Kind
}{
	{"**=", token.FirstOperator + 30},
	{"//=", token.FirstOperator + 31},
	{"...", token.FirstOperator + 1},
	{"->", token.FirstOperator + 2},
	{":=", token.FirstOperator + 3},
	{"==", token.FirstOperator + 4},
	{"!=", token.FirstOperator + 5},
	{"<=", token.FirstOperator + 6},
	{">=", token.FirstOperator + 7},
	{"**", token.FirstOperator + 8},
	{"//", token.FirstOperator + 9},
	{"+=", token.FirstOperator + 10},
	{"-=", token.FirstOperator + 11},
	{"*=", token.FirstOperator + 12},
	{"/=", token.FirstOperator + 13},
	{"(", token.FirstOperator + 14},
	{")", token.FirstOperator + 15},
	{"[", token.FirstOperator + 16},
	{"]", token.FirstOperator + 17},
	{"{", token.FirstOperator + 18},
	{"}", token.FirstOperator + 19},
	{",", token.FirstOperator + 20},
	{":", token.FirstOperator + 21},
	{".", token.FirstOperator + 22},
	{";", token.FirstOperator + 23},
	{"=", token.FirstOperator + 24},
	{"+", token.FirstOperator + 25},
	{"-", token.FirstOperator + 26},
	{"*", token.FirstOperator + 27},
	{"/", token.FirstOperator + 28},
	{"<", token.FirstOperator + 29},
	{">", token.FirstOperator + 32},
	{"%", token.FirstOperator + 33},
}

func (s *scanner) scanOperator(start token.Position) (token.Token, error) {
	for _, op := range operators {
		if strings.HasPrefix(s.src[s.pos:], op.text) {
			for range op.text {
				s.advance()
			}
			return token.Token{Kind: op.kind, Literal: op.text, Start: start, End: s.pos0()}, nil
		}
	}
	r, size := utf8.DecodeRuneInString(s.src[s.pos:])
	if r == utf8.RuneError && size <= 1 {
		return s.errorf(start, "invalid UTF-8 byte 0x%x", s.peek())
	}
	if !unicode.IsPrint(r) {
		return s.errorf(start, "invalid character %q", r)
	}
	for i := 0; i < size; i++ {
		s.advance()
	}
	return s.errorf(start, "unexpected character %q", r)
}

// Operator kind constants exposed for rule functions and tests that need
// to recognize specific punctuation without re-deriving the table above.
const (
	ELLIPSIS Kind = token.FirstOperator + 1
	ARROW         = token.FirstOperator + 2
	WALRUS        = token.FirstOperator + 3
	EQ            = token.FirstOperator + 4
	NEQ           = token.FirstOperator + 5
	LE            = token.FirstOperator + 6
	GE            = token.FirstOperator + 7
	POW           = token.FirstOperator + 8
	FLOORDIV      = token.FirstOperator + 9
	PLUS_EQ       = token.FirstOperator + 10
	MINUS_EQ      = token.FirstOperator + 11
	STAR_EQ       = token.FirstOperator + 12
	SLASH_EQ      = token.FirstOperator + 13
	LPAREN        = token.FirstOperator + 14
	RPAREN        = token.FirstOperator + 15
	LBRACKET      = token.FirstOperator + 16
	RBRACKET      = token.FirstOperator + 17
	LBRACE        = token.FirstOperator + 18
	RBRACE        = token.FirstOperator + 19
	COMMA         = token.FirstOperator + 20
	COLON         = token.FirstOperator + 21
	DOT           = token.FirstOperator + 22
	SEMICOLON     = token.FirstOperator + 23
	ASSIGN        = token.FirstOperator + 24
	PLUS          = token.FirstOperator + 25
	MINUS         = token.FirstOperator + 26
	STAR          = token.FirstOperator + 27
	SLASH         = token.FirstOperator + 28
	LT            = token.FirstOperator + 29
	POW_EQ        = token.FirstOperator + 30
	FLOORDIV_EQ   = token.FirstOperator + 31
	GT            = token.FirstOperator + 32
	PERCENT       = token.FirstOperator + 33
)

// Kind is a re-export so callers that only import lexer for the operator
// constants above don't also need to import token directly.
type Kind = token.Kind
