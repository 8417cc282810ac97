// Package token defines the token kinds, positions, and keyword table used
// by the parser engine. Tokens themselves are produced by the lexer
// collaborator (package lexer); this package only defines their shape.
package token

import "fmt"

// Kind identifies the lexical category of a Token. The grammar compiler's
// generated rules switch on Kind values, so these are small integers rather
// than strings (matching how a packrat parser's hot path compares token
// kinds many times per byte of input).
type Kind int

// The closed set of token kinds the core parser engine understands.
// Additional operator punctuation kinds are assigned by the lexer
// collaborator starting at FirstOperator; the engine never inspects their
// numeric value beyond equality, so a fixed, closed enumeration here is
// sufficient.
const (
	ILLEGAL Kind = iota
	ERROR        // lexer-reported error token; sticky, see lexer.Lexer
	ENDMARKER
	NAME
	NUMBER
	STRING
	NEWLINE
	INDENT
	DEDENT
	OP
	// FirstOperator is the first kind value a lexer may use for its own
	// operator/punctuation tokens (LPAREN, COLON, ARROW, ...). Kinds below
	// this value are reserved by the core.
	FirstOperator
)

func (k Kind) String() string {
	switch k {
	case ILLEGAL:
		return "ILLEGAL"
	case ERROR:
		return "ERROR"
	case ENDMARKER:
		return "ENDMARKER"
	case NAME:
		return "NAME"
	case NUMBER:
		return "NUMBER"
	case STRING:
		return "STRING"
	case NEWLINE:
		return "NEWLINE"
	case INDENT:
		return "INDENT"
	case DEDENT:
		return "DEDENT"
	case OP:
		return "OP"
	default:
		return fmt.Sprintf("OP(%d)", int(k))
	}
}

// Position points to a particular location in an input string.
type Position struct {
	Char      int    // byte offset within the file
	LineStart int    // byte offset of the start of the current line
	Line      int    // 0-indexed line number
	Column    int    // 0-indexed column number
	File      string // filename
}

// NoPos is the zero value Position, representing an invalid/unset position.
var NoPos = Position{}

// LineNumber returns the 1-indexed line number for this position.
func (p Position) LineNumber() int { return p.Line + 1 }

// ColumnNumber returns the 1-indexed column number for this position.
func (p Position) ColumnNumber() int { return p.Column + 1 }

// Advance returns a new Position moved forward n bytes on the same line.
// Used to compute End positions from a Start position for tokens that do
// not themselves span multiple lines.
func (p Position) Advance(n int) Position {
	return Position{
		Char:      p.Char + n,
		LineStart: p.LineStart,
		Line:      p.Line,
		Column:    p.Column + n,
		File:      p.File,
	}
}

// IsValid reports whether this position has been set to something other
// than the zero value.
func (p Position) IsValid() bool {
	return p.File != "" || p.Line > 0 || p.Column > 0 || p.Char > 0
}

func (p Position) String() string {
	if p.File != "" {
		return fmt.Sprintf("%s:%d:%d", p.File, p.LineNumber(), p.ColumnNumber())
	}
	return fmt.Sprintf("%d:%d", p.LineNumber(), p.ColumnNumber())
}

// Token is a single lexical token. It is produced by the lexer collaborator
// and consumed by the token buffer (package internal/memo) and the parser
// engine (package parser).
type Token struct {
	Kind    Kind
	Literal string // raw byte span of the token, as text
	Start   Position
	End     Position
}

// KeywordEntry is one (literal, kind) pair in a length bucket.
type KeywordEntry struct {
	Literal string
	Kind    Kind
}

// KeywordTable is a mapping from identifier byte-length to the keyword
// entries of that length, so that matching a NAME token against the
// keyword set only ever compares names that could possibly be equal.
// It is built once by the grammar compiler (out of scope) and is safe to
// share read-only across many parser states.
type KeywordTable struct {
	byLength map[int][]KeywordEntry
}

// NewKeywordTable builds a keyword table from an unordered list of
// (literal, kind) pairs.
func NewKeywordTable(entries ...KeywordEntry) *KeywordTable {
	t := &KeywordTable{byLength: make(map[int][]KeywordEntry)}
	for _, e := range entries {
		t.byLength[len(e.Literal)] = append(t.byLength[len(e.Literal)], e)
	}
	return t
}

// Lookup returns the keyword Kind for name, and whether name is a keyword
// at all. Lookup is linear within the length bucket, matching the source
// design's length-bucketed table (a hash lookup would work too, but the
// bucket-then-scan shape is what the spec's keyword table calls for and
// keeps the common "not a keyword" case to one bucket scan instead of a
// hash of the whole string).
func (t *KeywordTable) Lookup(name string) (Kind, bool) {
	if t == nil {
		return ILLEGAL, false
	}
	for _, e := range t.byLength[len(name)] {
		if e.Literal == name {
			return e.Kind, true
		}
	}
	return ILLEGAL, false
}
