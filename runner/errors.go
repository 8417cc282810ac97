package runner

import (
	"fmt"

	"github.com/pegrt/pegrt/lexer"
	"github.com/pegrt/pegrt/token"
)

// Kind identifies which of the error shapes in SPEC_FULL.md §7 a
// SyntaxError represents. All of them surface through the same Go type;
// Kind is what a caller branches on instead of a type switch.
type Kind string

const (
	KindTokenizerFailure          Kind = "tokenizer-failure"
	KindInvalidSyntax             Kind = "invalid-syntax"
	KindAnnotatedListOrMultiTuple Kind = "annotated-list-or-multi-tuple"
	KindInvalidEscape             Kind = "invalid-escape"
	KindBytesNonASCII             Kind = "bytes-non-ascii"
	KindFStringEmpty              Kind = "fstring-empty"
	KindFStringBackslash          Kind = "fstring-backslash"
	KindFStringHash               Kind = "fstring-hash"
	KindFStringNestingDeep        Kind = "fstring-nesting-deep"
	KindFStringParenDeep          Kind = "fstring-paren-deep"
	KindFStringBadConversion      Kind = "fstring-bad-conversion"
	KindFStringMismatchedBrace    Kind = "fstring-mismatched-brace"
	KindFStringUnexpectedEnd      Kind = "fstring-unexpected-end"
	KindFStringSingleCloseBrace   Kind = "fstring-single-close-brace"
)

// SyntaxError is the single error shape every parse failure in
// SPEC_FULL.md §7 surfaces as (barring MemoryError/OSError, which
// propagate unchanged). It implements the teacher's FriendlyError split
// between a raw Error() and a human-facing FriendlyErrorMessage(),
// structurally — callers that only know about errors.FriendlyError still
// satisfy that interface against this type without either package
// importing the other.
type SyntaxError struct {
	Kind       Kind
	Filename   string
	Line       int    // one-based
	Column     int    // one-based
	SourceLine string
	Message    string
}

func newSyntaxError(kind Kind, src lexer.Lexer, tok token.Token, message string) *SyntaxError {
	e := &SyntaxError{Kind: kind, Filename: src.Filename(), Message: message}
	if tok.Start.IsValid() {
		e.Line = tok.Start.LineNumber()
		e.Column = tok.Start.ColumnNumber()
		e.SourceLine = src.GetLineText(tok)
	}
	return e
}

// NewSyntaxError is newSyntaxError, exported for grammar packages that
// need to raise one of the specific error kinds (invalid-escape,
// bytes-non-ascii, the fstring-* family, annotated-list-or-multi-tuple)
// from inside a generated rule, via parser.State.SetFatal.
func NewSyntaxError(kind Kind, src lexer.Lexer, tok token.Token, message string) *SyntaxError {
	return newSyntaxError(kind, src, tok, message)
}

func (e *SyntaxError) Error() string {
	if e.Filename != "" {
		return fmt.Sprintf("%s:%d:%d: %s", e.Filename, e.Line, e.Column, e.Message)
	}
	if e.Line > 0 {
		return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Message)
	}
	return e.Message
}

// FriendlyErrorMessage renders a one-line, human-facing summary distinct
// from Error()'s machine-oriented "file:line:col: message" form.
func (e *SyntaxError) FriendlyErrorMessage() string {
	where := "source"
	if e.Filename != "" {
		where = e.Filename
	}
	if e.Line > 0 {
		return fmt.Sprintf("syntax error in %s, line %d: %s", where, e.Line, e.Message)
	}
	return fmt.Sprintf("syntax error in %s: %s", where, e.Message)
}

// MemoryError propagates an allocation failure unchanged, rather than
// being folded into SyntaxError — it indicates the host ran out of
// memory, not that the source was invalid.
type MemoryError struct {
	Err error
}

func (e *MemoryError) Error() string { return fmt.Sprintf("out of memory: %s", e.Err) }
func (e *MemoryError) Unwrap() error { return e.Err }

// OSError propagates a source-open failure (file not found, permission
// denied) unchanged.
type OSError struct {
	Path string
	Err  error
}

func (e *OSError) Error() string { return fmt.Sprintf("%s: %s", e.Path, e.Err) }
func (e *OSError) Unwrap() error { return e.Err }
