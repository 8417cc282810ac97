// Package errors defines the parser's error types: source locations,
// stack frames for recursive f-string sub-parses, and ParseError, the
// single rich error type a caller sees once a runner.SyntaxError has
// been enriched with source context, suggestions, and (for diagnostics)
// a display-ready FormattedError.
package errors

import (
	"fmt"
	"strings"
)

// SourceLocation represents a position in source code.
type SourceLocation struct {
	Filename string
	Line     int    // 1-based line number
	Column   int    // 1-based column number
	Source   string // the line of source code
}

// String returns a formatted string representation of the source location.
func (s SourceLocation) String() string {
	if s.Filename != "" {
		return fmt.Sprintf("%s:%d:%d", s.Filename, s.Line, s.Column)
	}
	return fmt.Sprintf("%d:%d", s.Line, s.Column)
}

// IsZero returns true if the location has not been set.
func (s SourceLocation) IsZero() bool {
	return s.Line == 0 && s.Column == 0
}

// StackFrame represents a single frame in a recursive f-string parse: one
// level of the expression/format-spec recursion SPEC_FULL.md §4.H caps at
// depth 2. Callers fill ParseError.Stack themselves; nothing in the
// f-string packages builds frames.
type StackFrame struct {
	Function string
	Location SourceLocation
}

// String returns a formatted string representation of the stack frame.
func (f StackFrame) String() string {
	if f.Function != "" {
		return fmt.Sprintf("at %s (%s)", f.Function, f.Location.String())
	}
	return fmt.Sprintf("at %s", f.Location.String())
}

// FormatStackTrace formats a slice of stack frames as a human-readable string.
func FormatStackTrace(frames []StackFrame) string {
	if len(frames) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("Stack trace:\n")
	for _, frame := range frames {
		b.WriteString("  ")
		b.WriteString(frame.String())
		b.WriteString("\n")
	}
	return b.String()
}

// FriendlyError is an interface for errors that have a human friendly
// message in addition to the lower level default error message.
type FriendlyError interface {
	Error() string
	FriendlyErrorMessage() string
}

// FormattableError is an interface for errors that can be formatted with
// the enhanced error formatter (with colors, source context, etc).
type FormattableError interface {
	Error() string
	ToFormatted() *FormattedError
}

// FatalError is an interface for errors that may or may not be fatal.
type FatalError interface {
	Error() string
	IsFatal() bool
}

// ParseError is the single error shape a failed parse surfaces as. It is
// built from a runner.SyntaxError (diagnostics.FromSyntaxError does this)
// and satisfies FriendlyError, FormattableError, and FatalError
// structurally.
type ParseError struct {
	Code        ErrorCode
	Message     string
	Location    SourceLocation
	EndColumn   int // for multi-character carets; 0 means single-column
	Stack       []StackFrame
	Suggestions []Suggestion
	Note        string
	Cause       error
	fatal       bool
}

// NewParseError builds a ParseError. Every parse error is fatal — unlike
// the teacher's TypeError, there is no "maybe fatal" mode for a syntax
// error, so fatal is always true.
func NewParseError(code ErrorCode, message string, loc SourceLocation) *ParseError {
	return &ParseError{Code: code, Message: message, Location: loc, fatal: true}
}

// NewParseErrorf is NewParseError with fmt.Sprintf-style formatting.
func NewParseErrorf(code ErrorCode, loc SourceLocation, format string, args ...any) *ParseError {
	return NewParseError(code, fmt.Sprintf(format, args...), loc)
}

func (e *ParseError) Error() string {
	if e.Location.Filename == "" && e.Location.IsZero() {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s: %s", e.Location.String(), e.Code, e.Message)
}

// Unwrap exposes Cause, if WithCause attached one.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// WithCause attaches an underlying error (e.g. the lexer error a
// tokenizer-failure SyntaxError carries) and returns e for chaining.
func (e *ParseError) WithCause(err error) *ParseError {
	e.Cause = err
	return e
}

// IsFatal reports true for every ParseError built by NewParseError or
// NewParseErrorf: a syntax error always aborts the parse. A ParseError
// written as a struct literal reports false.
func (e *ParseError) IsFatal() bool {
	return e.fatal
}

// FriendlyErrorMessage renders a one-line, human-facing summary distinct
// from Error()'s machine-oriented "file:line:col: code: message" form.
func (e *ParseError) FriendlyErrorMessage() string {
	where := "source"
	if e.Location.Filename != "" {
		where = e.Location.Filename
	}
	var msg string
	if e.Location.Line > 0 {
		msg = fmt.Sprintf("%s in %s, line %d: %s", e.Code.Description(), where, e.Location.Line, e.Message)
	} else {
		msg = fmt.Sprintf("%s in %s: %s", e.Code.Description(), where, e.Message)
	}
	if hint := FormatSuggestions(e.Suggestions); hint != "" {
		msg += " " + hint
	}
	return msg
}

// ToFormatted converts a ParseError into the display-ready shape the
// Formatter renders, carrying source context only when the location has
// a source line attached.
func (e *ParseError) ToFormatted() *FormattedError {
	fe := &FormattedError{
		Code:      e.Code,
		Kind:      "error",
		Message:   e.Message,
		Filename:  e.Location.Filename,
		Line:      e.Location.Line,
		Column:    e.Location.Column,
		EndColumn: e.EndColumn,
		Note:      e.Note,
		Stack:     e.Stack,
	}
	if e.Location.Source != "" {
		fe.SourceLines = []SourceLineEntry{{Number: e.Location.Line, Text: e.Location.Source, IsMain: true}}
	}
	if hint := FormatSuggestions(e.Suggestions); hint != "" {
		fe.Hint = hint
	}
	return fe
}
