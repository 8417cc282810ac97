package errors

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatter_MultiCharacterCaret(t *testing.T) {
	f := NewFormatter(false)
	fe := &FormattedError{
		Code:     CodeInvalidEscape,
		Message:  "invalid escape sequence",
		Filename: "m.peg",
		Line:     1,
		Column:   5,
		EndColumn: 7,
		SourceLines: []SourceLineEntry{
			{Number: 1, Text: `x = "\q"`, IsMain: true},
		},
	}
	out := f.Format(fe)
	require.Contains(t, out, "^^^")
	require.NotContains(t, out, "^^^^")
}

func TestFormatter_SingleColumnCaretByDefault(t *testing.T) {
	f := NewFormatter(false)
	fe := &FormattedError{
		Message: "unexpected token",
		Line:    1,
		Column:  3,
		SourceLines: []SourceLineEntry{
			{Number: 1, Text: "x + + 1", IsMain: true},
		},
	}
	out := f.Format(fe)
	require.Contains(t, out, "^\n")
	require.NotContains(t, out, "^^")
}

func TestFormatter_HintAndNote(t *testing.T) {
	f := NewFormatter(false)
	fe := &FormattedError{
		Message: "bad conversion character",
		Hint:    "Did you mean 'r'?",
		Note:    "valid conversions are s, r, and a",
	}
	out := f.Format(fe)
	require.Contains(t, out, "hint: Did you mean 'r'?")
	require.Contains(t, out, "note: valid conversions are s, r, and a")
}

func TestFormatter_StackTrace(t *testing.T) {
	f := NewFormatter(false)
	fe := &FormattedError{
		Message: "backslash not allowed in expression",
		Stack: []StackFrame{
			{Function: "fstring.Decode", Location: SourceLocation{Line: 1, Column: 1}},
			{Function: "fstring.Decode", Location: SourceLocation{Line: 1, Column: 8}},
		},
	}
	out := f.Format(fe)
	require.Contains(t, out, "stack trace:")
	require.Contains(t, out, "at fstring.Decode (1:1)")
	require.Contains(t, out, "at fstring.Decode (1:8)")
}

func TestFormatter_NoColorProducesNoEscapeCodes(t *testing.T) {
	f := NewFormatter(false)
	fe := &FormattedError{Code: CodeInvalidSyntax, Message: "invalid syntax", Line: 1, Column: 1}
	out := f.Format(fe)
	require.NotContains(t, out, "\x1b[")
}

func TestFormatter_ColorProducesEscapeCodes(t *testing.T) {
	f := NewFormatter(true)
	fe := &FormattedError{Code: CodeInvalidSyntax, Message: "invalid syntax", Line: 1, Column: 1}
	out := f.Format(fe)
	require.Contains(t, out, "\x1b[")
}

func TestFormatter_FormatMultiple(t *testing.T) {
	f := NewFormatter(false)
	errs := []*FormattedError{
		{Message: "first error"},
		{Message: "second error"},
	}
	out := f.FormatMultiple(errs)
	require.Contains(t, out, "[1/2]")
	require.Contains(t, out, "[2/2]")
	require.Contains(t, out, "found 2 errors")
	require.Equal(t, 1, strings.Count(out, "found 2 errors"))
}

func TestFormatter_FormatMultipleSingleOmitsNumbering(t *testing.T) {
	f := NewFormatter(false)
	out := f.FormatMultiple([]*FormattedError{{Message: "only error"}})
	require.NotContains(t, out, "[1/1]")
	require.NotContains(t, out, "found")
}

func TestFormatter_FormatMultipleEmpty(t *testing.T) {
	f := NewFormatter(false)
	require.Equal(t, "", f.FormatMultiple(nil))
}
