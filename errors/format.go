package errors

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Formatter formats errors with colors and professional styling.
type Formatter struct {
	// UseColor enables ANSI color codes in output.
	UseColor bool
}

// NewFormatter creates a new error formatter.
func NewFormatter(useColor bool) *Formatter {
	return &Formatter{UseColor: useColor}
}

// Colors used for error formatting.
var (
	colorError     = color.New(color.FgRed)
	colorErrorBold = color.New(color.FgHiRed, color.Bold)
	colorCode      = color.New(color.FgHiBlack)
	colorLocation  = color.New(color.FgCyan)
	colorLineNum   = color.New(color.FgHiBlack)
	colorPipe      = color.New(color.FgHiBlack)
	colorSource    = color.New(color.FgWhite)
	colorCaret     = color.New(color.FgHiRed, color.Bold)
	colorHint      = color.New(color.FgHiYellow)
	colorNote      = color.New(color.FgHiBlue)
)

// FormattedError represents an error ready for display.
type FormattedError struct {
	Code        ErrorCode
	Kind        string // "error", "parse error", etc.
	Message     string
	Filename    string
	Line        int
	Column      int
	EndColumn   int               // for multi-character underlines
	SourceLines []SourceLineEntry // lines of context around the error
	Hint        string            // "Did you mean?" suggestion
	Note        string            // additional context
	Stack       []StackFrame      // recursion trace, for nested f-strings
}

// SourceLineEntry represents a line of source code with its number.
type SourceLineEntry struct {
	Number int
	Text   string
	IsMain bool // true if this is the line with the error
}

// Format formats the error as a string using a consistent Rust-like style.
func (f *Formatter) Format(err *FormattedError) string {
	return f.FormatWithPrefix(err, "")
}

// FormatWithPrefix formats the error with an optional prefix like "[1/5]".
func (f *Formatter) FormatWithPrefix(err *FormattedError, prefix string) string {
	var b strings.Builder

	lineNumWidth := 2
	if err.Line >= 100 {
		lineNumWidth = len(fmt.Sprintf("%d", err.Line))
	}

	// Error header: "error[tokenizer-failure]: message" or "error[1/5]: message"
	f.writeHeader(&b, err, prefix)

	// Location arrow: "  --> file.peg:10:5"
	f.writeLocation(&b, err, lineNumWidth)

	// Source context with line numbers
	f.writeSource(&b, err, lineNumWidth)

	if err.Hint != "" {
		f.writeHint(&b, err.Hint, lineNumWidth)
	}

	if err.Note != "" {
		f.writeNote(&b, err.Note, lineNumWidth)
	}

	if len(err.Stack) > 0 {
		f.writeStack(&b, err.Stack, lineNumWidth)
	}

	return b.String()
}

func (f *Formatter) apply(c *color.Color, s string) string {
	if !f.UseColor {
		return s
	}
	return c.Sprint(s)
}

func (f *Formatter) writeHeader(b *strings.Builder, err *FormattedError, prefix string) {
	label := "error"
	if err.Kind != "" && err.Kind != "error" {
		label = err.Kind
	}
	b.WriteString(f.apply(colorErrorBold, label))

	if err.Code != "" {
		b.WriteString(f.apply(colorCode, fmt.Sprintf("[%s]", err.Code)))
	} else if prefix != "" {
		b.WriteString(f.apply(colorCode, fmt.Sprintf("[%s]", prefix)))
	}

	b.WriteString(f.apply(colorError, ": "))
	b.WriteString(err.Message)
	b.WriteString("\n")
}

func (f *Formatter) writeLocation(b *strings.Builder, err *FormattedError, lineNumWidth int) {
	if err.Line == 0 && err.Filename == "" {
		return
	}

	padding := strings.Repeat(" ", lineNumWidth)
	b.WriteString(f.apply(colorLineNum, padding))
	b.WriteString(f.apply(colorLocation, "-->"))
	b.WriteString(" ")

	loc := ""
	if err.Filename != "" {
		loc = err.Filename
		if err.Line > 0 {
			loc += fmt.Sprintf(":%d:%d", err.Line, err.Column)
		}
	} else if err.Line > 0 {
		loc = fmt.Sprintf("%d:%d", err.Line, err.Column)
	}
	b.WriteString(f.apply(colorLocation, loc))
	b.WriteString("\n")
}

func (f *Formatter) writeSource(b *strings.Builder, err *FormattedError, lineNumWidth int) {
	if len(err.SourceLines) == 0 {
		return
	}

	padding := strings.Repeat(" ", lineNumWidth)
	b.WriteString(f.apply(colorLineNum, padding))
	b.WriteString(f.apply(colorPipe, " |\n"))

	for _, line := range err.SourceLines {
		lineNumStr := fmt.Sprintf("%*d", lineNumWidth, line.Number)
		b.WriteString(f.apply(colorLineNum, lineNumStr))
		b.WriteString(f.apply(colorPipe, " | "))
		b.WriteString(f.apply(colorSource, line.Text))
		b.WriteString("\n")

		if line.IsMain && err.Column > 0 {
			b.WriteString(f.apply(colorLineNum, padding))
			b.WriteString(f.apply(colorPipe, " | "))

			b.WriteString(strings.Repeat(" ", err.Column-1))

			caretLen := 1
			if err.EndColumn > err.Column {
				caretLen = err.EndColumn - err.Column + 1
			}
			b.WriteString(f.apply(colorCaret, strings.Repeat("^", caretLen)))
			b.WriteString("\n")
		}
	}
}

func (f *Formatter) writeHint(b *strings.Builder, hint string, lineNumWidth int) {
	padding := strings.Repeat(" ", lineNumWidth)
	b.WriteString(f.apply(colorLineNum, padding))
	b.WriteString(f.apply(colorPipe, " |\n"))
	b.WriteString(f.apply(colorLineNum, padding))
	b.WriteString(f.apply(colorPipe, " = "))
	b.WriteString(f.apply(colorHint, "hint: "))
	b.WriteString(hint)
	b.WriteString("\n")
}

func (f *Formatter) writeNote(b *strings.Builder, note string, lineNumWidth int) {
	padding := strings.Repeat(" ", lineNumWidth)
	b.WriteString(f.apply(colorLineNum, padding))
	b.WriteString(f.apply(colorPipe, " = "))
	b.WriteString(f.apply(colorNote, "note: "))
	b.WriteString(note)
	b.WriteString("\n")
}

func (f *Formatter) writeStack(b *strings.Builder, stack []StackFrame, lineNumWidth int) {
	padding := strings.Repeat(" ", lineNumWidth)
	b.WriteString(f.apply(colorLineNum, padding))
	b.WriteString(f.apply(colorPipe, " |\n"))
	b.WriteString(f.apply(colorLineNum, padding))
	b.WriteString(f.apply(colorPipe, " = "))
	b.WriteString(f.apply(colorNote, "stack trace:\n"))

	for _, frame := range stack {
		b.WriteString(f.apply(colorLineNum, padding))
		b.WriteString(f.apply(colorPipe, "     "))
		b.WriteString(frame.String())
		b.WriteString("\n")
	}
}

// FormatMultiple formats multiple errors with consistent styling.
func (f *Formatter) FormatMultiple(errs []*FormattedError) string {
	if len(errs) == 0 {
		return ""
	}
	if len(errs) == 1 {
		return f.Format(errs[0])
	}

	var b strings.Builder
	total := len(errs)

	for i, err := range errs {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(f.FormatWithPrefix(err, fmt.Sprintf("%d/%d", i+1, total)))
	}

	b.WriteString("\n")
	b.WriteString(f.apply(colorErrorBold, fmt.Sprintf("found %d errors", total)))
	b.WriteString("\n")

	return b.String()
}
