// Package diagnostics bridges a runner.RunParser failure to a rendered,
// optionally colorized diagnostic: it converts the single runner error
// shape into errors.ParseError, then runs it through errors.Formatter.
package diagnostics

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/pegrt/pegrt/errors"
	"github.com/pegrt/pegrt/runner"
)

// FromSyntaxError builds a *errors.ParseError from a *runner.SyntaxError.
// runner.Kind and errors.ErrorCode share the same string values by
// construction, so the conversion never needs a lookup table.
func FromSyntaxError(se *runner.SyntaxError) *errors.ParseError {
	return errors.NewParseError(errors.ErrorCode(se.Kind), se.Message, errors.SourceLocation{
		Filename: se.Filename,
		Line:     se.Line,
		Column:   se.Column,
		Source:   se.SourceLine,
	})
}

// FromError converts an error returned by runner.RunParser into a
// *errors.ParseError ready for formatted display. MemoryError and
// OSError are not syntax problems with the source, so they pass through
// unconverted; ok reports whether conversion happened.
func FromError(err error) (pe *errors.ParseError, ok bool) {
	se, ok := err.(*runner.SyntaxError)
	if !ok {
		return nil, false
	}
	return FromSyntaxError(se), true
}

// Print writes a rendered diagnostic for err to w. If err is not a
// *runner.SyntaxError (e.g. a *runner.MemoryError or *runner.OSError),
// its plain Error() string is written instead — those aren't source
// diagnostics, so there's nothing to format. Color is enabled
// automatically when w is a terminal also implementing Fd() uintptr
// (os.Stdout/os.Stderr); anything else renders plain.
func Print(w io.Writer, err error) error {
	if err == nil {
		return nil
	}
	pe, ok := FromError(err)
	if !ok {
		_, werr := io.WriteString(w, err.Error()+"\n")
		return werr
	}
	f := errors.NewFormatter(useColor(w))
	_, werr := io.WriteString(w, f.Format(pe.ToFormatted()))
	return werr
}

type fder interface {
	Fd() uintptr
}

func useColor(w io.Writer) bool {
	f, ok := w.(fder)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Stderr is the default destination Print would be called with from a
// command-line entry point.
var Stderr io.Writer = os.Stderr
