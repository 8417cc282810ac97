package demogrammar

import (
	"strings"

	"github.com/pegrt/pegrt/parser"
	"github.com/pegrt/pegrt/runner"
	"github.com/pegrt/pegrt/token"
)

// kindsByPrefix maps the "kind-name: message" convention strlit and
// fstring errors are raised under onto the runner.Kind they name. Every
// rule in this package that wraps an error of its own (rather than
// passing one straight through from strlit/fstring) follows the same
// convention so classify has a single place to look.
var kindsByPrefix = map[string]runner.Kind{
	"invalid-escape":            runner.KindInvalidEscape,
	"bytes-non-ascii":           runner.KindBytesNonASCII,
	"fstring-empty":             runner.KindFStringEmpty,
	"fstring-backslash":         runner.KindFStringBackslash,
	"fstring-hash":              runner.KindFStringHash,
	"fstring-nesting-deep":      runner.KindFStringNestingDeep,
	"fstring-paren-deep":        runner.KindFStringParenDeep,
	"fstring-bad-conversion":    runner.KindFStringBadConversion,
	"fstring-mismatched-brace":  runner.KindFStringMismatchedBrace,
	"fstring-unexpected-end":    runner.KindFStringUnexpectedEnd,
	"fstring-single-close-brace": runner.KindFStringSingleCloseBrace,
	"annotated-list-or-multi-tuple": runner.KindAnnotatedListOrMultiTuple,
}

func classify(err error) runner.Kind {
	msg := err.Error()
	if i := strings.Index(msg, ": "); i > 0 {
		if kind, ok := kindsByPrefix[msg[:i]]; ok {
			return kind
		}
	}
	return runner.KindInvalidSyntax
}

// setFatal records err on s as the parse's fatal error, classifying it by
// its "kind-name:" prefix and anchoring it at tok. Every rule in this
// package that detects an unrecoverable condition — rather than an
// ordinary backtrackable mismatch — calls this and then returns false.
func setFatal(s *parser.State, tok token.Token, err error) {
	s.SetFatal(runner.NewSyntaxError(classify(err), s.Lexer(), tok, err.Error()))
}
