package fstring

import (
	"fmt"
	"strings"

	"github.com/pegrt/pegrt/ast"
	"github.com/pegrt/pegrt/strlit"
	"github.com/pegrt/pegrt/token"
)

const (
	maxBracketDepth   = 16
	maxRecursionDepth = 2
)

// ExprParser invokes the grammar's expression rule over src (the text
// between an f-string's braces, already wrapped in parens by the
// sub-parser) and returns the resulting expression.
type ExprParser func(src string) (ast.Expr, error)

// Decode segments an f-string body into literal runs and embedded
// expressions, producing a single AST expression: a plain constant if
// the body never actually contained an expression (so callers can treat
// "f" and non-f string literals uniformly when no braces were present),
// otherwise a joined-string node. depth is the current f-string nesting
// level (0 for the literal itself, 1 inside its first format spec, and
// so on); recursion past level 2 is rejected.
func Decode(body []byte, depth int, start, end token.Position, parseExpr ExprParser) (ast.Expr, error) {
	if depth > maxRecursionDepth {
		return nil, fmt.Errorf("fstring-nesting-deep: f-string nesting exceeds %d levels", maxRecursionDepth)
	}

	asm := newAssembler(start, end)
	var lit []byte
	i := 0

	flushLiteral := func() error {
		if len(lit) == 0 {
			return nil
		}
		decoded, err := strlit.DecodeLiteralRun(lit, token.Token{Start: start, End: end})
		if err != nil {
			return err
		}
		asm.AppendLiteral(decoded)
		lit = nil
		return nil
	}

	for i < len(body) {
		c := body[i]
		switch {
		case c == '\\':
			switch {
			case i+2 < len(body) && body[i+1] == 'N' && body[i+2] == '{':
				rel := strings.IndexByte(string(body[i+3:]), '}')
				if rel < 0 {
					return nil, fmt.Errorf("invalid-escape: unterminated \\N{...} escape")
				}
				namedEnd := i + 3 + rel + 1
				lit = append(lit, body[i:namedEnd]...)
				i = namedEnd
			case i+1 < len(body) && body[i+1] == '{':
				return nil, fmt.Errorf("invalid-escape: '\\{' is not a valid escape in an f-string")
			case i+1 < len(body):
				lit = append(lit, body[i], body[i+1])
				i += 2
			default:
				lit = append(lit, c)
				i++
			}
		case depth == 0 && c == '{' && i+1 < len(body) && body[i+1] == '{':
			lit = append(lit, '{')
			i += 2
		case depth == 0 && c == '}' && i+1 < len(body) && body[i+1] == '}':
			lit = append(lit, '}')
			i += 2
		case c == '}':
			return nil, fmt.Errorf("fstring-single-close-brace: single '}' is not allowed in an f-string")
		case c == '{':
			if err := flushLiteral(); err != nil {
				return nil, err
			}
			fv, debugPrefix, consumed, err := decodeExpression(body[i+1:], depth, start, end, parseExpr)
			if err != nil {
				return nil, err
			}
			if debugPrefix != "" {
				asm.AppendLiteral(debugPrefix)
			}
			asm.AppendExpression(fv)
			i += 1 + consumed
		default:
			lit = append(lit, c)
			i++
		}
	}
	if err := flushLiteral(); err != nil {
		return nil, err
	}
	return asm.Finish(), nil
}

// decodeExpression parses one "{...}" embedded expression, given rest
// positioned right after the opening brace. It returns the formatted
// value node, an optional literal prefix to emit first (the "x=" text of
// a debug-form expression), and how many bytes of rest were consumed,
// including the closing brace.
func decodeExpression(rest []byte, depth int, start, end token.Position, parseExpr ExprParser) (*ast.FormattedValue, string, int, error) {
	exprEnd, err := scanExpressionSource(rest)
	if err != nil {
		return nil, "", 0, err
	}

	exprSrc := strings.TrimSpace(string(rest[:exprEnd]))
	if exprSrc == "" {
		return nil, "", 0, fmt.Errorf("fstring-empty: empty expression in f-string")
	}

	pos := exprEnd
	debugPrefix := ""
	if pos < len(rest) && rest[pos] == '=' {
		debugPrefix = string(rest[:exprEnd]) + "="
		pos++
	}

	var conversion rune
	if pos < len(rest) && rest[pos] == '!' {
		if pos+1 >= len(rest) {
			return nil, "", 0, fmt.Errorf("fstring-unexpected-end: expected conversion character after '!'")
		}
		c := rest[pos+1]
		if c != 's' && c != 'r' && c != 'a' {
			return nil, "", 0, fmt.Errorf("fstring-bad-conversion: '!%c' is not a valid conversion", c)
		}
		conversion = rune(c)
		pos += 2
	}

	var formatSpec ast.Expr
	if pos < len(rest) && rest[pos] == ':' {
		closeIdx, err := findFormatSpecEnd(rest, pos+1)
		if err != nil {
			return nil, "", 0, err
		}
		spec, err := Decode(rest[pos+1:closeIdx], depth+1, start, end, parseExpr)
		if err != nil {
			return nil, "", 0, err
		}
		formatSpec = spec
		pos = closeIdx
	}

	if pos >= len(rest) || rest[pos] != '}' {
		return nil, "", 0, fmt.Errorf("fstring-unexpected-end: expected '}' to close f-string expression")
	}

	if debugPrefix != "" && conversion == 0 && formatSpec == nil {
		conversion = 'r'
	}

	value, err := parseExpr(exprSrc)
	if err != nil {
		return nil, "", 0, err
	}

	fv := &ast.FormattedValue{
		Lbrace:     start,
		Value:      value,
		Conversion: conversion,
		FormatSpec: formatSpec,
		Rbrace:     end,
	}
	return fv, debugPrefix, pos + 1, nil
}

// scanExpressionSource finds the first top-level (bracket-depth 0,
// outside any string literal) terminator character and returns its
// index within rest. Terminators are '!', ':', '}', '=', and a lone '<'
// or '>' not forming part of a two-character comparison operator — a
// quirk inherited as-is rather than special-cased, since it only ever
// affects bare, unparenthesized comparisons inside an f-string
// expression (callers needing one wrap it in parens).
func scanExpressionSource(rest []byte) (int, error) {
	var stack []byte
	inString := false
	var quote byte
	triple := false

	i := 0
	for i < len(rest) {
		c := rest[i]
		if inString {
			switch {
			case c == '\\':
				return 0, fmt.Errorf("fstring-backslash: '\\\\' is not allowed inside an f-string expression")
			case c == quote && triple:
				if i+2 < len(rest) && rest[i+1] == quote && rest[i+2] == quote {
					inString = false
					i += 3
				} else {
					i++
				}
			case c == quote:
				inString = false
				i++
			default:
				i++
			}
			continue
		}

		switch c {
		case '\'', '"':
			inString = true
			quote = c
			if i+2 < len(rest) && rest[i+1] == c && rest[i+2] == c {
				triple = true
				i += 3
			} else {
				triple = false
				i++
			}
			continue
		case '(', '[', '{':
			stack = append(stack, c)
			if len(stack) > maxBracketDepth {
				return 0, fmt.Errorf("fstring-paren-deep: bracket nesting exceeds %d", maxBracketDepth)
			}
			i++
			continue
		case ')', ']', '}':
			if len(stack) == 0 {
				if c == '}' {
					return i, nil
				}
				return 0, fmt.Errorf("fstring-mismatched-brace: unmatched %q", c)
			}
			top := stack[len(stack)-1]
			if (c == ')' && top != '(') || (c == ']' && top != '[') || (c == '}' && top != '{') {
				return 0, fmt.Errorf("fstring-mismatched-brace: %q does not match %q", c, top)
			}
			stack = stack[:len(stack)-1]
			i++
			continue
		case '\\':
			return 0, fmt.Errorf("fstring-backslash: '\\\\' is not allowed inside an f-string expression")
		case '#':
			return 0, fmt.Errorf("fstring-hash: '#' is not allowed inside an f-string expression")
		}

		if len(stack) == 0 {
			switch c {
			case '!':
				if i+1 < len(rest) && rest[i+1] == '=' {
					i += 2
					continue
				}
				return i, nil
			case ':', '}':
				return i, nil
			case '=':
				if i+1 < len(rest) && rest[i+1] == '=' {
					i += 2
					continue
				}
				return i, nil
			case '<', '>':
				if i+1 < len(rest) && rest[i+1] == '=' {
					i += 2
					continue
				}
				return i, nil
			}
		}
		i++
	}
	return 0, fmt.Errorf("fstring-unexpected-end: expected '}' before end of f-string")
}

// findFormatSpecEnd returns the index in rest of the '}' that closes the
// enclosing expression, given from positioned right after the format
// spec's introducing ':'. Nested "{expr}" substitutions inside the
// format spec are brace-balanced but not otherwise interpreted here;
// Decode is what actually segments them out at depth+1.
func findFormatSpecEnd(rest []byte, from int) (int, error) {
	depth := 0
	i := from
	for i < len(rest) {
		switch rest[i] {
		case '{':
			depth++
		case '}':
			if depth == 0 {
				return i, nil
			}
			depth--
		}
		i++
	}
	return 0, fmt.Errorf("fstring-unexpected-end: unterminated format spec")
}
