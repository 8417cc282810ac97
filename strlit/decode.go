// Package strlit decodes the raw bytes of a STRING token — prefix letters,
// quote delimiters, and (for non-f-strings) backslash escapes — into an
// ast.Constant. F-mode bodies are handed off to the fstring package rather
// than decoded here.
package strlit

import (
	"fmt"
	"math"

	"github.com/pegrt/pegrt/ast"
	"github.com/pegrt/pegrt/token"
)

// Prefix records which prefix letters were present on a STRING token, in
// any order, each at most once.
type Prefix struct {
	Bytes bool // b/B
	Raw   bool // r/R
	U     bool // u/U — accepted, remembered for the "u" kind tag, no effect
	FMode bool // f/F
}

// ParsePrefix consumes the leading prefix letters of body, returning the
// recognized flags and the remaining bytes (starting at the opening
// quote). An internal error is returned for a prefix combination the
// lexer should never produce (bytes+u, bytes+f), since that indicates a
// grammar/lexer bug rather than user input.
func ParsePrefix(body []byte) (Prefix, []byte, error) {
	var p Prefix
	i := 0
loop:
	for i < len(body) {
		switch body[i] {
		case 'b', 'B':
			p.Bytes = true
		case 'r', 'R':
			p.Raw = true
		case 'u', 'U':
			p.U = true
		case 'f', 'F':
			p.FMode = true
		default:
			break loop
		}
		i++
	}
	if p.Bytes && p.U {
		return p, nil, fmt.Errorf("strlit: invalid prefix combination b+u")
	}
	if p.Bytes && p.FMode {
		return p, nil, fmt.Errorf("strlit: invalid prefix combination b+f")
	}
	return p, body[i:], nil
}

// SplitQuotes strips the opening and closing quote delimiters from rest
// (the output of ParsePrefix), reporting whether the literal was
// triple-quoted. It fails if the trailing quote doesn't match, or if the
// resulting body would exceed math.MaxInt32 bytes.
func SplitQuotes(rest []byte) (quote byte, triple bool, body []byte, err error) {
	if len(rest) == 0 {
		return 0, false, nil, fmt.Errorf("strlit: empty literal body")
	}
	quote = rest[0]
	if quote != '\'' && quote != '"' {
		return 0, false, nil, fmt.Errorf("strlit: expected quote, got %q", rest[0])
	}
	start := 1
	if len(rest) >= 3 && rest[1] == quote && rest[2] == quote {
		triple = true
		start = 3
	}
	end := len(rest)
	width := 1
	if triple {
		width = 3
	}
	if end-start < width {
		return 0, false, nil, fmt.Errorf("strlit: unterminated literal")
	}
	for k := 0; k < width; k++ {
		if rest[end-1-k] != quote {
			return 0, false, nil, fmt.Errorf("strlit: mismatched closing quote")
		}
	}
	body = rest[start : end-width]
	if len(body) > math.MaxInt32 {
		return 0, false, nil, fmt.Errorf("strlit: literal body exceeds maximum length")
	}
	return quote, triple, body, nil
}

// Decoder owns the diagnostic policy applied while decoding escapes
// (the invalid-escape promotion rule from SPEC_FULL.md §7). The token
// used to anchor any error it reports is passed to Decode per call.
type Decoder struct {
	// FailOnInvalidEscape promotes the first invalid escape from a
	// deprecation warning to a hard syntax error.
	FailOnInvalidEscape bool
}

// Decode turns the full raw bytes of a STRING token (prefix + quotes +
// body) into a constant AST node. F-mode literals are rejected here —
// callers must route them to the fstring package before ever reaching
// Decode.
func (d *Decoder) Decode(tok token.Token) (*ast.Constant, error) {
	prefix, rest, err := ParsePrefix([]byte(tok.Literal))
	if err != nil {
		return nil, err
	}
	if prefix.FMode {
		return nil, fmt.Errorf("strlit: Decode does not handle f-mode literals")
	}
	_, _, body, err := SplitQuotes(rest)
	if err != nil {
		return nil, err
	}

	kind := ast.ConstStr
	var value any

	switch {
	case prefix.Bytes:
		kind = ast.ConstBytes
		if !prefix.Raw {
			if err := requireASCII(body); err != nil {
				return nil, err
			}
		}
		decoded, err := d.decodeBytes(body, prefix.Raw, tok)
		if err != nil {
			return nil, err
		}
		value = decoded
	default:
		text := body
		if !prefix.Raw {
			text, err = nonASCIIPrepass(text)
			if err != nil {
				return nil, err
			}
		}
		decoded, err := d.decodeText(text, prefix.Raw, tok)
		if err != nil {
			return nil, err
		}
		value = decoded
	}

	return &ast.Constant{
		ValuePos: tok.Start,
		ValueEnd: tok.End,
		Kind:     kind,
		Value:    value,
	}, nil
}

func requireASCII(body []byte) error {
	for _, b := range body {
		if b >= 0x80 {
			return fmt.Errorf("bytes-non-ascii: non-ASCII byte 0x%02x in bytes literal", b)
		}
	}
	return nil
}
