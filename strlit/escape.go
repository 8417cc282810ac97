package strlit

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/pegrt/pegrt/token"
)

// simpleEscapes is the canonical single-character escape table shared by
// text and byte literals.
var simpleEscapes = map[byte]byte{
	'\n': 0, // line continuation: escape consumed, nothing emitted
	'\\': '\\',
	'\'': '\'',
	'"':  '"',
	'a':  '\a',
	'b':  '\b',
	'f':  '\f',
	'n':  '\n',
	'r':  '\r',
	't':  '\t',
	'v':  '\v',
}

// decodeBytes decodes \-escapes in a (already ASCII-verified) bytes
// literal body. Raw bytes literals pass the body through verbatim.
func (d *Decoder) decodeBytes(body []byte, raw bool, tok token.Token) ([]byte, error) {
	if raw {
		return append([]byte(nil), body...), nil
	}
	var out []byte
	invalidSeen := false
	for i := 0; i < len(body); {
		c := body[i]
		if c != '\\' {
			out = append(out, c)
			i++
			continue
		}
		if i+1 >= len(body) {
			out = append(out, '\\')
			i++
			continue
		}
		next := body[i+1]
		if v, octal, n, ok := decodeOctalOrHex(body, i+1); ok {
			out = append(out, v)
			i += 1 + n
			_ = octal
			continue
		}
		if v, ok := simpleEscapes[next]; ok {
			if next != '\n' {
				out = append(out, v)
			}
			i += 2
			continue
		}
		if !invalidSeen {
			invalidSeen = true
			if err := d.reportInvalidEscape(next, tok); err != nil {
				return nil, err
			}
		}
		out = append(out, '\\', next)
		i += 2
	}
	return out, nil
}

// DecodeLiteralRun decodes the standard escape table (simple escapes,
// \xHH, \ooo, \uNNNN, \UNNNNNNNN, \N{...}) over an already brace-folded
// literal run from an f-string body. It is the entry point the fstring
// package uses to share this package's escape decoder without going
// through the quote/prefix machinery in Decode, since f-string literal
// runs never carry their own quotes.
func DecodeLiteralRun(body []byte, tok token.Token) (string, error) {
	d := &Decoder{}
	return d.decodeText(body, false, tok)
}

// decodeText decodes \-escapes in a non-raw text literal body,
// additionally recognizing \N{...}, \uNNNN and \UNNNNNNNN. Decode runs
// nonASCIIPrepass first, so its bodies arrive ASCII-only; bodies from
// DecodeLiteralRun skip the prepass, and their non-ASCII bytes are copied
// through unchanged.
func (d *Decoder) decodeText(body []byte, raw bool, tok token.Token) (string, error) {
	if raw {
		return string(body), nil
	}
	var out strings.Builder
	invalidSeen := false
	for i := 0; i < len(body); {
		c := body[i]
		if c != '\\' {
			out.WriteByte(c)
			i++
			continue
		}
		if i+1 >= len(body) {
			out.WriteByte('\\')
			i++
			continue
		}
		next := body[i+1]

		switch next {
		case 'N':
			r, n, err := decodeNamedEscape(body, i+2)
			if err != nil {
				return "", err
			}
			out.WriteRune(r)
			i += 2 + n
			continue
		case 'u':
			r, n, ok := decodeHexRune(body, i+2, 4)
			if !ok {
				return "", fmt.Errorf("invalid-escape: malformed \\u escape")
			}
			out.WriteRune(r)
			i += 2 + n
			continue
		case 'U':
			r, n, ok := decodeHexRune(body, i+2, 8)
			if !ok {
				return "", fmt.Errorf("invalid-escape: malformed \\U escape")
			}
			out.WriteRune(r)
			i += 2 + n
			continue
		}

		if v, octal, n, ok := decodeOctalOrHex(body, i+1); ok {
			if octal {
				out.WriteRune(rune(v))
			} else {
				out.WriteByte(v)
			}
			i += 1 + n
			continue
		}
		if v, ok := simpleEscapes[next]; ok {
			if next != '\n' {
				out.WriteByte(v)
			}
			i += 2
			continue
		}

		if !invalidSeen {
			invalidSeen = true
			if err := d.reportInvalidEscape(next, tok); err != nil {
				return "", err
			}
		}
		out.WriteByte('\\')
		out.WriteByte(next)
		i += 2
	}
	return out.String(), nil
}

// reportInvalidEscape implements the first-invalid-escape promotion rule:
// a deprecation diagnostic, promoted to a hard syntax error when the
// decoder is configured to fail on it.
func (d *Decoder) reportInvalidEscape(c byte, tok token.Token) error {
	if d.FailOnInvalidEscape {
		return fmt.Errorf("invalid-escape: unsupported escape sequence '\\%c' at %s", c, tok.Start)
	}
	return nil
}

// decodeOctalOrHex recognizes a \xHH (2 hex digits, returns a byte, not
// an octal) or \ooo (1-3 octal digits) escape starting at body[at]
// (the character right after the backslash). Returns the decoded value,
// whether it was an octal escape, and how many bytes (including the
// introducing x/digit) were consumed.
func decodeOctalOrHex(body []byte, at int) (value byte, isOctal bool, consumed int, ok bool) {
	if at >= len(body) {
		return 0, false, 0, false
	}
	if body[at] == 'x' {
		if at+2 >= len(body) {
			return 0, false, 0, false
		}
		n, err := strconv.ParseUint(string(body[at+1:at+3]), 16, 8)
		if err != nil {
			return 0, false, 0, false
		}
		return byte(n), false, 3, true
	}
	if body[at] < '0' || body[at] > '7' {
		return 0, false, 0, false
	}
	n := 0
	digits := 0
	for digits < 3 && at+digits < len(body) && body[at+digits] >= '0' && body[at+digits] <= '7' {
		n = n*8 + int(body[at+digits]-'0')
		digits++
	}
	return byte(n), true, digits, true
}

func decodeHexRune(body []byte, at, width int) (rune, int, bool) {
	if at+width > len(body) {
		return 0, 0, false
	}
	n, err := strconv.ParseUint(string(body[at:at+width]), 16, 32)
	if err != nil {
		return 0, 0, false
	}
	if n > utf8.MaxRune {
		return 0, 0, false
	}
	return rune(n), width, true
}

// decodeNamedEscape decodes a \N{NAME} escape starting right after the
// "N". Only the handful of names this reference decoder recognizes
// resolve; anything else is an error, since a full Unicode name database
// is out of scope for this library.
func decodeNamedEscape(body []byte, at int) (rune, int, error) {
	if at >= len(body) || body[at] != '{' {
		return 0, 0, fmt.Errorf("invalid-escape: \\N must be followed by {NAME}")
	}
	end := -1
	for i := at + 1; i < len(body); i++ {
		if body[i] == '}' {
			end = i
			break
		}
	}
	if end < 0 {
		return 0, 0, fmt.Errorf("invalid-escape: unterminated \\N{...} escape")
	}
	name := strings.ToUpper(string(body[at+1 : end]))
	if r, ok := namedEscapes[name]; ok {
		return r, end + 1 - at, nil
	}
	return 0, 0, fmt.Errorf("invalid-escape: unknown Unicode name %q", name)
}

// namedEscapes is a small reference table of \N{...} names; a production
// grammar would consult the full Unicode character database instead.
var namedEscapes = map[string]rune{
	"LATIN SMALL LETTER A":  'a',
	"LATIN CAPITAL LETTER A": 'A',
	"BULLET":                '•',
	"EM DASH":                '—',
	"SNOWMAN":                '☃',
}
