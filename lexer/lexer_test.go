package lexer

import (
	"testing"

	"github.com/pegrt/pegrt/token"
)

func collect(t *testing.T, src string) []token.Token {
	t.Helper()
	l := FromString(src)
	var toks []token.Token
	for {
		tok, err := l.Next()
		if err != nil {
			t.Fatalf("unexpected lexer error for %q: %v", src, err)
		}
		toks = append(toks, tok)
		if tok.Kind == token.ENDMARKER {
			return toks
		}
	}
}

func TestLexerNamesAndNumbers(t *testing.T) {
	toks := collect(t, "x = 1 + 2.5")
	kinds := []token.Kind{token.NAME, ASSIGN, token.NUMBER, PLUS, token.NUMBER, token.ENDMARKER}
	if len(toks) != len(kinds) {
		t.Fatalf("expected %d tokens, got %d: %+v", len(kinds), len(toks), toks)
	}
	for i, k := range kinds {
		if toks[i].Kind != k {
			t.Fatalf("token %d: expected kind %v, got %v (%q)", i, k, toks[i].Kind, toks[i].Literal)
		}
	}
	if toks[0].Literal != "x" || toks[2].Literal != "1" || toks[4].Literal != "2.5" {
		t.Fatalf("unexpected literals: %+v", toks)
	}
}

func TestLexerStringPrefixesAndTripleQuote(t *testing.T) {
	cases := []string{
		`"hello"`,
		`'hello'`,
		`r"raw\n"`,
		`b"bytes"`,
		`rb"rawbytes"`,
		`f"x={x}"`,
		`"""triple
quoted"""`,
	}
	for _, src := range cases {
		toks := collect(t, src)
		if len(toks) != 2 || toks[0].Kind != token.STRING || toks[0].Literal != src {
			t.Fatalf("expected a single STRING token spanning the whole input for %q, got %+v", src, toks)
		}
	}
}

func TestLexerEscapedQuoteDoesNotEndString(t *testing.T) {
	toks := collect(t, `"a\"b"`)
	if len(toks) != 2 || toks[0].Kind != token.STRING {
		t.Fatalf("expected one STRING token, got %+v", toks)
	}
}

func TestLexerUnterminatedStringIsSticky(t *testing.T) {
	l := FromString(`"abc`)
	_, err := l.Next()
	if err == nil {
		t.Fatalf("expected an error for an unterminated string")
	}
	_, err2 := l.Next()
	if err2 != err {
		t.Fatalf("expected the first tokenizer error to be sticky, got a different error")
	}
}

func TestLexerOperatorsLongestMatchFirst(t *testing.T) {
	toks := collect(t, "a == b != c <= d >= e ** f // g ...")
	var kinds []token.Kind
	for _, tok := range toks {
		kinds = append(kinds, tok.Kind)
	}
	want := []token.Kind{
		token.NAME, EQ, token.NAME, NEQ, token.NAME, LE, token.NAME, GE,
		token.NAME, POW, token.NAME, FLOORDIV, token.NAME, ELLIPSIS, token.ENDMARKER,
	}
	if len(kinds) != len(want) {
		t.Fatalf("expected %d tokens, got %d: %+v", len(want), len(kinds), toks)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Fatalf("token %d: expected %v got %v", i, want[i], kinds[i])
		}
	}
}

func TestLexerSkipsCommentsAndTracksNewlines(t *testing.T) {
	toks := collect(t, "x = 1 # comment\ny = 2")
	var kinds []token.Kind
	for _, tok := range toks {
		kinds = append(kinds, tok.Kind)
	}
	want := []token.Kind{
		token.NAME, ASSIGN, token.NUMBER, token.NEWLINE,
		token.NAME, ASSIGN, token.NUMBER, token.ENDMARKER,
	}
	if len(kinds) != len(want) {
		t.Fatalf("expected %d tokens, got %d: %+v", len(want), len(kinds), toks)
	}
	// the "y" token should be reported on line 1 (0-indexed)
	if toks[4].Start.Line != 1 {
		t.Fatalf("expected y on 0-indexed line 1, got %d", toks[4].Start.Line)
	}
}

func TestGetLineText(t *testing.T) {
	l := FromString("first\nsecond line\nthird")
	var last token.Token
	for {
		tok, err := l.Next()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tok.Kind == token.NAME && tok.Literal == "second" {
			last = tok
		}
		if tok.Kind == token.ENDMARKER {
			break
		}
	}
	if got := l.GetLineText(last); got != "second line" {
		t.Fatalf("expected %q, got %q", "second line", got)
	}
}
