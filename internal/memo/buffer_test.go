package memo

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pegrt/pegrt/token"
)

// fakeLexer issues a fixed token sequence, then ENDMARKER forever, or a
// sticky error once err is set.
type fakeLexer struct {
	toks []token.Kind
	pos  int
	err  error
}

func (f *fakeLexer) Next() (token.Token, error) {
	if f.err != nil {
		return token.Token{}, f.err
	}
	if f.pos >= len(f.toks) {
		return token.Token{Kind: token.ENDMARKER}, nil
	}
	k := f.toks[f.pos]
	f.pos++
	return token.Token{Kind: k, Literal: k.String()}, nil
}

func (f *fakeLexer) Filename() string               { return "<test>" }
func (f *fakeLexer) Lineno() int                    { return 0 }
func (f *fakeLexer) FirstLineno() int               { return 0 }
func (f *fakeLexer) LineStart() int                 { return 0 }
func (f *fakeLexer) MultiLineStart() int            { return 0 }
func (f *fakeLexer) GetLineText(token.Token) string { return "" }

func TestBufferEnsureGrowsByDoubling(t *testing.T) {
	b := NewBuffer(&fakeLexer{toks: []token.Kind{token.NAME, token.NUMBER, token.NAME, token.NUMBER, token.NAME}})
	require.NoError(t, b.Ensure(4))
	require.Equal(t, 5, b.Fill())
	require.Equal(t, token.NAME, b.At(0).Kind)
	require.Equal(t, token.NUMBER, b.At(3).Kind)
}

func TestBufferAtPanicsBeforeEnsure(t *testing.T) {
	b := NewBuffer(&fakeLexer{toks: []token.Kind{token.NAME}})
	require.Panics(t, func() { b.At(5) })
}

func TestBufferStickyLexerError(t *testing.T) {
	want := errors.New("bad char")
	b := NewBuffer(&fakeLexer{toks: nil, err: want})
	err1 := b.Ensure(0)
	require.Error(t, err1)
	err2 := b.Ensure(0)
	require.Equal(t, err1, err2)
}
