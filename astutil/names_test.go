package astutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pegrt/pegrt/ast"
	"github.com/pegrt/pegrt/token"
)

func TestJoinNamesWithDot(t *testing.T) {
	a := &ast.Name{NamePos: token.Position{Char: 0}, Id: "os", Ctx: ast.Load}
	b := &ast.Name{NamePos: token.Position{Char: 3}, Id: "path", Ctx: ast.Load}

	joined := JoinNamesWithDot(a, b)
	require.Equal(t, "os.path", joined.Id)
	require.Equal(t, ast.Load, joined.Ctx)
	require.Equal(t, a.Pos(), joined.Pos())
}

func TestSeqCountDots(t *testing.T) {
	const (
		ellipsis token.Kind = token.FirstOperator + 1
		dot      token.Kind = token.FirstOperator + 2
		other    token.Kind = token.FirstOperator + 3
	)

	cases := []struct {
		name string
		toks []token.Token
		want int
	}{
		{"empty", nil, 0},
		{"single dot", []token.Token{{Kind: dot}}, 1},
		{"single ellipsis", []token.Token{{Kind: ellipsis}}, 3},
		{"mixed run", []token.Token{{Kind: ellipsis}, {Kind: dot}, {Kind: dot}}, 5},
		{"other kind invalidates", []token.Token{{Kind: dot}, {Kind: other}}, -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, SeqCountDots(tc.toks, ellipsis, dot))
		})
	}
}
