package astutil

import (
	"github.com/pegrt/pegrt/ast"
	"github.com/pegrt/pegrt/token"
)

// JoinNamesWithDot builds a new Name whose identifier is "a.Id.b.Id",
// with a source span covering both original names. Used when a dotted
// path (e.g. in a decorator or import target) collapses to a single
// interned name rather than an Attribute chain.
func JoinNamesWithDot(a, b *ast.Name) *ast.Name {
	return &ast.Name{
		NamePos: a.Pos(),
		Id:      a.Id + "." + b.Id,
		Ctx:     ast.Load,
	}
}

// SeqCountDots totals the dot-equivalent width of a sequence of tokens
// used as leading-dot markers in "from ...pkg import x": an ELLIPSIS
// token counts as 3, a DOT token as 1, and any other kind makes the
// whole count invalid (-1), signaling the caller hit a malformed
// sequence rather than a run of dots.
func SeqCountDots(toks []token.Token, ellipsis, dot token.Kind) int {
	total := 0
	for _, t := range toks {
		switch t.Kind {
		case ellipsis:
			total += 3
		case dot:
			total++
		default:
			return -1
		}
	}
	return total
}
