package astutil

import (
	"fmt"

	"github.com/pegrt/pegrt/ast"
)

// SetExprContext structurally copies expr, rewriting its load/store/del
// context. Recognized shapes recurse as needed (tuple and list rewrite
// every element); anything else is returned unchanged, since only the
// assignable expression shapes carry a context at all. This replaces the
// source design's in-place mutation of a shared context field with an
// explicit copy, so the original expression (as parsed, always Load) is
// never silently aliased into two different roles.
func SetExprContext(expr ast.Expr, ctx ast.ExprContext) ast.Expr {
	switch e := expr.(type) {
	case *ast.Name:
		cp := *e
		cp.Ctx = ctx
		return &cp
	case *ast.Tuple:
		cp := *e
		cp.Ctx = ctx
		cp.Elts = make([]ast.Expr, len(e.Elts))
		for i, elt := range e.Elts {
			cp.Elts[i] = SetExprContext(elt, ctx)
		}
		return &cp
	case *ast.List:
		cp := *e
		cp.Ctx = ctx
		cp.Elts = make([]ast.Expr, len(e.Elts))
		for i, elt := range e.Elts {
			cp.Elts[i] = SetExprContext(elt, ctx)
		}
		return &cp
	case *ast.Subscript:
		cp := *e
		cp.Ctx = ctx
		return &cp
	case *ast.Attribute:
		cp := *e
		cp.Ctx = ctx
		return &cp
	case *ast.Starred:
		cp := *e
		cp.Ctx = ctx
		cp.Value = SetExprContext(e.Value, ctx)
		return &cp
	default:
		return expr
	}
}

// ConstructAssignTarget validates and normalizes the LHS of an annotated
// assignment ("target: annotation[ = value]"). List targets and
// multi-element tuple targets are rejected outright (Python disallows
// both — there is no sensible per-element annotation); a single-element
// tuple target unwraps to its sole element, matching CPython's pegen
// behavior of treating "(x): int = 1" the same as "x: int = 1".
func ConstructAssignTarget(node ast.Expr) (ast.Expr, error) {
	switch n := node.(type) {
	case *ast.List:
		return nil, fmt.Errorf("only single target (not list) can be annotated")
	case *ast.Tuple:
		if len(n.Elts) != 1 {
			return nil, fmt.Errorf("only single target (not tuple) can be annotated")
		}
		return n.Elts[0], nil
	default:
		return node, nil
	}
}
