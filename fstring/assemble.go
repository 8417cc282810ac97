package fstring

import (
	"github.com/pegrt/pegrt/ast"
	"github.com/pegrt/pegrt/token"
)

// assembler accumulates literal runs and embedded expressions into a
// single joined-string AST node, mirroring SPEC_FULL.md §4.I. The source
// design preallocates 64 inline expression slots before growing; Go's
// append already doubles past any fixed capacity, so that detail is
// represented purely as an initial capacity hint rather than hand-rolled
// growth logic.
type assembler struct {
	pending    []byte
	values     []ast.Expr
	isFString  bool
	start, end token.Position
}

func newAssembler(start, end token.Position) *assembler {
	a := &assembler{start: start, end: end}
	a.values = make([]ast.Expr, 0, 64)
	return a
}

// AppendLiteral concatenates s onto the pending literal run. Empty
// strings are dropped, so two adjacent escape decodes that both produce
// nothing don't force a spurious empty constant into the value list.
func (a *assembler) AppendLiteral(s string) {
	if s == "" {
		return
	}
	a.pending = append(a.pending, s...)
}

// AppendExpression flushes any pending literal as a constant node, then
// appends e, and marks the result as an f-string even if e later turns
// out to be the only value.
func (a *assembler) AppendExpression(e ast.Expr) {
	a.flushPending()
	a.values = append(a.values, e)
	a.isFString = true
}

func (a *assembler) flushPending() {
	if len(a.pending) == 0 {
		return
	}
	a.values = append(a.values, &ast.Constant{
		ValuePos: a.start,
		ValueEnd: a.end,
		Kind:     ast.ConstStr,
		Value:    string(a.pending),
	})
	a.pending = nil
}

// Finish returns the accumulated result: a single constant if the body
// never entered f-mode (plain string concatenation collapsed into one
// literal), otherwise a joined-string node spanning every accumulated
// value.
func (a *assembler) Finish() ast.Expr {
	if !a.isFString {
		return &ast.Constant{
			ValuePos: a.start,
			ValueEnd: a.end,
			Kind:     ast.ConstStr,
			Value:    string(a.pending),
		}
	}
	a.flushPending()
	return &ast.JoinedStr{
		ValuePos: a.start,
		Values:   a.values,
		ValueEnd: a.end,
	}
}
