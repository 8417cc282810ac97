// Package ast defines the minimal abstract syntax tree shapes this
// library's components touch: the kinds enumerated in SPEC_FULL.md §3
// (name, constant, tuple, list, subscript, attribute, starred,
// comparison, function-def, class-def, arguments, alias, joined-string,
// formatted-value, module) plus the handful of statement shapes
// (assignment, annotated assignment, import-from) needed to exercise
// them end to end. A real grammar compiler owns the full node set; this
// package is the "opaque handle tagged with a kind discriminator" the
// spec describes, rendered as a Go interface with a type switch rather
// than a void pointer plus an integer tag.
package ast

import "github.com/pegrt/pegrt/token"

// Node represents a portion of the syntax tree. All nodes carry position
// information indicating where they appear in the source code.
type Node interface {
	// Pos returns the position of the first character belonging to the
	// node.
	Pos() token.Position

	// End returns the position of the first character immediately after
	// the node.
	End() token.Position

	// String returns a human friendly representation of the node. This
	// should be similar to the original source code, but not necessarily
	// identical.
	String() string
}

// Stmt represents a statement node: it causes a side effect but does not
// itself evaluate to a value.
type Stmt interface {
	Node
	stmtNode()
}

// Expr represents an expression node: it evaluates to a value and may be
// embedded within other expressions.
type Expr interface {
	Node
	exprNode()
}

// ExprContext describes whether an expression appears as a load, store,
// or delete target. This replaces the source design's runtime mutation of
// an expression's context field with an explicit, idempotent-replacing
// rewrite (see astutil.SetExprContext).
type ExprContext int

const (
	Load ExprContext = iota
	Store
	Del
)

func (c ExprContext) String() string {
	switch c {
	case Store:
		return "store"
	case Del:
		return "del"
	default:
		return "load"
	}
}

// BadExpr represents an expression containing syntax errors. It lets a
// caller build a partial tree around a failure without a nil entry,
// mirroring the source's "dummy" placeholders but typed.
type BadExpr struct {
	From token.Position
	To   token.Position
}

func (x *BadExpr) exprNode()           {}
func (x *BadExpr) Pos() token.Position { return x.From }
func (x *BadExpr) End() token.Position { return x.To }
func (x *BadExpr) String() string      { return "<bad expression>" }

// BadStmt is the statement-level counterpart of BadExpr.
type BadStmt struct {
	From token.Position
	To   token.Position
}

func (x *BadStmt) stmtNode()           {}
func (x *BadStmt) Pos() token.Position { return x.From }
func (x *BadStmt) End() token.Position { return x.To }
func (x *BadStmt) String() string      { return "<bad statement>" }
