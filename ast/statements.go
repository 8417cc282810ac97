package ast

import (
	"bytes"
	"strings"

	"github.com/pegrt/pegrt/token"
)

// Module is the root node produced by a full-module parse: an ordered list
// of top-level statements.
type Module struct {
	Stmts []Stmt
}

func (x *Module) stmtNode() {}

func (x *Module) Pos() token.Position {
	if len(x.Stmts) > 0 {
		return x.Stmts[0].Pos()
	}
	return token.NoPos
}

func (x *Module) End() token.Position {
	if len(x.Stmts) > 0 {
		return x.Stmts[len(x.Stmts)-1].End()
	}
	return token.NoPos
}

func (x *Module) String() string {
	var out bytes.Buffer
	for i, s := range x.Stmts {
		if i > 0 {
			out.WriteString("\n")
		}
		out.WriteString(s.String())
	}
	return out.String()
}

// Assign is a statement node for "targets = value", where Targets holds
// one element for a simple assignment and more than one for chained
// assignment ("a = b = value"). Each target has already passed through
// astutil.SetExprContext(target, Store).
type Assign struct {
	Targets []Expr
	Eq      token.Position
	Value   Expr
}

func (x *Assign) stmtNode() {}

func (x *Assign) Pos() token.Position { return x.Targets[0].Pos() }
func (x *Assign) End() token.Position { return x.Value.End() }

func (x *Assign) String() string {
	var out bytes.Buffer
	targets := make([]string, 0, len(x.Targets))
	for _, t := range x.Targets {
		targets = append(targets, t.String())
	}
	out.WriteString(strings.Join(targets, " = "))
	out.WriteString(" = ")
	out.WriteString(x.Value.String())
	return out.String()
}

// AnnAssign is a statement node for "target: annotation" or
// "target: annotation = value". Target has already passed through
// astutil.ConstructAssignTarget, which rejects list and multi-element
// tuple targets.
type AnnAssign struct {
	Target     Expr
	Colon      token.Position
	Annotation Expr
	Eq         token.Position // zero if there is no value
	Value      Expr           // nil if there is no value
}

func (x *AnnAssign) stmtNode() {}

func (x *AnnAssign) Pos() token.Position { return x.Target.Pos() }
func (x *AnnAssign) End() token.Position {
	if x.Value != nil {
		return x.Value.End()
	}
	return x.Annotation.End()
}

func (x *AnnAssign) String() string {
	var out bytes.Buffer
	out.WriteString(x.Target.String())
	out.WriteString(": ")
	out.WriteString(x.Annotation.String())
	if x.Value != nil {
		out.WriteString(" = ")
		out.WriteString(x.Value.String())
	}
	return out.String()
}

// ImportFrom is a statement node for "from [dots] module import alias,
// ...". Level is the leading-dot count computed by astutil.SeqCountDots;
// Module is empty for a bare "from . import x".
type ImportFrom struct {
	From    token.Position
	Level   int
	Module  string
	Names   []*Alias
	StarPos token.Position // set instead of Names for "from x import *"
}

func (x *ImportFrom) stmtNode() {}

func (x *ImportFrom) Pos() token.Position { return x.From }
func (x *ImportFrom) End() token.Position {
	if len(x.Names) > 0 {
		return x.Names[len(x.Names)-1].End()
	}
	if x.StarPos.IsValid() {
		return x.StarPos.Advance(1)
	}
	return x.From.Advance(4) // len("from")
}

func (x *ImportFrom) String() string {
	var out bytes.Buffer
	out.WriteString("from ")
	out.WriteString(strings.Repeat(".", x.Level))
	out.WriteString(x.Module)
	out.WriteString(" import ")
	if x.StarPos.IsValid() {
		out.WriteString("*")
		return out.String()
	}
	names := make([]string, 0, len(x.Names))
	for _, n := range x.Names {
		names = append(names, n.String())
	}
	out.WriteString(strings.Join(names, ", "))
	return out.String()
}

// FunctionDef is a statement node for "def name(args) -> returns: body",
// with decorators attached after the fact by astutil's decorator
// attachment helper.
type FunctionDef struct {
	Decorators []Expr
	Def        token.Position
	Name       string
	Args       *Arguments
	Returns    Expr // nil if unannotated
	Body       []Stmt
	BodyEnd    token.Position
}

func (x *FunctionDef) stmtNode() {}

func (x *FunctionDef) Pos() token.Position {
	if len(x.Decorators) > 0 {
		return x.Decorators[0].Pos()
	}
	return x.Def
}

func (x *FunctionDef) End() token.Position { return x.BodyEnd }

func (x *FunctionDef) String() string {
	var out bytes.Buffer
	for _, d := range x.Decorators {
		out.WriteString("@")
		out.WriteString(d.String())
		out.WriteString("\n")
	}
	out.WriteString("def ")
	out.WriteString(x.Name)
	out.WriteString("(")
	if x.Args != nil {
		out.WriteString(x.Args.String())
	}
	out.WriteString(")")
	if x.Returns != nil {
		out.WriteString(" -> ")
		out.WriteString(x.Returns.String())
	}
	out.WriteString(":")
	return out.String()
}

// ClassDef is a statement node for "class name(bases): body".
type ClassDef struct {
	Decorators []Expr
	Class      token.Position
	Name       string
	Bases      []Expr
	Body       []Stmt
	BodyEnd    token.Position
}

func (x *ClassDef) stmtNode() {}

func (x *ClassDef) Pos() token.Position {
	if len(x.Decorators) > 0 {
		return x.Decorators[0].Pos()
	}
	return x.Class
}

func (x *ClassDef) End() token.Position { return x.BodyEnd }

func (x *ClassDef) String() string {
	var out bytes.Buffer
	for _, d := range x.Decorators {
		out.WriteString("@")
		out.WriteString(d.String())
		out.WriteString("\n")
	}
	out.WriteString("class ")
	out.WriteString(x.Name)
	if len(x.Bases) > 0 {
		bases := make([]string, 0, len(x.Bases))
		for _, b := range x.Bases {
			bases = append(bases, b.String())
		}
		out.WriteString("(")
		out.WriteString(strings.Join(bases, ", "))
		out.WriteString(")")
	}
	out.WriteString(":")
	return out.String()
}

// ExprStmt wraps a bare expression used as a statement, e.g. a call made
// only for its side effects.
type ExprStmt struct {
	X Expr
}

func (x *ExprStmt) stmtNode() {}

func (x *ExprStmt) Pos() token.Position { return x.X.Pos() }
func (x *ExprStmt) End() token.Position { return x.X.End() }
func (x *ExprStmt) String() string      { return x.X.String() }

// Pass is the no-op statement. The demonstration grammar accepts it, like
// any other simple statement, as a single-line function body.
type Pass struct {
	PassPos token.Position
}

func (x *Pass) stmtNode() {}

func (x *Pass) Pos() token.Position { return x.PassPos }
func (x *Pass) End() token.Position { return x.PassPos.Advance(4) }
func (x *Pass) String() string      { return "pass" }
