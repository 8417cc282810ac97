package ast

import "iter"

// Visitor defines the interface for AST traversal. If Visit returns nil,
// children of the node are not visited. Otherwise, the returned Visitor
// is used to visit children.
type Visitor interface {
	Visit(node Node) (w Visitor)
}

// children returns the direct child nodes of n, in source order, skipping
// any nil entries (e.g. an AnnAssign with no value).
func children(n Node) []Node {
	var out []Node
	add := func(c Node) {
		if c == nil {
			return
		}
		out = append(out, c)
	}
	switch n := n.(type) {
	case *Module:
		for _, s := range n.Stmts {
			add(s)
		}
	case *ExprStmt:
		add(n.X)
	case *Assign:
		for _, t := range n.Targets {
			add(t)
		}
		add(n.Value)
	case *AnnAssign:
		add(n.Target)
		add(n.Annotation)
		add(n.Value)
	case *ImportFrom:
		for _, a := range n.Names {
			add(a)
		}
	case *FunctionDef:
		for _, d := range n.Decorators {
			add(d)
		}
		if n.Args != nil {
			add(n.Args)
		}
		add(n.Returns)
		for _, s := range n.Body {
			add(s)
		}
	case *ClassDef:
		for _, d := range n.Decorators {
			add(d)
		}
		for _, b := range n.Bases {
			add(b)
		}
		for _, s := range n.Body {
			add(s)
		}
	case *Arguments:
		for _, group := range [][]*Arg{n.PosOnlyArgs, n.PosArgs, n.KwOnlyArgs} {
			for _, a := range group {
				if a.Annotation != nil {
					add(a.Annotation)
				}
			}
		}
		for _, d := range n.PosDefaults {
			add(d)
		}
		for _, d := range n.KwDefaults {
			add(d)
		}
		if n.VarArg != nil && n.VarArg.Annotation != nil {
			add(n.VarArg.Annotation)
		}
		if n.KwArg != nil && n.KwArg.Annotation != nil {
			add(n.KwArg.Annotation)
		}
	case *Tuple:
		for _, e := range n.Elts {
			add(e)
		}
	case *List:
		for _, e := range n.Elts {
			add(e)
		}
	case *Starred:
		add(n.Value)
	case *Subscript:
		add(n.Value)
		add(n.Slice)
	case *Attribute:
		add(n.Value)
	case *Compare:
		add(n.Left)
		for _, c := range n.Comparators {
			add(c)
		}
	case *BinOp:
		add(n.Left)
		add(n.Right)
	case *FormattedValue:
		add(n.Value)
		add(n.FormatSpec)
	case *JoinedStr:
		for _, v := range n.Values {
			add(v)
		}
	case *Name, *Constant, *BadExpr, *BadStmt, *Alias:
		// leaf nodes
	}
	return out
}

// Walk traverses an AST in depth-first order. It starts by calling
// v.Visit(node); if the returned visitor w is not nil, Walk is invoked
// recursively with visitor w for each of the non-nil children of node.
func Walk(v Visitor, node Node) {
	if v = v.Visit(node); v == nil {
		return
	}
	for _, child := range children(node) {
		Walk(v, child)
	}
}

// Inspect traverses an AST in depth-first order. It calls f(node) for each
// node; if f returns true, Inspect invokes f recursively for each of the
// non-nil children of node.
func Inspect(node Node, f func(Node) bool) {
	Walk(inspector(f), node)
}

type inspector func(Node) bool

func (f inspector) Visit(node Node) Visitor {
	if f(node) {
		return f
	}
	return nil
}

// Preorder returns an iterator over all the nodes of the AST rooted at node
// in depth-first preorder.
func Preorder(root Node) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		var visit func(Node) bool
		visit = func(n Node) bool {
			if !yield(n) {
				return false
			}
			for _, child := range children(n) {
				if !visit(child) {
					return false
				}
			}
			return true
		}
		visit(root)
	}
}
