package ast

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/pegrt/pegrt/token"
)

// Name is an expression node that refers to a variable, or — depending on
// Ctx — binds or deletes one. A single struct covers all three roles rather
// than three node types, matching the source grammar's single name_token
// rule reused across load/store/delete positions.
type Name struct {
	NamePos token.Position
	Id      string
	Ctx     ExprContext
}

func (x *Name) exprNode() {}

func (x *Name) Pos() token.Position { return x.NamePos }
func (x *Name) End() token.Position { return x.NamePos.Advance(len(x.Id)) }

func (x *Name) String() string { return x.Id }

// ConstantKind distinguishes the handful of literal shapes the string
// literal decoder and f-string assembler produce.
type ConstantKind int

const (
	ConstNone ConstantKind = iota
	ConstBool
	ConstInt
	ConstFloat
	ConstStr
	ConstBytes
	ConstEllipsis
)

// Constant is an expression node holding a literal value already decoded by
// the string literal decoder (or produced directly by the lexer, for
// numbers). Value holds the decoded Go representation: bool, int64,
// float64, string, or []byte, matching Kind.
type Constant struct {
	ValuePos token.Position
	ValueEnd token.Position
	Kind     ConstantKind
	Value    any
}

func (x *Constant) exprNode() {}

func (x *Constant) Pos() token.Position { return x.ValuePos }
func (x *Constant) End() token.Position { return x.ValueEnd }

func (x *Constant) String() string {
	switch x.Kind {
	case ConstStr:
		return "'" + x.Value.(string) + "'"
	case ConstBytes:
		return "b'" + string(x.Value.([]byte)) + "'"
	case ConstNone:
		return "None"
	case ConstEllipsis:
		return "..."
	case ConstBool:
		if x.Value.(bool) {
			return "True"
		}
		return "False"
	default:
		return fmt.Sprint(x.Value)
	}
}

// Tuple is an expression node describing a parenthesized or bare sequence
// of elements. Ctx mirrors the source design's context field, replaced here
// by an explicit copy-on-rewrite in astutil.SetExprContext rather than
// in-place mutation.
type Tuple struct {
	Lparen token.Position // zero if the tuple has no surrounding parens
	Elts   []Expr
	Rparen token.Position
	Ctx    ExprContext
}

func (x *Tuple) exprNode() {}

func (x *Tuple) Pos() token.Position {
	if x.Lparen.IsValid() {
		return x.Lparen
	}
	if len(x.Elts) > 0 {
		return x.Elts[0].Pos()
	}
	return token.NoPos
}

func (x *Tuple) End() token.Position {
	if x.Rparen.IsValid() {
		return x.Rparen.Advance(1)
	}
	if len(x.Elts) > 0 {
		return x.Elts[len(x.Elts)-1].End()
	}
	return token.NoPos
}

func (x *Tuple) String() string {
	parts := make([]string, 0, len(x.Elts))
	for _, e := range x.Elts {
		parts = append(parts, e.String())
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// List is an expression node describing a bracketed sequence of elements.
type List struct {
	Lbrack token.Position
	Elts   []Expr
	Rbrack token.Position
	Ctx    ExprContext
}

func (x *List) exprNode() {}

func (x *List) Pos() token.Position { return x.Lbrack }
func (x *List) End() token.Position { return x.Rbrack.Advance(1) }

func (x *List) String() string {
	parts := make([]string, 0, len(x.Elts))
	for _, e := range x.Elts {
		parts = append(parts, e.String())
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Starred is an expression node describing a "*expr" element inside a
// tuple, list, call argument list, or assignment target.
type Starred struct {
	Star  token.Position
	Value Expr
	Ctx   ExprContext
}

func (x *Starred) exprNode() {}

func (x *Starred) Pos() token.Position { return x.Star }
func (x *Starred) End() token.Position {
	if x.Value != nil {
		return x.Value.End()
	}
	return x.Star.Advance(1)
}

func (x *Starred) String() string { return "*" + x.Value.String() }

// Subscript is an expression node describing indexing: value[slice].
type Subscript struct {
	Value  Expr
	Lbrack token.Position
	Slice  Expr
	Rbrack token.Position
	Ctx    ExprContext
}

func (x *Subscript) exprNode() {}

func (x *Subscript) Pos() token.Position { return x.Value.Pos() }
func (x *Subscript) End() token.Position { return x.Rbrack.Advance(1) }

func (x *Subscript) String() string {
	return x.Value.String() + "[" + x.Slice.String() + "]"
}

// Attribute is an expression node describing dotted attribute access:
// value.attr. join_names_with_dot builds the degenerate case where Value is
// itself a Name, producing a single Name with a dotted identifier instead —
// Attribute is reserved for attribute access on a non-name expression.
type Attribute struct {
	Value   Expr
	Dot     token.Position
	Attr    string
	AttrEnd token.Position
	Ctx     ExprContext
}

func (x *Attribute) exprNode() {}

func (x *Attribute) Pos() token.Position { return x.Value.Pos() }
func (x *Attribute) End() token.Position { return x.AttrEnd }

func (x *Attribute) String() string { return x.Value.String() + "." + x.Attr }

// CmpOp enumerates the comparison operators a chained comparison can mix:
// a < b <= c == d.
type CmpOp int

const (
	CmpEq CmpOp = iota
	CmpNotEq
	CmpLt
	CmpLtE
	CmpGt
	CmpGtE
	CmpIs
	CmpIsNot
	CmpIn
	CmpNotIn
)

func (op CmpOp) String() string {
	switch op {
	case CmpEq:
		return "=="
	case CmpNotEq:
		return "!="
	case CmpLt:
		return "<"
	case CmpLtE:
		return "<="
	case CmpGt:
		return ">"
	case CmpGtE:
		return ">="
	case CmpIs:
		return "is"
	case CmpIsNot:
		return "is not"
	case CmpIn:
		return "in"
	case CmpNotIn:
		return "not in"
	default:
		return "?"
	}
}

// Compare is an expression node describing a (possibly chained) comparison:
// left, followed by parallel Ops/Comparators lists of equal length.
type Compare struct {
	Left        Expr
	Ops         []CmpOp
	Comparators []Expr
}

func (x *Compare) exprNode() {}

func (x *Compare) Pos() token.Position { return x.Left.Pos() }
func (x *Compare) End() token.Position {
	if len(x.Comparators) > 0 {
		return x.Comparators[len(x.Comparators)-1].End()
	}
	return x.Left.End()
}

func (x *Compare) String() string {
	var out bytes.Buffer
	out.WriteString(x.Left.String())
	for i, op := range x.Ops {
		out.WriteString(" ")
		out.WriteString(op.String())
		out.WriteString(" ")
		out.WriteString(x.Comparators[i].String())
	}
	return out.String()
}

// BinOp is an expression node for a single binary arithmetic/bitwise
// operator, used by demonstration grammars exercising expect_token-based
// operator parsing.
type BinOp struct {
	Left  Expr
	OpPos token.Position
	Op    string
	Right Expr
}

func (x *BinOp) exprNode() {}

func (x *BinOp) Pos() token.Position { return x.Left.Pos() }
func (x *BinOp) End() token.Position { return x.Right.End() }

func (x *BinOp) String() string {
	return "(" + x.Left.String() + " " + x.Op + " " + x.Right.String() + ")"
}

// FormattedValue is an expression node holding one "{expr!conv:spec}"
// replacement field inside a JoinedStr, as produced by the f-string
// segmenter and assembler.
type FormattedValue struct {
	Lbrace     token.Position
	Value      Expr
	Conversion rune // 0, 's', 'r', or 'a'
	FormatSpec Expr // nil, or a JoinedStr for a nested format spec
	Rbrace     token.Position
}

func (x *FormattedValue) exprNode() {}

func (x *FormattedValue) Pos() token.Position { return x.Lbrace }
func (x *FormattedValue) End() token.Position { return x.Rbrace.Advance(1) }

func (x *FormattedValue) String() string {
	var out bytes.Buffer
	out.WriteString("{")
	out.WriteString(x.Value.String())
	if x.Conversion != 0 {
		out.WriteString("!")
		out.WriteRune(x.Conversion)
	}
	if x.FormatSpec != nil {
		out.WriteString(":")
		out.WriteString(x.FormatSpec.String())
	}
	out.WriteString("}")
	return out.String()
}

// JoinedStr is an expression node describing an f-string's assembled
// value: an ordered sequence of Constant (literal text) and
// FormattedValue nodes, as produced by the f-string assembler's Finish.
type JoinedStr struct {
	ValuePos token.Position
	Values   []Expr
	ValueEnd token.Position
}

func (x *JoinedStr) exprNode() {}

func (x *JoinedStr) Pos() token.Position { return x.ValuePos }
func (x *JoinedStr) End() token.Position { return x.ValueEnd }

func (x *JoinedStr) String() string {
	var out bytes.Buffer
	out.WriteString("f'")
	for _, v := range x.Values {
		out.WriteString(v.String())
	}
	out.WriteString("'")
	return out.String()
}
