package fstring

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pegrt/pegrt/ast"
	"github.com/pegrt/pegrt/token"
)

func TestAssemblerPureLiteralCollapsesToConstant(t *testing.T) {
	a := newAssembler(token.NoPos, token.NoPos)
	a.AppendLiteral("hello ")
	a.AppendLiteral("world")
	got := a.Finish()
	c, ok := got.(*ast.Constant)
	require.True(t, ok)
	require.Equal(t, "hello world", c.Value)
}

func TestAssemblerEmptyLiteralsAreDropped(t *testing.T) {
	a := newAssembler(token.NoPos, token.NoPos)
	a.AppendLiteral("")
	a.AppendExpression(&ast.Name{Id: "x"})
	a.AppendLiteral("")
	got := a.Finish().(*ast.JoinedStr)
	require.Len(t, got.Values, 1)
}

func TestAssemblerFlushesPendingBeforeExpression(t *testing.T) {
	a := newAssembler(token.NoPos, token.NoPos)
	a.AppendLiteral("a=")
	a.AppendExpression(&ast.Name{Id: "x"})
	got := a.Finish().(*ast.JoinedStr)
	require.Len(t, got.Values, 2)
	require.Equal(t, "a=", got.Values[0].(*ast.Constant).Value)
	require.Equal(t, "x", got.Values[1].(*ast.Name).Id)
}
