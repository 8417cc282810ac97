package runner

import (
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/require"

	"github.com/pegrt/pegrt/ast"
	"github.com/pegrt/pegrt/lexer"
)

func TestRunParserBatchAllSucceed(t *testing.T) {
	results, err := RunParserBatch([]Source{
		{Name: "a.py", Lex: lexer.FromString("x")},
		{Name: "b.py", Lex: lexer.FromString("y")},
	}, nameModule, ModeAST, nil)
	require.NoError(t, err)
	require.Len(t, results, 2)
	require.Equal(t, "x", results[0].(*ast.Module).Stmts[0].(*ast.ExprStmt).X.(*ast.Name).Id)
	require.Equal(t, "y", results[1].(*ast.Module).Stmts[0].(*ast.ExprStmt).X.(*ast.Name).Id)
}

func TestRunParserBatchCollectsEveryFailure(t *testing.T) {
	results, err := RunParserBatch([]Source{
		{Name: "good.py", Lex: lexer.FromString("x")},
		{Name: "bad1.py", Lex: lexer.FromString("")},
		{Name: "bad2.py", Lex: lexer.FromString("")},
	}, nameModule, ModeAST, nil)
	require.Error(t, err)
	require.NotNil(t, results[0])
	require.Nil(t, results[1])
	require.Nil(t, results[2])

	merr, ok := err.(*multierror.Error)
	require.True(t, ok)
	require.Len(t, merr.Errors, 2)
	require.Contains(t, merr.Errors[0].Error(), "bad1.py:")
	require.Contains(t, merr.Errors[1].Error(), "bad2.py:")
}
