package astutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pegrt/pegrt/ast"
)

func arg(name string) *ast.Arg { return &ast.Arg{Arg: name} }

func TestEmptyArguments(t *testing.T) {
	a := ast.EmptyArguments()
	require.Empty(t, a.PosOnlyArgs)
	require.Empty(t, a.PosArgs)
	require.Empty(t, a.PosDefaults)
	require.Nil(t, a.VarArg)
	require.Empty(t, a.KwOnlyArgs)
	require.Empty(t, a.KwDefaults)
	require.Nil(t, a.KwArg)
}

func TestMakeArgumentsSlashWithoutDefault(t *testing.T) {
	got := MakeArguments(
		[]*ast.Arg{arg("a"), arg("b")},
		nil,
		[]*ast.Arg{arg("c")},
		[]NameWithDefault{{Arg: arg("d"), Default: &ast.Constant{Value: int64(1)}}},
		nil,
	)
	require.Equal(t, []*ast.Arg{arg("a"), arg("b")}, got.PosOnlyArgs)
	require.Equal(t, []string{"c", "d"}, argNames(got.PosArgs))
	require.Len(t, got.PosDefaults, 1)
}

func TestMakeArgumentsSlashWithDefault(t *testing.T) {
	got := MakeArguments(
		nil,
		&SlashGroup{
			Plain:       []*ast.Arg{arg("a")},
			WithDefault: []NameWithDefault{{Arg: arg("b"), Default: &ast.Constant{Value: int64(2)}}},
		},
		[]*ast.Arg{arg("c")},
		nil,
		nil,
	)
	require.Equal(t, []string{"a", "b"}, argNames(got.PosOnlyArgs))
	require.Equal(t, []string{"c"}, argNames(got.PosArgs))
	require.Len(t, got.PosDefaults, 1)
}

func TestMakeArgumentsPlainAndWithDefault(t *testing.T) {
	got := MakeArguments(
		nil, nil,
		[]*ast.Arg{arg("a")},
		[]NameWithDefault{{Arg: arg("b"), Default: &ast.Constant{Value: int64(3)}}},
		nil,
	)
	require.Equal(t, []string{"a", "b"}, argNames(got.PosArgs))
	require.Len(t, got.PosDefaults, 1)
	require.Empty(t, got.PosOnlyArgs)
}

func TestMakeArgumentsPlainOnly(t *testing.T) {
	got := MakeArguments(nil, nil, []*ast.Arg{arg("a"), arg("b")}, nil, nil)
	require.Equal(t, []string{"a", "b"}, argNames(got.PosArgs))
	require.Empty(t, got.PosDefaults)
}

func TestMakeArgumentsWithDefaultOnly(t *testing.T) {
	got := MakeArguments(nil, nil, nil, []NameWithDefault{
		{Arg: arg("a"), Default: &ast.Constant{Value: int64(1)}},
	}, nil)
	require.Equal(t, []string{"a"}, argNames(got.PosArgs))
	require.Len(t, got.PosDefaults, 1)
}

func TestMakeArgumentsAllEmpty(t *testing.T) {
	got := MakeArguments(nil, nil, nil, nil, nil)
	require.Empty(t, got.PosOnlyArgs)
	require.Empty(t, got.PosArgs)
	require.Empty(t, got.PosDefaults)
}

func TestMakeArgumentsStarEtcPassthrough(t *testing.T) {
	se := &StarEtc{
		VarArg:     arg("args"),
		KwOnlyArgs: []*ast.Arg{arg("k")},
		KwDefaults: []ast.Expr{nil},
		KwArg:      arg("kwargs"),
	}
	got := MakeArguments(nil, nil, []*ast.Arg{arg("a")}, nil, se)
	require.Equal(t, "args", got.VarArg.Arg)
	require.Equal(t, "kwargs", got.KwArg.Arg)
	require.Equal(t, []string{"k"}, argNames(got.KwOnlyArgs))
}

func argNames(args []*ast.Arg) []string {
	out := make([]string, len(args))
	for i, a := range args {
		out[i] = a.Arg
	}
	return out
}
