package fstring

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pegrt/pegrt/ast"
	"github.com/pegrt/pegrt/token"
)

// nameParser is a grammar-agnostic stand-in for a real expression rule:
// it treats the entire (paren-stripped) source as a bare identifier,
// which is all these tests' expressions ever are.
func nameParser(src string) (ast.Expr, error) {
	return &ast.Name{Id: strings.TrimSpace(src), Ctx: ast.Load}, nil
}

func TestDecodePlainLiteralCollapsesToConstant(t *testing.T) {
	got, err := Decode([]byte("hello"), 0, token.NoPos, token.NoPos, nameParser)
	require.NoError(t, err)
	c, ok := got.(*ast.Constant)
	require.True(t, ok)
	require.Equal(t, "hello", c.Value)
}

func TestDecodeBraceDoublingRoundTrips(t *testing.T) {
	got, err := Decode([]byte("{{x}}"), 0, token.NoPos, token.NoPos, nameParser)
	require.NoError(t, err)
	c, ok := got.(*ast.Constant)
	require.True(t, ok)
	require.Equal(t, "{x}", c.Value)
}

// Scenario 3: f"{x!r:>{w}}" -> joined-string, one formatted-value, value
// name x, conversion 'r', format-spec joined-string ">" + {w}.
func TestDecodeConversionAndNestedFormatSpec(t *testing.T) {
	got, err := Decode([]byte("{x!r:>{w}}"), 0, token.NoPos, token.NoPos, nameParser)
	require.NoError(t, err)
	js, ok := got.(*ast.JoinedStr)
	require.True(t, ok)
	require.Len(t, js.Values, 1)

	fv, ok := js.Values[0].(*ast.FormattedValue)
	require.True(t, ok)
	require.Equal(t, "x", fv.Value.(*ast.Name).Id)
	require.Equal(t, 'r', fv.Conversion)

	spec, ok := fv.FormatSpec.(*ast.JoinedStr)
	require.True(t, ok)
	require.Len(t, spec.Values, 2)
	require.Equal(t, ">", spec.Values[0].(*ast.Constant).Value)
	innerFV, ok := spec.Values[1].(*ast.FormattedValue)
	require.True(t, ok)
	require.Equal(t, "w", innerFV.Value.(*ast.Name).Id)
}

// Scenario 4: f"{x=}" -> joined-string concatenating literal "x=" and a
// formatted-value of x with implicit conversion 'r'.
func TestDecodeDebugFormDefaultsToReprConversion(t *testing.T) {
	got, err := Decode([]byte("{x=}"), 0, token.NoPos, token.NoPos, nameParser)
	require.NoError(t, err)
	js, ok := got.(*ast.JoinedStr)
	require.True(t, ok)
	require.Len(t, js.Values, 2)
	require.Equal(t, "x=", js.Values[0].(*ast.Constant).Value)
	fv, ok := js.Values[1].(*ast.FormattedValue)
	require.True(t, ok)
	require.Equal(t, "x", fv.Value.(*ast.Name).Id)
	require.Equal(t, 'r', fv.Conversion)
	require.Nil(t, fv.FormatSpec)
}

// Scenario 5: f"{\}" -> error kind fstring-backslash.
func TestDecodeBackslashInExpressionIsError(t *testing.T) {
	_, err := Decode([]byte("{\\}"), 0, token.NoPos, token.NoPos, nameParser)
	require.Error(t, err)
	require.Contains(t, err.Error(), "fstring-backslash")
}

func TestDecodeHashInExpressionIsError(t *testing.T) {
	_, err := Decode([]byte("{x #comment}"), 0, token.NoPos, token.NoPos, nameParser)
	require.Error(t, err)
	require.Contains(t, err.Error(), "fstring-hash")
}

func TestDecodeEmptyExpressionIsError(t *testing.T) {
	_, err := Decode([]byte("{}"), 0, token.NoPos, token.NoPos, nameParser)
	require.Error(t, err)
	require.Contains(t, err.Error(), "fstring-empty")
}

func TestDecodeLoneCloseBraceIsError(t *testing.T) {
	_, err := Decode([]byte("x}y"), 0, token.NoPos, token.NoPos, nameParser)
	require.Error(t, err)
	require.Contains(t, err.Error(), "fstring-single-close-brace")
}

func TestDecodeUnexpectedEndIsError(t *testing.T) {
	_, err := Decode([]byte("{x"), 0, token.NoPos, token.NoPos, nameParser)
	require.Error(t, err)
	require.Contains(t, err.Error(), "fstring-unexpected-end")
}

func TestDecodeBadConversionIsError(t *testing.T) {
	_, err := Decode([]byte("{x!z}"), 0, token.NoPos, token.NoPos, nameParser)
	require.Error(t, err)
	require.Contains(t, err.Error(), "fstring-bad-conversion")
}

func TestDecodeNestingDeepIsError(t *testing.T) {
	_, err := Decode([]byte("{x}"), maxRecursionDepth+1, token.NoPos, token.NoPos, nameParser)
	require.Error(t, err)
	require.Contains(t, err.Error(), "fstring-nesting-deep")
}

func TestDecodeBracketDepthBeyondLimitIsError(t *testing.T) {
	var b strings.Builder
	b.WriteString("{")
	for i := 0; i < maxBracketDepth+1; i++ {
		b.WriteString("[")
	}
	b.WriteString("x")
	for i := 0; i < maxBracketDepth+1; i++ {
		b.WriteString("]")
	}
	b.WriteString("}")
	_, err := Decode([]byte(b.String()), 0, token.NoPos, token.NoPos, nameParser)
	require.Error(t, err)
	require.Contains(t, err.Error(), "fstring-paren-deep")
}

func TestDecodeMismatchedBraceIsError(t *testing.T) {
	_, err := Decode([]byte("{(x]}"), 0, token.NoPos, token.NoPos, nameParser)
	require.Error(t, err)
	require.Contains(t, err.Error(), "fstring-mismatched-brace")
}

func TestDecodeLiteralAndExpressionMix(t *testing.T) {
	got, err := Decode([]byte("a={x}, b={y}"), 0, token.NoPos, token.NoPos, nameParser)
	require.NoError(t, err)
	js, ok := got.(*ast.JoinedStr)
	require.True(t, ok)
	require.Len(t, js.Values, 4)
	require.Equal(t, "a=", js.Values[0].(*ast.Constant).Value)
	require.Equal(t, "x", js.Values[1].(*ast.FormattedValue).Value.(*ast.Name).Id)
	require.Equal(t, ", b=", js.Values[2].(*ast.Constant).Value)
	require.Equal(t, "y", js.Values[3].(*ast.FormattedValue).Value.(*ast.Name).Id)
}
