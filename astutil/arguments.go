package astutil

import "github.com/pegrt/pegrt/ast"

// NameWithDefault pairs a parameter with its default value expression,
// the shape generated rules accumulate a "names_with_default" sequence
// as before calling MakeArguments.
type NameWithDefault struct {
	Arg     *ast.Arg
	Default ast.Expr
}

func names(nds []NameWithDefault) []*ast.Arg {
	out := make([]*ast.Arg, len(nds))
	for i, nd := range nds {
		out[i] = nd.Arg
	}
	return out
}

func defaults(nds []NameWithDefault) []ast.Expr {
	out := make([]ast.Expr, len(nds))
	for i, nd := range nds {
		out[i] = nd.Default
	}
	return out
}

// SlashGroup is the "a, b, c = 1, 2" shaped plain-and-defaulted group
// that appears to the left of a bare "/" parameter-list separator.
type SlashGroup struct {
	Plain       []*ast.Arg
	WithDefault []NameWithDefault
}

// StarEtc holds everything a parameter list can carry after its
// positional parameters: *args (nil if absent), keyword-only parameters
// with their (possibly nil, meaning required) defaults, and **kwargs.
type StarEtc struct {
	VarArg     *ast.Arg
	KwOnlyArgs []*ast.Arg
	KwDefaults []ast.Expr
	KwArg      *ast.Arg
}

// MakeArguments builds the canonical Arguments record from the five
// possible parameter-list fragments a generated rule can produce,
// applying the case table from SPEC_FULL.md §4.E. At most one of
// slashWithoutDefault / slashWithDefault is non-nil, matching the
// grammar's "slash_no_default | slash_with_default" alternation.
func MakeArguments(
	slashWithoutDefault []*ast.Arg,
	slashWithDefault *SlashGroup,
	plain []*ast.Arg,
	withDefault []NameWithDefault,
	starEtc *StarEtc,
) *ast.Arguments {
	args := &ast.Arguments{}

	switch {
	case slashWithoutDefault != nil:
		args.PosOnlyArgs = slashWithoutDefault
		args.PosArgs = append(append([]*ast.Arg{}, plain...), names(withDefault)...)
		args.PosDefaults = defaults(withDefault)
	case slashWithDefault != nil:
		args.PosOnlyArgs = append(append([]*ast.Arg{}, slashWithDefault.Plain...), names(slashWithDefault.WithDefault)...)
		args.PosArgs = append(append([]*ast.Arg{}, plain...), names(withDefault)...)
		args.PosDefaults = append(defaults(slashWithDefault.WithDefault), defaults(withDefault)...)
	case len(plain) > 0 && len(withDefault) > 0:
		args.PosArgs = append(append([]*ast.Arg{}, plain...), names(withDefault)...)
		args.PosDefaults = defaults(withDefault)
	case len(plain) > 0:
		args.PosArgs = plain
	case len(withDefault) > 0:
		args.PosArgs = names(withDefault)
		args.PosDefaults = defaults(withDefault)
	}

	if starEtc != nil {
		args.VarArg = starEtc.VarArg
		args.KwOnlyArgs = starEtc.KwOnlyArgs
		args.KwDefaults = starEtc.KwDefaults
		args.KwArg = starEtc.KwArg
	}
	return args
}
