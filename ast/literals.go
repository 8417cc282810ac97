package ast

import (
	"bytes"
	"strings"

	"github.com/pegrt/pegrt/token"
)

// Arg is a single parameter name, with an optional type annotation, as it
// appears in a function-def parameter list.
type Arg struct {
	ArgPos     token.Position
	Arg        string
	Annotation Expr // nil if unannotated
	ArgEnd     token.Position
}

func (a *Arg) Pos() token.Position { return a.ArgPos }
func (a *Arg) End() token.Position { return a.ArgEnd }

func (a *Arg) String() string {
	if a.Annotation != nil {
		return a.Arg + ": " + a.Annotation.String()
	}
	return a.Arg
}

// Arguments is the canonical parameter-table shape make_arguments builds:
// positional-only, regular positional, *args, keyword-only, and **kwargs
// parameters, plus the defaults that pair with PosArgs (the last
// len(PosDefaults) of them) and with KwOnlyArgs element-wise (a nil entry
// in KwDefaults means that keyword-only parameter is required).
type Arguments struct {
	PosOnlyArgs []*Arg
	PosArgs     []*Arg
	PosDefaults []Expr
	VarArg      *Arg // nil if no *args
	KwOnlyArgs  []*Arg
	KwDefaults  []Expr
	KwArg       *Arg // nil if no **kwargs
}

func (a *Arguments) Pos() token.Position {
	for _, group := range [][]*Arg{a.PosOnlyArgs, a.PosArgs} {
		if len(group) > 0 {
			return group[0].Pos()
		}
	}
	if a.VarArg != nil {
		return a.VarArg.Pos()
	}
	if len(a.KwOnlyArgs) > 0 {
		return a.KwOnlyArgs[0].Pos()
	}
	if a.KwArg != nil {
		return a.KwArg.Pos()
	}
	return token.NoPos
}

func (a *Arguments) End() token.Position {
	if a.KwArg != nil {
		return a.KwArg.End()
	}
	if len(a.KwOnlyArgs) > 0 {
		return a.KwOnlyArgs[len(a.KwOnlyArgs)-1].End()
	}
	if a.VarArg != nil {
		return a.VarArg.End()
	}
	if len(a.PosArgs) > 0 {
		return a.PosArgs[len(a.PosArgs)-1].End()
	}
	if len(a.PosOnlyArgs) > 0 {
		return a.PosOnlyArgs[len(a.PosOnlyArgs)-1].End()
	}
	return token.NoPos
}

func (a *Arguments) String() string {
	var out bytes.Buffer
	var parts []string
	for _, arg := range a.PosOnlyArgs {
		parts = append(parts, arg.String())
	}
	if len(a.PosOnlyArgs) > 0 {
		parts = append(parts, "/")
	}
	for _, arg := range a.PosArgs {
		parts = append(parts, arg.String())
	}
	if a.VarArg != nil {
		parts = append(parts, "*"+a.VarArg.String())
	} else if len(a.KwOnlyArgs) > 0 {
		parts = append(parts, "*")
	}
	for _, arg := range a.KwOnlyArgs {
		parts = append(parts, arg.String())
	}
	if a.KwArg != nil {
		parts = append(parts, "**"+a.KwArg.String())
	}
	out.WriteString(strings.Join(parts, ", "))
	return out.String()
}

// EmptyArguments returns the all-empty Arguments record used when a
// function-def has no parameter list.
func EmptyArguments() *Arguments {
	return &Arguments{}
}

// Alias is a single "name" or "name as asname" entry in an import-from
// statement's import list.
type Alias struct {
	NamePos token.Position
	Name    string
	AsName  string // empty if no "as" clause
	NameEnd token.Position
}

func (a *Alias) Pos() token.Position { return a.NamePos }
func (a *Alias) End() token.Position { return a.NameEnd }

func (a *Alias) String() string {
	if a.AsName != "" {
		return a.Name + " as " + a.AsName
	}
	return a.Name
}
