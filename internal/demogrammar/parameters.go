package demogrammar

import (
	"github.com/pegrt/pegrt/ast"
	"github.com/pegrt/pegrt/astutil"
	"github.com/pegrt/pegrt/lexer"
	"github.com/pegrt/pegrt/parser"
	"github.com/pegrt/pegrt/token"
)

// paramNoDefault is a bare "name[: annotation]" parameter.
func paramNoDefault(s *parser.State) (*ast.Arg, bool) {
	tok, ok := s.ExpectToken(token.NAME)
	if !ok {
		return nil, false
	}
	arg := &ast.Arg{ArgPos: tok.Start, Arg: tok.Literal, ArgEnd: tok.End}
	if _, ok := s.ExpectToken(lexer.COLON); ok {
		ann, ok := sum(s)
		if !ok {
			return nil, false
		}
		arg.Annotation = ann
		arg.ArgEnd = ann.End()
	}
	return arg, true
}

// paramWithDefault is "name[: annotation] = default".
func paramWithDefault(s *parser.State) (astutil.NameWithDefault, bool) {
	start := s.Mark()
	arg, ok := paramNoDefault(s)
	if !ok {
		return astutil.NameWithDefault{}, false
	}
	if _, ok := s.ExpectToken(lexer.ASSIGN); !ok {
		s.Reset(start)
		return astutil.NameWithDefault{}, false
	}
	def, ok := sum(s)
	if !ok {
		s.Reset(start)
		return astutil.NameWithDefault{}, false
	}
	return astutil.NameWithDefault{Arg: arg, Default: def}, true
}

// gatherParams accumulates a comma-separated run of parameters, trying
// the defaulted form first at each position since it is the longer match.
func gatherParams(s *parser.State) (plain []*ast.Arg, withDefault []astutil.NameWithDefault) {
	for {
		mark := s.Mark()
		if nd, ok := paramWithDefault(s); ok {
			withDefault = append(withDefault, nd)
		} else {
			s.Reset(mark)
			a, ok := paramNoDefault(s)
			if !ok {
				s.Reset(mark)
				return plain, withDefault
			}
			plain = append(plain, a)
		}
		if _, ok := s.ExpectToken(lexer.COMMA); !ok {
			return plain, withDefault
		}
	}
}

// parseStarEtc parses the "*args, kwonly..., **kwargs" tail of a
// parameter list, if present.
func parseStarEtc(s *parser.State) (*astutil.StarEtc, bool) {
	if _, ok := s.ExpectToken(lexer.STAR); ok {
		var varArg *ast.Arg
		if a, ok := paramNoDefault(s); ok {
			varArg = a
		}
		var kwOnly []*ast.Arg
		var kwDefaults []ast.Expr
		var kwArg *ast.Arg
	loop:
		for {
			mark := s.Mark()
			if _, ok := s.ExpectToken(lexer.COMMA); !ok {
				break loop
			}
			if _, ok := s.ExpectToken(lexer.POW); ok {
				a, ok := paramNoDefault(s)
				if !ok {
					s.Reset(mark)
					break loop
				}
				kwArg = a
				break loop
			}
			if nd, ok := paramWithDefault(s); ok {
				kwOnly = append(kwOnly, nd.Arg)
				kwDefaults = append(kwDefaults, nd.Default)
				continue loop
			}
			if a, ok := paramNoDefault(s); ok {
				kwOnly = append(kwOnly, a)
				kwDefaults = append(kwDefaults, nil)
				continue loop
			}
			s.Reset(mark)
			break loop
		}
		return &astutil.StarEtc{VarArg: varArg, KwOnlyArgs: kwOnly, KwDefaults: kwDefaults, KwArg: kwArg}, true
	}
	if _, ok := s.ExpectToken(lexer.POW); ok {
		a, ok := paramNoDefault(s)
		if !ok {
			return nil, false
		}
		return &astutil.StarEtc{KwArg: a}, true
	}
	return nil, true
}

// parseParameters implements the full parameter-table grammar: an
// optional slash-delimited positional-only group (with or without
// defaults), the plain/defaulted positional group, and the star-etc tail,
// assembled by astutil.MakeArguments.
func parseParameters(s *parser.State) (*ast.Arguments, bool) {
	start := s.Mark()

	beforePlain, beforeWithDefault := gatherParams(s)

	sawSlash := false
	if _, ok := s.ExpectToken(lexer.SLASH); ok {
		sawSlash = true
		s.ExpectToken(lexer.COMMA)
	}

	var slashWithoutDefault []*ast.Arg
	var slashWithDefault *astutil.SlashGroup
	var plain []*ast.Arg
	var withDefault []astutil.NameWithDefault

	if sawSlash {
		if len(beforeWithDefault) > 0 {
			slashWithDefault = &astutil.SlashGroup{Plain: beforePlain, WithDefault: beforeWithDefault}
		} else {
			slashWithoutDefault = beforePlain
		}
		plain, withDefault = gatherParams(s)
	} else {
		plain, withDefault = beforePlain, beforeWithDefault
	}

	starEtc, ok := parseStarEtc(s)
	if !ok {
		s.Reset(start)
		return nil, false
	}

	return astutil.MakeArguments(slashWithoutDefault, slashWithDefault, plain, withDefault, starEtc), true
}
