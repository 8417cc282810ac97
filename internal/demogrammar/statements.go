package demogrammar

import (
	"fmt"

	"github.com/pegrt/pegrt/ast"
	"github.com/pegrt/pegrt/astutil"
	"github.com/pegrt/pegrt/lexer"
	"github.com/pegrt/pegrt/parser"
	"github.com/pegrt/pegrt/token"
)

func passStmt(s *parser.State) (ast.Stmt, bool) {
	tok, ok := s.ExpectToken(KindPass)
	if !ok {
		return nil, false
	}
	return &ast.Pass{PassPos: tok.Start}, true
}

func exprStmt(s *parser.State) (ast.Stmt, bool) {
	e, ok := sum(s)
	if !ok {
		return nil, false
	}
	return &ast.ExprStmt{X: e}, true
}

// assignStmt parses "target (= target)* = value", treating every operand
// but the last as a store target and the last as the value. This covers
// both plain and chained assignment with a single pass over sum, rather
// than needing a dedicated target grammar.
func assignStmt(s *parser.State) (ast.Stmt, bool) {
	start := s.Mark()
	first, ok := sum(s)
	if !ok {
		return nil, false
	}
	if _, ok := s.ExpectToken(lexer.ASSIGN); !ok {
		s.Reset(start)
		return nil, false
	}
	exprs := []ast.Expr{first}
	for {
		e, ok := sum(s)
		if !ok {
			s.Reset(start)
			return nil, false
		}
		exprs = append(exprs, e)
		if _, ok := s.ExpectToken(lexer.ASSIGN); !ok {
			break
		}
	}
	value := exprs[len(exprs)-1]
	targets := make([]ast.Expr, len(exprs)-1)
	for i, e := range exprs[:len(exprs)-1] {
		targets[i] = astutil.SetExprContext(e, ast.Store)
	}
	return &ast.Assign{Targets: targets, Value: value}, true
}

// annAssignStmt parses "target: annotation [= value]", rejecting a list
// or multi-element tuple target via astutil.ConstructAssignTarget.
func annAssignStmt(s *parser.State) (ast.Stmt, bool) {
	start := s.Mark()
	preColon, ok := sum(s)
	if !ok {
		return nil, false
	}
	colonTok, ok := s.ExpectToken(lexer.COLON)
	if !ok {
		s.Reset(start)
		return nil, false
	}
	targetExpr, err := astutil.ConstructAssignTarget(preColon)
	if err != nil {
		setFatal(s, colonTok, fmt.Errorf("annotated-list-or-multi-tuple: %s", err))
		return nil, false
	}
	targetExpr = astutil.SetExprContext(targetExpr, ast.Store)

	annotation, ok := sum(s)
	if !ok {
		s.Reset(start)
		return nil, false
	}

	var eqPos token.Position
	var value ast.Expr
	if eqTok, ok := s.ExpectToken(lexer.ASSIGN); ok {
		v, ok := sum(s)
		if !ok {
			s.Reset(start)
			return nil, false
		}
		eqPos = eqTok.Start
		value = v
	}
	return &ast.AnnAssign{Target: targetExpr, Colon: colonTok.Start, Annotation: annotation, Eq: eqPos, Value: value}, true
}

func parseAlias(s *parser.State) (*ast.Alias, bool) {
	nameTok, ok := s.ExpectToken(token.NAME)
	if !ok {
		return nil, false
	}
	alias := &ast.Alias{NamePos: nameTok.Start, Name: nameTok.Literal, NameEnd: nameTok.End}
	if _, ok := s.ExpectToken(KindAs); ok {
		asTok, ok := s.ExpectToken(token.NAME)
		if !ok {
			return nil, false
		}
		alias.AsName = asTok.Literal
		alias.NameEnd = asTok.End
	}
	return alias, true
}

func parseAliasList(s *parser.State) ([]*ast.Alias, bool) {
	first, ok := parseAlias(s)
	if !ok {
		return nil, false
	}
	aliases := []*ast.Alias{first}
	for {
		mark := s.Mark()
		if _, ok := s.ExpectToken(lexer.COMMA); !ok {
			return aliases, true
		}
		a, ok := parseAlias(s)
		if !ok {
			s.Reset(mark)
			return aliases, true
		}
		aliases = append(aliases, a)
	}
}

// importFromStmt parses "from [dots][module] import (alias-list | '*')",
// counting leading dots/ellipses via astutil.SeqCountDots.
func importFromStmt(s *parser.State) (ast.Stmt, bool) {
	start := s.Mark()
	fromTok, ok := s.ExpectToken(KindFrom)
	if !ok {
		return nil, false
	}

	var dotToks []token.Token
	for {
		if t, ok := s.ExpectToken(lexer.ELLIPSIS); ok {
			dotToks = append(dotToks, t)
			continue
		}
		if t, ok := s.ExpectToken(lexer.DOT); ok {
			dotToks = append(dotToks, t)
			continue
		}
		break
	}
	level := 0
	if len(dotToks) > 0 {
		level = astutil.SeqCountDots(dotToks, lexer.ELLIPSIS, lexer.DOT)
	}

	var moduleName string
	if nameTok, ok := s.ExpectToken(token.NAME); ok {
		moduleName = nameTok.Literal
		for {
			mark := s.Mark()
			if _, ok := s.ExpectToken(lexer.DOT); !ok {
				break
			}
			part, ok := s.ExpectToken(token.NAME)
			if !ok {
				s.Reset(mark)
				break
			}
			moduleName += "." + part.Literal
		}
	}

	if _, ok := s.ExpectToken(KindImport); !ok {
		s.Reset(start)
		return nil, false
	}

	if starTok, ok := s.ExpectToken(lexer.STAR); ok {
		return &ast.ImportFrom{From: fromTok.Start, Level: level, Module: moduleName, StarPos: starTok.Start}, true
	}
	names, ok := parseAliasList(s)
	if !ok {
		s.Reset(start)
		return nil, false
	}
	return &ast.ImportFrom{From: fromTok.Start, Level: level, Module: moduleName, Names: names}, true
}

// parseSimpleBody parses the single-line statement body this grammar
// supports as a function/class body — "pass" (possibly a ';'-separated
// run of simple statements) — since the reference lexer performs no
// INDENT/DEDENT bookkeeping.
func parseSimpleBody(s *parser.State) ([]ast.Stmt, token.Position, bool) {
	first, ok := simpleStmt(s)
	if !ok {
		return nil, token.NoPos, false
	}
	stmts := []ast.Stmt{first}
	end := first.End()
	for {
		mark := s.Mark()
		if _, ok := s.ExpectToken(lexer.SEMICOLON); !ok {
			break
		}
		next, ok := simpleStmt(s)
		if !ok {
			s.Reset(mark)
			break
		}
		stmts = append(stmts, next)
		end = next.End()
	}
	return stmts, end, true
}

func simpleStmt(s *parser.State) (ast.Stmt, bool) {
	return tryAlternatives(s, passStmt, importFromStmt, annAssignStmt, assignStmt, exprStmt)
}

// functionDefStmt parses "def name(params) [-> returns]: body".
func functionDefStmt(s *parser.State) (ast.Stmt, bool) {
	start := s.Mark()
	defTok, ok := s.ExpectToken(KindDef)
	if !ok {
		return nil, false
	}
	nameTok, ok := s.ExpectToken(token.NAME)
	if !ok {
		s.Reset(start)
		return nil, false
	}
	if _, ok := s.ExpectToken(lexer.LPAREN); !ok {
		s.Reset(start)
		return nil, false
	}

	var args *ast.Arguments
	if _, ok := s.ExpectToken(lexer.RPAREN); ok {
		args = ast.EmptyArguments()
	} else {
		a, ok := parseParameters(s)
		if !ok {
			s.Reset(start)
			return nil, false
		}
		if _, ok := s.ExpectToken(lexer.RPAREN); !ok {
			s.Reset(start)
			return nil, false
		}
		args = a
	}

	var returns ast.Expr
	if _, ok := s.ExpectToken(lexer.ARROW); ok {
		r, ok := sum(s)
		if !ok {
			s.Reset(start)
			return nil, false
		}
		returns = r
	}

	if _, ok := s.ExpectToken(lexer.COLON); !ok {
		s.Reset(start)
		return nil, false
	}
	body, bodyEnd, ok := parseSimpleBody(s)
	if !ok {
		s.Reset(start)
		return nil, false
	}
	return &ast.FunctionDef{Def: defTok.Start, Name: nameTok.Literal, Args: args, Returns: returns, Body: body, BodyEnd: bodyEnd}, true
}

func statement(s *parser.State) (ast.Stmt, bool) {
	return tryAlternatives(s, functionDefStmt, importFromStmt, annAssignStmt, assignStmt, passStmt, exprStmt)
}
