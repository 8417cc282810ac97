package demogrammar

import (
	"strconv"
	"strings"

	"github.com/pegrt/pegrt/ast"
	"github.com/pegrt/pegrt/fstring"
	"github.com/pegrt/pegrt/lexer"
	"github.com/pegrt/pegrt/parser"
	"github.com/pegrt/pegrt/strlit"
	"github.com/pegrt/pegrt/token"
)

// tryAlternatives tries each rule in order, stopping immediately once one
// matches or a fatal error has been recorded — the same short-circuit an
// ordered PEG choice needs once a branch can no longer be backtracked
// past.
func tryAlternatives[T any](s *parser.State, alts ...parser.Rule[T]) (T, bool) {
	for _, alt := range alts {
		if node, ok := alt(s); ok {
			return node, true
		}
		if s.FatalErr() != nil {
			var zero T
			return zero, false
		}
	}
	var zero T
	return zero, false
}

func atom(s *parser.State) (ast.Expr, bool) {
	return tryAlternatives(s,
		trueAtom, falseAtom, noneAtom,
		nameAtom, numberAtom, stringLiteral,
		listExpr, parenOrTuple,
	)
}

func nameAtom(s *parser.State) (ast.Expr, bool) {
	tok, ok := s.ExpectToken(token.NAME)
	if !ok {
		return nil, false
	}
	return &ast.Name{NamePos: tok.Start, Id: tok.Literal, Ctx: ast.Load}, true
}

func trueAtom(s *parser.State) (ast.Expr, bool) {
	tok, ok := s.ExpectToken(KindTrue)
	if !ok {
		return nil, false
	}
	return &ast.Constant{ValuePos: tok.Start, ValueEnd: tok.End, Kind: ast.ConstBool, Value: true}, true
}

func falseAtom(s *parser.State) (ast.Expr, bool) {
	tok, ok := s.ExpectToken(KindFalse)
	if !ok {
		return nil, false
	}
	return &ast.Constant{ValuePos: tok.Start, ValueEnd: tok.End, Kind: ast.ConstBool, Value: false}, true
}

func noneAtom(s *parser.State) (ast.Expr, bool) {
	tok, ok := s.ExpectToken(KindNone)
	if !ok {
		return nil, false
	}
	return &ast.Constant{ValuePos: tok.Start, ValueEnd: tok.End, Kind: ast.ConstNone, Value: nil}, true
}

func numberAtom(s *parser.State) (ast.Expr, bool) {
	tok, ok := s.ExpectToken(token.NUMBER)
	if !ok {
		return nil, false
	}
	lit := tok.Literal
	isHex := strings.HasPrefix(lit, "0x") || strings.HasPrefix(lit, "0X")
	if !isHex && strings.ContainsAny(lit, ".eE") {
		f, err := strconv.ParseFloat(lit, 64)
		if err != nil {
			setFatal(s, tok, err)
			return nil, false
		}
		return &ast.Constant{ValuePos: tok.Start, ValueEnd: tok.End, Kind: ast.ConstFloat, Value: f}, true
	}
	base := 10
	if isHex {
		base = 16
		lit = lit[2:]
	}
	n, err := strconv.ParseInt(lit, base, 64)
	if err != nil {
		setFatal(s, tok, err)
		return nil, false
	}
	return &ast.Constant{ValuePos: tok.Start, ValueEnd: tok.End, Kind: ast.ConstInt, Value: n}, true
}

// stringLiteral decodes a STRING token via strlit, routing f-mode bodies
// through fstring.Decode with a Subparser that recurses back into sum for
// every embedded expression.
func stringLiteral(s *parser.State) (ast.Expr, bool) {
	tok, ok := s.ExpectToken(token.STRING)
	if !ok {
		return nil, false
	}
	prefix, rest, err := strlit.ParsePrefix([]byte(tok.Literal))
	if err != nil {
		setFatal(s, tok, err)
		return nil, false
	}
	if !prefix.FMode {
		dec := &strlit.Decoder{}
		c, err := dec.Decode(tok)
		if err != nil {
			setFatal(s, tok, err)
			return nil, false
		}
		return c, true
	}
	_, _, body, err := strlit.SplitQuotes(rest)
	if err != nil {
		setFatal(s, tok, err)
		return nil, false
	}
	sp := &fstring.Subparser{Arena: s.Arena(), Keywords: Keywords, Start: sum, Logger: s.Logger()}
	expr, err := fstring.Decode(body, 0, tok.Start, tok.End, sp.AsExprParser())
	if err != nil {
		setFatal(s, tok, err)
		return nil, false
	}
	return expr, true
}

// parseCommaList parses a comma-separated, optionally trailing-comma
// element list up to closeKind, which the caller has not yet consumed.
func parseCommaList(s *parser.State, elem parser.Rule[ast.Expr], closeKind token.Kind) ([]ast.Expr, token.Token, bool) {
	if close, ok := s.ExpectToken(closeKind); ok {
		return nil, close, true
	}
	var elts []ast.Expr
	for {
		e, ok := elem(s)
		if !ok {
			return nil, token.Token{}, false
		}
		elts = append(elts, e)
		if _, ok := s.ExpectToken(lexer.COMMA); !ok {
			close, ok := s.ExpectToken(closeKind)
			if !ok {
				return nil, token.Token{}, false
			}
			return elts, close, true
		}
		if close, ok := s.ExpectToken(closeKind); ok {
			return elts, close, true
		}
	}
}

func listExpr(s *parser.State) (ast.Expr, bool) {
	start := s.Mark()
	lb, ok := s.ExpectToken(lexer.LBRACKET)
	if !ok {
		return nil, false
	}
	elts, rb, ok := parseCommaList(s, sum, lexer.RBRACKET)
	if !ok {
		s.Reset(start)
		return nil, false
	}
	return &ast.List{Lbrack: lb.Start, Elts: elts, Rbrack: rb.Start}, true
}

// parenOrTuple handles "(expr)" (a parenthesized expression, unwrapped),
// "()" (the empty tuple), and "(expr, ...)" (a tuple).
func parenOrTuple(s *parser.State) (ast.Expr, bool) {
	start := s.Mark()
	lp, ok := s.ExpectToken(lexer.LPAREN)
	if !ok {
		return nil, false
	}
	if rp, ok := s.ExpectToken(lexer.RPAREN); ok {
		return &ast.Tuple{Lparen: lp.Start, Rparen: rp.Start}, true
	}
	first, ok := sum(s)
	if !ok {
		s.Reset(start)
		return nil, false
	}
	if _, ok := s.ExpectToken(lexer.COMMA); !ok {
		rp, ok := s.ExpectToken(lexer.RPAREN)
		if !ok {
			s.Reset(start)
			return nil, false
		}
		_ = rp
		return first, true
	}
	elts := []ast.Expr{first}
	if rp, ok := s.ExpectToken(lexer.RPAREN); ok {
		return &ast.Tuple{Lparen: lp.Start, Elts: elts, Rparen: rp.Start}, true
	}
	rest, rp, ok := parseCommaList(s, sum, lexer.RPAREN)
	if !ok {
		s.Reset(start)
		return nil, false
	}
	elts = append(elts, rest...)
	return &ast.Tuple{Lparen: lp.Start, Elts: elts, Rparen: rp.Start}, true
}

// sum is a left-associative chain of '+' over atoms — enough of an
// expression grammar to exercise ast.BinOp without building out a full
// operator-precedence table.
func sum(s *parser.State) (ast.Expr, bool) {
	left, ok := atom(s)
	if !ok {
		return nil, false
	}
	for {
		mark := s.Mark()
		opTok, ok := s.ExpectToken(lexer.PLUS)
		if !ok {
			break
		}
		right, ok := atom(s)
		if !ok {
			s.Reset(mark)
			break
		}
		left = &ast.BinOp{Left: left, OpPos: opTok.Start, Op: "+", Right: right}
	}
	return left, true
}
