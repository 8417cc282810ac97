package demogrammar

import (
	"github.com/pegrt/pegrt/ast"
	"github.com/pegrt/pegrt/parser"
	"github.com/pegrt/pegrt/token"
)

// Module is the start rule: zero or more NEWLINE-or-statement lines
// terminated by ENDMARKER. It has parser.Rule[ast.Node]'s shape so it can
// be passed directly to runner.RunParser.
func Module(s *parser.State) (ast.Node, bool) {
	var stmts []ast.Stmt
	for {
		if _, ok := s.ExpectToken(token.NEWLINE); ok {
			continue
		}
		if _, ok := s.ExpectToken(token.ENDMARKER); ok {
			break
		}
		stmt, ok := statement(s)
		if !ok {
			return nil, false
		}
		stmts = append(stmts, stmt)
		if _, ok := s.ExpectToken(token.NEWLINE); ok {
			continue
		}
		if _, ok := s.ExpectToken(token.ENDMARKER); ok {
			break
		}
		return nil, false
	}
	return &ast.Module{Stmts: stmts}, true
}
