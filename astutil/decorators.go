package astutil

import "github.com/pegrt/pegrt/ast"

// AttachDecorators returns a structurally-equal copy of def (a
// *ast.FunctionDef or *ast.ClassDef) with its decorator list replaced by
// decorators. def must be one of those two types; anything else is
// returned unchanged, since only function/class defs carry decorators.
func AttachDecorators(decorators []ast.Expr, def ast.Stmt) ast.Stmt {
	switch d := def.(type) {
	case *ast.FunctionDef:
		cp := *d
		cp.Decorators = decorators
		return &cp
	case *ast.ClassDef:
		cp := *d
		cp.Decorators = decorators
		return &cp
	default:
		return def
	}
}

// KeywordOrStarred is one element of a call argument list or a dict
// literal's item list: either a positional/keyword expression, or a
// "*seq"/"**mapping" unpacking expression.
type KeywordOrStarred struct {
	Expr     ast.Expr
	IsStarred bool
}

// PartitionKeywordOrStarred splits a mixed sequence into the starred
// (*/**) elements and the keyword elements, each preserving its relative
// order. A nil return for either slot means "no such elements", matching
// the source design's use of a null sequence as a distinct signal from
// an empty one to callers that branch on presence.
func PartitionKeywordOrStarred(items []KeywordOrStarred) (starred, keywords []ast.Expr) {
	for _, it := range items {
		if it.IsStarred {
			starred = append(starred, it.Expr)
		} else {
			keywords = append(keywords, it.Expr)
		}
	}
	return starred, keywords
}
