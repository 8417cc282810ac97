// Package demogrammar is a small, hand-written grammar exercising every
// collaborator the parser engine defines: a keyword table, expression and
// statement rules, the parameter-table builder, and the fatal-error side
// channel a generated rule uses to report one of the specific error kinds
// a plain rule failure cannot carry. It is not meant to recognize a real
// language in full — just enough of one (assignment, annotated
// assignment, import-from, function-def, f-strings) to drive the engine
// end to end.
package demogrammar

import "github.com/pegrt/pegrt/token"

// Keyword kinds live well above the lexer's own operator range so they
// never collide with punctuation kinds the reference lexer assigns.
const (
	KindPass token.Kind = token.FirstOperator + 100 + iota
	KindDef
	KindFrom
	KindImport
	KindAs
	KindTrue
	KindFalse
	KindNone
)

// Keywords is installed on every parser.State this package drives so NAME
// tokens spelling a reserved word are rewritten to their keyword kind at
// fill time, once, rather than compared against every rule that reads a
// NAME.
var Keywords = token.NewKeywordTable(
	token.KeywordEntry{Literal: "pass", Kind: KindPass},
	token.KeywordEntry{Literal: "def", Kind: KindDef},
	token.KeywordEntry{Literal: "from", Kind: KindFrom},
	token.KeywordEntry{Literal: "import", Kind: KindImport},
	token.KeywordEntry{Literal: "as", Kind: KindAs},
	token.KeywordEntry{Literal: "True", Kind: KindTrue},
	token.KeywordEntry{Literal: "False", Kind: KindFalse},
	token.KeywordEntry{Literal: "None", Kind: KindNone},
)
