package runner

import (
	"github.com/hashicorp/go-multierror"

	"github.com/pegrt/pegrt/ast"
	"github.com/pegrt/pegrt/lexer"
	"github.com/pegrt/pegrt/parser"
	"github.com/pegrt/pegrt/token"
)

// Source names one lexer.Lexer to parse as part of a RunParserBatch call.
type Source struct {
	Name string
	Lex  lexer.Lexer
}

// RunParserBatch parses every source independently and returns one result
// per source in the same order, alongside a *multierror.Error collecting
// every failure so a caller validating many files can report them all at
// once instead of stopping at the first. A single failing source does not
// stop the others from being attempted; its slot in results is nil.
//
// Unless the caller passes WithArena explicitly, each source still gets
// its own arena — RunParser's default behavior — so one source's nodes
// outliving its result doesn't depend on another source's success.
func RunParserBatch(sources []Source, start parser.Rule[ast.Node], mode Mode, keywords *token.KeywordTable, opts ...Option) ([]any, error) {
	results := make([]any, len(sources))
	var errs *multierror.Error
	for i, src := range sources {
		node, err := RunParser(src.Lex, start, mode, keywords, opts...)
		if err != nil {
			errs = multierror.Append(errs, namedError{name: src.Name, err: err})
			continue
		}
		results[i] = node
	}
	return results, errs.ErrorOrNil()
}

// namedError prefixes an underlying parse error with the source name it
// came from, so multierror's combined listing tells sources apart.
type namedError struct {
	name string
	err  error
}

func (e namedError) Error() string { return e.name + ": " + e.err.Error() }
func (e namedError) Unwrap() error { return e.err }
