// Package astutil implements the AST construction helpers generated rules
// call to turn raw rule output into canonical tree shapes (SPEC_FULL.md
// §4.E): sequence builders, name joining, dot counting, context rewriting,
// assignment-target validation, and the arguments/decorator/keyword-or-
// starred builders.
package astutil

import "github.com/pegrt/pegrt/ast"

// dummy is the sentinel placeholder for "no sequence" (an empty inner
// result produced by a dummy-name alternative). The source grammar
// represents this with the pointer value 1; Go's type system lets us use
// a dedicated singleton and compare by identity instead, which is both
// safe (never allocated by any real rule) and self-documenting.
var dummy = &ast.Name{Id: "<dummy>"}

// Dummy returns the sentinel "no sequence" placeholder.
func Dummy() ast.Node { return dummy }

// IsDummy reports whether n is the sentinel placeholder.
func IsDummy(n ast.Node) bool { return n == ast.Node(dummy) }

// Singleton builds a one-element sequence.
func Singleton[T any](x T) []T { return []T{x} }

// Prepend returns a new sequence with x at the front, followed by seq.
func Prepend[T any](x T, seq []T) []T {
	out := make([]T, 0, len(seq)+1)
	out = append(out, x)
	out = append(out, seq...)
	return out
}

// Flatten concatenates a sequence of sequences into one, skipping any
// inner sequence whose head element is the dummy sentinel.
func Flatten[T ast.Node](seqs [][]T) []T {
	var out []T
	for _, s := range seqs {
		if len(s) > 0 && IsDummy(s[0]) {
			continue
		}
		out = append(out, s...)
	}
	return out
}
