// Package memo implements the parser's token buffer and per-token memo
// chains (SPEC_FULL.md §3, §4.A, §4.C): a growable slice of materialized
// tokens, each carrying a singly-linked chain of packrat memo entries.
package memo

import (
	"fmt"

	"github.com/pegrt/pegrt/lexer"
	"github.com/pegrt/pegrt/token"
)

// slot is one materialized token plus the head of its memo chain.
type slot struct {
	tok   token.Token
	valid bool
	memo  *memoEntry
}

// memoEntry is one node of a token's memo chain: the rule that produced
// (or failed to produce) a result at this token's position, the result
// itself (nil on a memoized failure), and the cursor position the
// successful match advanced to.
type memoEntry struct {
	ruleID int
	node   any
	ok     bool // distinguishes "matched, node may legitimately be nil" from "failed"
	endAt  int
	next   *memoEntry
}

// Buffer owns the growable token slice described in SPEC_FULL.md §3:
// capacity starts at 1 and doubles whenever fill reaches it. The first
// lexer error encountered is sticky — Ensure keeps returning it without
// calling the lexer again.
type Buffer struct {
	lx       lexer.Lexer
	slots    []slot
	fill     int
	stickErr error
	rewrite  func(token.Token) token.Token
}

// NewBuffer returns a Buffer reading tokens from lx on demand.
func NewBuffer(lx lexer.Lexer) *Buffer {
	return &Buffer{lx: lx, slots: make([]slot, 1)}
}

// SetKeywordRewrite installs a function applied to every token at fill
// time, before it is stored: a NAME token whose byte span exactly
// matches a keyword entry of matching length has its kind rewritten to
// the keyword's kind (SPEC_FULL.md §3). Rewriting once at fill time
// rather than on every read keeps memoized nodes (and any comparisons
// against raw token kinds) consistent regardless of how many times a
// position is revisited.
func (b *Buffer) SetKeywordRewrite(rewrite func(token.Token) token.Token) {
	b.rewrite = rewrite
}

// Ensure materializes tokens, calling the underlying lexer as needed,
// until fill > i. It reports a SyntaxError-shaped error (the caller
// attaches file/line/column) wrapping the lexer's own error on failure;
// the lexer's line is known but not its column, so callers must report
// column 0 per §4.A.
func (b *Buffer) Ensure(i int) error {
	if b.stickErr != nil {
		return b.stickErr
	}
	for b.fill <= i {
		if b.fill == len(b.slots) {
			b.grow()
		}
		tok, err := b.lx.Next()
		if err != nil {
			b.stickErr = fmt.Errorf("tokenizer failure at %s line %d: %w", b.lx.Filename(), b.lx.Lineno(), err)
			return b.stickErr
		}
		if b.rewrite != nil {
			tok = b.rewrite(tok)
		}
		b.slots[b.fill] = slot{tok: tok, valid: true}
		b.fill++
	}
	return nil
}

func (b *Buffer) grow() {
	next := make([]slot, len(b.slots)*2)
	copy(next, b.slots)
	b.slots = next
}

// At returns the i-th token. It panics if i >= fill; callers must call
// Ensure(i) first, matching the source design's unchecked array access
// once the fill invariant is established by the caller.
func (b *Buffer) At(i int) token.Token {
	if i >= b.fill {
		panic(fmt.Sprintf("memo: At(%d) called before Ensure(%d)", i, i))
	}
	return b.slots[i].tok
}

// Fill reports how many tokens have been materialized so far.
func (b *Buffer) Fill() int { return b.fill }

// Lexer exposes the underlying collaborator, for callers (diagnostic
// construction in a generated rule) that need its Filename/GetLineText
// beyond what a single token carries.
func (b *Buffer) Lexer() lexer.Lexer { return b.lx }

// memoChain returns the head of slot i's memo chain; i must already be
// materialized.
func (b *Buffer) memoChain(i int) *memoEntry {
	if i >= b.fill {
		panic(fmt.Sprintf("memo: memoChain(%d) called before Ensure(%d)", i, i))
	}
	return b.slots[i].memo
}

func (b *Buffer) setMemoChain(i int, head *memoEntry) {
	b.slots[i].memo = head
}
