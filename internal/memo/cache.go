package memo

// IsMemoized looks up ruleID in the memo chain of the token at mark,
// materializing that token first if needed. On a hit it returns the
// stored result (which may legitimately be nil, for a memoized epsilon
// match), the end position the cached attempt reached, and hit=true. A
// miss (rule never attempted at this position) reports hit=false; a
// memoized failure (rule attempted and failed) reports hit=true with
// ok=false.
func (b *Buffer) IsMemoized(mark, ruleID int) (node any, endAt int, ok, hit bool) {
	if err := b.Ensure(mark); err != nil {
		return nil, mark, false, false
	}
	for e := b.memoChain(mark); e != nil; e = e.next {
		if e.ruleID == ruleID {
			return e.node, e.endAt, e.ok, true
		}
	}
	return nil, mark, false, false
}

// InsertMemo prepends a new entry for ruleID at position at, recording
// node (nil for a failed match) and the end position reached. Because
// insertion prepends, a later InsertMemo for the same ruleID shadows an
// earlier one rather than replacing it — callers that need in-place
// mutation (left-recursion bookkeeping) use UpdateMemo instead.
func (b *Buffer) InsertMemo(at, ruleID int, node any, ok bool, endAt int) {
	head := &memoEntry{ruleID: ruleID, node: node, ok: ok, endAt: endAt, next: b.memoChain(at)}
	b.setMemoChain(at, head)
}

// UpdateMemo mutates the first chain entry matching ruleID in place,
// falling back to InsertMemo if no such entry exists yet.
func (b *Buffer) UpdateMemo(at, ruleID int, node any, ok bool, endAt int) {
	for e := b.memoChain(at); e != nil; e = e.next {
		if e.ruleID == ruleID {
			e.node = node
			e.ok = ok
			e.endAt = endAt
			return
		}
	}
	b.InsertMemo(at, ruleID, node, ok, endAt)
}
