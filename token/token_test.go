package token

import "testing"

func TestKeywordTableLookup(t *testing.T) {
	tbl := NewKeywordTable(
		KeywordEntry{Literal: "if", Kind: FirstOperator + 1},
		KeywordEntry{Literal: "in", Kind: FirstOperator + 2},
		KeywordEntry{Literal: "import", Kind: FirstOperator + 3},
	)
	if k, ok := tbl.Lookup("if"); !ok || k != FirstOperator+1 {
		t.Fatalf("expected if to resolve to keyword kind, got %v %v", k, ok)
	}
	if k, ok := tbl.Lookup("in"); !ok || k != FirstOperator+2 {
		t.Fatalf("expected in to resolve to keyword kind, got %v %v", k, ok)
	}
	if _, ok := tbl.Lookup("ink"); ok {
		t.Fatalf("ink should not be a keyword")
	}
	if _, ok := tbl.Lookup("i"); ok {
		t.Fatalf("i should not be a keyword")
	}
}

func TestKeywordTableNilSafe(t *testing.T) {
	var tbl *KeywordTable
	if _, ok := tbl.Lookup("if"); ok {
		t.Fatalf("nil table must never report a hit")
	}
}

func TestPositionAdvance(t *testing.T) {
	p := Position{Char: 10, Line: 2, Column: 4, File: "f.py"}
	next := p.Advance(3)
	if next.Char != 13 || next.Column != 7 || next.Line != 2 {
		t.Fatalf("unexpected advanced position: %+v", next)
	}
	if next.LineNumber() != 3 || next.ColumnNumber() != 8 {
		t.Fatalf("unexpected 1-based numbers: line=%d col=%d", next.LineNumber(), next.ColumnNumber())
	}
}

func TestPositionIsValid(t *testing.T) {
	if NoPos.IsValid() {
		t.Fatalf("zero-value Position must be invalid")
	}
	if !(Position{Line: 1}).IsValid() {
		t.Fatalf("a position with a set field must be valid")
	}
}
