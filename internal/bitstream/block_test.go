package bitstream

import "testing"

func TestBlockAddAbbrevSequentialIndices(t *testing.T) {
	b := NewBlock(8, 4, nil)

	for k := 1; k <= 5; k++ {
		a := NewAbbrev(string(rune('a'+k-1)), []OperandDef{LiteralOperand(uint32(k))})

		idx := b.AddAbbrev(a)
		if want := uint32(k) + 3; idx != want {
			t.Fatalf("abbrev %d: index = %d, want %d", k, idx, want)
		}
	}
}

func TestBlockInheritsGlobalAbbrevs(t *testing.T) {
	g1 := NewAbbrev("g1", []OperandDef{LiteralOperand(1)})
	g2 := NewAbbrev("g2", []OperandDef{LiteralOperand(2)})

	b := NewBlock(8, 4, []*Abbrev{g1, g2})

	e1, ok := b.Lookup("g1")
	if !ok || e1.Index != 4 {
		t.Fatalf("g1 entry = %+v, ok=%v, want index 4", e1, ok)
	}

	e2, ok := b.Lookup("g2")
	if !ok || e2.Index != 5 {
		t.Fatalf("g2 entry = %+v, ok=%v, want index 5", e2, ok)
	}

	local := NewAbbrev("local", []OperandDef{LiteralOperand(3)})
	if idx := b.AddAbbrev(local); idx != 6 {
		t.Fatalf("local index = %d, want 6", idx)
	}
}

func TestBlockAbbrIDWidthTooSmallPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for abbr id width < 2")
		}
	}()

	NewBlock(8, 1, nil)
}

func TestBlockDuplicateNamePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for duplicate abbrev name")
		}
	}()

	b := NewBlock(8, 4, nil)
	b.AddAbbrev(NewAbbrev("dup", []OperandDef{LiteralOperand(1)}))
	b.AddAbbrev(NewAbbrev("dup", []OperandDef{LiteralOperand(2)}))
}
