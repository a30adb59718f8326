package bitcode

import (
	"testing"

	"github.com/orizon-lang/orizon-bc/internal/bitstream"
)

func TestBuildConstantsBlockInfoAbbrevNames(t *testing.T) {
	info := bitstream.BlockInfoMap{}
	BuildConstantsBlockInfo(info)

	abbrs := info[uint32(BlockConstants)]
	if len(abbrs) != 5 {
		t.Fatalf("len(abbrs) = %d, want 5", len(abbrs))
	}

	names := map[string]bool{}
	for _, a := range abbrs {
		names[a.Name] = true
	}

	for _, want := range []string{"settype", "int", "null", "undef", "aggr"} {
		if !names[want] {
			t.Fatalf("missing abbrev %q", want)
		}
	}
}

func TestBuildDefaultBlockInfoCoversKnownBlocks(t *testing.T) {
	info := BuildDefaultBlockInfo()

	for _, id := range []BlockID{BlockIdentification, BlockModule, BlockConstants} {
		if len(info[uint32(id)]) == 0 {
			t.Fatalf("no abbreviations installed for block id %d", id)
		}
	}
}

func TestConstantsBlockEncodesThroughBlockInfo(t *testing.T) {
	s := bitstream.New(0xdeadbeef)

	info := bitstream.BlockInfoMap{}
	BuildConstantsBlockInfo(info)

	s.WriteBlockInfo(info)
	s.EnterBlock(uint32(BlockConstants), 4)
	// "int"'s abbreviation is [Literal(ConstantsInteger), Vbr(width)]; the
	// literal slot contributes no bits and the caller supplies a value
	// only for the Vbr slot, matching the reference implementation's
	// write_record("source", &["hello_world".into()]) convention where
	// literal operand slots are omitted from the values list entirely.
	s.WriteRecord("int", []bitstream.OperandValue{
		bitstream.VBRValue(42, VBRInteger),
	})
	s.EndBlock(uint32(BlockConstants))

	buf := s.Finish()
	if len(buf) == 0 {
		t.Fatal("expected non-empty output")
	}

	if len(buf)%4 != 0 {
		t.Fatalf("output length %d is not a multiple of 4", len(buf))
	}
}
