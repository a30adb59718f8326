package bitstream

import (
	"encoding/binary"
	"sort"

	"github.com/orizon-lang/orizon-bc/internal/bcerrors"
)

// Reserved abbreviation ids and structural widths, fixed by the wire
// format (spec §6).
const (
	RootAbbrIDWidth     = 2
	blockIDWidth        = 8
	newAbbrIDWidthWidth = 4
	unabbrevCodeWidth   = 6
	unabbrevCountWidth  = 6
	unabbrevOpWidth     = 6

	EndBlockID       = 0
	EnterSubblockID  = 1
	DefineAbbrevID   = 2
	UnabbrevRecordID = 3

	// BlockInfoBlockID is the reserved block id (0) carrying the
	// BLOCKINFO meta-block.
	BlockInfoBlockID = 0
	// SetBIDCode is BLOCKINFO's SETBID record code (1), which selects
	// which block id subsequent DEFINE_ABBREVs in the BLOCKINFO block
	// apply to.
	SetBIDCode = 1
)

// BlockInfoMap maps a block id to the ordered list of abbreviations that
// every block with that id inherits, installed once via WriteBlockInfo.
type BlockInfoMap map[uint32][]*Abbrev

// stackElem is one live block on the stream's stack.
type stackElem struct {
	block         *Block
	lengthOffset  int
	contentOffset int
}

// BitStream is the orchestrator: magic header, nested block stack with
// deferred length patching, abbreviated/unabbreviated record writers, VBR
// emitters, and the BLOCKINFO installation pass.
type BitStream struct {
	Writer *Writer

	stack        []*stackElem
	blockInfo    BlockInfoMap
	blockInfoSet bool
}

// New creates a BitStream and writes the caller-supplied 32-bit magic
// header (its meaning is opaque to this layer).
func New(magic uint32) *BitStream {
	s := &BitStream{Writer: NewWriter(), blockInfo: BlockInfoMap{}}
	s.Writer.WriteDword(magic)

	return s
}

// EnterBlock opens a new block, emitting its ENTER_SUBBLOCK header (id,
// new abbreviation id width, align-to-32) and a placeholder length word
// patched in by the matching EndBlock. The opened block inherits any
// abbreviations installed for id via WriteBlockInfo.
func (s *BitStream) EnterBlock(id uint32, abbrIDWidth uint32) {
	s.writeAbbrID(EnterSubblockID)
	s.WriteVBR(id, blockIDWidth)
	s.WriteVBR(abbrIDWidth, newAbbrIDWidthWidth)
	s.Writer.Align(32)

	lengthOffset := s.Writer.Len()
	s.Writer.WriteDword(0) // patched by EndBlock
	contentOffset := s.Writer.Len()

	s.stack = append(s.stack, &stackElem{
		block:         NewBlock(id, abbrIDWidth, s.blockInfo[id]),
		lengthOffset:  lengthOffset,
		contentOffset: contentOffset,
	})
}

// EndBlock closes the block matching id: emits END_BLOCK, aligns to 32
// bits, pops the stack, and patches the block's length placeholder with
// the number of 32-bit words the block's contents occupied.
func (s *BitStream) EndBlock(id uint32) {
	s.writeAbbrID(EndBlockID)
	s.Writer.Align(32)

	if len(s.stack) == 0 {
		bcerrors.Raise(bcerrors.EmptyBlockStack())
	}

	elem := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]

	if elem.block.ID != id {
		bcerrors.Raise(bcerrors.BlockIDMismatch(elem.block.ID, id))
	}

	words := uint32((s.Writer.Len() - elem.contentOffset) / 4)

	var lenBytes [4]byte
	binary.LittleEndian.PutUint32(lenBytes[:], words)
	s.Writer.PatchBytes(elem.lengthOffset, lenBytes[:])
}

// WriteBlockInfo installs the given global abbreviations, consulted by
// every subsequent EnterBlock for a matching id. It may be called at most
// once; the map is frozen (copied) on install. The abbreviations are
// written inside a nested BLOCKINFO (id 0) block at root abbreviation-id
// width, one SETBID record followed by DEFINE_ABBREVs per target block id.
func (s *BitStream) WriteBlockInfo(m BlockInfoMap) {
	if len(m) == 0 {
		return
	}

	if s.blockInfoSet {
		bcerrors.Raise(bcerrors.BlockInfoAlreadyInstalled())
	}

	frozen := make(BlockInfoMap, len(m))
	for id, abbrs := range m {
		cp := make([]*Abbrev, len(abbrs))
		copy(cp, abbrs)
		frozen[id] = cp
	}

	s.blockInfo = frozen
	s.blockInfoSet = true

	s.EnterBlock(BlockInfoBlockID, RootAbbrIDWidth)

	ids := make([]uint32, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		s.WriteUnabbrevRecord(SetBIDCode, []uint32{id})
		for _, a := range m[id] {
			s.DefineAbbrev(a)
		}
	}

	s.EndBlock(BlockInfoBlockID)
}

// DefineAbbrev emits DEFINE_ABBREV followed by abbrev's self-definition
// into the current block, and registers it in that block's abbreviation
// map so WriteRecord can find it by name.
func (s *BitStream) DefineAbbrev(abbrev *Abbrev) {
	if len(s.stack) == 0 {
		bcerrors.Raise(bcerrors.NoOpenBlock())
	}

	s.writeAbbrID(DefineAbbrevID)
	abbrev.WriteDefinition(s)

	top := s.stack[len(s.stack)-1]
	top.block.AddAbbrev(abbrev)
}

// WriteRecord looks up name in the top-of-stack block's abbreviation map,
// emits its index at the block's abbreviation-id width, and encodes
// values per the abbreviation's operand definitions.
func (s *BitStream) WriteRecord(name string, values []OperandValue) {
	if len(s.stack) == 0 {
		bcerrors.Raise(bcerrors.NoOpenBlock())
	}

	top := s.stack[len(s.stack)-1]

	entry, ok := top.block.Lookup(name)
	if !ok {
		bcerrors.Raise(bcerrors.UnknownAbbrev(name))
	}

	s.writeAbbrID(entry.Index)
	entry.Abbrev.Write(s, values)
}

// WriteUnabbrevRecord writes UNABBREV_RECORD, then code, the operand
// count, and each operand, all as VBR-6.
func (s *BitStream) WriteUnabbrevRecord(code uint32, values []uint32) {
	s.writeAbbrID(UnabbrevRecordID)
	s.WriteVBR(code, unabbrevCodeWidth)
	s.WriteVBR(uint32(len(values)), unabbrevCountWidth)

	for _, v := range values {
		s.WriteVBR(v, unabbrevOpWidth)
	}
}

// WriteVBR writes value as a variable-bit-rate integer using width-bit
// chunks: the high bit of each chunk is a continuation marker, the
// remaining width-1 bits carry payload.
func (s *BitStream) WriteVBR(value uint32, width uint32) {
	if width < 2 || width > 32 {
		bcerrors.Raise(bcerrors.InvalidVBRWidth(width, 32))
	}

	valueBits := width - 1
	mask := uint32(1)<<valueBits - 1
	hiBit := uint32(1) << valueBits

	for value > mask {
		s.Writer.WriteBits(hiBit|(value&mask), width)
		value >>= valueBits
	}

	s.Writer.WriteBits(value, width)
}

// WriteVBRU64 writes a 64-bit value, split as (hi, lo uint32), as a
// variable-bit-rate integer using width-bit chunks. When hi is zero this
// simply delegates to WriteVBR on lo. The range check accepts widths in
// 2..=64, but every chunk is written through WriteVBR or Writer.WriteBits,
// which take at most 32 bits, so a width above 32 raises a contract
// violation.
func (s *BitStream) WriteVBRU64(hi uint32, lo uint32, width uint32) {
	if width < 2 || width > 64 {
		bcerrors.Raise(bcerrors.InvalidVBRWidth(width, 64))
	}

	if hi == 0 {
		s.WriteVBR(lo, width)
		return
	}

	valueBits := width - 1
	mask := uint64(1)<<valueBits - 1
	hiBit := uint64(1) << valueBits
	value := uint64(hi)<<32 | uint64(lo)

	for value > mask {
		s.Writer.WriteBits(uint32(hiBit|(value&mask)), width)
		value >>= valueBits
	}

	s.Writer.WriteBits(uint32(value), width)
}

// Align pads the staging register to a multiple of align bits.
func (s *BitStream) Align(align uint32) { s.Writer.Align(align) }

// Finish flushes any partially filled dword and returns the encoded
// bytes. It panics via bcerrors if blocks remain open, since an unbalanced
// stream would carry a zero length placeholder for whatever block never
// closed.
func (s *BitStream) Finish() []byte {
	if len(s.stack) != 0 {
		bcerrors.Raise(bcerrors.UnbalancedBlocks(len(s.stack)))
	}

	s.Writer.Flush()

	return s.Writer.Bytes()
}

func (s *BitStream) writeAbbrID(id uint32) {
	width := uint32(RootAbbrIDWidth)
	if n := len(s.stack); n > 0 {
		width = s.stack[n-1].block.AbbrIDWidth
	}

	s.Writer.WriteBits(id, width)
}
