// Package bitstream implements the bit-packed, self-describing container
// format used by LLVM bitcode: a variable-bit-width staging writer, VBR
// integer encoding, nested block framing with deferred length patching,
// and abbreviation definition/application. It is the core that higher
// layers (module, type, and value table serializers) build records on top
// of; it does not know anything about IR semantics itself.
package bitstream

import (
	"encoding/binary"

	"github.com/orizon-lang/orizon-bc/internal/bcerrors"
)

// Writer packs arbitrary-width (1-32 bit) unsigned values little-endian
// into a 32-bit staging register, flushing whole little-endian dwords into
// buffer as they fill.
//
// Invariant: after any public operation that leaves dwordOffset != 0, the
// bits above dwordOffset in dword are zero, and
// len(buffer)*8+dwordOffset == BitOffset().
type Writer struct {
	buffer      []byte
	dword       uint32
	dwordLeft   uint32
	dwordOffset uint32
}

// NewWriter returns an empty Writer ready to accept bits.
func NewWriter() *Writer {
	return &Writer{
		buffer:    make([]byte, 0, 1024),
		dwordLeft: 32,
	}
}

// WriteDword writes a full 32-bit value via the same bit path as WriteBits,
// so half-word writes that straddle a dword boundary still produce
// little-endian bytes in the final buffer.
func (w *Writer) WriteDword(v uint32) { w.WriteBits(v, 32) }

// WriteWord writes a 16-bit value.
func (w *Writer) WriteWord(v uint16) { w.WriteBits(uint32(v), 16) }

// WriteByte writes an 8-bit value.
func (w *Writer) WriteByte(v uint8) { w.WriteBits(uint32(v), 8) }

// WriteBits packs the low width bits of value into the stream, least
// significant bit first. width must be in 1..=32; width == 0 is a no-op.
// A value that straddles the current dword boundary is split: the low
// `fits` bits are written first, then the remainder recurses at the
// reduced width.
func (w *Writer) WriteBits(value uint32, width uint32) {
	if width == 0 {
		return
	}

	if width > 32 {
		bcerrors.Raise(bcerrors.InvalidBitWidth(width))
	}

	fits := width
	if w.dwordLeft < fits {
		fits = w.dwordLeft
	}

	var mask uint32
	if fits == 32 {
		mask = 0xffffffff
	} else {
		mask = (1 << fits) - 1
	}

	if fits < width {
		w.WriteBits(value&mask, fits)
		w.WriteBits(value>>fits, width-fits)

		return
	}

	w.dword |= (value & mask) << w.dwordOffset
	w.dwordOffset += width
	w.dwordLeft -= width

	if w.dwordLeft == 0 {
		w.buffer = binary.LittleEndian.AppendUint32(w.buffer, w.dword)
		w.dword = 0
		w.dwordOffset = 0
		w.dwordLeft = 32
	}
}

// BitOffset returns the total number of bits written so far, including the
// partial bits currently staged in the dword register.
func (w *Writer) BitOffset() int {
	return len(w.buffer)*8 + int(w.dwordOffset)
}

// Pad writes width zero bits.
func (w *Writer) Pad(width uint32) { w.WriteBits(0, width) }

// Align rounds the staging register up to a multiple of width by padding
// with zero bits. Per spec, this measures against dwordLeft (bits left in
// the register), not the absolute bit position: Align(32) always empties
// the register, matching bitcode's block-framing convention of aligning
// to a dword boundary.
func (w *Writer) Align(width uint32) { w.Pad(w.dwordLeft % width) }

// Flush byte-aligns the stream and emits any partially filled dword as 1,
// 2, or 3 little-endian bytes. It is a no-op if the register is already
// empty.
func (w *Writer) Flush() {
	if w.dwordOffset == 0 {
		return
	}

	w.Align(8)

	switch w.dwordOffset {
	case 0:
		// The padding completed the dword, which WriteBits already appended.
	case 24:
		w.buffer = append(w.buffer, byte(w.dword&0xff))
		w.buffer = binary.LittleEndian.AppendUint16(w.buffer, uint16(w.dword>>8))
	case 16:
		w.buffer = binary.LittleEndian.AppendUint16(w.buffer, uint16(w.dword))
	case 8:
		w.buffer = append(w.buffer, byte(w.dword))
	default:
		bcerrors.Raise(bcerrors.FlushMisaligned(w.dwordOffset))
	}

	w.dword = 0
	w.dwordOffset = 0
	w.dwordLeft = 32
}

// Bytes returns the accumulated byte buffer without flushing.
func (w *Writer) Bytes() []byte { return w.buffer }

// Len returns the number of complete bytes currently in the buffer
// (excludes bits still staged in the dword register).
func (w *Writer) Len() int { return len(w.buffer) }

// PatchBytes overwrites len(data) bytes starting at byte offset off. Used
// by the block framing logic to backfill a length placeholder once a
// block's size is known.
func (w *Writer) PatchBytes(off int, data []byte) {
	copy(w.buffer[off:off+len(data)], data)
}
