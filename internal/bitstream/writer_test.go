package bitstream

import (
	"encoding/binary"
	"testing"
)

func TestWriterWriteBits(t *testing.T) {
	w := NewWriter()

	w.WriteBits(3, 31)
	if got, want := w.BitOffset(), 31; got != want {
		t.Fatalf("BitOffset after first write = %d, want %d", got, want)
	}

	if w.dwordLeft != 1 {
		t.Fatalf("dwordLeft = %d, want 1", w.dwordLeft)
	}

	if w.dwordOffset != 31 {
		t.Fatalf("dwordOffset = %d, want 31", w.dwordOffset)
	}

	w.WriteBits(7, 4)
	if got, want := w.BitOffset(), 35; got != want {
		t.Fatalf("BitOffset after straddling write = %d, want %d", got, want)
	}

	if w.dwordLeft != 29 {
		t.Fatalf("dwordLeft = %d, want 29", w.dwordLeft)
	}

	if w.dwordOffset != 3 {
		t.Fatalf("dwordOffset = %d, want 3", w.dwordOffset)
	}

	w.Flush()
	if got, want := w.BitOffset(), 40; got != want {
		t.Fatalf("BitOffset after flush = %d, want %d", got, want)
	}

	if w.dwordLeft != 32 || w.dwordOffset != 0 {
		t.Fatalf("writer not reset after flush: dwordLeft=%d dwordOffset=%d", w.dwordLeft, w.dwordOffset)
	}
}

func TestWriterAlign(t *testing.T) {
	w := NewWriter()
	w.WriteBits(3, 31)
	w.Align(32)

	if got, want := w.BitOffset(), 32; got != want {
		t.Fatalf("BitOffset after align(32) = %d, want %d", got, want)
	}

	w.Flush()

	if got, want := w.BitOffset(), 32; got != want {
		t.Fatalf("BitOffset after flush = %d, want %d", got, want)
	}
}

func TestWriterWordsAndBytesRoundTrip(t *testing.T) {
	w := NewWriter()

	const n = 30_000

	for i := 0; i < n; i += 3 {
		w.WriteWord(uint16(i))
		w.WriteByte(byte(i))
	}

	if got, want := w.BitOffset(), n*8; got != want {
		t.Fatalf("BitOffset = %d, want %d", got, want)
	}

	w.Flush()

	if got, want := w.BitOffset(), n*8; got != want {
		t.Fatalf("BitOffset after flush = %d, want %d", got, want)
	}

	if got, want := len(w.Bytes()), n; got != want {
		t.Fatalf("len(Bytes()) = %d, want %d", got, want)
	}

	buf := w.Bytes()

	off := 0
	for i := 0; i < n; i += 3 {
		gotWord := binary.LittleEndian.Uint16(buf[off:])
		off += 2

		if gotWord != uint16(i) {
			t.Fatalf("mismatch at %d: word = %d, want %d", i, gotWord, uint16(i))
		}

		gotByte := buf[off]
		off++

		if gotByte != byte(i) {
			t.Fatalf("mismatch at %d: byte = %d, want %d", i, gotByte, byte(i))
		}
	}
}

func TestWriterDwordsAndBytesRoundTrip(t *testing.T) {
	w := NewWriter()

	const n = 30_000

	for i := 0; i < n; i += 5 {
		w.WriteDword(uint32(i))
		w.WriteByte(byte(i))
	}

	if got, want := w.BitOffset(), n*8; got != want {
		t.Fatalf("BitOffset = %d, want %d", got, want)
	}

	w.Flush()

	if got, want := len(w.Bytes()), n; got != want {
		t.Fatalf("len(Bytes()) = %d, want %d", got, want)
	}

	buf := w.Bytes()

	off := 0
	for i := 0; i < n; i += 5 {
		gotDword := binary.LittleEndian.Uint32(buf[off:])
		off += 4

		if gotDword != uint32(i) {
			t.Fatalf("mismatch at %d: dword = %d, want %d", i, gotDword, uint32(i))
		}

		gotByte := buf[off]
		off++

		if gotByte != byte(i) {
			t.Fatalf("mismatch at %d: byte = %d, want %d", i, gotByte, byte(i))
		}
	}
}

func TestWriterWriteBitsReadBack(t *testing.T) {
	// Every write_bits(v, w) must advance BitOffset by exactly w and be
	// recoverable by re-reading the same width back out of a fresh
	// stream of writes.
	for width := uint32(1); width <= 32; width++ {
		w := NewWriter()

		var mask uint32 = 0xffffffff
		if width < 32 {
			mask = (1 << width) - 1
		}

		v := uint32(0xdeadbeef) & mask

		before := w.BitOffset()
		w.WriteBits(v, width)

		if got, want := w.BitOffset()-before, int(width); got != want {
			t.Fatalf("width=%d: BitOffset advanced by %d, want %d", width, got, want)
		}

		w.Flush()

		buf := w.Bytes()

		var read uint32

		for i := 0; i < len(buf) && i < 4; i++ {
			read |= uint32(buf[i]) << (8 * i)
		}

		read &= mask

		if read != v {
			t.Fatalf("width=%d: read back %#x, want %#x", width, read, v)
		}
	}
}
