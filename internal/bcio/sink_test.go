package bcio

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.bc")

	want := []byte{0xde, 0xad, 0xbe, 0xef, 0x01, 0x02, 0x03}

	if err := WriteFile(path, want); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}

	if string(got) != string(want) {
		t.Fatalf("round trip mismatch: got %x, want %x", got, want)
	}
}

func TestWriteFileOverwritesExisting(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.bc")

	if err := WriteFile(path, []byte{0x01, 0x02, 0x03, 0x04}); err != nil {
		t.Fatalf("WriteFile (first): %v", err)
	}

	if err := WriteFile(path, []byte{0xaa}); err != nil {
		t.Fatalf("WriteFile (second): %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}

	if len(got) != 1 || got[0] != 0xaa {
		t.Fatalf("WriteFile did not truncate: got %x", got)
	}
}
