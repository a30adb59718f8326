//go:build !linux

package bcio

import "os"

// syncFile is the portable fallback used on platforms without
// golang.org/x/sys/unix's Fdatasync.
func syncFile(f *os.File) error {
	return f.Sync()
}
