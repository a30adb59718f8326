//go:build linux

package bcio

import (
	"os"

	"golang.org/x/sys/unix"
)

// syncFile issues fdatasync on platforms that support it (cheaper than a
// full fsync since the bitcode file's metadata rarely changes after
// creation), falling back to the portable Sync otherwise.
func syncFile(f *os.File) error {
	if err := unix.Fdatasync(int(f.Fd())); err != nil {
		if err == unix.ENOSYS || err == unix.EINVAL {
			return f.Sync()
		}

		return err
	}

	return nil
}
