//go:build unix

package fileslice

import (
	"os"

	"golang.org/x/sys/unix"
)

// pread reads up to len(p) bytes from f at absolute offset off using
// pread(2), leaving the descriptor's file position untouched. EINTR is
// retried; a zero-byte return with no error means end of file.
func pread(f *os.File, p []byte, off int64) (int, error) {
	for {
		n, err := unix.Pread(int(f.Fd()), p, off)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return 0, &os.PathError{Op: "pread", Path: f.Name(), Err: err}
		}
		return n, nil
	}
}
