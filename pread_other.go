//go:build !unix

package fileslice

import (
	"io"
	"os"
)

// pread reads up to len(p) bytes from f at absolute offset off. On platforms
// without pread(2) the runtime's positional ReadAt stands in; like the unix
// variant it reports end of file as a zero-byte read with no error.
func pread(f *os.File, p []byte, off int64) (int, error) {
	n, err := f.ReadAt(p, off)
	if err == io.EOF {
		err = nil
	}
	return n, err
}
