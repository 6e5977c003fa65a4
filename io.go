package fileslice

import (
	"io"
	"math"

	"github.com/pkg/errors"
)

// ErrSeekOutOfBounds is returned by Seek when the target offset would land
// before the window's start.
var ErrSeekOutOfBounds = errors.New("fileslice: seek before start of slice")

// Read reads up to len(p) bytes at the cursor, never crossing the window's
// end. It issues one positional read against the shared descriptor and
// advances the cursor by however many bytes the OS returned. At or past the
// window's end it returns (0, io.EOF).
func (fs *FileSlice) Read(p []byte) (int, error) {
	remaining := fs.end - fs.cursor
	if remaining <= 0 {
		return 0, io.EOF
	}
	if int64(len(p)) > remaining {
		p = p[:remaining]
	}
	if len(p) == 0 {
		return 0, nil
	}
	n, err := pread(fs.shared.f, p, fs.cursor)
	fs.cursor += int64(n)
	if err != nil {
		return n, err
	}
	if n == 0 {
		// The file is shorter than the window (truncated since the window
		// was set): report end of file rather than spinning.
		return 0, io.EOF
	}
	return n, nil
}

// Seek moves the cursor. io.SeekStart is relative to the window's start,
// io.SeekCurrent to the cursor, io.SeekEnd to the window's end. The cursor
// may be placed past the end (reads there return io.EOF), but never before
// the start: such targets fail with ErrSeekOutOfBounds and leave the cursor
// where it was. The returned position is relative to the window's start.
func (fs *FileSlice) Seek(offset int64, whence int) (int64, error) {
	var base int64
	switch whence {
	case io.SeekStart:
		base = fs.start
	case io.SeekCurrent:
		base = fs.cursor
	case io.SeekEnd:
		base = fs.end
	default:
		return 0, errors.Errorf("fileslice: invalid seek whence: %d", whence)
	}
	target, ok := addInt64(base, offset)
	if !ok || target < fs.start {
		return 0, ErrSeekOutOfBounds
	}
	fs.cursor = target
	return fs.cursor - fs.start, nil
}

// Position returns the cursor's offset relative to the window's start,
// without side effects.
func (fs *FileSlice) Position() int64 {
	return fs.cursor - fs.start
}

// addInt64 adds a and b, reporting whether the sum stayed within int64.
func addInt64(a, b int64) (int64, bool) {
	if b > 0 && a > math.MaxInt64-b {
		return 0, false
	}
	if b < 0 && a < math.MinInt64-b {
		return 0, false
	}
	return a + b, true
}
