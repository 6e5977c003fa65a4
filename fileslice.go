package fileslice

import (
	"io"
	"os"
	"sync/atomic"

	"github.com/pkg/errors"
)

// sharedFile is the reference-counted handle to one open descriptor.
//
// The descriptor is immutable after construction; only the count changes.
// That split is what makes slices cheap and safe to fan out: every slice
// carries its own cursor and bounds, while the descriptor underneath is read
// through pread and never repositioned.
type sharedFile struct {
	f    *os.File
	refs atomic.Int64
}

func (s *sharedFile) retain() *sharedFile {
	s.refs.Add(1)
	return s
}

// release drops one reference and closes the descriptor when the last one
// goes.
func (s *sharedFile) release() error {
	if s.refs.Add(-1) == 0 {
		return s.f.Close()
	}
	return nil
}

// FileSlice is a byte-range view [start, end) of an open file. It behaves
// like a regular file, emulated in userspace using the positional read
// primitive, so any number of slices of the same file can be read without
// duplicating the descriptor and without racing on a shared file position.
//
// Methods that move the cursor (Read, Seek) must not be called concurrently
// on one slice; distinct slices of the same file need no coordination.
type FileSlice struct {
	shared *sharedFile
	// cursor may run past end but never before start
	cursor int64
	start  int64
	end    int64
	closed bool
}

var (
	_ io.ReadSeekCloser = (*FileSlice)(nil)
	_ io.ReaderAt       = (*FileSlice)(nil)
)

// New adopts f and returns a slice covering the whole file. The file length
// is queried once, here; it is not re-checked afterwards (see Expand).
func New(f *os.File) (*FileSlice, error) {
	fi, err := f.Stat()
	if err != nil {
		return nil, errors.Wrapf(err, "cannot stat file: %s", f.Name())
	}
	sh := &sharedFile{f: f}
	sh.refs.Store(1)
	return &FileSlice{shared: sh, end: fi.Size()}, nil
}

// Close releases this slice's reference to the shared descriptor. The
// descriptor itself is closed when the last slice referencing it is closed.
// Closing a slice twice is a no-op.
func (fs *FileSlice) Close() error {
	if fs.closed {
		return nil
	}
	fs.closed = true
	return fs.shared.release()
}

// Expand grows the slice to cover the whole file as it is now: start moves
// to 0 and end is refreshed from the live file length. This collapses a
// previously narrowed window, and repeated calls can observe different
// lengths if the file is being appended to. Sibling slices are unaffected.
func (fs *FileSlice) Expand() error {
	fi, err := fs.shared.f.Stat()
	if err != nil {
		return errors.Wrapf(err, "cannot stat file: %s", fs.shared.f.Name())
	}
	fs.start = 0
	fs.end = fi.Size()
	return nil
}

// TryIntoFile unwraps the slice back into its descriptor. It succeeds only
// when no other slice shares the descriptor; on success the slice is
// consumed and the caller owns the returned file. Otherwise it reports
// false and the slice remains usable.
func (fs *FileSlice) TryIntoFile() (*os.File, bool) {
	if fs.closed {
		return nil, false
	}
	if !fs.shared.refs.CompareAndSwap(1, 0) {
		return nil, false
	}
	fs.closed = true
	return fs.shared.f, true
}
