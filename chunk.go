package fileslice

import (
	"io"
	"os"

	"github.com/pkg/errors"
)

// Len returns the number of bytes remaining between the cursor and the
// window's end — what a chunked consumer has left to read, not the window
// size (see Size). Zero once the cursor has reached or passed the end.
func (fs *FileSlice) Len() int64 {
	if fs.cursor >= fs.end {
		return 0
	}
	return fs.end - fs.cursor
}

// Size returns the window size, end - start, independent of the cursor.
func (fs *FileSlice) Size() int64 {
	return fs.end - fs.start
}

// ReadAt reads into p at off, relative to the window's start. It never
// touches the cursor, so concurrent ReadAt calls on the same slice are safe.
// Reads are clamped at the window's end; a clamped or exhausted read returns
// io.EOF alongside whatever bytes were available, per the io.ReaderAt
// contract.
func (fs *FileSlice) ReadAt(p []byte, off int64) (int, error) {
	if off < 0 {
		return 0, errors.New("fileslice: negative read offset")
	}
	abs, ok := addInt64(fs.start, off)
	if !ok || abs >= fs.end {
		return 0, io.EOF
	}
	clamped := false
	if max := fs.end - abs; int64(len(p)) > max {
		p = p[:max]
		clamped = true
	}
	n, err := preadFull(fs.shared.f, p, abs)
	if err != nil {
		return n, err
	}
	if clamped {
		return n, io.EOF
	}
	return n, nil
}

// Bytes returns an owned buffer holding exactly n bytes starting at off,
// relative to the window's start. Unlike ReadAt it is all-or-nothing: if
// fewer than n bytes sit between off and the window's end it fails with
// io.ErrUnexpectedEOF and returns no data.
func (fs *FileSlice) Bytes(off, n int64) ([]byte, error) {
	if off < 0 || n < 0 {
		return nil, errors.New("fileslice: negative range")
	}
	end, ok := addInt64(off, n)
	if !ok {
		return nil, io.ErrUnexpectedEOF
	}
	sub := fs.Slice(off, end)
	defer sub.Close()
	if sub.Size() < n {
		return nil, io.ErrUnexpectedEOF
	}
	buf := make([]byte, n)
	if _, err := preadFull(fs.shared.f, buf, sub.start); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return nil, err
	}
	return buf, nil
}

// preadFull reads exactly len(p) bytes at absolute offset off, looping over
// short positional reads. It returns io.EOF if the file ends first.
func preadFull(f *os.File, p []byte, off int64) (int, error) {
	var n int
	for n < len(p) {
		m, err := pread(f, p[n:], off+int64(n))
		n += m
		if err != nil {
			return n, err
		}
		if m == 0 {
			return n, io.EOF
		}
	}
	return n, nil
}
