package fileslice

import (
	"archive/tar"
	"io"
	"os"

	"github.com/pkg/errors"
)

// TarEntry pairs one tar header with a slice bounding exactly that entry's
// payload bytes within the tarball.
type TarEntry struct {
	Header *tar.Header
	Slice  *FileSlice
}

// SliceTarball adopts f, walks the tarball in it once, and returns one
// TarEntry per archive entry. The walk skips entry payloads by seeking, so
// no entry body is read here.
//
// All returned slices share f's descriptor; each must be closed, and the
// descriptor is closed when the last of them is. On error, or for an empty
// tarball, f is closed before returning.
func SliceTarball(f *os.File) ([]TarEntry, error) {
	root, err := New(f)
	if err != nil {
		return nil, err
	}
	defer root.Close()

	type span struct {
		hdr        *tar.Header
		start, end int64
	}
	var spans []span
	tr := tar.NewReader(root)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "cannot walk tarball: %s", f.Name())
		}
		// After Next the reader sits exactly at the start of this entry's
		// payload, so root's absolute position is the raw data offset.
		start := root.Position()
		spans = append(spans, span{hdr: hdr, start: start, end: start + hdr.Size})
	}

	entries := make([]TarEntry, len(spans))
	for i, s := range spans {
		entries[i] = TarEntry{Header: s.hdr, Slice: root.Slice(s.start, s.end)}
	}
	return entries, nil
}
