package fileslice

import (
	"archive/tar"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type tarPayload struct {
	name string
	data []byte
}

// writeTestTarball writes a USTAR tarball holding the given payloads and
// returns it freshly opened for reading.
func writeTestTarball(t *testing.T, payloads []tarPayload) *os.File {
	t.Helper()
	path := filepath.Join(t.TempDir(), "archive.tar")
	out, err := os.Create(path)
	require.NoError(t, err)
	tw := tar.NewWriter(out)
	for _, p := range payloads {
		require.NoError(t, tw.WriteHeader(&tar.Header{
			Name:     p.name,
			Size:     int64(len(p.data)),
			Mode:     0o644,
			Typeflag: tar.TypeReg,
			Format:   tar.FormatUSTAR,
		}))
		_, err := tw.Write(p.data)
		require.NoError(t, err)
	}
	require.NoError(t, tw.Close())
	require.NoError(t, out.Close())

	f, err := os.Open(path)
	require.NoError(t, err)
	return f
}

func TestSliceTarball(t *testing.T) {
	payloads := []tarPayload{
		{name: "a", data: []byte("hello world!")},                 // 12 bytes
		{name: "b", data: []byte("columnar-payload-columnar-pa")}, // 28 bytes
	}
	f := writeTestTarball(t, payloads)
	raw, err := os.ReadFile(f.Name())
	require.NoError(t, err)

	entries, err := SliceTarball(f)
	require.NoError(t, err)
	require.Len(t, entries, len(payloads))

	for i, e := range entries {
		defer e.Slice.Close()
		require.Equal(t, payloads[i].name, e.Header.Name)
		require.EqualValues(t, len(payloads[i].data), e.Slice.Len())
		got, err := io.ReadAll(e.Slice)
		require.NoError(t, err)
		require.Equal(t, payloads[i].data, got)
	}

	// the slices must bound the raw payload bytes inside the file: with
	// USTAR, headers are one 512-byte block and payloads are padded to block
	// boundaries, putting "a" at 512 and "b" at 1536
	require.Equal(t, raw[512:524], payloads[0].data)
	require.Equal(t, raw[1536:1564], payloads[1].data)
}

func TestSliceTarballEntriesOutliveAdapter(t *testing.T) {
	payloads := []tarPayload{
		{name: "first", data: []byte("0123456789")},
		{name: "second", data: []byte("abcdefghij")},
	}
	f := writeTestTarball(t, payloads)

	entries, err := SliceTarball(f)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// the adapter's own reference is gone; each entry independently keeps
	// the descriptor alive
	got, err := io.ReadAll(entries[0].Slice)
	require.NoError(t, err)
	require.Equal(t, payloads[0].data, got)
	require.NoError(t, entries[0].Slice.Close())

	got, err = io.ReadAll(entries[1].Slice)
	require.NoError(t, err)
	require.Equal(t, payloads[1].data, got)
	require.NoError(t, entries[1].Slice.Close())

	// last slice closed: the adopted descriptor is closed too
	_, err = f.Stat()
	require.Error(t, err)
}

func TestSliceTarballEmpty(t *testing.T) {
	f := writeTestTarball(t, nil)

	entries, err := SliceTarball(f)
	require.NoError(t, err)
	require.Empty(t, entries)

	// with no entries to hold it open, the adopted descriptor is released
	require.ErrorIs(t, f.Close(), os.ErrClosed)
}
