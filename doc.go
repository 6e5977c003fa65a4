// Package fileslice provides byte-range views ("slices") of open files,
// emulating independent file handles in userspace on top of the positional
// read primitive, without duplicating file descriptors.
//
// The library is organised into several files for clarity:
//
//	fileslice.go   – FileSlice type, construction & descriptor lifecycle
//	slice.go       – re-slicing & window bounds arithmetic
//	io.go          – stream-style Read/Seek/Position
//	chunk.go       – chunked access: Len/Size/ReadAt/Bytes
//	pread_unix.go  – positional read via pread(2) (unix builds)
//	pread_other.go – portable positional read fallback
//	tar.go         – tarball adapter: one slice per archive entry
//
// See the README for usage examples.
package fileslice
