package fileslice

// Slice returns a sub-slice of fs covering [start, end) interpreted relative
// to fs's own window. The child is clamped so it can shrink but never escape
// its parent: both endpoints stay within the parent window, end never drops
// below start, and negative endpoints are treated as 0. The child's cursor
// starts at its own beginning.
//
// Slicing performs no syscall; it bumps the shared descriptor's reference
// count and computes new bounds.
func (fs *FileSlice) Slice(start, end int64) *FileSlice {
	if start < 0 {
		start = 0
	}
	if end < 0 {
		end = 0
	}
	absStart := clampAdd(fs.start, start, fs.end)
	absEnd := clampAdd(fs.start, end, fs.end)
	if absEnd < absStart {
		absEnd = absStart
	}
	return &FileSlice{
		shared: fs.shared.retain(),
		cursor: absStart,
		start:  absStart,
		end:    absEnd,
	}
}

// SliceFrom is Slice with an unbounded end: the child runs from start
// (relative to fs's window) to fs's end.
func (fs *FileSlice) SliceFrom(start int64) *FileSlice {
	return fs.Slice(start, fs.end-fs.start)
}

// clampAdd returns min(base+off, hi) without overflowing, for
// 0 <= base <= hi and off >= 0.
func clampAdd(base, off, hi int64) int64 {
	if off > hi-base {
		return hi
	}
	return base + off
}
