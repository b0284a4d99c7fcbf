// Package region provides the backing-region handle for metric descriptors.
//
// A Region is a view over a byte range, normally a slice of a memory-mapped
// file owned by the external registry, that mirrors one metric's current
// value. Descriptors start out on a shared anonymous scratch region (see
// Scratch) and are rebound to their real file offset once the registry has
// computed the overall layout.
package region

import (
	"sync"

	"github.com/arloliu/mmv/errs"
	"github.com/arloliu/mmv/format"
)

// Region is a writable view over a byte range that mirrors a metric value.
//
// The underlying memory is owned externally (the mapped file, or the shared
// scratch allocation); the Region only carries the reference. The zero value
// is an empty region that every write fails against.
type Region struct {
	buf []byte
}

// New creates a Region over the given byte range.
func New(buf []byte) Region {
	return Region{buf: buf}
}

// Len returns the size of the region in bytes.
func (r Region) Len() int {
	return len(r.buf)
}

// Bytes returns the underlying byte range. The caller must not grow it;
// readers decode the current value directly from this slice.
func (r Region) Bytes() []byte {
	return r.buf
}

// NewWriter returns a write cursor positioned at the start of the region.
// Each value update uses a fresh writer so the encoded form always lands at
// offset zero of the region.
func (r Region) NewWriter() *Writer {
	return &Writer{buf: r.buf}
}

// Writer is an io.Writer over a Region with all-or-nothing semantics.
//
// A write that would run past the end of the region writes nothing and
// returns errs.ErrRegionOverflow, so a failed encode leaves the previously
// written bytes stale rather than corrupted.
type Writer struct {
	buf []byte
	off int
}

// Write copies p into the region at the current offset. It never performs a
// short write: if p does not fit in the remaining range, nothing is copied
// and errs.ErrRegionOverflow is returned.
func (w *Writer) Write(p []byte) (int, error) {
	if len(p) > len(w.buf)-w.off {
		return 0, errs.ErrRegionOverflow
	}

	n := copy(w.buf[w.off:], p)
	w.off += n

	return n, nil
}

// Offset returns the number of bytes written so far.
func (w *Writer) Offset() int {
	return w.off
}

var (
	scratchOnce sync.Once
	scratch     Region
)

// Scratch returns the process-wide placeholder region shared by every
// descriptor not yet bound to real storage.
//
// It is created lazily exactly once, sized to hold the largest encodable
// value (one string block), anonymous rather than file-backed, and never torn
// down. Writes to it are not externally visible; descriptors bound here
// overwrite each other's bytes harmlessly until the registry rebinds them.
func Scratch() Region {
	scratchOnce.Do(func() {
		scratch = New(make([]byte, format.StringBlockLen))
	})

	return scratch
}
