// Package buffer implements growable write/read cursors over a contiguous
// byte region, used by the tuple codec to build and parse packed keys
// without per-field allocation. Writers hand-roll big-endian writes the way
// dolt's store/val codec does, rather than going through encoding/binary,
// since the tuple scalar encoding needs variable-width big-endian integers
// that encoding/binary's fixed-width helpers don't express.
package buffer

import "github.com/colakv/colakv/pool"

// Writer is an append-only cursor over a growable []byte. The zero value is
// ready to use.
type Writer struct {
	buf  []byte
	pool *pool.BuffPool
}

// NewWriter returns a Writer pre-sized to hold at least n bytes before its
// first grow. Callers that know the final size up front should pre-size to
// avoid copies.
func NewWriter(n int) *Writer {
	return &Writer{buf: make([]byte, 0, n)}
}

// NewWriterFromPool returns a Writer like NewWriter, except its initial
// backing array and every later grow are drawn from bp instead of a fresh
// allocation. A grow still invalidates slices returned by an earlier call
// to Bytes, exactly as it does for a plain Writer; recycling the
// superseded backing array through bp only reuses memory that callers are
// already documented not to keep referencing.
func NewWriterFromPool(bp *pool.BuffPool, n int) *Writer {
	return &Writer{buf: bp.Get(n)[:0], pool: bp}
}

// Ensure grows the backing array, if necessary, so that n more bytes can be
// written without a further allocation.
func (w *Writer) Ensure(n int) {
	if cap(w.buf)-len(w.buf) >= n {
		return
	}
	need := len(w.buf) + n
	newCap := cap(w.buf)
	if newCap == 0 {
		newCap = 16
	}
	for newCap < need {
		newCap *= 2
	}
	var grown []byte
	if w.pool != nil {
		grown = w.pool.Get(newCap)[:len(w.buf)]
	} else {
		grown = make([]byte, len(w.buf), newCap)
	}
	copy(grown, w.buf)
	if w.pool != nil {
		w.pool.Put(w.buf)
	}
	w.buf = grown
}

// WriteByte appends a single byte.
func (w *Writer) WriteByte(b byte) {
	w.Ensure(1)
	w.buf = append(w.buf, b)
}

// WriteBytePair appends two bytes in order; a convenience for writing an
// escaped NUL (0x00 0xFF) in one call.
func (w *Writer) WriteBytePair(a, b byte) {
	w.Ensure(2)
	w.buf = append(w.buf, a, b)
}

// WriteBytes appends a raw byte slice.
func (w *Writer) WriteBytes(p []byte) {
	w.Ensure(len(p))
	w.buf = append(w.buf, p...)
}

// Position returns the current write offset, i.e. the number of bytes
// written so far.
func (w *Writer) Position() int {
	return len(w.buf)
}

// Bytes returns the immutable view of everything written so far. The
// returned slice must not be mutated by the caller; Writer may still be
// reused for further writes, which can reallocate and invalidate earlier
// views obtained before a grow.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// Reset empties the writer for reuse, retaining its backing array.
func (w *Writer) Reset() {
	w.buf = w.buf[:0]
}
