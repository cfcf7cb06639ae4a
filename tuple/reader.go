package tuple

import (
	"github.com/colakv/colakv/buffer"
	"github.com/colakv/colakv/errs"
)

func errUnsupportedCoerce(v, zero any) error {
	return errs.New(errs.UnsupportedType, "item %v (%T) is not coercible to %T", v, v, zero)
}

// Reader is the streaming consumer form of the codec: it parses one
// element at a time from a packed slice without materializing the whole
// tuple up front.
type Reader struct {
	r *buffer.Reader
}

// NewReader returns a Reader over a packed slice.
func NewReader(slice []byte) *Reader {
	return &Reader{r: buffer.NewReader(slice)}
}

// Exhausted reports whether every element has been consumed.
func (dr *Reader) Exhausted() bool {
	return dr.r.Exhausted()
}

// Next decodes and returns the next element, or ok == false if the reader
// is already exhausted.
func (dr *Reader) Next() (v any, ok bool, err error) {
	if dr.r.Exhausted() {
		return nil, false, nil
	}
	v, err = DecodeScalar(dr.r)
	if err != nil {
		return nil, false, err
	}
	return v, true, nil
}

// DecodeNext decodes and coerces the next element to T, or ok == false if
// the reader is already exhausted.
func DecodeNext[T any](dr *Reader) (v T, ok bool, err error) {
	raw, hasNext, err := dr.Next()
	if err != nil || !hasNext {
		return v, false, err
	}
	out, coerceOK := coerce[T](raw)
	if !coerceOK {
		return v, false, errUnsupportedCoerce(raw, v)
	}
	return out, true, nil
}
