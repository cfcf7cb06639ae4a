package tuple

import (
	"bytes"

	"github.com/colakv/colakv/buffer"
	"github.com/colakv/colakv/errs"
	"github.com/colakv/colakv/pool"
)

// outputPool backs Pack and PackPrefixed's output buffer, so repeated
// calls reuse backing arrays instead of allocating fresh ones each time.
// EncodeKeys does not use it: it sizes a plain writer from the item count
// and returns several aliasing sub-slices of that one buffer.
var outputPool = pool.NewBuffPool()

// Pack encodes every item of t in order, concatenated with no outer
// framing. It panics if t contains an item outside the enumerated scalar
// kinds; use TryPack to recover that as an error instead.
func Pack(t Tuple) []byte {
	w := buffer.NewWriterFromPool(outputPool, 32)
	t.PackTo(w)
	return w.Bytes()
}

// TryPack is Pack, but reports an unsupported item type as an error
// instead of panicking.
func TryPack(t Tuple) (out []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = e
				return
			}
			panic(r)
		}
	}()
	out = Pack(t)
	return out, nil
}

// PackPrefixed writes prefix, then t's encoding, into one contiguous slice.
func PackPrefixed(prefix []byte, t Tuple) []byte {
	w := buffer.NewWriterFromPool(outputPool, len(prefix)+32)
	w.WriteBytes(prefix)
	t.PackTo(w)
	return w.Bytes()
}

// EncodeKey is the variadic, boxing-avoiding form of Pack over already
// boxed static values: EncodeKey(1, "x", true) == Pack(New(1, "x", true)).
func EncodeKey(items ...any) []byte {
	return Pack(New(items...))
}

// EncodeKeys packs each element of items, each preceded by the optional
// shared prefix, into one backing buffer, returning one slice per item that
// shares that buffer. This mirrors the "merge into one buffer, slice into
// segments" technique: callers who need N packed single-item keys avoid N
// separate allocations.
func EncodeKeys(items []any, prefix []byte) [][]byte {
	w := buffer.NewWriter(len(prefix)*len(items) + 32*len(items))
	bounds := make([][2]int, len(items))
	for i, it := range items {
		start := w.Position()
		w.WriteBytes(prefix)
		if err := EncodeScalar(w, it); err != nil {
			panic(err)
		}
		bounds[i] = [2]int{start, w.Position()}
	}
	// Slice only once every item is written, so a grow mid-loop cannot
	// leave earlier slices on a superseded backing array.
	buf := w.Bytes()
	out := make([][]byte, len(items))
	for i, b := range bounds {
		out[i] = buf[b[0]:b[1]]
	}
	return out
}

// Unpack parses slice one element at a time until exhausted, returning the
// decoded tuple. The empty slice decodes to Empty; slice == nil fails with
// MalformedTuple; trailing garbage after the last element boundary also
// fails with MalformedTuple.
func Unpack(slice []byte) (Tuple, error) {
	if slice == nil {
		return nil, errs.New(errs.MalformedTuple, "cannot unpack a nil slice")
	}
	if len(slice) == 0 {
		return emptyTuple{}, nil
	}
	r := buffer.NewReader(slice)
	var items []any
	var ranges [][2]int
	for !r.Exhausted() {
		start := r.Position()
		v, err := DecodeScalar(r)
		if err != nil {
			return nil, err
		}
		items = append(items, v)
		ranges = append(ranges, [2]int{start, r.Position()})
	}
	return slicedTuple{items: items, ranges: ranges, src: slice}, nil
}

// UnpackPrefixed fails with PrefixMismatch if slice does not start with
// prefix; otherwise it unpacks the remainder.
func UnpackPrefixed(slice, prefix []byte) (Tuple, error) {
	if !bytes.HasPrefix(slice, prefix) {
		return nil, errs.New(errs.PrefixMismatch, "slice does not start with the given prefix")
	}
	return Unpack(slice[len(prefix):])
}

// DecodeFirst parses only the first item of slice and coerces it to T,
// failing with Empty if slice decodes to no items.
func DecodeFirst[T any](slice []byte) (T, error) {
	var zero T
	t, err := Unpack(slice)
	if err != nil {
		return zero, err
	}
	if t.Count() == 0 {
		return zero, errs.New(errs.Empty, "DecodeFirst on an empty-decoding tuple")
	}
	return Get[T](t, 0)
}

// DecodeLast parses slice and coerces its final item to T, failing with
// Empty if slice decodes to no items.
func DecodeLast[T any](slice []byte) (T, error) {
	var zero T
	t, err := Unpack(slice)
	if err != nil {
		return zero, err
	}
	if t.Count() == 0 {
		return zero, errs.New(errs.Empty, "DecodeLast on an empty-decoding tuple")
	}
	return Get[T](t, -1)
}

// DecodeKey parses slice, requires it to decode to exactly one item, and
// coerces that item to T. It fails with Empty for zero items or
// ArityMismatch for more than one.
func DecodeKey[T any](slice []byte) (T, error) {
	var zero T
	t, err := Unpack(slice)
	if err != nil {
		return zero, err
	}
	switch t.Count() {
	case 0:
		return zero, errs.New(errs.Empty, "DecodeKey on an empty-decoding tuple")
	case 1:
		return Get[T](t, 0)
	default:
		return zero, errs.New(errs.ArityMismatch, "DecodeKey expects exactly one item, got %d", t.Count())
	}
}

// ToRangeBytes derives the half-open key range containing all packed keys
// that lexically extend prefix, exclusive of prefix itself:
// begin = prefix || 0x00, end = prefix || 0xFF. If prefix is empty the
// range is (0x00, 0xFF).
func ToRangeBytes(prefix []byte) (begin, end []byte) {
	begin = make([]byte, len(prefix)+1)
	copy(begin, prefix)
	begin[len(prefix)] = 0x00

	end = make([]byte, len(prefix)+1)
	copy(end, prefix)
	end[len(prefix)] = 0xFF

	return begin, end
}

// ToRange is ToRangeBytes over pack(t).
func ToRange(t Tuple) (begin, end []byte) {
	return ToRangeBytes(Pack(t))
}
