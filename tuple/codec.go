// Package tuple implements an order-preserving tuple encoder/decoder:
// mapping heterogeneous records of typed scalar elements to a byte string
// such that lexicographic byte comparison of two encodings equals the
// element-by-element comparison of the source tuples.
//
// The wire format's type-code table below is bit-exact; each scalar kind
// has an encode*/decode* function pair in this file, an idiom carried over
// from dolt's store/val codec tests.
package tuple

import (
	"math"

	"github.com/google/uuid"

	"github.com/colakv/colakv/buffer"
	"github.com/colakv/colakv/errs"
)

// Type code table. Bit-exact; do not renumber.
const (
	typeNil         = 0x00
	typeBytes       = 0x01
	typeString      = 0x02
	typeNestedTuple = 0x03

	typeNegIntStart = 0x0C // 8-byte negative magnitude
	typeIntZero     = 0x14
	typePosIntStart = 0x15 // 1-byte positive magnitude
	typePosIntEnd   = 0x1C // 8-byte positive magnitude

	typeFloat32 = 0x20
	typeFloat64 = 0x21

	typeUUID128 = 0x30
	typeUUID64  = 0x31

	typeDirectoryAlias = 0xFE
	typeSystemAlias    = 0xFF
)

// UUID64 is the 64-bit UUID scalar kind (type code 0x31). google/uuid.UUID
// (a [16]byte) serves directly as the UUID-128 kind (0x30).
type UUID64 [8]byte

// Alias is one of the two sentinel marker kinds that exist only for
// human-readable display of key dumps.
type Alias int

const (
	// DirectoryAlias is the 0xFE sentinel marker.
	DirectoryAlias Alias = iota
	// SystemAlias is the 0xFF sentinel marker.
	SystemAlias
)

func (a Alias) String() string {
	if a == DirectoryAlias {
		return "\\xFE"
	}
	return "\\xFF"
}

// byteWidth returns the number of bytes needed to hold v in a minimal
// big-endian representation (0 only for v == 0).
func byteWidth(v uint64) int {
	n := 0
	for v > 0 {
		n++
		v >>= 8
	}
	return n
}

func topMask(n int) uint64 {
	if n >= 8 {
		return ^uint64(0)
	}
	return (uint64(1) << (8 * n)) - 1
}

func writeTopBytes(w *buffer.Writer, v uint64, n int) {
	w.Ensure(n)
	for i := n - 1; i >= 0; i-- {
		w.WriteByte(byte(v >> (8 * i)))
	}
}

func readTopBytes(r *buffer.Reader, n int) (uint64, bool) {
	bs, ok := r.ReadBytes(n)
	if !ok {
		return 0, false
	}
	var v uint64
	for _, b := range bs {
		v = v<<8 | uint64(b)
	}
	return v, true
}

// encodeUint64 writes v using the positive-magnitude branch of the integer
// scheme, used both for genuinely unsigned values and for the non-negative
// half of signed values.
func encodeUint64(w *buffer.Writer, v uint64) {
	if v == 0 {
		w.WriteByte(typeIntZero)
		return
	}
	n := byteWidth(v)
	w.WriteByte(byte(typeIntZero + n))
	writeTopBytes(w, v, n)
}

// encodeInt64 writes v using the full signed integer scheme.
func encodeInt64(w *buffer.Writer, v int64) {
	if v == 0 {
		w.WriteByte(typeIntZero)
		return
	}
	if v > 0 {
		encodeUint64(w, uint64(v))
		return
	}
	mag := uint64(-v) // correct even when v == math.MinInt64, via two's-complement wraparound.
	n := byteWidth(mag)
	onesComp := topMask(n) - mag
	w.WriteByte(byte(typeIntZero - n))
	writeTopBytes(w, onesComp, n)
}

// decodeInteger reads one integer element (positive, negative, or zero) and
// returns its value as both a signed and unsigned view; callers pick
// whichever their static target type wants. wasNegative distinguishes an
// encoded negative value (whose uint64 view is meaningless) from a
// nonnegative one.
func decodeInteger(r *buffer.Reader) (i64 int64, u64 uint64, wasNegative bool, err error) {
	t, ok := r.ReadByte()
	if !ok {
		return 0, 0, false, errs.New(errs.MalformedTuple, "truncated integer: missing type byte")
	}
	switch {
	case t == typeIntZero:
		return 0, 0, false, nil
	case int(t) > typeIntZero && int(t) <= typePosIntEnd:
		n := int(t) - typeIntZero
		mag, ok := readTopBytes(r, n)
		if !ok {
			return 0, 0, false, errs.New(errs.MalformedTuple, "truncated positive integer body (want %d bytes)", n)
		}
		return int64(mag), mag, false, nil
	case int(t) >= typeNegIntStart && int(t) < typeIntZero:
		n := typeIntZero - int(t)
		onesComp, ok := readTopBytes(r, n)
		if !ok {
			return 0, 0, false, errs.New(errs.MalformedTuple, "truncated negative integer body (want %d bytes)", n)
		}
		mag := topMask(n) - onesComp
		if mag > uint64(1)<<63 {
			return 0, 0, false, errs.New(errs.MalformedTuple, "negative integer magnitude overflows int64")
		}
		return -int64(mag), 0, true, nil
	default:
		return 0, 0, false, errs.New(errs.MalformedTuple, "type byte 0x%02X is not an integer", t)
	}
}

func encodeFloat32(w *buffer.Writer, f float32) {
	bits := math.Float32bits(f)
	if bits&(1<<31) != 0 {
		bits = ^bits
	} else {
		bits |= 1 << 31
	}
	w.WriteByte(typeFloat32)
	w.Ensure(4)
	w.WriteByte(byte(bits >> 24))
	w.WriteByte(byte(bits >> 16))
	w.WriteByte(byte(bits >> 8))
	w.WriteByte(byte(bits))
}

func decodeFloat32Body(r *buffer.Reader) (float32, error) {
	bs, ok := r.ReadBytes(4)
	if !ok {
		return 0, errs.New(errs.MalformedTuple, "truncated float32 body")
	}
	bits := uint32(bs[0])<<24 | uint32(bs[1])<<16 | uint32(bs[2])<<8 | uint32(bs[3])
	if bits&(1<<31) != 0 {
		bits &^= 1 << 31
	} else {
		bits = ^bits
	}
	return math.Float32frombits(bits), nil
}

func encodeFloat64(w *buffer.Writer, f float64) {
	bits := math.Float64bits(f)
	if bits&(1<<63) != 0 {
		bits = ^bits
	} else {
		bits |= 1 << 63
	}
	w.WriteByte(typeFloat64)
	writeTopBytes(w, bits, 8)
}

func decodeFloat64Body(r *buffer.Reader) (float64, error) {
	bits, ok := readTopBytes(r, 8)
	if !ok {
		return 0, errs.New(errs.MalformedTuple, "truncated float64 body")
	}
	if bits&(1<<63) != 0 {
		bits &^= 1 << 63
	} else {
		bits = ^bits
	}
	return math.Float64frombits(bits), nil
}

// encodeEscapedBody writes p with every 0x00 byte escaped as 0x00 0xFF,
// followed by an unescaped 0x00 terminator, used by byte strings, unicode
// strings, and nested tuples alike.
func encodeEscapedBody(w *buffer.Writer, p []byte) {
	w.Ensure(len(p) + 1)
	for _, b := range p {
		if b == 0x00 {
			w.WriteBytePair(0x00, 0xFF)
		} else {
			w.WriteByte(b)
		}
	}
	w.WriteByte(0x00)
}

func encodeBytes(w *buffer.Writer, p []byte) {
	w.WriteByte(typeBytes)
	encodeEscapedBody(w, p)
}

func encodeString(w *buffer.Writer, s string) {
	w.WriteByte(typeString)
	encodeEscapedBody(w, []byte(s))
}

func encodeUUID128(w *buffer.Writer, u uuid.UUID) {
	w.WriteByte(typeUUID128)
	w.WriteBytes(u[:])
}

func decodeUUID128Body(r *buffer.Reader) (uuid.UUID, error) {
	bs, ok := r.ReadBytes(16)
	if !ok {
		return uuid.UUID{}, errs.New(errs.MalformedTuple, "truncated uuid128 body")
	}
	var u uuid.UUID
	copy(u[:], bs)
	return u, nil
}

func encodeUUID64(w *buffer.Writer, u UUID64) {
	w.WriteByte(typeUUID64)
	w.WriteBytes(u[:])
}

func decodeUUID64Body(r *buffer.Reader) (UUID64, error) {
	bs, ok := r.ReadBytes(8)
	if !ok {
		return UUID64{}, errs.New(errs.MalformedTuple, "truncated uuid64 body")
	}
	var u UUID64
	copy(u[:], bs)
	return u, nil
}

func encodeAlias(w *buffer.Writer, a Alias) {
	if a == DirectoryAlias {
		w.WriteByte(typeDirectoryAlias)
	} else {
		w.WriteByte(typeSystemAlias)
	}
}
