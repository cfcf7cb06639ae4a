package tuple

import (
	"github.com/google/uuid"

	"github.com/colakv/colakv/buffer"
	"github.com/colakv/colakv/errs"
)

// Timestamp and Interval are convenience wrappers around a signed 64-bit
// tick count for time-interval and timestamp scalar kinds. Neither gets a
// dedicated type code; both encode through the ordinary signed-integer
// path, so a decoded tuple returns a plain int64 for these positions
// unless the caller asks for one of these named types explicitly via
// Get[Timestamp]/Get[Interval].
type Timestamp int64
type Interval int64

// EncodeScalar writes one dynamically-typed value using the static encoder
// for its concrete Go type, or fails with UnsupportedType when v is not
// one of the enumerated kinds.
func EncodeScalar(w *buffer.Writer, v any) error {
	switch x := v.(type) {
	case nil:
		w.WriteByte(typeNil)
	case bool:
		if x {
			encodeUint64(w, 1)
		} else {
			encodeUint64(w, 0)
		}
	case int:
		encodeInt64(w, int64(x))
	case int8:
		encodeInt64(w, int64(x))
	case int16:
		encodeInt64(w, int64(x))
	case int32:
		encodeInt64(w, int64(x))
	case int64:
		encodeInt64(w, x)
	case uint:
		encodeUint64(w, uint64(x))
	case uint8:
		encodeUint64(w, uint64(x))
	case uint16:
		encodeUint64(w, uint64(x))
	case uint32:
		encodeUint64(w, uint64(x))
	case uint64:
		encodeUint64(w, x)
	case float32:
		encodeFloat32(w, x)
	case float64:
		encodeFloat64(w, x)
	case string:
		encodeString(w, x)
	case []byte:
		encodeBytes(w, x)
	case uuid.UUID:
		encodeUUID128(w, x)
	case UUID64:
		encodeUUID64(w, x)
	case Alias:
		encodeAlias(w, x)
	case Timestamp:
		encodeInt64(w, int64(x))
	case Interval:
		encodeInt64(w, int64(x))
	case Tuple:
		inner := Pack(x)
		w.WriteByte(typeNestedTuple)
		encodeEscapedBody(w, inner)
	default:
		return errs.New(errs.UnsupportedType, "no tuple encoder for %T", v)
	}
	return nil
}

// DecodeScalar reads one element and returns its dynamically-typed value.
// Integers that fit the signed 64-bit range decode as int64; integers whose
// magnitude exceeds math.MaxInt64 (only possible for unsigned values
// encoded via encodeUint64 with the high bit set) decode as uint64.
func DecodeScalar(r *buffer.Reader) (any, error) {
	t := r.PeekByte()
	if t < 0 {
		return nil, errs.New(errs.MalformedTuple, "no type byte: buffer exhausted")
	}
	switch {
	case t == typeNil:
		r.ReadByte()
		return nil, nil
	case t == typeBytes:
		r.ReadByte()
		body, ok := r.ReadUntilTerminator()
		if !ok {
			return nil, errs.New(errs.MalformedTuple, "byte string missing terminator")
		}
		out := make([]byte, len(body))
		copy(out, body)
		return out, nil
	case t == typeString:
		r.ReadByte()
		body, ok := r.ReadUntilTerminator()
		if !ok {
			return nil, errs.New(errs.MalformedTuple, "unicode string missing terminator")
		}
		return string(body), nil
	case t == typeNestedTuple:
		r.ReadByte()
		body, ok := r.ReadUntilTerminator()
		if !ok {
			return nil, errs.New(errs.MalformedTuple, "nested tuple missing terminator")
		}
		return Unpack(body)
	case t >= typeNegIntStart && t <= typePosIntEnd:
		i64, u64, neg, err := decodeInteger(r)
		if err != nil {
			return nil, err
		}
		if neg || i64 >= 0 {
			return i64, nil
		}
		return u64, nil
	case t == typeFloat32:
		r.ReadByte()
		return decodeFloat32Body(r)
	case t == typeFloat64:
		r.ReadByte()
		return decodeFloat64Body(r)
	case t == typeUUID128:
		r.ReadByte()
		return decodeUUID128Body(r)
	case t == typeUUID64:
		r.ReadByte()
		return decodeUUID64Body(r)
	case t == typeDirectoryAlias:
		r.ReadByte()
		return DirectoryAlias, nil
	case t == typeSystemAlias:
		r.ReadByte()
		return SystemAlias, nil
	default:
		return nil, errs.New(errs.MalformedTuple, "unknown type byte 0x%02X", t)
	}
}
