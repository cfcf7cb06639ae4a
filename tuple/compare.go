// Equality and hashing. Two comparison modes are exposed:
//
//   - Equal (the default comparer) is strict: items must share both their
//     concrete Go type and value. Because the wire encoding of a scalar
//     never depends on its static Go width (only on its mathematical
//     value and kind), two tuples that are Equal always Pack to identical
//     bytes — this is what lets Hash simply be a hash of Pack's output.
//     The converse does not hold: int32(1) and int64(1) pack to the same
//     bytes but are not Equal.
//   - EqualSimilar is the looser "similar-value" comparer the ordered set
//     and dictionary use for canonicalization: it additionally treats
//     integers (and bool, since booleans encode through the same wire path
//     as 0/1) of differing Go widths as equal when their mathematical
//     values match, and compares floating-point items by value regardless
//     of float32/float64 width.
//     It is not required to (and does not) imply byte-identical packing —
//     a float32 1.0 and a float64 1.0 compare EqualSimilar but pack to
//     different bytes, since they use different type codes (0x20 vs 0x21).
package tuple

import (
	"bytes"
	"reflect"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
)

// Equal is the default (strict) tuple comparer.
func Equal(a, b Tuple) bool {
	return compareTuples(a, b, false)
}

// EqualSimilar is the looser, width-crossing comparer described above.
func EqualSimilar(a, b Tuple) bool {
	return compareTuples(a, b, true)
}

// ByteEqual reports whether a and b pack to identical bytes.
func ByteEqual(a, b Tuple) bool {
	return bytes.Equal(Pack(a), Pack(b))
}

func compareTuples(a, b Tuple, similar bool) bool {
	if a.Count() != b.Count() {
		return false
	}
	for i := 0; i < a.Count(); i++ {
		va, _ := a.Get(i)
		vb, _ := b.Get(i)
		if !itemEqual(va, vb, similar) {
			return false
		}
	}
	return true
}

func itemEqual(va, vb any, similar bool) bool {
	if va == nil || vb == nil {
		return va == nil && vb == nil
	}
	if similar {
		if eq, both := similarNumericEqual(va, vb); both {
			return eq
		}
	}
	switch x := va.(type) {
	case string:
		y, ok := vb.(string)
		return ok && x == y
	case []byte:
		y, ok := vb.([]byte)
		return ok && bytes.Equal(x, y)
	case uuid.UUID:
		y, ok := vb.(uuid.UUID)
		return ok && x == y
	case UUID64:
		y, ok := vb.(UUID64)
		return ok && x == y
	case Alias:
		y, ok := vb.(Alias)
		return ok && x == y
	case Tuple:
		y, ok := vb.(Tuple)
		return ok && compareTuples(x, y, similar)
	default:
		return reflect.DeepEqual(va, vb)
	}
}

// similarNumericEqual implements EqualSimilar's numeric crossing rule.
// both is false when either value is not one of the numeric-ish kinds it
// handles, in which case the caller falls through to itemEqual's ordinary
// per-type comparison.
func similarNumericEqual(a, b any) (eq bool, both bool) {
	_, aIsFloat := asFloatKind(a)
	_, bIsFloat := asFloatKind(b)
	if aIsFloat || bIsFloat {
		af, aok := toFloat64(a)
		bf, bok := toFloat64(b)
		if aok && bok {
			return af == bf, true
		}
		return false, false
	}

	ai, aok := toInt64(a)
	bi, bok := toInt64(b)
	if aok && bok {
		return ai == bi, true
	}
	return false, false
}

func asFloatKind(v any) (float64, bool) {
	switch x := v.(type) {
	case float32:
		return float64(x), true
	case float64:
		return x, true
	}
	return 0, false
}

// Hash returns a hash of t consistent with Equal: tuples that are Equal
// always Hash equal, since Equal-equal tuples always Pack to identical
// bytes.
func Hash(t Tuple) uint64 {
	return xxhash.Sum64(Pack(t))
}
