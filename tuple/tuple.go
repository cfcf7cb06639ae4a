package tuple

import (
	"github.com/colakv/colakv/buffer"
	"github.com/colakv/colakv/errs"
)

// Tuple is the abstract contract every tuple variant satisfies: an
// immutable, ordered, finite sequence of scalar items. Concrete variants
// (empty, fixed-arity, list, prefixed, linked, joined, memoized, sliced)
// pick whichever internal shape suits how they were constructed; callers
// never need to know which one they hold.
type Tuple interface {
	// Count returns the tuple's arity.
	Count() int
	// Get returns the item at position i, resolving negative indices from
	// the tail (i == -1 is the last item). Fails with IndexOutOfRange if i
	// is outside [-Count(), Count()).
	Get(i int) (any, error)
	// PackTo appends this tuple's encoding to w. The prefixed variant is
	// the sole variant that writes non-element bytes ahead of its items.
	PackTo(w *buffer.Writer)
}

// resolveIndex maps a possibly-negative index to [0, count), resolving a
// negative index from the tail.
func resolveIndex(i, count int) (int, error) {
	orig := i
	if i < 0 {
		i += count
	}
	if i < 0 || i >= count {
		return 0, errs.New(errs.IndexOutOfRange, "index %d out of range for tuple of arity %d", orig, count)
	}
	return i, nil
}

// New constructs the smallest-fitting concrete variant for items: the empty
// tuple for zero items, a fixed-arity tuple for 1-6 items, and a list tuple
// otherwise. Use Slice/Append/Concat/Memoize to build the other variants.
func New(items ...any) Tuple {
	switch len(items) {
	case 0:
		return emptyTuple{}
	case 1:
		return fixedTuple1{items[0]}
	case 2:
		return fixedTuple2{items[0], items[1]}
	case 3:
		return fixedTuple3{items[0], items[1], items[2]}
	case 4:
		return fixedTuple4{items[0], items[1], items[2], items[3]}
	case 5:
		return fixedTuple5{items[0], items[1], items[2], items[3], items[4]}
	case 6:
		return fixedTuple6{items[0], items[1], items[2], items[3], items[4], items[5]}
	default:
		cp := make([]any, len(items))
		copy(cp, items)
		return listTuple{items: cp}
	}
}

// Empty is the arity-0 singleton tuple.
var Empty Tuple = emptyTuple{}

// Items materializes every item of t into a fresh slice, in order. It is
// the generic fallback iteration mechanism usable against any Tuple.
func Items(t Tuple) []any {
	n := t.Count()
	out := make([]any, n)
	for i := 0; i < n; i++ {
		// Count/Get are defined to succeed for 0 <= i < Count(), so the
		// error here can only reflect a variant bug, not caller input.
		v, err := t.Get(i)
		if err != nil {
			panic(err)
		}
		out[i] = v
	}
	return out
}

// Last returns the final item of t, failing with Empty if t has no items.
func Last(t Tuple) (any, error) {
	if t.Count() == 0 {
		return nil, errs.New(errs.Empty, "Last on empty tuple")
	}
	return t.Get(-1)
}

// Slice returns the sub-tuple t[from, to), clamping both bounds to
// [0, Count()] and returning Empty if the clamped range is empty.
func Slice(t Tuple, from, to int) Tuple {
	n := t.Count()
	from = clamp(from, 0, n)
	to = clamp(to, 0, n)
	if to <= from {
		return emptyTuple{}
	}
	items := make([]any, 0, to-from)
	for i := from; i < to; i++ {
		v, _ := t.Get(i)
		items = append(items, v)
	}
	return New(items...)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Append returns a new tuple equal to t with v appended as its final item.
// The result is a linkedTuple, borrowing t's underlying storage rather than
// copying it.
func Append(t Tuple, v any) Tuple {
	return linkedTuple{head: t, tail: v}
}

// Concat returns a new tuple equivalent to the concatenation of a and b,
// without copying either's backing storage (a joinedTuple).
func Concat(a, b Tuple) Tuple {
	if a.Count() == 0 {
		return b
	}
	if b.Count() == 0 {
		return a
	}
	return joinedTuple{head: a, tail: b}
}

// WithPrefix returns a tuple that encodes as prefix followed by inner's own
// encoding. It must never itself appear as an item of another tuple.
func WithPrefix(prefix []byte, inner Tuple) Tuple {
	cp := make([]byte, len(prefix))
	copy(cp, prefix)
	return prefixedTuple{prefix: cp, inner: inner}
}

// Memoize eagerly packs t and returns a tuple that serves Pack/PackTo from
// the cached bytes thereafter.
func Memoize(t Tuple) Tuple {
	if mt, ok := t.(memoizedTuple); ok {
		return mt
	}
	return memoizedTuple{items: Items(t), cached: Pack(t)}
}

// Get retrieves the item at position i from t and coerces it to T. It
// fails with IndexOutOfRange for an out-of-bounds i, or with
// UnsupportedType if the stored value cannot be coerced to T.
func Get[T any](t Tuple, i int) (T, error) {
	var zero T
	v, err := t.Get(i)
	if err != nil {
		return zero, err
	}
	out, ok := coerce[T](v)
	if !ok {
		return zero, errs.New(errs.UnsupportedType, "item %v (%T) is not coercible to %T", v, v, zero)
	}
	return out, nil
}
