package tuple

import "github.com/colakv/colakv/buffer"

// emptyTuple is the arity-0 singleton.
type emptyTuple struct{}

func (emptyTuple) Count() int { return 0 }
func (emptyTuple) Get(i int) (any, error) {
	_, err := resolveIndex(i, 0)
	return nil, err
}
func (emptyTuple) PackTo(*buffer.Writer) {}

// fixedTupleN are stack-friendly concrete records for the common small
// arities, avoiding a heap-allocated items slice.

type fixedTuple1 struct{ a any }
type fixedTuple2 struct{ a, b any }
type fixedTuple3 struct{ a, b, c any }
type fixedTuple4 struct{ a, b, c, d any }
type fixedTuple5 struct{ a, b, c, d, e any }
type fixedTuple6 struct{ a, b, c, d, e, f any }

func (fixedTuple1) Count() int { return 1 }
func (t fixedTuple1) Get(i int) (any, error) {
	idx, err := resolveIndex(i, 1)
	if err != nil {
		return nil, err
	}
	_ = idx
	return t.a, nil
}
func (t fixedTuple1) PackTo(w *buffer.Writer) { packItems(w, t.a) }

func (fixedTuple2) Count() int { return 2 }
func (t fixedTuple2) Get(i int) (any, error) {
	idx, err := resolveIndex(i, 2)
	if err != nil {
		return nil, err
	}
	if idx == 0 {
		return t.a, nil
	}
	return t.b, nil
}
func (t fixedTuple2) PackTo(w *buffer.Writer) { packItems(w, t.a, t.b) }

func (fixedTuple3) Count() int { return 3 }
func (t fixedTuple3) Get(i int) (any, error) {
	idx, err := resolveIndex(i, 3)
	if err != nil {
		return nil, err
	}
	switch idx {
	case 0:
		return t.a, nil
	case 1:
		return t.b, nil
	default:
		return t.c, nil
	}
}
func (t fixedTuple3) PackTo(w *buffer.Writer) { packItems(w, t.a, t.b, t.c) }

func (fixedTuple4) Count() int { return 4 }
func (t fixedTuple4) Get(i int) (any, error) {
	idx, err := resolveIndex(i, 4)
	if err != nil {
		return nil, err
	}
	switch idx {
	case 0:
		return t.a, nil
	case 1:
		return t.b, nil
	case 2:
		return t.c, nil
	default:
		return t.d, nil
	}
}
func (t fixedTuple4) PackTo(w *buffer.Writer) { packItems(w, t.a, t.b, t.c, t.d) }

func (fixedTuple5) Count() int { return 5 }
func (t fixedTuple5) Get(i int) (any, error) {
	idx, err := resolveIndex(i, 5)
	if err != nil {
		return nil, err
	}
	switch idx {
	case 0:
		return t.a, nil
	case 1:
		return t.b, nil
	case 2:
		return t.c, nil
	case 3:
		return t.d, nil
	default:
		return t.e, nil
	}
}
func (t fixedTuple5) PackTo(w *buffer.Writer) { packItems(w, t.a, t.b, t.c, t.d, t.e) }

func (fixedTuple6) Count() int { return 6 }
func (t fixedTuple6) Get(i int) (any, error) {
	idx, err := resolveIndex(i, 6)
	if err != nil {
		return nil, err
	}
	switch idx {
	case 0:
		return t.a, nil
	case 1:
		return t.b, nil
	case 2:
		return t.c, nil
	case 3:
		return t.d, nil
	case 4:
		return t.e, nil
	default:
		return t.f, nil
	}
}
func (t fixedTuple6) PackTo(w *buffer.Writer) { packItems(w, t.a, t.b, t.c, t.d, t.e, t.f) }

// listTuple wraps a window over a boxed-item slice; used for arities >= 7
// and for dynamic construction (Slice, New with many items).
type listTuple struct {
	items []any
}

func (l listTuple) Count() int { return len(l.items) }
func (l listTuple) Get(i int) (any, error) {
	idx, err := resolveIndex(i, len(l.items))
	if err != nil {
		return nil, err
	}
	return l.items[idx], nil
}
func (l listTuple) PackTo(w *buffer.Writer) { packItems(w, l.items...) }

// prefixedTuple is binary prefix + inner tuple; it is the sole variant that
// can interpose non-element bytes ahead of its items, and must never
// itself appear as an item of another tuple.
type prefixedTuple struct {
	prefix []byte
	inner  Tuple
}

func (p prefixedTuple) Count() int { return p.inner.Count() }
func (p prefixedTuple) Get(i int) (any, error) {
	return p.inner.Get(i)
}
func (p prefixedTuple) PackTo(w *buffer.Writer) {
	w.WriteBytes(p.prefix)
	p.inner.PackTo(w)
}

// linkedTuple is a head tuple plus one appended item, composed lazily
// without copying head's storage.
type linkedTuple struct {
	head Tuple
	tail any
}

func (l linkedTuple) Count() int { return l.head.Count() + 1 }
func (l linkedTuple) Get(i int) (any, error) {
	n := l.Count()
	idx, err := resolveIndex(i, n)
	if err != nil {
		return nil, err
	}
	if idx == n-1 {
		return l.tail, nil
	}
	return l.head.Get(idx)
}
func (l linkedTuple) PackTo(w *buffer.Writer) {
	l.head.PackTo(w)
	packItems(w, l.tail)
}

// joinedTuple is a head tuple plus a tail tuple, equivalent to
// concatenation without copying either side.
type joinedTuple struct {
	head, tail Tuple
}

func (j joinedTuple) Count() int { return j.head.Count() + j.tail.Count() }
func (j joinedTuple) Get(i int) (any, error) {
	n := j.Count()
	idx, err := resolveIndex(i, n)
	if err != nil {
		return nil, err
	}
	hc := j.head.Count()
	if idx < hc {
		return j.head.Get(idx)
	}
	return j.tail.Get(idx - hc)
}
func (j joinedTuple) PackTo(w *buffer.Writer) {
	j.head.PackTo(w)
	j.tail.PackTo(w)
}

// memoizedTuple caches its packed bytes so repeated Pack/equality checks
// cost O(len(bytes)) rather than O(arity * per-item cost).
type memoizedTuple struct {
	items  []any
	cached []byte
}

func (m memoizedTuple) Count() int { return len(m.items) }
func (m memoizedTuple) Get(i int) (any, error) {
	idx, err := resolveIndex(i, len(m.items))
	if err != nil {
		return nil, err
	}
	return m.items[idx], nil
}
func (m memoizedTuple) PackTo(w *buffer.Writer) { w.WriteBytes(m.cached) }

// slicedTuple is a decoded view produced by Unpack: it exposes the byte
// range backing each item, alongside the already-decoded value, so that a
// caller wanting the raw encoding of one field need not re-pack it.
type slicedTuple struct {
	items  []any
	ranges [][2]int // [start, end) into src, per item
	src    []byte
}

func (s slicedTuple) Count() int { return len(s.items) }
func (s slicedTuple) Get(i int) (any, error) {
	idx, err := resolveIndex(i, len(s.items))
	if err != nil {
		return nil, err
	}
	return s.items[idx], nil
}
func (s slicedTuple) PackTo(w *buffer.Writer) { w.WriteBytes(s.src) }

// ItemBytes returns the raw encoded bytes backing item i of a tuple
// produced by Unpack, without re-encoding it. ok is false if t was not
// produced by Unpack (no byte ranges were recorded) or i is out of range.
func ItemBytes(t Tuple, i int) (out []byte, ok bool) {
	s, isSliced := t.(slicedTuple)
	if !isSliced {
		return nil, false
	}
	idx, err := resolveIndex(i, len(s.items))
	if err != nil {
		return nil, false
	}
	r := s.ranges[idx]
	return s.src[r[0]:r[1]], true
}

func packItems(w *buffer.Writer, items ...any) {
	for _, it := range items {
		// EncodeScalar only fails for unsupported dynamic types; tuples
		// are built through New/Append/Concat which accept any value, so
		// a bad type here indicates the caller passed something outside
		// the enumerated scalar kinds. We surface that by panicking with
		// the same *errs.Error PackTo's non-erroring signature can't
		// return; Pack lets it propagate, and TryPack recovers it and
		// turns it back into an error.
		if err := EncodeScalar(w, it); err != nil {
			panic(err)
		}
	}
}
