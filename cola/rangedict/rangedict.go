// Package rangedict implements a range dictionary and range set: a
// collection of non-overlapping half-open intervals [begin, end) each
// carrying a value, supporting Mark (paint a range with a value,
// overwriting whatever was there), Remove (cut a range out and shift
// everything after it), and Intersect (does any entry overlap a range
// and satisfy a predicate).
//
// Like the COLA store, this package has no direct analogue in the teacher
// repository; it is authored directly from a case analysis of the
// possible interval overlaps.
package rangedict

import (
	"go.uber.org/zap"

	"github.com/colakv/colakv/errs"
)

// Comparer orders two keys of type K.
type Comparer[K any] func(a, b K) int

// Entry is one interval [Begin, End) carrying Value.
type Entry[K, V any] struct {
	Begin K
	End   K
	Value V
}

// Dict maintains non-overlapping interval invariants over K keys and V
// values.
type Dict[K, V any] struct {
	cmp       Comparer[K]
	valEq     func(a, b V) bool
	entries   []Entry[K, V]
	hasBounds bool
	begin     K
	end       K
	log       *zap.SugaredLogger
}

// New returns an empty range dictionary. valEq decides whether two
// values are equal for the purpose of coalescing adjacent entries.
func New[K, V any](cmp Comparer[K], valEq func(a, b V) bool) *Dict[K, V] {
	return &Dict[K, V]{cmp: cmp, valEq: valEq, log: zap.NewNop().Sugar()}
}

// SetLogger attaches a logger used to trace precondition failures before
// they are returned to the caller. The default is a no-op logger.
func (d *Dict[K, V]) SetLogger(log *zap.SugaredLogger) { d.log = log }

// Len returns the number of entries currently stored.
func (d *Dict[K, V]) Len() int { return len(d.entries) }

// Entries returns the entries in ascending order. The slice is owned by
// the caller; mutating it does not affect the dictionary.
func (d *Dict[K, V]) Entries() []Entry[K, V] {
	return append([]Entry[K, V]{}, d.entries...)
}

func (d *Dict[K, V]) lt(a, b K) bool  { return d.cmp(a, b) < 0 }
func (d *Dict[K, V]) lte(a, b K) bool { return d.cmp(a, b) <= 0 }
func (d *Dict[K, V]) gt(a, b K) bool  { return d.cmp(a, b) > 0 }
func (d *Dict[K, V]) gte(a, b K) bool { return d.cmp(a, b) >= 0 }
func (d *Dict[K, V]) eq(a, b K) bool  { return d.cmp(a, b) == 0 }

func (d *Dict[K, V]) updateBoundsFromEntries() {
	if len(d.entries) == 0 {
		d.hasBounds = false
		return
	}
	d.hasBounds = true
	d.begin = d.entries[0].Begin
	d.end = d.entries[len(d.entries)-1].End
}

// Mark paints [b, e) with v, overwriting whatever coverage was there. It
// fails with InvalidRange if b >= e; on any other error the dictionary is
// left unchanged.
func (d *Dict[K, V]) Mark(b, e K, v V) error {
	if d.gte(b, e) {
		d.log.Debugw("rangedict mark rejected", "begin", b, "end", e)
		return errs.New(errs.InvalidRange, "rangedict: begin %v >= end %v", b, e)
	}

	switch {
	case len(d.entries) == 0:
		d.entries = []Entry[K, V]{{Begin: b, End: e, Value: v}}
		d.hasBounds = true
		d.begin, d.end = b, e
		return nil

	case len(d.entries) == 1:
		d.markSingle(b, e, v)
		return nil
	}

	d.markGeneral(b, e, v)
	return nil
}

func (d *Dict[K, V]) markSingle(b, e K, v V) {
	c := d.entries[0]
	switch {
	case d.gte(b, c.End):
		if d.eq(b, c.End) && d.valEq(v, c.Value) {
			d.entries[0].End = e
		} else {
			d.entries = append(d.entries, Entry[K, V]{Begin: b, End: e, Value: v})
		}
	case d.lte(e, c.Begin):
		if d.eq(e, c.Begin) && d.valEq(v, c.Value) {
			d.entries[0].Begin = b
		} else {
			d.entries = append([]Entry[K, V]{{Begin: b, End: e, Value: v}}, d.entries...)
		}
	default:
		d.markGeneral(b, e, v)
	}
	d.updateBoundsFromEntries()
}

// markGeneral handles the general case: a fast bounds check against the
// dictionary's known outer extent, followed by locating the entry
// overlapping b (the "seed") and walking forward to resolve every
// subsequent overlap.
func (d *Dict[K, V]) markGeneral(b, e K, v V) {
	if d.hasBounds {
		if d.gt(b, d.end) {
			d.entries = append(d.entries, Entry[K, V]{Begin: b, End: e, Value: v})
			d.updateBoundsFromEntries()
			return
		}
		if d.lt(e, d.begin) {
			d.entries = append([]Entry[K, V]{{Begin: b, End: e, Value: v}}, d.entries...)
			d.updateBoundsFromEntries()
			return
		}
		if d.lte(b, d.begin) && d.gte(e, d.end) {
			d.entries = []Entry[K, V]{{Begin: b, End: e, Value: v}}
			d.hasBounds = true
			d.begin, d.end = b, e
			return
		}
	}

	// Locate the rightmost entry with begin <= b (the left seed). -1 if
	// every entry begins after b.
	seedIdx := -1
	for i, en := range d.entries {
		if d.lte(en.Begin, b) {
			seedIdx = i
		} else {
			break
		}
	}

	out := make([]Entry[K, V], 0, len(d.entries)+2)
	walkStart := 0
	var tail *Entry[K, V]

	if seedIdx >= 0 {
		out = append(out, d.entries[:seedIdx]...)
		seed := d.entries[seedIdx]
		// seed.Begin <= b by construction. If seed.End <= b there is no
		// overlap at all and the seed is kept untouched. Otherwise the
		// seed overlaps [b, e): emit its surviving prefix (if any) and,
		// if it extends past e, a tail fragment. A seed whose Begin
		// equals b exactly has an empty prefix and is handled by the
		// same branch.
		if d.gt(seed.End, b) {
			if d.lt(seed.Begin, b) {
				out = append(out, Entry[K, V]{Begin: seed.Begin, End: b, Value: seed.Value})
			}
			if d.gt(seed.End, e) {
				t := Entry[K, V]{Begin: e, End: seed.End, Value: seed.Value}
				tail = &t
			}
		} else {
			out = append(out, seed)
		}
		walkStart = seedIdx + 1
	}

	out = append(out, Entry[K, V]{Begin: b, End: e, Value: v})
	if tail != nil {
		out = append(out, *tail)
	}

	// Walk forward, dropping or truncating entries whose begin < e.
	for i := walkStart; i < len(d.entries); i++ {
		x := d.entries[i]
		if !d.lt(x.Begin, e) {
			out = append(out, d.entries[i:]...)
			break
		}
		if d.lte(x.End, e) {
			continue // fully covered; dropped
		}
		out = append(out, Entry[K, V]{Begin: e, End: x.End, Value: x.Value})
		out = append(out, d.entries[i+1:]...)
		break
	}

	d.entries = coalesce(out, d.cmp, d.valEq)
	d.updateBoundsFromEntries()
}

// coalesce merges any run of adjacent entries (successor.Begin ==
// predecessor.End) sharing an equal value into a single entry.
func coalesce[K, V any](entries []Entry[K, V], cmp Comparer[K], valEq func(a, b V) bool) []Entry[K, V] {
	if len(entries) == 0 {
		return entries
	}
	out := entries[:1]
	for _, e := range entries[1:] {
		last := &out[len(out)-1]
		if cmp(last.End, e.Begin) == 0 && valEq(last.Value, e.Value) {
			last.End = e.End
			continue
		}
		out = append(out, e)
	}
	return out
}

// Remove cuts [b, e) out of the coverage, then shifts every entry whose
// begin is >= e after the cut (including the part of a split entry that
// extended past e) by applying shiftFn.
func (d *Dict[K, V]) Remove(b, e K, shiftFn func(k K) K) error {
	if d.gte(b, e) {
		d.log.Debugw("rangedict remove rejected", "begin", b, "end", e)
		return errs.New(errs.InvalidRange, "rangedict: begin %v >= end %v", b, e)
	}
	if len(d.entries) == 0 {
		return nil
	}

	out := make([]Entry[K, V], 0, len(d.entries))
	for _, en := range d.entries {
		switch {
		case d.lte(en.End, b) || d.gte(en.Begin, e):
			out = append(out, en)
		case d.lt(en.Begin, b) && d.gt(en.End, e):
			out = append(out, Entry[K, V]{Begin: en.Begin, End: b, Value: en.Value})
			out = append(out, Entry[K, V]{Begin: e, End: en.End, Value: en.Value})
		case d.lt(en.Begin, b):
			out = append(out, Entry[K, V]{Begin: en.Begin, End: b, Value: en.Value})
		case d.gt(en.End, e):
			out = append(out, Entry[K, V]{Begin: e, End: en.End, Value: en.Value})
		default:
			// fully covered by [b, e): dropped
		}
	}

	for i := range out {
		if d.gte(out[i].Begin, e) {
			out[i].Begin = shiftFn(out[i].Begin)
			out[i].End = shiftFn(out[i].End)
		}
	}

	d.entries = coalesce(out, d.cmp, d.valEq)
	d.updateBoundsFromEntries()
	return nil
}

// Intersect reports whether any entry overlaps [b, e) and satisfies
// predicate(entry.Value, arg).
func Intersect[K, V, A any](d *Dict[K, V], b, e K, arg A, predicate func(v V, arg A) bool) bool {
	for _, en := range d.entries {
		if d.gte(en.Begin, e) {
			break
		}
		if d.gt(en.End, b) && predicate(en.Value, arg) {
			return true
		}
	}
	return false
}

// ValueAt returns the value covering point p, if any.
func (d *Dict[K, V]) ValueAt(p K) (V, bool) {
	var zero V
	for _, en := range d.entries {
		if d.lte(en.Begin, p) && d.lt(p, en.End) {
			return en.Value, true
		}
		if d.gt(en.Begin, p) {
			break
		}
	}
	return zero, false
}
