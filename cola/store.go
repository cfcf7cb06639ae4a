// Package cola implements the cache-oblivious lookahead array family: an
// ordered, comparer-driven container where level k holds either zero or
// 2^k sorted items. Insert doubles the lowest run of allocated levels into
// the next one; the binary digits of the element count are, at every
// instant, exactly the set of allocated levels.
package cola

import (
	"math/bits"
	"sort"

	"go.uber.org/zap"

	"github.com/colakv/colakv/config"
	"github.com/colakv/colakv/errs"
)

// Comparer orders two values of T. It must be a strict weak ordering:
// Comparer(a, b) < 0 if a sorts before b, 0 if equivalent, > 0 otherwise.
type Comparer[T any] func(a, b T) int

// Store is the cache-oblivious lookahead array itself. All mutation is
// exclusive; concurrent readers are safe only while no mutation is in
// flight.
type Store[T any] struct {
	levels   [][]T
	count    int
	cmp      Comparer[T]
	spares   *sparePool[T]
	maxDepth int
	mutated  uint64
	debug    bool
	log      *zap.SugaredLogger
}

// NewStore returns an empty store ordered by cmp, sized and bounded
// according to config.Default(). Use NewStoreWithConfig to load tunables
// from an on-disk config instead.
func NewStore[T any](cmp Comparer[T]) *Store[T] {
	return NewStoreWithConfig(cmp, config.Default())
}

// NewStoreWithConfig returns an empty store ordered by cmp, with its
// spare-buffer pool sized by cfg.SparePoolClasses and its level growth
// bounded by cfg.MaxDepth (0 means unbounded).
func NewStoreWithConfig[T any](cmp Comparer[T], cfg *config.Config) *Store[T] {
	classes := cfg.SparePoolClasses
	if classes <= 0 {
		classes = defaultSpareClasses
	}
	return &Store[T]{
		cmp:      cmp,
		spares:   newSparePool[T](classes),
		maxDepth: cfg.MaxDepth,
		log:      zap.NewNop().Sugar(),
	}
}

// SetLogger attaches a logger used to trace merge cascades and remove
// rebalances. The default is a no-op logger.
func (s *Store[T]) SetLogger(log *zap.SugaredLogger) { s.log = log }

// SetDebug toggles the store's invariant checks: the allocation bitmap
// and per-level ordering. Production callers leave this off; tests turn
// it on to catch a broken bitmap or an out-of-order level as soon as it
// happens.
func (s *Store[T]) SetDebug(on bool) { s.debug = on }

// Count returns the number of elements currently stored.
func (s *Store[T]) Count() int { return s.count }

// Version returns the mutation counter; iterators snapshot it to detect
// concurrent structural changes.
func (s *Store[T]) Version() uint64 { return s.mutated }

// Insert adds v, maintaining the allocation-bitmap invariant.
func (s *Store[T]) Insert(v T) {
	k := bits.TrailingZeros(uint(s.count + 1))
	s.ensureDepth(k + 1)

	merged := append(s.spares.loan(k), v)
	for lvl := 0; lvl < k; lvl++ {
		if s.levels[lvl] != nil {
			merged = mergeSorted(merged, s.levels[lvl], s.cmp)
			s.spares.release(lvl, s.levels[lvl])
		}
		s.levels[lvl] = nil
	}
	s.levels[k] = merged
	s.count++
	s.mutated++
	s.log.Debugw("cola insert", "level", k, "count", s.count)
	s.checkInvariants()
}

// Find performs a level-by-level binary search, returning the first
// allocated level (ascending) holding a value equivalent to v under the
// configured comparer.
func (s *Store[T]) Find(v T) (level, offset int, found T, ok bool) {
	for lvl, arr := range s.levels {
		if arr == nil {
			continue
		}
		i := sort.Search(len(arr), func(i int) bool { return s.cmp(arr[i], v) >= 0 })
		if i < len(arr) && s.cmp(arr[i], v) == 0 {
			return lvl, i, arr[i], true
		}
	}
	var zero T
	return -1, -1, zero, false
}

// At returns the value stored at (level, offset), failing with
// IndexOutOfRange if that slot is not currently allocated.
func (s *Store[T]) At(level, offset int) (T, error) {
	var zero T
	if level < 0 || level >= len(s.levels) || s.levels[level] == nil ||
		offset < 0 || offset >= len(s.levels[level]) {
		return zero, errs.New(errs.IndexOutOfRange, "cola: no slot at level %d offset %d", level, offset)
	}
	return s.levels[level][offset], nil
}

// SetAt overwrites the value at (level, offset) in place without changing
// the element count. Used by Set.Set and Dict upserts, which must replace
// the stored representation of an equivalent value without disturbing the
// allocation bitmap.
func (s *Store[T]) SetAt(level, offset int, v T) error {
	if level < 0 || level >= len(s.levels) || s.levels[level] == nil ||
		offset < 0 || offset >= len(s.levels[level]) {
		return errs.New(errs.IndexOutOfRange, "cola: no slot at level %d offset %d", level, offset)
	}
	s.levels[level][offset] = v
	s.mutated++
	return nil
}

// Remove deletes the slot at (level, offset) and rebalances the store so
// every remaining level again satisfies the allocation-bitmap invariant
// for count-1. The rebalance is implemented as a full collect-and-
// redistribute pass: levels are already individually sorted, so the
// collect step is an (n-way) merge rather than a general sort.
func (s *Store[T]) Remove(level, offset int) (T, error) {
	removed, err := s.At(level, offset)
	if err != nil {
		return removed, err
	}

	runs := make([][]T, 0, len(s.levels))
	for lvl, arr := range s.levels {
		if arr == nil {
			continue
		}
		if lvl == level {
			if len(arr) == 1 {
				continue
			}
			cut := append(append([]T{}, arr[:offset]...), arr[offset+1:]...)
			runs = append(runs, cut)
			continue
		}
		runs = append(runs, arr)
	}
	merged := foldMerge(runs, s.cmp)

	newCount := s.count - 1
	s.redistribute(merged, newCount)
	s.count = newCount
	s.mutated++
	s.log.Debugw("cola remove", "level", level, "offset", offset, "count", s.count)
	s.checkInvariants()
	return removed, nil
}

// redistribute carves sorted into consecutive runs sized by the binary
// digits of newCount and assigns one run per allocated level, smallest
// level first. sorted is fully ordered, so each contiguous run is itself
// sorted.
func (s *Store[T]) redistribute(sorted []T, newCount int) {
	depth := bits.Len(uint(newCount))
	for lvl := 0; lvl < len(s.levels); lvl++ {
		if lvl >= depth || newCount&(1<<lvl) == 0 {
			if s.levels[lvl] != nil {
				s.spares.release(lvl, s.levels[lvl])
			}
			s.levels[lvl] = nil
		}
	}
	s.ensureDepth(depth)
	off := 0
	for lvl := 0; lvl < depth; lvl++ {
		if newCount&(1<<lvl) == 0 {
			continue
		}
		n := 1 << lvl
		s.levels[lvl] = append([]T{}, sorted[off:off+n]...)
		off += n
	}
	s.levels = s.levels[:depth]
}

// ensureDepth grows the level array to depth, panicking with DepthExceeded
// if maxDepth is set (nonzero) and depth would exceed it. This guards
// against runaway growth from a corrupt count rather than a condition a
// well-behaved caller can expect to hit.
func (s *Store[T]) ensureDepth(depth int) {
	if s.maxDepth > 0 && depth > s.maxDepth {
		panic(errs.New(errs.DepthExceeded, "cola: store would grow to depth %d, exceeding configured max depth %d", depth, s.maxDepth))
	}
	for len(s.levels) < depth {
		s.levels = append(s.levels, nil)
	}
}

func (s *Store[T]) checkInvariants() {
	if !s.debug {
		return
	}
	for lvl, arr := range s.levels {
		allocated := s.count&(1<<lvl) != 0
		if allocated && arr == nil {
			panic("cola: allocation bitmap violated, expected level allocated")
		}
		if !allocated && arr != nil {
			panic("cola: allocation bitmap violated, expected level free")
		}
		if arr == nil {
			continue
		}
		if len(arr) != 1<<lvl {
			panic("cola: level size does not match 2^level")
		}
		for i := 1; i < len(arr); i++ {
			if s.cmp(arr[i-1], arr[i]) >= 0 {
				panic("cola: level is not strictly increasing")
			}
		}
	}
}

// mergeSorted two-pointer-merges a and b, both already sorted under cmp.
func mergeSorted[T any](a, b []T, cmp Comparer[T]) []T {
	out := make([]T, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if cmp(a[i], b[j]) <= 0 {
			out = append(out, a[i])
			i++
		} else {
			out = append(out, b[j])
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return out
}

// foldMerge merges any number of already-sorted runs into one sorted
// slice, smallest runs first, to keep the pairwise merge cost close to
// the theoretical n-way-merge lower bound.
func foldMerge[T any](runs [][]T, cmp Comparer[T]) []T {
	sort.Slice(runs, func(i, j int) bool { return len(runs[i]) < len(runs[j]) })
	switch len(runs) {
	case 0:
		return nil
	case 1:
		return append([]T{}, runs[0]...)
	}
	merged := runs[0]
	for _, r := range runs[1:] {
		merged = mergeSorted(merged, r, cmp)
	}
	return merged
}
