package cola

import (
	"sort"

	"github.com/colakv/colakv/errs"
)

type direction int

const (
	dirNone direction = iota
	dirForward
	dirBackward
)

// Cursor is a directional iterator over a Store: one index per allocated
// level, each step yielding the minimum (forward) or maximum (backward)
// of the currently pointed-at values. It snapshots the store's mutation
// counter at creation and fails with StoreMutated if the store changes
// underneath it.
type Cursor[T any] struct {
	store   *Store[T]
	pos     []int
	dir     direction
	version uint64
}

// NewCursor returns a cursor over s, positioned before the first element.
func (s *Store[T]) NewCursor() *Cursor[T] {
	return &Cursor[T]{store: s, pos: make([]int, len(s.levels)), version: s.mutated}
}

func (c *Cursor[T]) checkMutated() error {
	if c.store.mutated != c.version {
		return errs.New(errs.StoreMutated, "cola: store mutated since cursor was created")
	}
	return nil
}

// SeekFirst repositions the cursor at the smallest element.
func (c *Cursor[T]) SeekFirst() {
	c.pos = make([]int, len(c.store.levels))
	c.dir = dirForward
}

// SeekLast repositions the cursor at the largest element.
func (c *Cursor[T]) SeekLast() {
	c.pos = make([]int, len(c.store.levels))
	for lvl, arr := range c.store.levels {
		if arr != nil {
			c.pos[lvl] = len(arr) - 1
		}
	}
	c.dir = dirBackward
}

// Seek positions the cursor at v (orEqual true) or strictly after v, so
// that a following Next yields values >= v (or > v).
func (c *Cursor[T]) Seek(v T, orEqual bool) {
	c.pos = make([]int, len(c.store.levels))
	for lvl, arr := range c.store.levels {
		if arr == nil {
			continue
		}
		idx := sort.Search(len(arr), func(i int) bool { return c.store.cmp(arr[i], v) >= 0 })
		if !orEqual && idx < len(arr) && c.store.cmp(arr[idx], v) == 0 {
			idx++
		}
		c.pos[lvl] = idx
	}
	c.dir = dirForward
}

// adjustDirection implements "changing direction requires adjusting all
// cursors by one slot": a forward pointer addresses the next unread item,
// a backward pointer addresses the same; switching interpretation shifts
// every level's pointer by one.
func (c *Cursor[T]) adjustDirection(next direction) {
	if c.dir == dirNone || c.dir == next {
		return
	}
	delta := 1
	if next == dirBackward {
		delta = -1
	}
	for lvl := range c.pos {
		c.pos[lvl] += delta
	}
	c.dir = next
}

// Next returns the next element in ascending order, or ok == false once
// exhausted.
func (c *Cursor[T]) Next() (v T, ok bool, err error) {
	if err = c.checkMutated(); err != nil {
		return v, false, err
	}
	c.adjustDirection(dirForward)

	best := -1
	for lvl, arr := range c.store.levels {
		if arr == nil || c.pos[lvl] >= len(arr) || c.pos[lvl] < 0 {
			continue
		}
		if best == -1 || c.store.cmp(arr[c.pos[lvl]], c.store.levels[best][c.pos[best]]) < 0 {
			best = lvl
		}
	}
	if best == -1 {
		return v, false, nil
	}
	v = c.store.levels[best][c.pos[best]]
	c.pos[best]++
	return v, true, nil
}

// Previous returns the next element in descending order, or ok == false
// once exhausted.
func (c *Cursor[T]) Previous() (v T, ok bool, err error) {
	if err = c.checkMutated(); err != nil {
		return v, false, err
	}
	c.adjustDirection(dirBackward)

	best := -1
	for lvl, arr := range c.store.levels {
		if arr == nil || c.pos[lvl] < 0 || c.pos[lvl] >= len(arr) {
			continue
		}
		if best == -1 || c.store.cmp(arr[c.pos[lvl]], c.store.levels[best][c.pos[best]]) > 0 {
			best = lvl
		}
	}
	if best == -1 {
		return v, false, nil
	}
	v = c.store.levels[best][c.pos[best]]
	c.pos[best]--
	return v, true, nil
}
