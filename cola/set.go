package cola

import "github.com/colakv/colakv/config"

// Set is an ordered set over a Store: Add is a no-op when an equivalent
// value (under the configured comparer) is already present, Set always
// stores the given representation.
type Set[T any] struct {
	store *Store[T]
}

// NewSet returns an empty set ordered by cmp, using config.Default() for
// its backing store's tunables.
func NewSet[T any](cmp Comparer[T]) *Set[T] {
	return &Set[T]{store: NewStore(cmp)}
}

// NewSetWithConfig returns an empty set ordered by cmp, with its backing
// store configured from cfg.
func NewSetWithConfig[T any](cmp Comparer[T], cfg *config.Config) *Set[T] {
	return &Set[T]{store: NewStoreWithConfig(cmp, cfg)}
}

// Store exposes the backing COLA store, e.g. for a Cursor.
func (s *Set[T]) Store() *Store[T] { return s.store }

// Count returns the number of elements in the set.
func (s *Set[T]) Count() int { return s.store.Count() }

// Add inserts v, returning false if an equivalent value was already
// present (in which case the set is unchanged).
func (s *Set[T]) Add(v T) bool {
	if _, _, _, ok := s.store.Find(v); ok {
		return false
	}
	s.store.Insert(v)
	return true
}

// Set stores v, overwriting any existing equivalent value's
// representation in place.
func (s *Set[T]) Set(v T) {
	if lvl, off, _, ok := s.store.Find(v); ok {
		_ = s.store.SetAt(lvl, off, v)
		return
	}
	s.store.Insert(v)
}

// Contains reports whether an equivalent value is present.
func (s *Set[T]) Contains(v T) bool {
	_, _, _, ok := s.store.Find(v)
	return ok
}

// TryGetValue returns the stored representation equivalent to v, which
// may differ from v under a "similar" comparer used for canonicalization.
func (s *Set[T]) TryGetValue(v T) (T, bool) {
	_, _, found, ok := s.store.Find(v)
	return found, ok
}

// Remove deletes the value equivalent to v, reporting whether it was
// present.
func (s *Set[T]) Remove(v T) bool {
	lvl, off, _, ok := s.store.Find(v)
	if !ok {
		return false
	}
	_, err := s.store.Remove(lvl, off)
	return err == nil
}
