package rangedict

// Set is a range set: like Dict but without values, so coalescing of
// adjacent entries is unconditional rather than gated on value equality.
type Set[K any] struct {
	d *Dict[K, struct{}]
}

// NewSet returns an empty range set ordered by cmp.
func NewSet[K any](cmp Comparer[K]) *Set[K] {
	return &Set[K]{d: New[K, struct{}](cmp, func(struct{}, struct{}) bool { return true })}
}

// Len returns the number of entries currently stored.
func (s *Set[K]) Len() int { return s.d.Len() }

// Bounds is a half-open interval [Begin, End) with no associated value.
type Bounds[K any] struct {
	Begin K
	End   K
}

// Entries returns the disjoint, coalesced intervals in ascending order.
func (s *Set[K]) Entries() []Bounds[K] {
	raw := s.d.Entries()
	out := make([]Bounds[K], len(raw))
	for i, e := range raw {
		out[i] = Bounds[K]{Begin: e.Begin, End: e.End}
	}
	return out
}

// Mark adds [b, e) to the set's coverage.
func (s *Set[K]) Mark(b, e K) error {
	return s.d.Mark(b, e, struct{}{})
}

// Remove cuts [b, e) out of the set's coverage and shifts everything
// after it via shiftFn.
func (s *Set[K]) Remove(b, e K, shiftFn func(k K) K) error {
	return s.d.Remove(b, e, shiftFn)
}

// Contains reports whether p falls within the set's coverage.
func (s *Set[K]) Contains(p K) bool {
	_, ok := s.d.ValueAt(p)
	return ok
}

// Intersects reports whether any covered interval overlaps [b, e).
func (s *Set[K]) Intersects(b, e K) bool {
	return Intersect(s.d, b, e, struct{}{}, func(struct{}, struct{}) bool { return true })
}
