package cola

import (
	"github.com/colakv/colakv/config"
	"github.com/colakv/colakv/errs"
)

// entry is the (key, value) pair stored in a Dict's COLA, ordered by key
// only.
type entry[K, V any] struct {
	Key   K
	Value V
}

// Dict is an ordered dictionary over a Store, comparing slots by key and
// carrying an arbitrary value alongside.
type Dict[K, V any] struct {
	store  *Store[entry[K, V]]
	keyCmp Comparer[K]
}

// NewDict returns an empty dictionary ordered by keyCmp, using
// config.Default() for its backing store's tunables.
func NewDict[K, V any](keyCmp Comparer[K]) *Dict[K, V] {
	wrapped := func(a, b entry[K, V]) int { return keyCmp(a.Key, b.Key) }
	return &Dict[K, V]{store: NewStore(wrapped), keyCmp: keyCmp}
}

// NewDictWithConfig returns an empty dictionary ordered by keyCmp, with
// its backing store configured from cfg.
func NewDictWithConfig[K, V any](keyCmp Comparer[K], cfg *config.Config) *Dict[K, V] {
	wrapped := func(a, b entry[K, V]) int { return keyCmp(a.Key, b.Key) }
	return &Dict[K, V]{store: NewStoreWithConfig(wrapped, cfg), keyCmp: keyCmp}
}

// Count returns the number of keys in the dictionary.
func (d *Dict[K, V]) Count() int { return d.store.Count() }

func (d *Dict[K, V]) find(k K) (level, offset int, found entry[K, V], ok bool) {
	return d.store.Find(entry[K, V]{Key: k})
}

// Add inserts (k, v), failing with DuplicateKey if k is already present.
func (d *Dict[K, V]) Add(k K, v V) error {
	if _, _, _, ok := d.find(k); ok {
		return errs.New(errs.DuplicateKey, "cola: key already present")
	}
	d.store.Insert(entry[K, V]{Key: k, Value: v})
	return nil
}

// SetItem upserts (k, v).
func (d *Dict[K, V]) SetItem(k K, v V) {
	if lvl, off, _, ok := d.find(k); ok {
		_ = d.store.SetAt(lvl, off, entry[K, V]{Key: k, Value: v})
		return
	}
	d.store.Insert(entry[K, V]{Key: k, Value: v})
}

// AddOrUpdate upserts (k, v), reporting whether the key was newly
// inserted.
func (d *Dict[K, V]) AddOrUpdate(k K, v V) (wasNew bool) {
	if lvl, off, _, ok := d.find(k); ok {
		_ = d.store.SetAt(lvl, off, entry[K, V]{Key: k, Value: v})
		return false
	}
	d.store.Insert(entry[K, V]{Key: k, Value: v})
	return true
}

// GetOrAdd returns the value currently stored for k, inserting (k, v) if
// the key is absent.
func (d *Dict[K, V]) GetOrAdd(k K, v V) (actual V, wasNew bool) {
	if _, _, found, ok := d.find(k); ok {
		return found.Value, false
	}
	d.store.Insert(entry[K, V]{Key: k, Value: v})
	return v, true
}

// TryGetKey reports whether k is present and returns the stored key
// representation.
func (d *Dict[K, V]) TryGetKey(k K) (K, bool) {
	_, _, found, ok := d.find(k)
	return found.Key, ok
}

// TryGetValue returns the value stored for k.
func (d *Dict[K, V]) TryGetValue(k K) (V, bool) {
	_, _, found, ok := d.find(k)
	return found.Value, ok
}

// Remove deletes k, reporting whether it was present.
func (d *Dict[K, V]) Remove(k K) bool {
	lvl, off, _, ok := d.find(k)
	if !ok {
		return false
	}
	_, err := d.store.Remove(lvl, off)
	return err == nil
}

// RemoveRange removes every key in keys, returning the number actually
// present and removed.
func (d *Dict[K, V]) RemoveRange(keys []K) (removed int) {
	for _, k := range keys {
		if d.Remove(k) {
			removed++
		}
	}
	return removed
}

// FindBetween returns, in unspecified order, the values whose keys fall
// within [lo, hi] subject to the inclusivity flags. Callers must not
// mutate the dictionary while consuming the result.
func (d *Dict[K, V]) FindBetween(lo K, loInclusive bool, hi K, hiInclusive bool) []V {
	var out []V
	for _, arr := range d.store.levels {
		for _, e := range arr {
			c := d.keyCmp(e.Key, lo)
			if c < 0 || (c == 0 && !loInclusive) {
				continue
			}
			c = d.keyCmp(e.Key, hi)
			if c > 0 || (c == 0 && !hiInclusive) {
				continue
			}
			out = append(out, e.Value)
		}
	}
	return out
}
