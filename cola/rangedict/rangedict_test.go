package rangedict

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intCmp(a, b int) int { return a - b }
func strEq(a, b string) bool { return a == b }

func TestMarkSplitsExistingEntryOnInteriorOverlap(t *testing.T) {
	d := New[int, string](intCmp, strEq)
	require.NoError(t, d.Mark(0, 10, "A"))
	require.NoError(t, d.Mark(4, 5, "B"))

	entries := d.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, Entry[int, string]{Begin: 0, End: 4, Value: "A"}, entries[0])
	assert.Equal(t, Entry[int, string]{Begin: 4, End: 5, Value: "B"}, entries[1])
	assert.Equal(t, Entry[int, string]{Begin: 5, End: 10, Value: "A"}, entries[2])

	require.NoError(t, d.Mark(3, 7, "A"))
	entries = d.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, Entry[int, string]{Begin: 0, End: 10, Value: "A"}, entries[0])
}

func TestMarkRejectsEmptyRange(t *testing.T) {
	d := New[int, string](intCmp, strEq)
	err := d.Mark(5, 5, "A")
	assert.Error(t, err)
	err = d.Mark(5, 2, "A")
	assert.Error(t, err)
}

func assertNonOverlapping(t *testing.T, entries []Entry[int, string]) {
	for i := 1; i < len(entries); i++ {
		assert.LessOrEqual(t, entries[i-1].End, entries[i].Begin, "entries %d and %d overlap", i-1, i)
	}
}

func TestMarkKeepsEntriesDisjointAndCoalesced(t *testing.T) {
	d := New[int, string](intCmp, strEq)
	require.NoError(t, d.Mark(10, 20, "A"))
	require.NoError(t, d.Mark(30, 40, "B"))
	require.NoError(t, d.Mark(15, 35, "C"))
	assertNonOverlapping(t, d.Entries())

	for p := 15; p < 35; p++ {
		v, ok := d.ValueAt(p)
		require.True(t, ok, "point %d should be covered", p)
		assert.Equal(t, "C", v)
	}
	v, ok := d.ValueAt(10)
	require.True(t, ok)
	assert.Equal(t, "A", v)
}

func TestMarkCoverageHoldsForRandomizedRanges(t *testing.T) {
	d := New[int, string](intCmp, strEq)
	ops := []struct {
		b, e int
		v    string
	}{
		{0, 100, "base"},
		{10, 20, "x"},
		{15, 25, "y"},
		{50, 60, "x"},
		{5, 95, "z"},
		{70, 80, "w"},
	}
	for _, op := range ops {
		require.NoError(t, d.Mark(op.b, op.e, op.v))
		assertNonOverlapping(t, d.Entries())
		for p := op.b; p < op.e; p++ {
			v, ok := d.ValueAt(p)
			require.True(t, ok)
			assert.Equal(t, op.v, v, "point %d after marking [%d,%d)=%s", p, op.b, op.e, op.v)
		}
	}
}

func TestRemoveShiftsSubsequentEntries(t *testing.T) {
	d := New[int, string](intCmp, strEq)
	require.NoError(t, d.Mark(0, 10, "A"))
	require.NoError(t, d.Mark(10, 20, "B"))
	require.NoError(t, d.Mark(20, 30, "C"))

	shift := func(k int) int { return k - 5 } // removing [5, 10): width 5
	require.NoError(t, d.Remove(5, 10, shift))

	assertNonOverlapping(t, d.Entries())
	v, ok := d.ValueAt(10)
	require.True(t, ok)
	assert.Equal(t, "B", v)
	v, ok = d.ValueAt(24)
	require.True(t, ok)
	assert.Equal(t, "C", v)
}

func TestIntersect(t *testing.T) {
	d := New[int, string](intCmp, strEq)
	require.NoError(t, d.Mark(0, 10, "A"))
	require.NoError(t, d.Mark(20, 30, "B"))

	assert.True(t, Intersect(d, 5, 15, "A", strEq))
	assert.False(t, Intersect(d, 11, 19, "A", strEq))
	assert.True(t, Intersect(d, 25, 35, "B", strEq))
	assert.False(t, Intersect(d, 25, 35, "A", strEq))
}

func TestRangeSetCoalescesUnconditionally(t *testing.T) {
	s := NewSet[int](intCmp)
	require.NoError(t, s.Mark(0, 5))
	require.NoError(t, s.Mark(5, 10))

	entries := s.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, Bounds[int]{Begin: 0, End: 10}, entries[0])

	assert.True(t, s.Contains(7))
	assert.False(t, s.Contains(10))
	assert.True(t, s.Intersects(9, 12))
}
