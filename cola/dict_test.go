package cola

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/colakv/colakv/errs"
)

func TestDictAddFailsOnDuplicate(t *testing.T) {
	d := NewDict[int, string](intCmp)
	assert.NoError(t, d.Add(1, "one"))
	err := d.Add(1, "uno")
	assert.Error(t, err)
	assert.True(t, errs.Is(err, errs.DuplicateKey))

	v, ok := d.TryGetValue(1)
	assert.True(t, ok)
	assert.Equal(t, "one", v)
}

func TestDictAddOrUpdate(t *testing.T) {
	d := NewDict[int, string](intCmp)
	wasNew := d.AddOrUpdate(1, "one")
	assert.True(t, wasNew)
	wasNew = d.AddOrUpdate(1, "uno")
	assert.False(t, wasNew)

	v, _ := d.TryGetValue(1)
	assert.Equal(t, "uno", v)
}

func TestDictGetOrAdd(t *testing.T) {
	d := NewDict[int, string](intCmp)
	v, wasNew := d.GetOrAdd(1, "one")
	assert.True(t, wasNew)
	assert.Equal(t, "one", v)

	v2, wasNew2 := d.GetOrAdd(1, "uno")
	assert.False(t, wasNew2)
	assert.Equal(t, "one", v2)
}

func TestDictRemoveRange(t *testing.T) {
	d := NewDict[int, string](intCmp)
	for i := 0; i < 5; i++ {
		assert.NoError(t, d.Add(i, "v"))
	}
	removed := d.RemoveRange([]int{1, 3, 99})
	assert.Equal(t, 2, removed)
	assert.Equal(t, 3, d.Count())
}

func TestDictFindBetween(t *testing.T) {
	d := NewDict[int, int](intCmp)
	for i := 0; i < 10; i++ {
		assert.NoError(t, d.Add(i, i*10))
	}

	got := d.FindBetween(3, true, 6, false)
	sort.Ints(got)
	assert.Equal(t, []int{30, 40, 50}, got)

	gotInclusive := d.FindBetween(3, true, 6, true)
	sort.Ints(gotInclusive)
	assert.Equal(t, []int{30, 40, 50, 60}, gotInclusive)
}
