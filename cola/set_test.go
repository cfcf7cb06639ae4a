package cola

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetAddIsIdempotent(t *testing.T) {
	s := NewSet(intCmp)
	assert.True(t, s.Add(5))
	assert.False(t, s.Add(5))
	assert.Equal(t, 1, s.Count())
	assert.True(t, s.Contains(5))
}

func TestSetSetOverwritesRepresentation(t *testing.T) {
	type tagged struct {
		Key int
		Tag string
	}
	cmp := func(a, b tagged) int { return a.Key - b.Key }
	s := NewSet(cmp)
	s.Add(tagged{Key: 1, Tag: "first"})
	s.Set(tagged{Key: 1, Tag: "second"})

	got, ok := s.TryGetValue(tagged{Key: 1})
	assert.True(t, ok)
	assert.Equal(t, "second", got.Tag)
	assert.Equal(t, 1, s.Count())
}

func TestSetRemove(t *testing.T) {
	s := NewSet(intCmp)
	for _, v := range []int{1, 2, 3} {
		s.Add(v)
	}
	assert.True(t, s.Remove(2))
	assert.False(t, s.Contains(2))
	assert.False(t, s.Remove(2))
	assert.Equal(t, 2, s.Count())
}
