package tuple

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/colakv/colakv/errs"
)

func TestNewTupleRoundTrip(t *testing.T) {
	t.Run("round trip random byte strings", func(t *testing.T) {
		roundTripRandomByteStrings(t)
	})
}

func randomByteFields(t *testing.T) (fields []any) {
	n := int(rand.Uint32()%19) + 1
	fields = make([]any, n)
	for i := range fields {
		if rand.Uint32()%4 == 0 {
			fields[i] = nil
			continue
		}
		buf := make([]byte, rand.Uint32()%20)
		rand.Read(buf)
		fields[i] = buf
	}
	return fields
}

func roundTripRandomByteStrings(t *testing.T) {
	for n := 0; n < 100; n++ {
		fields := randomByteFields(t)
		tup := New(fields...)
		packed := Pack(tup)

		decoded, err := Unpack(packed)
		assert.NoError(t, err)
		assert.Equal(t, len(fields), decoded.Count())
		for i, field := range fields {
			v, err := decoded.Get(i)
			assert.NoError(t, err)
			assert.Equal(t, field, v)
		}
	}
}

func TestTupleGetNegativeIndex(t *testing.T) {
	tup := New("a", "b", "c")
	v, err := Get[string](tup, -1)
	assert.NoError(t, err)
	assert.Equal(t, "c", v)

	v, err = Get[string](tup, -3)
	assert.NoError(t, err)
	assert.Equal(t, "a", v)

	_, err = Get[string](tup, -4)
	assert.Error(t, err)
	assert.True(t, errs.Is(err, errs.IndexOutOfRange))
}

func TestTupleSliceClamps(t *testing.T) {
	tup := New(1, 2, 3, 4, 5)
	sl := Slice(tup, -10, 2)
	assert.Equal(t, 2, sl.Count())
	v0, _ := Get[int64](sl, 0)
	assert.Equal(t, int64(1), v0)

	empty := Slice(tup, 3, 1)
	assert.Equal(t, 0, empty.Count())
}

func TestTupleAppendConcatPrefixClosure(t *testing.T) {
	base := New("users")
	withID := Append(base, int64(42))
	assert.Equal(t, 2, withID.Count())
	assert.True(t, bytesHasPrefix(Pack(withID), Pack(base)))

	a := New(1, 2)
	b := New(3, 4)
	joined := Concat(a, b)
	assert.Equal(t, Pack(New(1, 2, 3, 4)), Pack(joined))
}

func bytesHasPrefix(s, prefix []byte) bool {
	if len(s) < len(prefix) {
		return false
	}
	for i := range prefix {
		if s[i] != prefix[i] {
			return false
		}
	}
	return true
}

func TestMemoizeServesCachedBytes(t *testing.T) {
	tup := New("a", int64(1))
	mem := Memoize(tup)
	want := Pack(tup)
	assert.Equal(t, want, Pack(mem))
	assert.True(t, Equal(tup, mem))
}

func TestWithPrefixPacksPrefixThenInner(t *testing.T) {
	inner := New(int64(1), int64(2))
	p := WithPrefix([]byte("pfx"), inner)
	got := Pack(p)
	assert.Equal(t, append([]byte("pfx"), Pack(inner)...), got)
}
