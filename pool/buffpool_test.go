package pool

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var shared = NewBuffPool()

func TestGetSizedAndZeroed(t *testing.T) {
	for _, n := range []int{0, 1, 63, 64, 65, 1023, 70000} {
		buf := shared.Get(n)
		assert.Equal(t, n, len(buf))
		for _, b := range buf {
			assert.Equal(t, byte(0), b)
		}
	}
}

func TestGetPutRoundTrip(t *testing.T) {
	buf := shared.Get(100)
	for i := range buf {
		buf[i] = 0xFF
	}
	shared.Put(buf)

	again := shared.Get(100)
	assert.Equal(t, 100, len(again))
	for _, b := range again {
		assert.Equal(t, byte(0), b)
	}
}
