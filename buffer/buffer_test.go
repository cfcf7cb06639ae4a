package buffer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/colakv/colakv/pool"
)

func TestWriterGrows(t *testing.T) {
	w := NewWriter(0)
	for i := 0; i < 1000; i++ {
		w.WriteByte(byte(i))
	}
	assert.Equal(t, 1000, w.Position())
	out := w.Bytes()
	for i := 0; i < 1000; i++ {
		assert.Equal(t, byte(i), out[i])
	}
}

func TestWriteBytePairAndBytes(t *testing.T) {
	w := NewWriter(4)
	w.WriteBytePair(0x00, 0xFF)
	w.WriteBytes([]byte("abc"))
	assert.Equal(t, []byte{0x00, 0xFF, 'a', 'b', 'c'}, w.Bytes())
}

func TestReaderReadBytes(t *testing.T) {
	r := NewReader([]byte{1, 2, 3, 4})
	b, ok := r.ReadByte()
	assert.True(t, ok)
	assert.Equal(t, byte(1), b)

	rest, ok := r.ReadBytes(3)
	assert.True(t, ok)
	assert.Equal(t, []byte{2, 3, 4}, rest)
	assert.True(t, r.Exhausted())

	_, ok = r.ReadByte()
	assert.False(t, ok)
}

func TestReadUntilTerminatorNoEscape(t *testing.T) {
	r := NewReader([]byte{'h', 'i', 0x00, 'x'})
	out, ok := r.ReadUntilTerminator()
	assert.True(t, ok)
	assert.Equal(t, []byte("hi"), out)
	assert.Equal(t, 3, r.Position())
}

func TestReadUntilTerminatorWithEscape(t *testing.T) {
	// "a\0b" encoded as 0x61 0x00 0xFF 0x62 0x00
	r := NewReader([]byte{'a', 0x00, 0xFF, 'b', 0x00})
	out, ok := r.ReadUntilTerminator()
	assert.True(t, ok)
	assert.Equal(t, []byte{'a', 0x00, 'b'}, out)
	assert.Equal(t, 5, r.Position())
}

func TestReadUntilTerminatorMissing(t *testing.T) {
	r := NewReader([]byte{'a', 'b', 'c'})
	_, ok := r.ReadUntilTerminator()
	assert.False(t, ok)
}

func TestPeekByteAtEOF(t *testing.T) {
	r := NewReader(nil)
	assert.Equal(t, -1, r.PeekByte())
}

func TestWriterFromPoolGrowsAndRecyclesBuffers(t *testing.T) {
	bp := pool.NewBuffPool()
	w := NewWriterFromPool(bp, 4)
	for i := 0; i < 1000; i++ {
		w.WriteByte(byte(i))
	}
	assert.Equal(t, 1000, w.Position())
	out := w.Bytes()
	for i := 0; i < 1000; i++ {
		assert.Equal(t, byte(i), out[i])
	}
}
