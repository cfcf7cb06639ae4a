package tuple

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/colakv/colakv/buffer"
	"github.com/colakv/colakv/errs"
)

func encOf(t *testing.T, v any) []byte {
	w := buffer.NewWriter(16)
	assert.NoError(t, EncodeScalar(w, v))
	return w.Bytes()
}

func TestIntegerWireFormat(t *testing.T) {
	assert.Equal(t, []byte{0x13, 0xFE}, encOf(t, -1))
	assert.Equal(t, []byte{0x14}, encOf(t, 0))
	assert.Equal(t, []byte{0x15, 0x01}, encOf(t, 1))
	assert.Equal(t, []byte{0x16, 0x01, 0x00}, encOf(t, 256))
}

func TestStringWireFormat(t *testing.T) {
	assert.Equal(t, []byte{0x02, 0x68, 0x69, 0x00}, encOf(t, "hi"))
	assert.Equal(t, []byte{0x02, 0x61, 0x00, 0xFF, 0x62, 0x00}, encOf(t, "a\x00b"))
}

func TestEncodeKeyBoolThenString(t *testing.T) {
	got := EncodeKey(true, "x")
	assert.Equal(t, []byte{0x15, 0x01, 0x02, 0x78, 0x00}, got)

	decoded, err := Unpack(got)
	assert.NoError(t, err)
	assert.Equal(t, 2, decoded.Count())
	b, err := Get[bool](decoded, 0)
	assert.NoError(t, err)
	assert.True(t, b)
	s, err := Get[string](decoded, 1)
	assert.NoError(t, err)
	assert.Equal(t, "x", s)
}

func TestCompareOrderPreservation(t *testing.T) {
	tests := []struct {
		name string
		l, r any
		cmp  int
	}{
		{"int zero vs zero", 0, 0, 0},
		{"int neg vs zero", -1, 0, -1},
		{"int pos vs zero", 1, 0, 1},
		{"int neg vs neg, more negative first", -1000, -1, -1},
		{"int pos widths", 255, 256, -1},
		{"uint max", uint64(1), uint64(math.MaxUint64), -1},
		{"string empty vs a", "", "a", -1},
		{"string a vs a", "a", "a", 0},
		{"string a vs b", "a", "b", -1},
		{"bytes", []byte{1}, []byte{1, 0}, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, r := encOf(t, tt.l), encOf(t, tt.r)
			cmp := signOf(compareBytes(l, r))
			assert.Equal(t, tt.cmp, cmp, "encode(%v)=% x vs encode(%v)=% x", tt.l, l, tt.r, r)
		})
	}
}

func compareBytes(a, b []byte) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}

func signOf(c int) int {
	switch {
	case c < 0:
		return -1
	case c > 0:
		return 1
	default:
		return 0
	}
}

func TestFloatRoundTripAndOrder(t *testing.T) {
	floats := []float64{-math.MaxFloat64, -1.5, -0.0001, 0, 0.0001, 1.5, math.MaxFloat64}
	var encs [][]byte
	for _, f := range floats {
		w := buffer.NewWriter(9)
		encodeFloat64(w, f)
		encs = append(encs, w.Bytes())

		r := buffer.NewReader(w.Bytes())
		_, ok := r.ReadByte()
		assert.True(t, ok)
		got, err := decodeFloat64Body(r)
		assert.NoError(t, err)
		assert.Equal(t, f, got)
	}
	for i := 1; i < len(encs); i++ {
		assert.True(t, compareBytes(encs[i-1], encs[i]) < 0, "floats[%d]=%v should sort before floats[%d]=%v", i-1, floats[i-1], i, floats[i])
	}
}

func TestNegativeIntegerRoundTrip(t *testing.T) {
	values := []int64{0, 1, -1, math.MaxInt64, math.MinInt64, -256, 256, -65536, 65536}
	for _, v := range values {
		w := buffer.NewWriter(9)
		encodeInt64(w, v)
		r := buffer.NewReader(w.Bytes())
		i64, _, _, err := decodeInteger(r)
		assert.NoError(t, err)
		assert.Equal(t, v, i64, "round trip of %d", v)
	}
}

func TestUnknownTypeByteIsMalformed(t *testing.T) {
	_, err := Unpack([]byte{0x05})
	assert.Error(t, err)
	assert.True(t, errs.Is(err, errs.MalformedTuple))
}
