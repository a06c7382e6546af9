package keystream

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestXORKeyStream_KnownAnswer(t *testing.T) {
	tests := map[string]struct {
		key      uint64
		expected []byte
	}{
		"Zero key": {
			key:      0,
			expected: []byte{0x81, 0x91, 0x92, 0xe5, 0x78, 0xde, 0x3f, 0xa2},
		},
		"Sample key": {
			key:      51323,
			expected: []byte{0xa2, 0x02, 0x9c, 0x94, 0x7f, 0x4f, 0xf0, 0xce},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			buf := make([]byte, len(tc.expected))
			Apply(tc.key, buf)
			assert.Equal(t, tc.expected, buf)
		})
	}
}

func TestXORKeyStream_Deterministic(t *testing.T) {
	a := make([]byte, 64)
	b := make([]byte, 64)
	Apply(0xdeadbeefcafebabe, a)
	Apply(0xdeadbeefcafebabe, b)
	assert.Equal(t, a, b)

	c := make([]byte, 64)
	Apply(0xdeadbeefcafebabf, c)
	assert.NotEqual(t, a, c)
}

func TestXORKeyStream_SelfInverse(t *testing.T) {
	orig := []byte("How wonderful life is while you're in the world")
	buf := bytes.Clone(orig)

	Apply(51323, buf)
	assert.NotEqual(t, orig, buf)
	Apply(51323, buf)
	assert.Equal(t, orig, buf)
}

func TestXORKeyStream_Continues(t *testing.T) {
	whole := make([]byte, 16)
	Apply(42, whole)

	parts := make([]byte, 16)
	st := Schedule(42)
	st.XORKeyStream(parts[:5])
	st.XORKeyStream(parts[5:])
	assert.Equal(t, whole, parts, "split application must continue the same keystream")
}

func TestXORKeyStream_Empty(t *testing.T) {
	st := Schedule(7)
	before := *st
	st.XORKeyStream(nil)
	assert.Equal(t, before, *st)
}
