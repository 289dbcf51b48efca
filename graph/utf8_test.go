package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestByteCount(t *testing.T) {
	assert.Equal(t, 1, ByteCount('a'))
	assert.Equal(t, 2, ByteCount(0xC2))
	assert.Equal(t, 3, ByteCount(0xE2))
	assert.Equal(t, 4, ByteCount(0xF0))
	assert.Equal(t, 0, ByteCount(0x80))
}

func TestDecodeASCII(t *testing.T) {
	r, n := Decode([]byte("abc"))
	assert.Equal(t, 'a', r)
	assert.Equal(t, 1, n)
}

func TestDecodeMultibyte(t *testing.T) {
	s := "héllo"
	r, n := Decode([]byte(s)[1:])
	assert.Equal(t, 'é', r)
	assert.Equal(t, 2, n)
}

func TestDecodeInvalidDegrades(t *testing.T) {
	r, n := Decode([]byte{0xFF})
	assert.Equal(t, rune(0xFFFD), r)
	assert.Equal(t, 1, n)
}

func TestDecodeTruncated(t *testing.T) {
	r, n := Decode([]byte{0xE2, 0x82})
	assert.Equal(t, rune(0xFFFD), r)
	assert.Equal(t, 1, n)
}

func TestCount(t *testing.T) {
	assert.Equal(t, 5, Count([]byte("héllo")))
	assert.Equal(t, 0, Count(nil))
}

func TestByteOffset(t *testing.T) {
	b := []byte("héllo")
	assert.Equal(t, 0, ByteOffset(b, 0))
	assert.Equal(t, 1, ByteOffset(b, 1))
	assert.Equal(t, 3, ByteOffset(b, 2))
	assert.Equal(t, len(b), ByteOffset(b, 100))
}
