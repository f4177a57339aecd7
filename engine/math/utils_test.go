package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	assert.Equal(t, 3, Clamp(5, 0, 3))
	assert.Equal(t, 0, Clamp(-2, 0, 3))
	assert.Equal(t, 1.5, Clamp(1.5, 0.0, 3.0))
}

func TestCeilDiv(t *testing.T) {
	assert.Equal(t, uint32(2), CeilDiv[uint32](256, 128))
	assert.Equal(t, uint32(3), CeilDiv[uint32](257, 128))
	assert.Equal(t, uint32(1), CeilDiv[uint32](1, 128))
	assert.Equal(t, uint64(0), CeilDiv[uint64](0, 4))
}

func TestIsAligned(t *testing.T) {
	assert.True(t, IsAligned[uint64](65536, 65536))
	assert.False(t, IsAligned[uint64](65535, 65536))
	assert.True(t, IsAligned[uint64](17, 0))
}

func TestMipDimension(t *testing.T) {
	assert.Equal(t, uint32(256), MipDimension[uint32](256, 0))
	assert.Equal(t, uint32(32), MipDimension[uint32](256, 3))
	assert.Equal(t, uint32(1), MipDimension[uint32](256, 12))
	assert.Equal(t, uint32(1), MipDimension[uint32](3, 2))
}
