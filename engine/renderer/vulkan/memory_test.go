package vulkan

import (
	"testing"

	vk "github.com/goki/vulkan"
	"github.com/stretchr/testify/assert"

	"github.com/spaghettifunk/anvil/engine/renderer/format"
)

func TestMemoryRequirementsFromVk(t *testing.T) {
	r := MemoryRequirementsFromVk(vk.MemoryRequirements{Size: 4096, Alignment: 256, MemoryTypeBits: 0x5})
	assert.Equal(t, MemoryRequirements{Size: 4096, Alignment: 256, MemoryTypeBits: 0x5}, r)
}

func TestSparseRequirementsFromVk(t *testing.T) {
	r := SparseRequirementsFromVk(vk.SparseImageMemoryRequirements{
		FormatProperties: vk.SparseImageFormatProperties{
			AspectMask:       vk.ImageAspectFlags(vk.ImageAspectColorBit),
			ImageGranularity: vk.Extent3D{Width: 128, Height: 128, Depth: 1},
			Flags:            vk.SparseImageFormatFlags(SparseSingleMipTail),
		},
		ImageMipTailFirstLod: 3,
		ImageMipTailSize:     65536,
		ImageMipTailOffset:   1 << 20,
		ImageMipTailStride:   1 << 18,
	})

	assert.Equal(t, format.AspectColor, r.Aspect)
	assert.Equal(t, format.Extent3D{Width: 128, Height: 128, Depth: 1}, r.Granularity)
	assert.True(t, r.singleMipTail())
	assert.Equal(t, uint32(3), r.MipTailFirstLod)
	assert.Equal(t, vk.DeviceSize(65536), r.MipTailSize)
	assert.Equal(t, vk.DeviceSize(1<<20), r.MipTailOffset)
	assert.Equal(t, vk.DeviceSize(1<<18), r.MipTailStride)
}
