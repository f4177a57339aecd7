package vulkan

import (
	vk "github.com/goki/vulkan"

	"github.com/spaghettifunk/anvil/engine/renderer/format"
)

// MemoryBlock is a region of device memory owned by an allocator. Images
// only keep references to blocks and never free them; the owner must keep a
// block alive while any tile or binding refers to it. Implementations are
// used as map keys and must be comparable, pointer receivers being the
// usual choice.
type MemoryBlock interface {
	Memory() vk.DeviceMemory
	Size() vk.DeviceSize
}

// MemoryRequirements describe the backing one plane of an image needs.
type MemoryRequirements struct {
	Size              vk.DeviceSize
	Alignment         vk.DeviceSize
	MemoryTypeBits    uint32
	PrefersDedicated  bool
	RequiresDedicated bool
}

func MemoryRequirementsFromVk(r vk.MemoryRequirements) MemoryRequirements {
	r.Deref()
	return MemoryRequirements{
		Size:           r.Size,
		Alignment:      r.Alignment,
		MemoryTypeBits: r.MemoryTypeBits,
	}
}

// SparseSingleMipTail is set in SparseRequirements.Flags when all array
// layers share one mip tail.
const SparseSingleMipTail uint32 = 0x1

// SparseRequirements is the sparse binding layout of one aspect as
// reported by the driver. Flags are kept verbatim.
type SparseRequirements struct {
	Aspect          format.Aspect
	Granularity     format.Extent3D
	Flags           uint32
	MipTailFirstLod uint32
	MipTailOffset   vk.DeviceSize
	MipTailSize     vk.DeviceSize
	MipTailStride   vk.DeviceSize
}

func SparseRequirementsFromVk(r vk.SparseImageMemoryRequirements) SparseRequirements {
	r.Deref()
	props := r.FormatProperties
	props.Deref()
	return SparseRequirements{
		Aspect:          format.AspectFromVk(props.AspectMask),
		Granularity:     format.ExtentFromVk(props.ImageGranularity),
		Flags:           uint32(props.Flags),
		MipTailFirstLod: r.ImageMipTailFirstLod,
		MipTailOffset:   r.ImageMipTailOffset,
		MipTailSize:     r.ImageMipTailSize,
		MipTailStride:   r.ImageMipTailStride,
	}
}

func (r SparseRequirements) singleMipTail() bool {
	return r.Flags&SparseSingleMipTail != 0
}

// SubresourceLayout is the placement of one subresource of a linear image.
type SubresourceLayout struct {
	Offset     vk.DeviceSize
	Size       vk.DeviceSize
	RowPitch   vk.DeviceSize
	ArrayPitch vk.DeviceSize
	DepthPitch vk.DeviceSize
}

func SubresourceLayoutFromVk(l vk.SubresourceLayout) SubresourceLayout {
	l.Deref()
	return SubresourceLayout{
		Offset:     l.Offset,
		Size:       l.Size,
		RowPitch:   l.RowPitch,
		ArrayPitch: l.ArrayPitch,
		DepthPitch: l.DepthPitch,
	}
}

// Offset3D is a texel position within a subresource.
type Offset3D struct {
	X uint32
	Y uint32
	Z uint32
}
