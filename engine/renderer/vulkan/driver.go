package vulkan

import (
	vk "github.com/goki/vulkan"

	"github.com/spaghettifunk/anvil/engine/core"
	"github.com/spaghettifunk/anvil/engine/renderer/format"
)

// QueryCreateInfo fills the driver-reported parts of info for an image
// created on device: memory requirements, sparse requirements for sparse
// images, a layout query for linear images and a DeviceBinder when no
// binder is set. info.Handle must be valid.
func QueryCreateInfo(device vk.Device, info *ImageCreateInfo) *ImageCreateInfo {
	core.Assert(info.Handle != nil, "cannot query requirements of a null image")

	var reqs vk.MemoryRequirements
	vk.GetImageMemoryRequirements(device, info.Handle, &reqs)
	info.Memory = []MemoryRequirements{MemoryRequirementsFromVk(reqs)}

	if info.Sparse {
		counts := []uint32{0}
		vk.GetImageSparseMemoryRequirements(device, info.Handle, counts, nil)
		sparse := make([]vk.SparseImageMemoryRequirements, counts[0])
		if counts[0] > 0 {
			vk.GetImageSparseMemoryRequirements(device, info.Handle, counts, sparse)
		}
		info.SparseRequirements = info.SparseRequirements[:0]
		for _, s := range sparse[:counts[0]] {
			info.SparseRequirements = append(info.SparseRequirements, SparseRequirementsFromVk(s))
		}
		core.LogDebug("image reports %d sparse requirement entries", counts[0])
	}

	if info.Tiling == vk.ImageTilingLinear {
		handle := info.Handle
		info.LayoutQuery = func(aspect format.Aspect, layer, mip uint32) SubresourceLayout {
			sub := vk.ImageSubresource{
				AspectMask: aspect.Vk(),
				MipLevel:   mip,
				ArrayLayer: layer,
			}
			var layout vk.SubresourceLayout
			vk.GetImageSubresourceLayout(device, handle, &sub, &layout)
			return SubresourceLayoutFromVk(layout)
		}
	}

	if info.Binder == nil {
		info.Binder = &DeviceBinder{Device: device}
	}
	return info
}
