package vulkan

import (
	"fmt"

	vk "github.com/goki/vulkan"

	"github.com/spaghettifunk/anvil/engine/core"
	"github.com/spaghettifunk/anvil/engine/math"
)

// MemoryBinding is the backing given to a non-sparse image. It is one of
// SingleBinding, DeviceGroupBinding or SplitFrameBinding.
type MemoryBinding interface {
	backing() (MemoryBlock, vk.DeviceSize)
	validate()
}

// SingleBinding backs the image with one block on every device.
type SingleBinding struct {
	Block  MemoryBlock
	Offset vk.DeviceSize
}

// DeviceGroupBinding backs the image on each device of a group with the
// instance of Block on the peer device named at the same index.
type DeviceGroupBinding struct {
	Block         MemoryBlock
	Offset        vk.DeviceSize
	DeviceIndices []uint32
}

// SplitFrameBinding backs rectangles of the image with the peer device
// instances of Block.
type SplitFrameBinding struct {
	Block   MemoryBlock
	Offset  vk.DeviceSize
	Regions []vk.Rect2D
}

func (b SingleBinding) backing() (MemoryBlock, vk.DeviceSize) {
	return b.Block, b.Offset
}

func (b SingleBinding) validate() {}

func (b DeviceGroupBinding) backing() (MemoryBlock, vk.DeviceSize) {
	return b.Block, b.Offset
}

func (b DeviceGroupBinding) validate() {
	core.Assert(len(b.DeviceIndices) > 0, "device group binding names no devices")
}

func (b SplitFrameBinding) backing() (MemoryBlock, vk.DeviceSize) {
	return b.Block, b.Offset
}

func (b SplitFrameBinding) validate() {
	core.Assert(len(b.Regions) > 0, "split frame binding names no regions")
}

// MemoryBinder performs the driver side of SetMemory.
type MemoryBinder interface {
	BindImageMemory(image vk.Image, binding MemoryBinding) error
}

// DeviceBinder binds through vkBindImageMemory on a single device.
type DeviceBinder struct {
	Device vk.Device
}

func (b *DeviceBinder) BindImageMemory(image vk.Image, binding MemoryBinding) error {
	single, ok := binding.(SingleBinding)
	if !ok {
		return fmt.Errorf("%T: %w", binding, core.ErrDeviceGroupUnsupported)
	}
	if res := vk.BindImageMemory(b.Device, image, single.Block.Memory(), single.Offset); !VulkanResultIsSuccess(res) {
		return fmt.Errorf("vkBindImageMemory returned %s: %w", VulkanResultString(res, false), core.ErrDriver)
	}
	return nil
}

// Binding returns the memory currently backing the image, nil when none.
func (i *Image) Binding() MemoryBinding {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.binding
}

// SetMemory backs a non-sparse image. The memory of an image can be set
// once and never for swapchain images. Returns false when the driver
// refuses the binding.
func (i *Image) SetMemory(binding MemoryBinding) bool {
	core.Assert(binding != nil, "nil memory binding")
	core.Assert(!i.sparse, "image %s is sparse and is bound per page", i.ID.Short())
	core.Assert(!i.fromSwapchain, "image %s: %s", i.ID.Short(), core.ErrSwapchainImage)

	i.mu.Lock()
	defer i.mu.Unlock()
	core.Assert(i.binding == nil, "image %s: %s", i.ID.Short(), core.ErrAlreadyBound)
	core.Assert(i.binder != nil, "image %s has no memory binder", i.ID.Short())

	binding.validate()
	block, offset := binding.backing()
	core.Assert(block != nil, "memory binding has no block")

	var size vk.DeviceSize
	for _, r := range i.memory {
		size += r.Size
	}
	align := i.memory[0].Alignment
	core.Assert(math.IsAligned(offset, align), "memory offset %d is not aligned to %d", offset, align)
	core.Assert(offset+size <= block.Size(), "image needs %d bytes at %d but the block holds %d", size, offset, block.Size())

	if err := i.binder.BindImageMemory(i.handle, binding); err != nil {
		core.LogError("image %s: binding memory failed: %s", i.ID.Short(), err)
		return false
	}
	i.binding = binding
	core.LogDebug("image %s bound %d bytes at offset %d", i.ID.Short(), size, offset)
	return true
}
