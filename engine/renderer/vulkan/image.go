package vulkan

import (
	"sync"

	vk "github.com/goki/vulkan"

	"github.com/spaghettifunk/anvil/engine/core"
	"github.com/spaghettifunk/anvil/engine/math"
	"github.com/spaghettifunk/anvil/engine/renderer/format"
)

// LayoutQuery reports where a subresource of a linear image lives.
type LayoutQuery func(aspect format.Aspect, layer, mip uint32) SubresourceLayout

type ImageCreateInfo struct {
	Handle      vk.Image
	Format      format.Format
	Extent      format.Extent3D
	MipLevels   uint32
	ArrayLayers uint32
	Samples     vk.SampleCountFlagBits
	Tiling      vk.ImageTiling
	Sparse      bool
	ThreadSafe  bool

	// Memory holds one entry per plane for disjoint multi-planar images and
	// a single entry otherwise.
	Memory []MemoryRequirements
	// SparseRequirements holds one entry per aspect of a sparse image.
	SparseRequirements []SparseRequirements
	// LayoutQuery is called at creation for linear images only.
	LayoutQuery LayoutQuery
	Binder      MemoryBinder
}

// NewImageCreateInfo returns a description of a single-sampled, optimally
// tiled image with one mip and one layer. The locking mode comes from the
// current core configuration.
func NewImageCreateInfo(handle vk.Image, f format.Format, extent format.Extent3D) *ImageCreateInfo {
	return &ImageCreateInfo{
		Handle:      handle,
		Format:      f,
		Extent:      extent,
		MipLevels:   1,
		ArrayLayers: 1,
		Samples:     vk.SampleCount1Bit,
		Tiling:      vk.ImageTilingOptimal,
		ThreadSafe:  core.CurrentConfig().Images.ThreadSafe,
	}
}

type subresourceKey struct {
	aspect format.Aspect
	layer  uint32
	mip    uint32
}

type noopLocker struct{}

func (noopLocker) Lock()   {}
func (noopLocker) Unlock() {}

// Image wraps an image handle owned elsewhere and keeps its memory
// bookkeeping. In thread-safe mode every mutation and every read of binding
// state takes the image mutex.
type Image struct {
	ID core.Identifier

	handle      vk.Image
	format      format.Format
	extent      format.Extent3D
	mipLevels   uint32
	arrayLayers uint32
	samples     vk.SampleCountFlagBits
	tiling      vk.ImageTiling
	sparse      bool

	memory     []MemoryRequirements
	mipExtents []format.Extent3D
	layouts    map[subresourceKey]SubresourceLayout

	swapchain      vk.Swapchain
	swapchainIndex uint32
	fromSwapchain  bool

	mu      sync.Locker
	binder  MemoryBinder
	binding MemoryBinding
	tracker *sparseTracker
	events  *core.EventRegistry
}

func NewImage(info *ImageCreateInfo) *Image {
	_, known := format.Name(info.Format)
	core.Assert(known, "image format %d is not registered", info.Format)
	e := info.Extent
	core.Assert(e.Width > 0 && e.Height > 0 && e.Depth > 0, "image extent %dx%dx%d is empty", e.Width, e.Height, e.Depth)
	core.Assert(info.MipLevels > 0 && info.ArrayLayers > 0, "image needs at least one mip and one layer")
	core.Assert(len(info.Memory) == 1 || (format.IsMultiPlanar(info.Format) && len(info.Memory) == int(format.PlaneCount(info.Format))),
		"%s cannot take %d memory requirements", info.Format, len(info.Memory))

	img := &Image{
		ID:          core.NewIdentifier(),
		handle:      info.Handle,
		format:      info.Format,
		extent:      info.Extent,
		mipLevels:   info.MipLevels,
		arrayLayers: info.ArrayLayers,
		samples:     info.Samples,
		tiling:      info.Tiling,
		sparse:      info.Sparse,
		memory:      append([]MemoryRequirements(nil), info.Memory...),
		mipExtents:  make([]format.Extent3D, info.MipLevels),
		layouts:     make(map[subresourceKey]SubresourceLayout),
		binder:      info.Binder,
		events:      core.NewEventRegistry(),
	}
	if info.ThreadSafe {
		img.mu = &sync.Mutex{}
	} else {
		img.mu = noopLocker{}
	}

	for m := range img.mipExtents {
		img.mipExtents[m] = mipExtent(info.Extent, uint32(m))
	}

	if info.Tiling == vk.ImageTilingLinear && info.LayoutQuery != nil {
		for _, aspect := range format.Aspects(info.Format) {
			for l := uint32(0); l < info.ArrayLayers; l++ {
				for m := uint32(0); m < info.MipLevels; m++ {
					img.layouts[subresourceKey{aspect, l, m}] = info.LayoutQuery(aspect, l, m)
				}
			}
		}
	}

	if info.Sparse {
		img.tracker = newSparseTracker(info, img.memory[0].Alignment)
	}

	core.LogDebug("image %s created: %s %dx%dx%d, %d mips, %d layers, sparse=%t",
		img.ID.Short(), info.Format, e.Width, e.Height, e.Depth, info.MipLevels, info.ArrayLayers, info.Sparse)
	return img
}

// NewSwapchainImage wraps an image the swapchain owns and has already
// backed with memory. Its memory can never be changed.
func NewSwapchainImage(info *ImageCreateInfo, swapchain vk.Swapchain, index uint32) *Image {
	core.Assert(!info.Sparse, "swapchain images cannot be sparse")
	img := NewImage(info)
	img.swapchain = swapchain
	img.swapchainIndex = index
	img.fromSwapchain = true
	return img
}

func mipExtent(base format.Extent3D, mip uint32) format.Extent3D {
	return format.Extent3D{
		Width:  math.MipDimension(base.Width, mip),
		Height: math.MipDimension(base.Height, mip),
		Depth:  math.MipDimension(base.Depth, mip),
	}
}

func subresourceExtent(f format.Format, base format.Extent3D, aspect format.Aspect, mip uint32) format.Extent3D {
	if format.IsMultiPlanar(f) {
		base = format.PlaneExtent(f, aspect, base)
	}
	return mipExtent(base, mip)
}

// Handle returns the native image. Observing the handle of an image with
// no memory asks the allocators to commit; for sparse images this only
// happens when an allocation is already pending.
func (i *Image) Handle() vk.Image {
	i.mu.Lock()
	unbacked := !i.sparse && !i.fromSwapchain && i.binding == nil
	i.mu.Unlock()

	switch {
	case i.sparse:
		if i.HasPendingAllocations() {
			i.MemoryBlockNeeded()
		}
	case unbacked:
		i.MemoryBlockNeeded()
	}
	return i.handle
}

func (i *Image) Format() format.Format {
	return i.format
}

func (i *Image) Extent() format.Extent3D {
	return i.extent
}

func (i *Image) MipLevels() uint32 {
	return i.mipLevels
}

func (i *Image) ArrayLayers() uint32 {
	return i.arrayLayers
}

func (i *Image) Samples() vk.SampleCountFlagBits {
	return i.samples
}

func (i *Image) Tiling() vk.ImageTiling {
	return i.tiling
}

func (i *Image) IsSparse() bool {
	return i.sparse
}

func (i *Image) IsSwapchainImage() bool {
	return i.fromSwapchain
}

// Swapchain returns the owning swapchain and the image index within it.
func (i *Image) Swapchain() (vk.Swapchain, uint32) {
	return i.swapchain, i.swapchainIndex
}

// MipExtent returns the cached extent of a mip level.
func (i *Image) MipExtent(mip uint32) format.Extent3D {
	core.Assert(mip < i.mipLevels, "mip %d out of %d", mip, i.mipLevels)
	return i.mipExtents[mip]
}

// SubresourceExtent is MipExtent reduced to the plane size for the chroma
// planes of multi-planar images.
func (i *Image) SubresourceExtent(aspect format.Aspect, mip uint32) format.Extent3D {
	core.Assert(mip < i.mipLevels, "mip %d out of %d", mip, i.mipLevels)
	return subresourceExtent(i.format, i.extent, aspect, mip)
}

func (i *Image) requirements(aspect format.Aspect) MemoryRequirements {
	if len(i.memory) > 1 {
		return i.memory[format.PlaneIndex(i.format, aspect)]
	}
	return i.memory[0]
}

// MemoryTypes returns the bitmask of memory types that can back aspect.
func (i *Image) MemoryTypes(aspect format.Aspect) uint32 {
	return i.requirements(aspect).MemoryTypeBits
}

func (i *Image) Alignment(aspect format.Aspect) vk.DeviceSize {
	return i.requirements(aspect).Alignment
}

func (i *Image) StorageSize(aspect format.Aspect) vk.DeviceSize {
	return i.requirements(aspect).Size
}

func (i *Image) RequiresDedicatedAllocation(aspect format.Aspect) bool {
	return i.requirements(aspect).RequiresDedicated
}

func (i *Image) PrefersDedicatedAllocation(aspect format.Aspect) bool {
	r := i.requirements(aspect)
	return r.PrefersDedicated || r.RequiresDedicated
}

// SubresourceLayout returns the cached layout of a linear image's
// subresource. Optimal images have no layouts.
func (i *Image) SubresourceLayout(aspect format.Aspect, layer, mip uint32) (SubresourceLayout, bool) {
	l, ok := i.layouts[subresourceKey{aspect, layer, mip}]
	return l, ok
}

func (i *Image) Aspects() []format.Aspect {
	return format.Aspects(i.format)
}

// BarrierAspects widens aspects so that a barrier on one half of a
// combined depth-stencil image covers both. Multi-planar images also
// accept the color aspect, which names every plane.
func (i *Image) BarrierAspects(aspects format.Aspect) format.Aspect {
	valid := format.AspectMask(i.format)
	if format.IsMultiPlanar(i.format) {
		valid |= format.AspectColor
	}
	core.Assert(aspects&^valid == 0, "aspects %s are not part of %s", aspects, i.format)
	return format.ExpandAspects(i.format, aspects)
}

func (i *Image) mustSparse() {
	core.Assert(i.sparse, "image %s is not sparse", i.ID.Short())
}

// BindOpaque binds (or unbinds, with a nil block) a byte range of the mip
// tail address space.
func (i *Image) BindOpaque(resourceOffset, size vk.DeviceSize, block MemoryBlock, blockOffset vk.DeviceSize) {
	i.mustSparse()
	i.mu.Lock()
	defer i.mu.Unlock()
	i.tracker.bindOpaque(resourceOffset, size, block, blockOffset)
}

// BindSubresource binds (or unbinds, with a nil block) every tile of a
// tile-aligned box of a non-tail mip.
func (i *Image) BindSubresource(aspect format.Aspect, mip, layer uint32, offset Offset3D, extent format.Extent3D, block MemoryBlock, blockOffset vk.DeviceSize) {
	i.mustSparse()
	i.mu.Lock()
	defer i.mu.Unlock()
	i.tracker.bindSubresource(aspect, mip, layer, offset, extent, block, blockOffset)
}

func (i *Image) IsTexelBacked(aspect format.Aspect, layer, mip, x, y, z uint32) bool {
	i.mustSparse()
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.tracker.isTexelBacked(aspect, layer, mip, x, y, z)
}

// IsSubresourceBacked reports whether every tile of the subresource, or the
// whole mip tail holding it, has memory.
func (i *Image) IsSubresourceBacked(aspect format.Aspect, layer, mip uint32) bool {
	i.mustSparse()
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.tracker.isSubresourceBacked(aspect, layer, mip)
}

// TailPagesBound returns how many of the mip tail pages of a layer have
// memory.
func (i *Image) TailPagesBound(aspect format.Aspect, layer uint32) (bound, total uint32) {
	i.mustSparse()
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.tracker.tailPages(aspect, layer)
}

// TailUsage returns the number of tail pages each memory block backs.
func (i *Image) TailUsage(aspect format.Aspect, layer uint32) map[MemoryBlock]uint32 {
	i.mustSparse()
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.tracker.tailUsage(aspect, layer)
}
