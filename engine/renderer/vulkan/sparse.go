package vulkan

import (
	vk "github.com/goki/vulkan"
	"golang.org/x/exp/maps"

	"github.com/spaghettifunk/anvil/engine/core"
	"github.com/spaghettifunk/anvil/engine/math"
	"github.com/spaghettifunk/anvil/engine/renderer/format"
)

// tileGrid records the backing of every tile of one (aspect, layer, mip).
type tileGrid struct {
	extent format.Extent3D
	nx     uint32
	ny     uint32
	nz     uint32
	slots  []MemoryBlock
}

func newTileGrid(extent, granularity format.Extent3D) tileGrid {
	g := tileGrid{
		extent: extent,
		nx:     math.CeilDiv(extent.Width, granularity.Width),
		ny:     math.CeilDiv(extent.Height, granularity.Height),
		nz:     math.CeilDiv(extent.Depth, granularity.Depth),
	}
	core.Assert(g.nx >= 1 && g.ny >= 1 && g.nz >= 1, "tile grid %dx%dx%d is empty", g.nx, g.ny, g.nz)
	g.slots = make([]MemoryBlock, g.nx*g.ny*g.nz)
	return g
}

func (g *tileGrid) index(x, y, z uint32) uint32 {
	i := z*(g.nx*g.ny) + y*g.nx + x
	core.Assert(x < g.nx && y < g.ny && z < g.nz && i < uint32(len(g.slots)),
		"tile (%d,%d,%d) outside grid %dx%dx%d", x, y, z, g.nx, g.ny, g.nz)
	return i
}

func (g *tileGrid) full() bool {
	for _, s := range g.slots {
		if s == nil {
			return false
		}
	}
	return true
}

// mipTail tracks the opaque pages holding the mips too small to be tiled.
type mipTail struct {
	pages []MemoryBlock
	tally map[MemoryBlock]uint32
}

func newMipTail(pages uint32) *mipTail {
	return &mipTail{
		pages: make([]MemoryBlock, pages),
		tally: make(map[MemoryBlock]uint32),
	}
}

func (t *mipTail) set(page uint32, block MemoryBlock) {
	core.Assert(page < uint32(len(t.pages)), "tail page %d out of %d", page, len(t.pages))
	if old := t.pages[page]; old != nil {
		if t.tally[old] <= 1 {
			delete(t.tally, old)
		} else {
			t.tally[old]--
		}
	}
	t.pages[page] = block
	if block != nil {
		t.tally[block]++
	}
}

func (t *mipTail) bound() uint32 {
	var n uint32
	for _, c := range t.tally {
		n += c
	}
	return n
}

func (t *mipTail) complete() bool {
	return t.bound() == uint32(len(t.pages))
}

type layerOccupancy struct {
	mips []tileGrid
	tail *mipTail
}

type aspectOccupancy struct {
	aspect    format.Aspect
	req       SparseRequirements
	firstTail uint32
	layers    []layerOccupancy
}

func (a *aspectOccupancy) tail(layer uint32) *mipTail {
	if a.req.singleMipTail() {
		return a.layers[0].tail
	}
	return a.layers[layer].tail
}

// sparseTracker keeps page residency for every aspect of a sparse image.
// Memory blocks stored in it are not owned.
type sparseTracker struct {
	format      format.Format
	extent      format.Extent3D
	mipLevels   uint32
	arrayLayers uint32
	pageSize    vk.DeviceSize
	aspects     []*aspectOccupancy
}

func newSparseTracker(info *ImageCreateInfo, pageSize vk.DeviceSize) *sparseTracker {
	core.Assert(pageSize > 0, "sparse image needs a non-zero page size")
	t := &sparseTracker{
		format:      info.Format,
		extent:      info.Extent,
		mipLevels:   info.MipLevels,
		arrayLayers: info.ArrayLayers,
		pageSize:    pageSize,
	}

	for _, aspect := range format.Aspects(info.Format) {
		req, ok := findSparseRequirements(info.SparseRequirements, aspect)
		core.Assert(ok, "no sparse requirements reported for aspect %s of %s", aspect, info.Format)
		g := req.Granularity
		core.Assert(g.Width > 0 && g.Height > 0 && g.Depth > 0, "aspect %s has granularity %dx%dx%d", aspect, g.Width, g.Height, g.Depth)

		occ := &aspectOccupancy{
			aspect:    aspect,
			req:       req,
			firstTail: math.Min(req.MipTailFirstLod, info.MipLevels),
			layers:    make([]layerOccupancy, info.ArrayLayers),
		}
		hasTail := occ.firstTail < info.MipLevels
		if hasTail {
			core.Assert(req.MipTailSize > 0, "aspect %s has a mip tail from mip %d with no size", aspect, occ.firstTail)
		}
		pages := uint32(math.CeilDiv(req.MipTailSize, pageSize))

		for l := range occ.layers {
			layer := &occ.layers[l]
			layer.mips = make([]tileGrid, occ.firstTail)
			for m := uint32(0); m < occ.firstTail; m++ {
				layer.mips[m] = newTileGrid(subresourceExtent(info.Format, info.Extent, aspect, m), g)
			}
			if hasTail && (l == 0 || !req.singleMipTail()) {
				layer.tail = newMipTail(pages)
			}
		}
		t.aspects = append(t.aspects, occ)
	}
	return t
}

// findSparseRequirements picks the report covering aspect. Drivers may
// report depth and stencil together.
func findSparseRequirements(reqs []SparseRequirements, aspect format.Aspect) (SparseRequirements, bool) {
	for _, r := range reqs {
		if r.Aspect&aspect != 0 {
			return r, true
		}
	}
	return SparseRequirements{}, false
}

func (t *sparseTracker) mustAspect(aspect format.Aspect) *aspectOccupancy {
	for _, a := range t.aspects {
		if a.aspect == aspect {
			return a
		}
	}
	core.Assert(false, "aspect %s is not tracked for %s", aspect, t.format)
	return nil
}

func (t *sparseTracker) checkBlock(block MemoryBlock, blockOffset, size vk.DeviceSize) {
	if block == nil {
		return
	}
	core.Assert(math.IsAligned(blockOffset, t.pageSize), "memory offset %d is not aligned to %d", blockOffset, t.pageSize)
	core.Assert(blockOffset+size <= block.Size(), "binding %d bytes at %d overruns a %d byte block", size, blockOffset, block.Size())
}

func (t *sparseTracker) bindOpaque(resourceOffset, size vk.DeviceSize, block MemoryBlock, blockOffset vk.DeviceSize) {
	core.Assert(size > 0, "opaque bind of zero bytes")
	core.Assert(math.IsAligned(resourceOffset, t.pageSize) && math.IsAligned(size, t.pageSize),
		"opaque bind [%d, +%d) is not aligned to %d byte pages", resourceOffset, size, t.pageSize)
	t.checkBlock(block, blockOffset, size)

	for off := resourceOffset; off < resourceOffset+size; off += t.pageSize {
		matched := false
		for _, a := range t.aspects {
			if tail, page, ok := t.locateTailPage(a, off); ok {
				tail.set(page, block)
				matched = true
			}
		}
		core.Assert(matched, "offset %d is not inside any mip tail of %s", off, t.format)
	}
}

// locateTailPage maps an offset in the image's opaque address space to the
// tail page of aspect a it falls in. Aspects sharing one report share their
// tail offsets, so a page may belong to more than one aspect.
func (t *sparseTracker) locateTailPage(a *aspectOccupancy, off vk.DeviceSize) (*mipTail, uint32, bool) {
	req := a.req
	if a.firstTail >= t.mipLevels || off < req.MipTailOffset {
		return nil, 0, false
	}
	rel := off - req.MipTailOffset
	layer, within := vk.DeviceSize(0), rel
	if !req.singleMipTail() && req.MipTailStride > 0 {
		layer, within = rel/req.MipTailStride, rel%req.MipTailStride
	}
	if layer >= vk.DeviceSize(t.arrayLayers) || within >= req.MipTailSize {
		return nil, 0, false
	}
	return a.tail(uint32(layer)), uint32(within / t.pageSize), true
}

func (t *sparseTracker) bindSubresource(aspect format.Aspect, mip, layer uint32, offset Offset3D, extent format.Extent3D, block MemoryBlock, blockOffset vk.DeviceSize) {
	a := t.mustAspect(aspect)
	core.Assert(layer < t.arrayLayers, "layer %d out of %d", layer, t.arrayLayers)
	core.Assert(mip < a.firstTail, "mip %d of aspect %s lies in the mip tail", mip, aspect)
	core.Assert(extent.Width > 0 && extent.Height > 0 && extent.Depth > 0, "empty bind extent")

	g := &a.layers[layer].mips[mip]
	gran := a.req.Granularity
	x0, x1 := tileSpan(offset.X, extent.Width, gran.Width, g.extent.Width)
	y0, y1 := tileSpan(offset.Y, extent.Height, gran.Height, g.extent.Height)
	z0, z1 := tileSpan(offset.Z, extent.Depth, gran.Depth, g.extent.Depth)

	tiles := (x1 - x0) * (y1 - y0) * (z1 - z0)
	t.checkBlock(block, blockOffset, vk.DeviceSize(tiles)*t.pageSize)

	for z := z0; z < z1; z++ {
		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				g.slots[g.index(x, y, z)] = block
			}
		}
	}
}

// tileSpan returns the tile range [first, last) covered along one axis.
// A range ending on the mip edge is aligned even when the edge is not.
func tileSpan(offset, length, tile, limit uint32) (uint32, uint32) {
	core.Assert(offset <= limit && length <= limit-offset, "bind range %d+%d exceeds mip size %d", offset, length, limit)
	end := offset + length
	core.Assert(offset%tile == 0, "bind offset %d is not a multiple of tile size %d", offset, tile)
	core.Assert(end%tile == 0 || end == limit, "bind end %d is not a multiple of tile size %d", end, tile)
	return offset / tile, math.CeilDiv(end, tile)
}

func (t *sparseTracker) isTexelBacked(aspect format.Aspect, layer, mip, x, y, z uint32) bool {
	a := t.mustAspect(aspect)
	core.Assert(layer < t.arrayLayers, "layer %d out of %d", layer, t.arrayLayers)
	core.Assert(mip < t.mipLevels, "mip %d out of %d", mip, t.mipLevels)

	if mip >= a.firstTail {
		ext := subresourceExtent(t.format, t.extent, aspect, mip)
		core.Assert(x < ext.Width && y < ext.Height && z < ext.Depth, "texel (%d,%d,%d) outside mip %d", x, y, z, mip)
		return a.tail(layer).complete()
	}

	g := &a.layers[layer].mips[mip]
	core.Assert(x < g.extent.Width && y < g.extent.Height && z < g.extent.Depth, "texel (%d,%d,%d) outside mip %d", x, y, z, mip)
	gran := a.req.Granularity
	return g.slots[g.index(x/gran.Width, y/gran.Height, z/gran.Depth)] != nil
}

func (t *sparseTracker) isSubresourceBacked(aspect format.Aspect, layer, mip uint32) bool {
	a := t.mustAspect(aspect)
	core.Assert(layer < t.arrayLayers, "layer %d out of %d", layer, t.arrayLayers)
	core.Assert(mip < t.mipLevels, "mip %d out of %d", mip, t.mipLevels)
	if mip >= a.firstTail {
		return a.tail(layer).complete()
	}
	return a.layers[layer].mips[mip].full()
}

func (t *sparseTracker) tailPages(aspect format.Aspect, layer uint32) (uint32, uint32) {
	a := t.mustAspect(aspect)
	core.Assert(layer < t.arrayLayers, "layer %d out of %d", layer, t.arrayLayers)
	tail := a.tail(layer)
	if tail == nil {
		return 0, 0
	}
	return tail.bound(), uint32(len(tail.pages))
}

func (t *sparseTracker) tailUsage(aspect format.Aspect, layer uint32) map[MemoryBlock]uint32 {
	a := t.mustAspect(aspect)
	core.Assert(layer < t.arrayLayers, "layer %d out of %d", layer, t.arrayLayers)
	tail := a.tail(layer)
	if tail == nil {
		return map[MemoryBlock]uint32{}
	}
	return maps.Clone(tail.tally)
}
