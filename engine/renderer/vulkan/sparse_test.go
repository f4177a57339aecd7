package vulkan

import (
	"sync"
	"testing"

	vk "github.com/goki/vulkan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/anvil/engine/renderer/format"
)

const page vk.DeviceSize = 64 * 1024

type testBlock struct {
	size vk.DeviceSize
}

func (b *testBlock) Memory() vk.DeviceMemory { return vk.NullDeviceMemory }
func (b *testBlock) Size() vk.DeviceSize     { return b.size }

func newBlock(pages vk.DeviceSize) *testBlock {
	return &testBlock{size: pages * page}
}

func sparseInfo(f format.Format, extent format.Extent3D, mips, layers uint32, reqs ...SparseRequirements) *ImageCreateInfo {
	return &ImageCreateInfo{
		Format:      f,
		Extent:      extent,
		MipLevels:   mips,
		ArrayLayers: layers,
		Samples:     vk.SampleCount1Bit,
		Tiling:      vk.ImageTilingOptimal,
		Sparse:      true,
		ThreadSafe:  true,
		Memory: []MemoryRequirements{
			{Size: 64 * page, Alignment: page, MemoryTypeBits: 0x3},
		},
		SparseRequirements: reqs,
	}
}

func colorRequirements(tile uint32, firstTail uint32) SparseRequirements {
	return SparseRequirements{
		Aspect:          format.AspectColor,
		Granularity:     format.Extent3D{Width: tile, Height: tile, Depth: 1},
		MipTailFirstLod: firstTail,
	}
}

func newColorImage(size, tile uint32) *Image {
	extent := format.Extent3D{Width: size, Height: size, Depth: 1}
	return NewImage(sparseInfo(format.FormatR8G8B8A8Unorm, extent, 1, 1, colorRequirements(tile, 1)))
}

func box(w, h uint32) format.Extent3D {
	return format.Extent3D{Width: w, Height: h, Depth: 1}
}

func gridSnapshot(img *Image, aspect format.Aspect, layer, mip uint32) []MemoryBlock {
	g := img.tracker.mustAspect(aspect).layers[layer].mips[mip]
	return append([]MemoryBlock(nil), g.slots...)
}

func TestSparseTileBind(t *testing.T) {
	img := newColorImage(256, 128)
	m := newBlock(1)

	img.BindSubresource(format.AspectColor, 0, 0, Offset3D{}, box(128, 128), m, 0)

	assert.True(t, img.IsTexelBacked(format.AspectColor, 0, 0, 0, 0, 0))
	assert.True(t, img.IsTexelBacked(format.AspectColor, 0, 0, 127, 127, 0))
	assert.False(t, img.IsTexelBacked(format.AspectColor, 0, 0, 128, 0, 0))
	assert.False(t, img.IsSubresourceBacked(format.AspectColor, 0, 0))
}

func TestTileBoundaryRoundsDown(t *testing.T) {
	img := newColorImage(256, 128)
	img.BindSubresource(format.AspectColor, 0, 0, Offset3D{X: 128}, box(128, 128), newBlock(1), 0)

	assert.False(t, img.IsTexelBacked(format.AspectColor, 0, 0, 127, 0, 0))
	assert.True(t, img.IsTexelBacked(format.AspectColor, 0, 0, 128, 0, 0))
	assert.True(t, img.IsTexelBacked(format.AspectColor, 0, 0, 255, 127, 0))
	assert.False(t, img.IsTexelBacked(format.AspectColor, 0, 0, 128, 128, 0))
}

func TestBindSubresourceIsIdempotent(t *testing.T) {
	img := newColorImage(256, 128)
	m := newBlock(4)

	img.BindSubresource(format.AspectColor, 0, 0, Offset3D{Y: 128}, box(256, 128), m, 0)
	once := gridSnapshot(img, format.AspectColor, 0, 0)
	img.BindSubresource(format.AspectColor, 0, 0, Offset3D{Y: 128}, box(256, 128), m, 0)
	twice := gridSnapshot(img, format.AspectColor, 0, 0)

	assert.Equal(t, once, twice)
	assert.Equal(t, []MemoryBlock{nil, nil, m, m}, twice)
}

func TestUnbindWholeMip(t *testing.T) {
	img := newColorImage(256, 64)
	img.BindSubresource(format.AspectColor, 0, 0, Offset3D{}, box(256, 256), newBlock(16), 0)
	require.True(t, img.IsSubresourceBacked(format.AspectColor, 0, 0))

	img.BindSubresource(format.AspectColor, 0, 0, Offset3D{}, box(256, 256), nil, 0)
	for y := uint32(0); y < 256; y += 17 {
		for x := uint32(0); x < 256; x += 17 {
			assert.False(t, img.IsTexelBacked(format.AspectColor, 0, 0, x, y, 0), "texel (%d,%d)", x, y)
		}
	}
	assert.False(t, img.IsTexelBacked(format.AspectColor, 0, 0, 255, 255, 0))
}

func TestBindLeavesOutsideUnchanged(t *testing.T) {
	img := newColorImage(256, 64)
	other := newBlock(16)
	img.BindSubresource(format.AspectColor, 0, 0, Offset3D{}, box(64, 64), other, 0)

	m := newBlock(4)
	img.BindSubresource(format.AspectColor, 0, 0, Offset3D{X: 128, Y: 64}, box(128, 128), m, 0)

	for y := uint32(0); y < 256; y += 8 {
		for x := uint32(0); x < 256; x += 8 {
			inside := x >= 128 && y >= 64 && y < 192
			topLeft := x < 64 && y < 64
			assert.Equal(t, inside || topLeft, img.IsTexelBacked(format.AspectColor, 0, 0, x, y, 0), "texel (%d,%d)", x, y)
		}
	}
}

func TestEdgeTilesReachingMipEdge(t *testing.T) {
	img := newColorImage(200, 128)

	img.BindSubresource(format.AspectColor, 0, 0, Offset3D{X: 128, Y: 128}, box(72, 72), newBlock(1), 0)
	assert.True(t, img.IsTexelBacked(format.AspectColor, 0, 0, 199, 199, 0))
	assert.False(t, img.IsTexelBacked(format.AspectColor, 0, 0, 127, 199, 0))

	assert.Panics(t, func() {
		img.BindSubresource(format.AspectColor, 0, 0, Offset3D{}, box(64, 128), newBlock(1), 0)
	})
	assert.Panics(t, func() {
		img.BindSubresource(format.AspectColor, 0, 0, Offset3D{X: 64}, box(64, 128), newBlock(1), 0)
	})
	assert.Panics(t, func() {
		img.BindSubresource(format.AspectColor, 0, 0, Offset3D{X: 128}, box(128, 128), newBlock(1), 0)
	})
}

func TestSparseContractViolations(t *testing.T) {
	img := newColorImage(256, 128)

	assert.Panics(t, func() {
		img.BindSubresource(format.AspectColor, 0, 0, Offset3D{}, box(256, 256), newBlock(3), 0)
	}, "block too small")
	assert.Panics(t, func() {
		img.BindSubresource(format.AspectColor, 0, 0, Offset3D{}, box(128, 128), newBlock(2), 100)
	}, "misaligned memory offset")
	assert.Panics(t, func() {
		img.BindSubresource(format.AspectDepth, 0, 0, Offset3D{}, box(128, 128), newBlock(1), 0)
	}, "unknown aspect")
	assert.Panics(t, func() {
		img.BindSubresource(format.AspectColor, 0, 1, Offset3D{}, box(128, 128), newBlock(1), 0)
	}, "layer out of range")
	assert.Panics(t, func() {
		img.BindSubresource(format.AspectColor, 0, 0, Offset3D{}, box(0, 128), newBlock(1), 0)
	}, "empty extent")
	assert.Panics(t, func() {
		img.BindSubresource(format.AspectColor, 0, 0, Offset3D{X: 128}, box(0xFFFFFF80, 128), nil, 0)
	}, "extent wrapping past the mip edge")
	assert.Panics(t, func() {
		img.IsTexelBacked(format.AspectColor, 0, 0, 256, 0, 0)
	}, "texel outside mip")
	assert.Panics(t, func() {
		img.IsTexelBacked(format.AspectColor, 0, 1, 0, 0, 0)
	}, "mip out of range")

	// The image is still usable after a rejected bind.
	img.BindSubresource(format.AspectColor, 0, 0, Offset3D{}, box(128, 128), newBlock(1), 0)
	assert.True(t, img.IsTexelBacked(format.AspectColor, 0, 0, 0, 0, 0))
}

const tailOffset vk.DeviceSize = 0x100000

func newTailImage(layers uint32, flags uint32) *Image {
	req := colorRequirements(128, 2)
	req.Flags = flags
	req.MipTailOffset = tailOffset
	req.MipTailSize = 3 * page
	if flags&SparseSingleMipTail == 0 {
		req.MipTailStride = 4 * page
	}
	extent := format.Extent3D{Width: 256, Height: 256, Depth: 1}
	return NewImage(sparseInfo(format.FormatR8G8B8A8Unorm, extent, 9, layers, req))
}

func TestMipTailBinding(t *testing.T) {
	img := newTailImage(2, 0)
	a, b := newBlock(4), newBlock(4)

	bound, total := img.TailPagesBound(format.AspectColor, 0)
	assert.Equal(t, uint32(0), bound)
	assert.Equal(t, uint32(3), total)

	img.BindOpaque(tailOffset, 2*page, a, 0)
	bound, _ = img.TailPagesBound(format.AspectColor, 0)
	assert.Equal(t, uint32(2), bound)
	assert.False(t, img.IsTexelBacked(format.AspectColor, 0, 3, 0, 0, 0))
	assert.False(t, img.IsSubresourceBacked(format.AspectColor, 0, 2))

	img.BindOpaque(tailOffset+2*page, page, b, 0)
	assert.True(t, img.IsTexelBacked(format.AspectColor, 0, 3, 31, 31, 0))
	assert.True(t, img.IsTexelBacked(format.AspectColor, 0, 8, 0, 0, 0))
	assert.True(t, img.IsSubresourceBacked(format.AspectColor, 0, 2))
	assert.Equal(t, map[MemoryBlock]uint32{a: 2, b: 1}, img.TailUsage(format.AspectColor, 0))

	// Tiled mips are untouched by tail binds.
	assert.False(t, img.IsTexelBacked(format.AspectColor, 0, 1, 0, 0, 0))

	// The other layer has its own tail.
	bound, _ = img.TailPagesBound(format.AspectColor, 1)
	assert.Equal(t, uint32(0), bound)
	assert.False(t, img.IsTexelBacked(format.AspectColor, 1, 3, 0, 0, 0))
}

func TestMipTailTally(t *testing.T) {
	img := newTailImage(2, 0)
	a, b := newBlock(4), newBlock(4)

	img.BindOpaque(tailOffset, 3*page, a, 0)
	img.BindOpaque(tailOffset, page, b, 0)
	assert.Equal(t, map[MemoryBlock]uint32{a: 2, b: 1}, img.TailUsage(format.AspectColor, 0))

	img.BindOpaque(tailOffset+page, page, nil, 0)
	assert.Equal(t, map[MemoryBlock]uint32{a: 1, b: 1}, img.TailUsage(format.AspectColor, 0))
	assert.False(t, img.IsTexelBacked(format.AspectColor, 0, 4, 0, 0, 0))

	img.BindOpaque(tailOffset, 3*page, nil, 0)
	assert.Empty(t, img.TailUsage(format.AspectColor, 0))

	img.BindOpaque(tailOffset+4*page, 3*page, b, 0)
	assert.Equal(t, map[MemoryBlock]uint32{b: 3}, img.TailUsage(format.AspectColor, 1))
	assert.True(t, img.IsTexelBacked(format.AspectColor, 1, 2, 0, 0, 0))
	assert.False(t, img.IsTexelBacked(format.AspectColor, 0, 2, 0, 0, 0))
}

func TestMipTailContractViolations(t *testing.T) {
	img := newTailImage(2, 0)

	assert.Panics(t, func() {
		img.BindOpaque(tailOffset+3*page, page, newBlock(1), 0)
	}, "gap between layer tails")
	assert.Panics(t, func() {
		img.BindOpaque(0, page, newBlock(1), 0)
	}, "before the tail")
	assert.Panics(t, func() {
		img.BindOpaque(tailOffset+1, page, newBlock(1), 0)
	}, "unaligned offset")
	assert.Panics(t, func() {
		img.BindOpaque(tailOffset, 2*page, newBlock(1), 0)
	}, "block too small")
	assert.Panics(t, func() {
		img.BindSubresource(format.AspectColor, 2, 0, Offset3D{}, box(64, 64), newBlock(1), 0)
	}, "tail mip bound per tile")
}

func TestSingleMipTailSharedByLayers(t *testing.T) {
	img := newTailImage(3, SparseSingleMipTail)

	img.BindOpaque(tailOffset, 3*page, newBlock(3), 0)
	for layer := uint32(0); layer < 3; layer++ {
		bound, total := img.TailPagesBound(format.AspectColor, layer)
		assert.Equal(t, total, bound)
		assert.True(t, img.IsTexelBacked(format.AspectColor, layer, 5, 0, 0, 0))
	}
	assert.False(t, img.IsTexelBacked(format.AspectColor, 2, 0, 0, 0, 0))
}

func TestDepthStencilTrackedSeparately(t *testing.T) {
	req := SparseRequirements{
		Aspect:          format.AspectDepth | format.AspectStencil,
		Granularity:     format.Extent3D{Width: 128, Height: 128, Depth: 1},
		MipTailFirstLod: 1,
	}
	extent := format.Extent3D{Width: 256, Height: 256, Depth: 1}
	img := NewImage(sparseInfo(format.FormatD24UnormS8Uint, extent, 1, 1, req))

	img.BindSubresource(format.AspectDepth, 0, 0, Offset3D{}, box(256, 256), newBlock(4), 0)
	assert.True(t, img.IsSubresourceBacked(format.AspectDepth, 0, 0))
	assert.False(t, img.IsSubresourceBacked(format.AspectStencil, 0, 0))
	assert.False(t, img.IsTexelBacked(format.AspectStencil, 0, 0, 0, 0, 0))

	assert.Equal(t, []format.Aspect{format.AspectDepth, format.AspectStencil}, img.Aspects())
	assert.Equal(t, format.AspectDepth|format.AspectStencil, img.BarrierAspects(format.AspectStencil))
}

func TestDepthStencilMipTails(t *testing.T) {
	req := SparseRequirements{
		Aspect:          format.AspectDepth | format.AspectStencil,
		Granularity:     format.Extent3D{Width: 128, Height: 128, Depth: 1},
		MipTailFirstLod: 1,
		MipTailOffset:   16 * page,
		MipTailSize:     2 * page,
	}
	extent := format.Extent3D{Width: 256, Height: 256, Depth: 1}
	img := NewImage(sparseInfo(format.FormatD24UnormS8Uint, extent, 3, 1, req))
	blk := newBlock(2)

	img.BindOpaque(16*page, 2*page, blk, 0)
	for _, aspect := range []format.Aspect{format.AspectDepth, format.AspectStencil} {
		bound, total := img.TailPagesBound(aspect, 0)
		assert.Equal(t, uint32(2), total)
		assert.Equal(t, total, bound, "aspect %s", aspect)
		assert.True(t, img.IsTexelBacked(aspect, 0, 2, 0, 0, 0))
		assert.Equal(t, map[MemoryBlock]uint32{blk: 2}, img.TailUsage(aspect, 0))
	}
	assert.False(t, img.IsSubresourceBacked(format.AspectStencil, 0, 0))

	img.BindOpaque(17*page, page, nil, 0)
	assert.False(t, img.IsTexelBacked(format.AspectDepth, 0, 1, 0, 0, 0))
	assert.False(t, img.IsTexelBacked(format.AspectStencil, 0, 1, 0, 0, 0))

	assert.Panics(t, func() { img.BindOpaque(18*page, page, nil, 0) }, "past both tails")
}

func TestBindsSubAllocateBlocks(t *testing.T) {
	img := newColorImage(256, 128)
	shared := newBlock(4)

	img.BindSubresource(format.AspectColor, 0, 0, Offset3D{}, box(128, 256), shared, 0)
	img.BindSubresource(format.AspectColor, 0, 0, Offset3D{X: 128}, box(128, 256), shared, 2*page)
	assert.True(t, img.IsSubresourceBacked(format.AspectColor, 0, 0))

	assert.Panics(t, func() {
		img.BindSubresource(format.AspectColor, 0, 0, Offset3D{X: 128}, box(128, 256), shared, 3*page)
	}, "range past the end of the block")
}

func TestMultiPlanarSparseImage(t *testing.T) {
	var reqs []SparseRequirements
	for p := uint32(0); p < 3; p++ {
		reqs = append(reqs, SparseRequirements{
			Aspect:          format.AspectPlane(p),
			Granularity:     format.Extent3D{Width: 64, Height: 64, Depth: 1},
			MipTailFirstLod: 1,
		})
	}
	extent := format.Extent3D{Width: 256, Height: 256, Depth: 1}
	img := NewImage(sparseInfo(format.FormatG8B8R83Plane420Unorm, extent, 1, 1, reqs...))

	img.BindSubresource(format.AspectPlane1, 0, 0, Offset3D{}, box(128, 128), newBlock(4), 0)
	assert.True(t, img.IsSubresourceBacked(format.AspectPlane1, 0, 0))
	assert.False(t, img.IsSubresourceBacked(format.AspectPlane0, 0, 0))
	assert.False(t, img.IsSubresourceBacked(format.AspectPlane2, 0, 0))

	assert.Panics(t, func() {
		img.BindSubresource(format.AspectPlane2, 0, 0, Offset3D{}, box(256, 256), newBlock(16), 0)
	}, "chroma plane is half size")
	assert.Panics(t, func() {
		img.IsTexelBacked(format.AspectColor, 0, 0, 0, 0, 0)
	}, "multi-planar images have no color aspect")
}

func TestMissingSparseRequirements(t *testing.T) {
	extent := format.Extent3D{Width: 64, Height: 64, Depth: 1}
	assert.Panics(t, func() {
		NewImage(sparseInfo(format.FormatR8G8B8A8Unorm, extent, 1, 1))
	})
	assert.Panics(t, func() {
		NewImage(sparseInfo(format.FormatR8G8B8A8Unorm, extent, 1, 1, colorRequirements(0, 1)))
	})
}

func TestConcurrentTileBinds(t *testing.T) {
	img := newColorImage(256, 64)

	var wg sync.WaitGroup
	for ty := uint32(0); ty < 4; ty++ {
		for tx := uint32(0); tx < 4; tx++ {
			wg.Add(1)
			go func(tx, ty uint32) {
				defer wg.Done()
				img.BindSubresource(format.AspectColor, 0, 0, Offset3D{X: tx * 64, Y: ty * 64}, box(64, 64), newBlock(1), 0)
			}(tx, ty)
		}
	}
	wg.Wait()

	assert.True(t, img.IsSubresourceBacked(format.AspectColor, 0, 0))
}
