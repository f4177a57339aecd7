package format

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveRGBA8(t *testing.T) {
	f := Resolve(LayoutRGBA, TypeUnorm, 8, 8, 8, 8)
	require.Equal(t, FormatR8G8B8A8Unorm, f)

	assert.Equal(t, uint32(4), ComponentCount(f, AspectColor))
	assert.False(t, IsPacked(f))
	assert.False(t, HasDepth(f))
	assert.False(t, HasStencil(f))
	assert.Equal(t, []Aspect{AspectColor}, Aspects(f))
}

func TestResolveNoMatch(t *testing.T) {
	assert.Equal(t, FormatUndefined, Resolve(LayoutRGBA, TypeUnorm, 8, 8, 8, 7))
	assert.Equal(t, FormatUndefined, Resolve(LayoutRGBA, TypeSfloat, 8, 8, 8, 8))
	assert.Equal(t, FormatUndefined, Resolve(LayoutR, TypeUnorm, 1024, 0, 0, 0))
	// Block formats carry no component bits and never resolve.
	assert.Equal(t, FormatUndefined, Resolve(LayoutRGBA, TypeUnorm, 0, 0, 0, 0))
}

func TestResolveRoundTrip(t *testing.T) {
	for _, f := range All() {
		if IsYUV(f) || IsCompressed(f) {
			continue
		}
		bits := ComponentBits(f, AspectColor)
		got := Resolve(LayoutOf(f), TypeOf(f), bits[0], bits[1], bits[2], bits[3])
		assert.Equal(t, f, got, "round trip of %s", f)
	}
}

func TestBC3Block(t *testing.T) {
	f := FormatBC3SrgbBlock
	assert.True(t, IsCompressed(f))
	assert.Equal(t, BlockGeometry{Width: 4, Height: 4, Bytes: 16}, BlockGeometryOf(f))
	assert.Equal(t, []Aspect{AspectColor}, Aspects(f))
	assert.ElementsMatch(t, []Format{FormatBC3UnormBlock, FormatBC3SrgbBlock}, CompatibilityClass(f))
}

func TestBlockSizes(t *testing.T) {
	cases := map[Format]BlockGeometry{
		FormatBC1RGBUnormBlock:       {4, 4, 8},
		FormatBC1RGBASrgbBlock:       {4, 4, 8},
		FormatBC2UnormBlock:          {4, 4, 16},
		FormatBC4SnormBlock:          {4, 4, 8},
		FormatBC5UnormBlock:          {4, 4, 16},
		FormatBC6HUfloatBlock:        {4, 4, 16},
		FormatBC7SrgbBlock:           {4, 4, 16},
		FormatETC2R8G8B8UnormBlock:   {4, 4, 8},
		FormatETC2R8G8B8A1SrgbBlock:  {4, 4, 8},
		FormatETC2R8G8B8A8UnormBlock: {4, 4, 16},
		FormatEACR11UnormBlock:       {4, 4, 8},
		FormatEACR11G11SnormBlock:    {4, 4, 16},
		FormatASTC4x4UnormBlock:      {4, 4, 16},
		FormatASTC5x4SrgbBlock:       {5, 4, 16},
		FormatASTC10x6UnormBlock:     {10, 6, 16},
		FormatASTC12x12SrgbBlock:     {12, 12, 16},
		FormatG8B8G8R8422Unorm:       {2, 1, 4},
		FormatB16G16R16G16422Unorm:   {2, 1, 8},
	}
	for f, want := range cases {
		assert.Equal(t, want, BlockGeometryOf(f), f.String())
	}
	assert.Equal(t, BlockGeometry{2, 1, 8}, BlockGeometryOf(FormatG10X6B10X6G10X6R10X6422Unorm4Pack16))
}

func TestD24S8BitLayout(t *testing.T) {
	f := FormatD24UnormS8Uint
	assert.True(t, HasDepth(f))
	assert.True(t, HasStencil(f))

	l := BitLayoutOf(f)
	assert.Equal(t, BitRange{0, 23}, l.Depth)
	assert.Equal(t, BitRange{24, 31}, l.Stencil)
	for _, r := range []BitRange{l.Red, l.Green, l.Blue, l.Alpha, l.Shared} {
		assert.Equal(t, BitRange{BitAbsent, BitAbsent}, r)
	}
	assert.Equal(t, []Aspect{AspectDepth, AspectStencil}, Aspects(f))
}

func TestDepthOnlyBitLayout(t *testing.T) {
	for _, f := range []Format{FormatD16Unorm, FormatD32Sfloat, FormatX8D24UnormPack32} {
		l := BitLayoutOf(f)
		assert.True(t, l.Depth.Present(), f.String())
		assert.False(t, l.Stencil.Present(), f.String())
		for _, r := range []BitRange{l.Red, l.Green, l.Blue, l.Alpha, l.Shared} {
			assert.False(t, r.Present(), f.String())
		}
		assert.Equal(t, []Aspect{AspectDepth}, Aspects(f))
	}
	assert.Equal(t, BitRange{0, 23}, BitLayoutOf(FormatX8D24UnormPack32).Depth)
	assert.Equal(t, []Aspect{AspectStencil}, Aspects(FormatS8Uint))
}

func TestPackedA2B10G10R10(t *testing.T) {
	f := Resolve(LayoutABGR, TypeUnorm, 2, 10, 10, 10)
	require.Equal(t, FormatA2B10G10R10UnormPack32, f)
	assert.True(t, IsPacked(f))

	l := BitLayoutOf(f)
	assert.Equal(t, BitRange{0, 9}, l.Red)
	assert.Equal(t, BitRange{10, 19}, l.Green)
	assert.Equal(t, BitRange{20, 29}, l.Blue)
	assert.Equal(t, BitRange{30, 31}, l.Alpha)
}

func TestSharedExponentLayout(t *testing.T) {
	l := BitLayoutOf(FormatE5B9G9R9UfloatPack32)
	assert.Equal(t, BitRange{0, 8}, l.Red)
	assert.Equal(t, BitRange{9, 17}, l.Green)
	assert.Equal(t, BitRange{18, 26}, l.Blue)
	assert.Equal(t, BitRange{27, 31}, l.Shared)
	assert.False(t, l.Alpha.Present())
}

func TestUnpackedBGRALayout(t *testing.T) {
	l := BitLayoutOf(FormatB8G8R8A8Srgb)
	assert.Equal(t, BitRange{0, 7}, l.Blue)
	assert.Equal(t, BitRange{8, 15}, l.Green)
	assert.Equal(t, BitRange{16, 23}, l.Red)
	assert.Equal(t, BitRange{24, 31}, l.Alpha)
}

func TestThreePlane420(t *testing.T) {
	f := FormatG8B8R83Plane420Unorm
	assert.True(t, IsYUV(f))
	assert.True(t, IsMultiPlanar(f))
	assert.Equal(t, uint32(3), PlaneCount(f))

	extent := Extent3D{8, 8, 1}
	assert.Equal(t, Extent3D{8, 8, 1}, PlaneExtent(f, AspectPlane0, extent))
	assert.Equal(t, Extent3D{4, 4, 1}, PlaneExtent(f, AspectPlane1, extent))
	assert.Equal(t, Extent3D{4, 4, 1}, PlaneExtent(f, AspectPlane2, extent))
	assert.Equal(t, []Aspect{AspectPlane0, AspectPlane1, AspectPlane2}, Aspects(f))

	assert.Equal(t, LayoutG, PlaneLayout(f, AspectPlane0))
	assert.Equal(t, LayoutB, PlaneLayout(f, AspectPlane1))
	assert.Equal(t, LayoutR, PlaneLayout(f, AspectPlane2))
	assert.False(t, HasDepth(f))
	assert.False(t, HasStencil(f))
	assert.False(t, IsCompressed(f))
}

func TestPlaneExtentSubsampling(t *testing.T) {
	assert.Equal(t, Extent3D{1, 1, 1}, PlaneExtent(FormatG8B8R82Plane420Unorm, AspectPlane1, Extent3D{2, 2, 1}))
	assert.Equal(t, Extent3D{2, 4, 1}, PlaneExtent(FormatG16B16R162Plane422Unorm, AspectPlane1, Extent3D{4, 4, 1}))
	assert.Equal(t, Extent3D{4, 4, 1}, PlaneExtent(FormatG12X4B12X4R12X43Plane444Unorm3Pack16, AspectPlane2, Extent3D{4, 4, 1}))
	assert.Equal(t, Extent3D{3, 3, 1}, PlaneExtent(FormatG8B8R83Plane420Unorm, AspectPlane1, Extent3D{5, 5, 1}))
	// Single-plane formats are addressed through the color aspect.
	assert.Equal(t, Extent3D{6, 2, 1}, PlaneExtent(FormatG8B8G8R8422Unorm, AspectColor, Extent3D{6, 2, 1}))
}

func TestPlaneIndex(t *testing.T) {
	assert.Equal(t, uint32(0), PlaneIndex(FormatR10X6UnormPack16, AspectColor))
	assert.Equal(t, uint32(1), PlaneIndex(FormatG8B8R82Plane420Unorm, AspectPlane1))
	assert.Equal(t, uint32(2), PlaneIndex(FormatG16B16R163Plane444Unorm, AspectPlane2))

	assert.Panics(t, func() { PlaneIndex(FormatG8B8R82Plane420Unorm, AspectPlane2) })
	assert.Panics(t, func() { PlaneIndex(FormatG8B8R82Plane420Unorm, AspectColor) })
	assert.Panics(t, func() { PlaneIndex(FormatG8B8G8R8422Unorm, AspectPlane0) })
	assert.Panics(t, func() { PlaneIndex(FormatR8Unorm, AspectColor) })
}

func TestPackedYUVComponents(t *testing.T) {
	f := FormatG10X6B10X6R10X62Plane420Unorm3Pack16
	assert.True(t, IsPacked(f))
	assert.Equal(t, LayoutGX, PlaneLayout(f, AspectPlane0))
	assert.Equal(t, LayoutBXRX, PlaneLayout(f, AspectPlane1))
	assert.Equal(t, uint32(1), ComponentCount(f, AspectPlane0))
	assert.Equal(t, uint32(2), ComponentCount(f, AspectPlane1))
	assert.Equal(t, [4]uint32{10, 10, 0, 0}, ComponentBits(f, AspectPlane1))
	assert.Equal(t, [4]uint32{6, 6, 0, 0}, ComponentUnusedBits(f, AspectPlane1))

	l := YUVBitLayoutOf(f)
	assert.Equal(t, BitRange{0, 9}, l.Plane0.G0)
	assert.Equal(t, BitRange{0, 9}, l.Plane1.B0)
	assert.Equal(t, BitRange{16, 25}, l.Plane1.R0)
	assert.False(t, l.Plane2.R0.Present())
	assert.False(t, l.Plane0.G1.Present())
}

func TestSubsampledYUVLayout(t *testing.T) {
	f := FormatG8B8G8R8422Unorm
	assert.True(t, IsCompressed(f))
	assert.False(t, IsMultiPlanar(f))
	assert.Equal(t, uint32(1), PlaneCount(f))
	assert.Equal(t, []Aspect{AspectColor}, Aspects(f))

	l := YUVBitLayoutOf(f)
	assert.Equal(t, BitRange{0, 7}, l.Plane0.G0)
	assert.Equal(t, BitRange{8, 15}, l.Plane0.B0)
	assert.Equal(t, BitRange{16, 23}, l.Plane0.G1)
	assert.Equal(t, BitRange{24, 31}, l.Plane0.R0)

	l = YUVBitLayoutOf(FormatB12X4G12X4R12X4G12X4422Unorm4Pack16)
	assert.Equal(t, BitRange{0, 11}, l.Plane0.B0)
	assert.Equal(t, BitRange{16, 27}, l.Plane0.G0)
	assert.Equal(t, BitRange{32, 43}, l.Plane0.R0)
	assert.Equal(t, BitRange{48, 59}, l.Plane0.G1)
}

func TestContractViolations(t *testing.T) {
	assert.Panics(t, func() { LayoutOf(FormatG8B8R83Plane420Unorm) })
	assert.Panics(t, func() { PlaneLayout(FormatR8Unorm, AspectColor) })
	assert.Panics(t, func() { ComponentUnusedBits(FormatR8Unorm, AspectColor) })
	assert.Panics(t, func() { BitLayoutOf(FormatG8B8R83Plane420Unorm) })
	assert.Panics(t, func() { YUVBitLayoutOf(FormatR8Unorm) })
	assert.Panics(t, func() { PlaneExtent(FormatR8Unorm, AspectColor, Extent3D{1, 1, 1}) })
	assert.Panics(t, func() { BlockGeometryOf(FormatR8G8B8A8Unorm) })
	assert.Panics(t, func() { CompatibilityClass(FormatUndefined) })
	assert.Panics(t, func() { ComponentCount(Format(12345), AspectColor) })
}

func TestNames(t *testing.T) {
	name, ok := Name(FormatR8G8B8A8Srgb)
	assert.True(t, ok)
	assert.Equal(t, "VK_FORMAT_R8G8B8A8_SRGB", name)

	_, ok = Name(Format(12345))
	assert.False(t, ok)
	_, ok = Name(FormatUndefined)
	assert.False(t, ok)

	assert.Equal(t, FormatG8B8R83Plane420Unorm, Lookup("g8_b8_r8_3plane_420_unorm"))
	assert.Equal(t, FormatD24UnormS8Uint, Lookup("VK_FORMAT_D24_UNORM_S8_UINT"))
	assert.Equal(t, FormatUndefined, Lookup("R7_UNORM"))

	assert.Equal(t, FormatASTC4x4UnormBlock, Lookup("ASTC_4x4_UNORM_BLOCK"))
	assert.Equal(t, FormatASTC12x12SrgbBlock, Lookup("VK_FORMAT_ASTC_12X12_SRGB_BLOCK"))
	assert.Equal(t, FormatASTC8x8UnormBlock, Lookup(FormatASTC8x8UnormBlock.String()))
	assert.Equal(t, "Format(12345)", Format(12345).String())
}

func TestTypes(t *testing.T) {
	assert.Equal(t, TypeUnormUint, TypeOf(FormatD16UnormS8Uint))
	assert.Equal(t, TypeSfloatUint, TypeOf(FormatD32SfloatS8Uint))
	assert.Equal(t, TypeUfloat, TypeOf(FormatBC6HUfloatBlock))
	assert.Equal(t, TypeUnorm, TypeOf(FormatG16B16R162Plane420Unorm))
	assert.Equal(t, TypeUnknown, TypeOf(FormatUndefined))
	assert.Equal(t, "SFLOAT_UINT", TypeSfloatUint.String())
}

func TestExpandAspects(t *testing.T) {
	assert.Equal(t, AspectDepth|AspectStencil, ExpandAspects(FormatD24UnormS8Uint, AspectDepth))
	assert.Equal(t, AspectDepth|AspectStencil, ExpandAspects(FormatD32SfloatS8Uint, AspectStencil))
	assert.Equal(t, AspectDepth, ExpandAspects(FormatD32Sfloat, AspectDepth))
	assert.Equal(t, AspectColor, ExpandAspects(FormatR8Unorm, AspectColor))
}

func TestAspectMask(t *testing.T) {
	assert.Equal(t, AspectColor, AspectMask(FormatR8G8B8A8Unorm))
	assert.Equal(t, AspectDepth|AspectStencil, AspectMask(FormatD24UnormS8Uint))
	assert.Equal(t, AspectPlane0|AspectPlane1, AspectMask(FormatG8B8R82Plane420Unorm))
	assert.Equal(t, Aspect(0), AspectMask(FormatUndefined))
}

func TestCompatibilityClasses(t *testing.T) {
	c := CompatibilityClass(FormatR32Sfloat)
	assert.Contains(t, c, FormatR8G8B8A8Unorm)
	assert.Contains(t, c, FormatB10G11R11UfloatPack32)
	assert.Contains(t, c, FormatR10X6G10X6Unorm2Pack16)
	assert.NotContains(t, c, FormatR16G16B16A16Sfloat)
	assert.Equal(t, "32-bit", CompatibilityClassName(FormatR32Sfloat))

	assert.Equal(t, []Format{FormatG8B8R83Plane420Unorm}, CompatibilityClass(FormatG8B8R83Plane420Unorm))
	assert.Equal(t, []Format{FormatD24UnormS8Uint}, CompatibilityClass(FormatD24UnormS8Uint))
	assert.Len(t, CompatibilityClass(FormatASTC8x6SrgbBlock), 2)
}

func TestAspectString(t *testing.T) {
	assert.Equal(t, "COLOR", AspectColor.String())
	assert.Equal(t, "DEPTH|STENCIL", (AspectDepth | AspectStencil).String())
	assert.Equal(t, "PLANE_1", AspectPlane(1).String())
	assert.True(t, strings.HasPrefix(Aspect(0x100).String(), "0x"))
}
