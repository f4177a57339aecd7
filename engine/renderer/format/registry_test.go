package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/anvil/engine/core"
)

func TestPlaneCountInvariant(t *testing.T) {
	for _, f := range All() {
		switch {
		case IsYUV(f) && IsMultiPlanar(f):
			assert.Contains(t, []uint32{2, 3}, PlaneCount(f), f.String())
		default:
			assert.Equal(t, uint32(1), PlaneCount(f), f.String())
		}
		if !IsYUV(f) {
			assert.False(t, IsMultiPlanar(f), f.String())
		}
	}
}

func TestAspectsNeverEmpty(t *testing.T) {
	for _, f := range All() {
		assert.NotEmpty(t, Aspects(f), f.String())
	}
	assert.Empty(t, Aspects(FormatUndefined))
}

func TestComponentBitsMatchTexelSize(t *testing.T) {
	for _, f := range All() {
		if IsYUV(f) || IsCompressed(f) {
			continue
		}
		bits := ComponentBits(f, AspectColor)
		sum := bits[0] + bits[1] + bits[2] + bits[3]
		assert.Equal(t, TexelBits(f), sum, f.String())
	}
}

func TestEveryFormatInOneClass(t *testing.T) {
	seen := make(map[Format]int)
	for _, c := range compatibilityClasses {
		for _, f := range c.formats {
			seen[f]++
		}
	}
	for _, f := range All() {
		assert.Equal(t, 1, seen[f], f.String())
		assert.Contains(t, CompatibilityClass(f), f)
	}
}

func TestCompressedFormatsHaveNoComponentBits(t *testing.T) {
	for _, f := range All() {
		if !IsCompressed(f) {
			continue
		}
		if IsYUV(f) {
			assert.True(t, PlaneLayout(f, AspectColor).chromaSubsampled(), f.String())
			continue
		}
		assert.Equal(t, [4]uint32{}, ComponentBits(f, AspectColor), f.String())
	}
}

func TestBlockGeometryIsPositive(t *testing.T) {
	for _, f := range All() {
		if !IsCompressed(f) {
			continue
		}
		g := BlockGeometryOf(f)
		assert.NotZero(t, g.Width, f.String())
		assert.NotZero(t, g.Height, f.String())
		assert.NotZero(t, g.Bytes, f.String())
		assert.Equal(t, TexelBits(f), g.Bytes*8, f.String())
	}
}

func TestBitLayoutsDisjointAndInRange(t *testing.T) {
	for _, f := range All() {
		if IsYUV(f) {
			continue
		}
		limit := TexelBits(f)
		var present []BitRange
		for _, r := range BitLayoutOf(f).Slots() {
			if !r.Present() {
				assert.Equal(t, BitAbsent, r.Start, f.String())
				assert.Equal(t, BitAbsent, r.End, f.String())
				continue
			}
			assert.LessOrEqual(t, r.Start, r.End, f.String())
			assert.Less(t, r.End, limit, f.String())
			for _, o := range present {
				assert.False(t, r.overlaps(o), "%s: %v overlaps %v", f, r, o)
			}
			present = append(present, r)
		}
		if IsCompressed(f) {
			assert.Empty(t, present, f.String())
		}
	}
}

func TestYUVBitLayoutsMatchComponentBits(t *testing.T) {
	for _, f := range All() {
		if !IsYUV(f) {
			continue
		}
		total := uint32(0)
		for _, a := range Aspects(f) {
			bits := ComponentBits(f, a)
			total += bits[0] + bits[1] + bits[2] + bits[3]
		}
		covered := uint32(0)
		for _, r := range YUVBitLayoutOf(f).Slots() {
			covered += r.Width()
		}
		assert.Equal(t, total, covered, f.String())
	}
}

func TestBuildRegistryRejectsDuplicateYUVKeys(t *testing.T) {
	yuvs := append(append([]yuvDescriptor{}, yuvTable...), yuvTable[12])
	_, err := buildRegistry(formatTable, yuvs, blockTable, compatibilityClasses)
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrDuplicateKey)
}

func TestBuildRegistryRejectsDuplicateFormats(t *testing.T) {
	formats := append(append([]descriptor{}, formatTable...), formatTable[0])
	_, err := buildRegistry(formats, yuvTable, blockTable, compatibilityClasses)
	assert.ErrorIs(t, err, core.ErrDuplicateKey)
}

func TestBuildRegistryRejectsDuplicateShapes(t *testing.T) {
	clone := formatTable[8]
	clone.format = Format(9999)
	clone.name = "VK_FORMAT_R8_UNORM_CLONE"
	formats := append(append([]descriptor{}, formatTable...), clone)
	_, err := buildRegistry(formats, yuvTable, blockTable, compatibilityClasses)
	assert.ErrorIs(t, err, core.ErrDuplicateKey)
}

func TestBuildRegistryRejectsUnclassifiedFormats(t *testing.T) {
	classes := append([]compatibilityClass{}, compatibilityClasses[1:]...)
	_, err := buildRegistry(formatTable, yuvTable, blockTable, classes)
	assert.ErrorIs(t, err, core.ErrUnclassified)
}

func TestBuildRegistryRejectsMalformedPlanes(t *testing.T) {
	bad := yuvTable[2]
	bad.multiPlanar = false
	yuvs := append(append([]yuvDescriptor{}, yuvTable[:2]...), bad)
	yuvs = append(yuvs, yuvTable[3:]...)
	_, err := buildRegistry(formatTable, yuvs, blockTable, compatibilityClasses)
	assert.ErrorIs(t, err, core.ErrMalformedEntry)
}

func TestBuildRegistryAcceptsShippedTables(t *testing.T) {
	r, err := buildRegistry(formatTable, yuvTable, blockTable, compatibilityClasses)
	require.NoError(t, err)
	assert.Len(t, r.all, len(formatTable)+len(yuvTable))
}
