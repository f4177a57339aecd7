package format

import (
	"fmt"
	"math"
	"strings"
)

// ComponentLayout is the order in which components appear in a format's
// name. An X following a component marks padding bits that belong to it.
type ComponentLayout uint8

const (
	LayoutUnknown ComponentLayout = iota
	LayoutR
	LayoutRG
	LayoutRGB
	LayoutRGBA
	LayoutBGR
	LayoutBGRA
	LayoutABGR
	LayoutARGB
	LayoutEBGR
	LayoutD
	LayoutDS
	LayoutXD
	LayoutS
	LayoutG
	LayoutB
	LayoutBR
	LayoutGX
	LayoutBX
	LayoutRX
	LayoutBXRX
	LayoutGBGR
	LayoutBGRG
	LayoutRXGX
	LayoutRXGXBXAX
	LayoutGXBXGXRX
	LayoutBXGXRXGX

	layoutCount
)

var layoutNames = [layoutCount]string{
	LayoutUnknown:  "UNKNOWN",
	LayoutR:        "R",
	LayoutRG:       "RG",
	LayoutRGB:      "RGB",
	LayoutRGBA:     "RGBA",
	LayoutBGR:      "BGR",
	LayoutBGRA:     "BGRA",
	LayoutABGR:     "ABGR",
	LayoutARGB:     "ARGB",
	LayoutEBGR:     "EBGR",
	LayoutD:        "D",
	LayoutDS:       "DS",
	LayoutXD:       "XD",
	LayoutS:        "S",
	LayoutG:        "G",
	LayoutB:        "B",
	LayoutBR:       "BR",
	LayoutGX:       "GX",
	LayoutBX:       "BX",
	LayoutRX:       "RX",
	LayoutBXRX:     "BXRX",
	LayoutGBGR:     "GBGR",
	LayoutBGRG:     "BGRG",
	LayoutRXGX:     "RXGX",
	LayoutRXGXBXAX: "RXGXBXAX",
	LayoutGXBXGXRX: "GXBXGXRX",
	LayoutBXGXRXGX: "BXGXRXGX",
}

func (l ComponentLayout) String() string {
	if l >= layoutCount {
		return fmt.Sprintf("ComponentLayout(%d)", l)
	}
	return layoutNames[l]
}

// components returns the component letters of the layout in order. Padding
// that trails a component is folded into it; a leading X is its own
// component.
func (l ComponentLayout) components() []byte {
	name := l.String()
	if l == LayoutUnknown || l >= layoutCount {
		return nil
	}
	out := make([]byte, 0, 4)
	for i := 0; i < len(name); i++ {
		if name[i] == 'X' && i > 0 {
			continue
		}
		out = append(out, name[i])
	}
	return out
}

// chromaSubsampled reports whether the layout stores two luma samples per
// texel pair.
func (l ComponentLayout) chromaSubsampled() bool {
	switch l {
	case LayoutGBGR, LayoutBGRG, LayoutGXBXGXRX, LayoutBXGXRXGX:
		return true
	}
	return false
}

// Type is the numeric interpretation of a format's components.
type Type uint8

const (
	TypeUnknown Type = iota
	TypeUnorm
	TypeSnorm
	TypeUscaled
	TypeSscaled
	TypeUint
	TypeSint
	TypeSrgb
	TypeUfloat
	TypeSfloat
	// Depth and stencil with different interpretations.
	TypeUnormUint
	TypeSfloatUint

	typeCount
)

var typeNames = [typeCount]string{
	TypeUnknown:    "UNKNOWN",
	TypeUnorm:      "UNORM",
	TypeSnorm:      "SNORM",
	TypeUscaled:    "USCALED",
	TypeSscaled:    "SSCALED",
	TypeUint:       "UINT",
	TypeSint:       "SINT",
	TypeSrgb:       "SRGB",
	TypeUfloat:     "UFLOAT",
	TypeSfloat:     "SFLOAT",
	TypeUnormUint:  "UNORM_UINT",
	TypeSfloatUint: "SFLOAT_UINT",
}

func (t Type) String() string {
	if t >= typeCount {
		return fmt.Sprintf("Type(%d)", t)
	}
	return typeNames[t]
}

// Aspect is a channel-group view into an image. The values match the
// native API's image aspect bits so masks can be combined and converted
// directly.
type Aspect uint32

const (
	AspectColor   Aspect = 0x00000001
	AspectDepth   Aspect = 0x00000002
	AspectStencil Aspect = 0x00000004
	AspectPlane0  Aspect = 0x00000010
	AspectPlane1  Aspect = 0x00000020
	AspectPlane2  Aspect = 0x00000040
)

// AspectPlane returns the aspect of the given plane index.
func AspectPlane(index uint32) Aspect {
	switch index {
	case 0:
		return AspectPlane0
	case 1:
		return AspectPlane1
	case 2:
		return AspectPlane2
	}
	panic(fmt.Sprintf("plane index %d out of range", index))
}

// IsPlane reports whether a is exactly one of the plane aspects.
func (a Aspect) IsPlane() bool {
	return a == AspectPlane0 || a == AspectPlane1 || a == AspectPlane2
}

func (a Aspect) String() string {
	if a == 0 {
		return "NONE"
	}
	var parts []string
	for _, bit := range []struct {
		aspect Aspect
		name   string
	}{
		{AspectColor, "COLOR"},
		{AspectDepth, "DEPTH"},
		{AspectStencil, "STENCIL"},
		{AspectPlane0, "PLANE_0"},
		{AspectPlane1, "PLANE_1"},
		{AspectPlane2, "PLANE_2"},
	} {
		if a&bit.aspect != 0 {
			parts = append(parts, bit.name)
			a &^= bit.aspect
		}
	}
	if a != 0 {
		parts = append(parts, fmt.Sprintf("0x%x", uint32(a)))
	}
	return strings.Join(parts, "|")
}

// Extent3D is a size in texels.
type Extent3D struct {
	Width  uint32
	Height uint32
	Depth  uint32
}

// BitAbsent marks a component that does not exist in a format.
const BitAbsent uint32 = math.MaxUint32

// BitRange is an inclusive range of bit indices within a texel.
type BitRange struct {
	Start uint32
	End   uint32
}

var absentRange = BitRange{Start: BitAbsent, End: BitAbsent}

// Present reports whether the range describes an actual component.
func (r BitRange) Present() bool {
	return r.Start != BitAbsent && r.End != BitAbsent
}

// Width returns the number of bits covered, 0 when absent.
func (r BitRange) Width() uint32 {
	if !r.Present() {
		return 0
	}
	return r.End - r.Start + 1
}

func (r BitRange) overlaps(o BitRange) bool {
	return r.Start <= o.End && o.Start <= r.End
}

// BitLayout gives the position of every component of a non-YUV format.
type BitLayout struct {
	Red     BitRange
	Green   BitRange
	Blue    BitRange
	Alpha   BitRange
	Shared  BitRange
	Depth   BitRange
	Stencil BitRange
}

// Slots returns the seven ranges in R, G, B, A, shared, depth, stencil order.
func (b BitLayout) Slots() [7]BitRange {
	return [7]BitRange{b.Red, b.Green, b.Blue, b.Alpha, b.Shared, b.Depth, b.Stencil}
}

// YUVBitLayout gives the position of every component of a YUV format,
// per plane. G1 is the second luma sample of 4:2:2 packed layouts.
type YUVBitLayout struct {
	Plane0 struct {
		R0, G0, B0, A0, G1 BitRange
	}
	Plane1 struct {
		R0, G0, B0 BitRange
	}
	Plane2 struct {
		R0, G0, B0 BitRange
	}
}

// Slots returns the eleven ranges in plane order.
func (y YUVBitLayout) Slots() [11]BitRange {
	return [11]BitRange{
		y.Plane0.R0, y.Plane0.G0, y.Plane0.B0, y.Plane0.A0, y.Plane0.G1,
		y.Plane1.R0, y.Plane1.G0, y.Plane1.B0,
		y.Plane2.R0, y.Plane2.G0, y.Plane2.B0,
	}
}

// BlockGeometry is the encoding unit of a compressed format.
type BlockGeometry struct {
	Width  uint32
	Height uint32
	Bytes  uint32
}

type descriptor struct {
	format Format
	name   string
	layout ComponentLayout
	bits   [4]uint8
	typ    Type
	packed bool
}

type planeDescriptor struct {
	format Format
	layout ComponentLayout
	used   [4]uint8
	unused [4]uint8
}

type yuvDescriptor struct {
	format      Format
	name        string
	planes      []planeDescriptor
	typ         Type
	multiPlanar bool
	packed      bool
}

type blockDescriptor struct {
	format   Format
	geometry BlockGeometry
}

type compatibilityClass struct {
	name    string
	bits    uint32
	formats []Format
}
