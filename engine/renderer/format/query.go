package format

import (
	"strings"

	"github.com/spaghettifunk/anvil/engine/core"
)

// All returns every registered format in ascending id order.
func All() []Format {
	out := make([]Format, len(reg.all))
	copy(out, reg.all)
	return out
}

// Resolve finds the non-YUV format with the given layout, type and
// component bit widths (in layout order). Block-compressed formats carry no
// component bits and therefore never resolve. Returns FormatUndefined when
// nothing matches.
func Resolve(layout ComponentLayout, typ Type, b0, b1, b2, b3 uint32) Format {
	var bits [4]uint8
	for i, b := range [4]uint32{b0, b1, b2, b3} {
		if b > 0xff {
			return FormatUndefined
		}
		bits[i] = uint8(b)
	}
	if f, ok := reg.byShape[shape{layout: layout, typ: typ, bits: bits}]; ok {
		return f
	}
	return FormatUndefined
}

// Name returns the canonical name of f, or false for an unrecognised id.
func Name(f Format) (string, bool) {
	if !reg.known(f) {
		return "", false
	}
	return reg.name(f), true
}

func (f Format) String() string {
	if f == FormatUndefined {
		return "VK_FORMAT_UNDEFINED"
	}
	return reg.name(f)
}

// Lookup is the inverse of Name. The VK_FORMAT_ prefix is optional and
// case is ignored.
func Lookup(name string) Format {
	name = strings.ToUpper(strings.TrimSpace(name))
	if !strings.HasPrefix(name, "VK_FORMAT_") {
		name = "VK_FORMAT_" + name
	}
	if f, ok := reg.byName[name]; ok {
		return f
	}
	return FormatUndefined
}

func TypeOf(f Format) Type {
	if d, ok := reg.formats[f]; ok {
		return d.typ
	}
	if d, ok := reg.yuv[f]; ok {
		return d.typ
	}
	return TypeUnknown
}

func mustDescriptor(f Format) *descriptor {
	d, ok := reg.formats[f]
	core.Assert(ok, "%s is not a registered non-YUV format", f)
	return d
}

func mustYUVDescriptor(f Format) *yuvDescriptor {
	d, ok := reg.yuv[f]
	core.Assert(ok, "%s is not a registered YUV format", f)
	return d
}

// LayoutOf returns the component layout of a non-YUV format.
func LayoutOf(f Format) ComponentLayout {
	return mustDescriptor(f).layout
}

func plane(f Format, aspect Aspect) *planeDescriptor {
	d := mustYUVDescriptor(f)
	return &d.planes[PlaneIndex(f, aspect)]
}

// PlaneLayout returns the component layout of one plane of a YUV format.
func PlaneLayout(f Format, aspect Aspect) ComponentLayout {
	return plane(f, aspect).layout
}

// ComponentCount returns the number of components of f. The aspect selects
// the plane of YUV formats and is ignored otherwise.
func ComponentCount(f Format, aspect Aspect) uint32 {
	if IsYUV(f) {
		return uint32(len(plane(f, aspect).layout.components()))
	}
	return uint32(len(mustDescriptor(f).layout.components()))
}

// ComponentBits returns the bit width of every component in layout order.
// For YUV formats only the bits carrying the value are counted.
func ComponentBits(f Format, aspect Aspect) [4]uint32 {
	if IsYUV(f) {
		return widen(plane(f, aspect).used)
	}
	return widen(mustDescriptor(f).bits)
}

// ComponentUnusedBits returns the padding bit count of every component of
// one plane of a YUV format.
func ComponentUnusedBits(f Format, aspect Aspect) [4]uint32 {
	core.Assert(IsYUV(f), "%s is not a YUV format", f)
	return widen(plane(f, aspect).unused)
}

func widen(b [4]uint8) [4]uint32 {
	return [4]uint32{uint32(b[0]), uint32(b[1]), uint32(b[2]), uint32(b[3])}
}

// BitLayoutOf returns the bit position of every component of a non-YUV
// format. Absent components use BitAbsent for both ends.
func BitLayoutOf(f Format) BitLayout {
	mustDescriptor(f)
	return reg.bits[f]
}

// YUVBitLayoutOf returns the bit position of every component of every
// plane of a YUV format.
func YUVBitLayoutOf(f Format) YUVBitLayout {
	mustYUVDescriptor(f)
	return reg.yuvBits[f]
}

func hasComponent(f Format, c byte) bool {
	d, ok := reg.formats[f]
	if !ok {
		return false
	}
	for _, comp := range d.layout.components() {
		if comp == c {
			return true
		}
	}
	return false
}

func HasDepth(f Format) bool {
	return hasComponent(f, 'D')
}

func HasStencil(f Format) bool {
	return hasComponent(f, 'S')
}

// IsCompressed is true for block-compressed formats and for single-plane
// chroma-subsampled YUV formats, which encode two texels per block.
func IsCompressed(f Format) bool {
	return reg.isCompressed(f)
}

func IsPacked(f Format) bool {
	if d, ok := reg.formats[f]; ok {
		return d.packed
	}
	if d, ok := reg.yuv[f]; ok {
		return d.packed
	}
	return false
}

func IsYUV(f Format) bool {
	_, ok := reg.yuv[f]
	return ok
}

func IsMultiPlanar(f Format) bool {
	d, ok := reg.yuv[f]
	return ok && d.multiPlanar
}

// PlaneCount returns 1, 2 or 3. Non-YUV formats always have one plane.
func PlaneCount(f Format) uint32 {
	if d, ok := reg.yuv[f]; ok {
		return uint32(len(d.planes))
	}
	return 1
}

// PlaneIndex maps an aspect of a YUV format to a plane index. Multi-planar
// formats take a plane aspect; single-plane YUV formats take the color
// aspect and always answer 0.
func PlaneIndex(f Format, aspect Aspect) uint32 {
	d := mustYUVDescriptor(f)
	if !d.multiPlanar {
		core.Assert(aspect == AspectColor, "%s has a single plane and needs the color aspect, got %s", f, aspect)
		return 0
	}
	var index uint32
	switch aspect {
	case AspectPlane0:
		index = 0
	case AspectPlane1:
		index = 1
	case AspectPlane2:
		index = 2
	default:
		core.Assert(false, "%s is not a plane aspect", aspect)
	}
	core.Assert(index < uint32(len(d.planes)), "%s has no plane %d", f, index)
	return index
}

// PlaneExtent returns the extent of one plane of a YUV image. Chroma planes
// of 4:2:0 formats are halved in both dimensions and those of 4:2:2 formats
// in width only; odd sizes round up.
func PlaneExtent(f Format, aspect Aspect, extent Extent3D) Extent3D {
	d := mustYUVDescriptor(f)
	if PlaneIndex(f, aspect) == 0 {
		return extent
	}
	switch {
	case strings.Contains(d.name, "_420_"):
		extent.Width = halve(extent.Width)
		extent.Height = halve(extent.Height)
	case strings.Contains(d.name, "_422_"):
		extent.Width = halve(extent.Width)
	}
	return extent
}

func halve(n uint32) uint32 {
	if n <= 1 {
		return n
	}
	return (n + 1) / 2
}

// Aspects returns the aspects exposed by f: the plane aspects of
// multi-planar formats, color for single-plane YUV formats, and otherwise
// color, depth and stencil as the component layout dictates.
func Aspects(f Format) []Aspect {
	if d, ok := reg.yuv[f]; ok {
		if !d.multiPlanar {
			return []Aspect{AspectColor}
		}
		out := make([]Aspect, len(d.planes))
		for i := range d.planes {
			out[i] = AspectPlane(uint32(i))
		}
		return out
	}

	d, ok := reg.formats[f]
	if !ok {
		return nil
	}
	var color, depth, stencil bool
	for _, c := range d.layout.components() {
		switch c {
		case 'R', 'G', 'B', 'A', 'E':
			color = true
		case 'D':
			depth = true
		case 'S':
			stencil = true
		}
	}
	var out []Aspect
	if color {
		out = append(out, AspectColor)
	}
	if depth {
		out = append(out, AspectDepth)
	}
	if stencil {
		out = append(out, AspectStencil)
	}
	return out
}

// AspectMask returns the union of Aspects(f).
func AspectMask(f Format) Aspect {
	var mask Aspect
	for _, a := range Aspects(f) {
		mask |= a
	}
	return mask
}

// ExpandAspects widens a mask naming depth or stencil of a combined
// depth-stencil format to both, as barriers on such images must cover both.
func ExpandAspects(f Format, aspects Aspect) Aspect {
	if HasDepth(f) && HasStencil(f) && aspects&(AspectDepth|AspectStencil) != 0 {
		aspects |= AspectDepth | AspectStencil
	}
	return aspects
}

func mustClass(f Format) *compatibilityClass {
	c, ok := reg.classes[f]
	core.Assert(ok, "%s belongs to no compatibility class", f)
	return c
}

// CompatibilityClass returns every format f can be aliased with, f included.
func CompatibilityClass(f Format) []Format {
	c := mustClass(f)
	out := make([]Format, len(c.formats))
	copy(out, c.formats)
	return out
}

// CompatibilityClassName returns a printable name for the class of f, such
// as "32-bit" or "BC3".
func CompatibilityClassName(f Format) string {
	return mustClass(f).name
}

// TexelBits returns the size of one texel, or one block for compressed
// formats, as recorded by the compatibility class. Multi-planar formats
// have no single texel size and report 0.
func TexelBits(f Format) uint32 {
	return mustClass(f).bits
}

// BlockGeometryOf returns the encoding unit of a compressed format.
func BlockGeometryOf(f Format) BlockGeometry {
	g, ok := reg.blocks[f]
	core.Assert(ok && IsCompressed(f), "%s is not a compressed format", f)
	return g
}
