package format

import (
	"fmt"

	"github.com/spaghettifunk/anvil/engine/core"
)

func absentBitLayout() BitLayout {
	return BitLayout{
		Red:     absentRange,
		Green:   absentRange,
		Blue:    absentRange,
		Alpha:   absentRange,
		Shared:  absentRange,
		Depth:   absentRange,
		Stencil: absentRange,
	}
}

// deriveBitLayout places every component of d in the little-endian bit
// stream of one texel. Unpacked formats store components in name order
// starting at bit 0; packed formats name components from the most
// significant bit down, so the last named component sits at bit 0.
func deriveBitLayout(d *descriptor) (BitLayout, error) {
	layout := absentBitLayout()
	if d.bits == [4]uint8{} {
		return layout, nil
	}

	comps := d.layout.components()
	order := make([]int, len(comps))
	for i := range order {
		if d.packed {
			order[i] = len(comps) - 1 - i
		} else {
			order[i] = i
		}
	}

	pos := uint32(0)
	for _, i := range order {
		width := uint32(d.bits[i])
		r := BitRange{Start: pos, End: pos + width - 1}
		pos += width

		switch comps[i] {
		case 'R':
			layout.Red = r
		case 'G':
			layout.Green = r
		case 'B':
			layout.Blue = r
		case 'A':
			layout.Alpha = r
		case 'E':
			layout.Shared = r
		case 'D':
			layout.Depth = r
		case 'S':
			layout.Stencil = r
		case 'X':
		default:
			return layout, fmt.Errorf("%w: %s has unexpected component %q", core.ErrMalformedEntry, d.name, comps[i])
		}
	}
	return layout, nil
}

func absentYUVBitLayout() YUVBitLayout {
	var y YUVBitLayout
	y.Plane0.R0, y.Plane0.G0, y.Plane0.B0, y.Plane0.A0, y.Plane0.G1 = absentRange, absentRange, absentRange, absentRange, absentRange
	y.Plane1.R0, y.Plane1.G0, y.Plane1.B0 = absentRange, absentRange, absentRange
	y.Plane2.R0, y.Plane2.G0, y.Plane2.B0 = absentRange, absentRange, absentRange
	return y
}

// deriveYUVBitLayout places the components of every plane of d. Each
// component owns used+unused bits; the value occupies the low used bits
// and the padding sits above it.
func deriveYUVBitLayout(d *yuvDescriptor) (YUVBitLayout, error) {
	layout := absentYUVBitLayout()

	for p, plane := range d.planes {
		comps := plane.layout.components()
		pos := uint32(0)
		seenLuma := false

		for i, c := range comps {
			used := uint32(plane.used[i])
			r := BitRange{Start: pos, End: pos + used - 1}
			pos += used + uint32(plane.unused[i])

			var slot *BitRange
			switch {
			case p == 0 && c == 'G' && seenLuma:
				slot = &layout.Plane0.G1
			case p == 0 && c == 'G':
				slot = &layout.Plane0.G0
				seenLuma = true
			case p == 0 && c == 'R':
				slot = &layout.Plane0.R0
			case p == 0 && c == 'B':
				slot = &layout.Plane0.B0
			case p == 0 && c == 'A':
				slot = &layout.Plane0.A0
			case p == 1 && c == 'R':
				slot = &layout.Plane1.R0
			case p == 1 && c == 'G':
				slot = &layout.Plane1.G0
			case p == 1 && c == 'B':
				slot = &layout.Plane1.B0
			case p == 2 && c == 'R':
				slot = &layout.Plane2.R0
			case p == 2 && c == 'G':
				slot = &layout.Plane2.G0
			case p == 2 && c == 'B':
				slot = &layout.Plane2.B0
			}
			if slot == nil || slot.Present() {
				return layout, fmt.Errorf("%w: %s plane %d cannot place component %q", core.ErrMalformedEntry, d.name, p, c)
			}
			*slot = r
		}
	}
	return layout, nil
}
