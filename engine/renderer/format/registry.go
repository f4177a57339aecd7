package format

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spaghettifunk/anvil/engine/core"
)

type shape struct {
	layout ComponentLayout
	typ    Type
	bits   [4]uint8
}

// registry is the immutable lookup structure built from the tables. It is
// created once during package initialisation and only read afterwards.
type registry struct {
	formats map[Format]*descriptor
	yuv     map[Format]*yuvDescriptor
	bits    map[Format]BitLayout
	yuvBits map[Format]YUVBitLayout
	blocks  map[Format]BlockGeometry
	classes map[Format]*compatibilityClass
	byShape map[shape]Format
	byName  map[string]Format // upper-cased names
	all     []Format
}

var reg = mustBuildRegistry()

func mustBuildRegistry() *registry {
	r, err := buildRegistry(formatTable, yuvTable, blockTable, compatibilityClasses)
	if err != nil {
		panic(fmt.Sprintf("format registry: %s", err))
	}
	return r
}

func buildRegistry(formats []descriptor, yuvs []yuvDescriptor, blocks []blockDescriptor, classes []compatibilityClass) (*registry, error) {
	r := &registry{
		formats: make(map[Format]*descriptor, len(formats)),
		yuv:     make(map[Format]*yuvDescriptor, len(yuvs)),
		bits:    make(map[Format]BitLayout, len(formats)),
		yuvBits: make(map[Format]YUVBitLayout, len(yuvs)),
		blocks:  make(map[Format]BlockGeometry, len(blocks)),
		classes: make(map[Format]*compatibilityClass, len(formats)+len(yuvs)),
		byShape: make(map[shape]Format, len(formats)),
		byName:  make(map[string]Format, len(formats)+len(yuvs)),
	}

	for i := range formats {
		d := &formats[i]
		if err := r.addName(d.format, d.name); err != nil {
			return nil, err
		}
		if err := validateDescriptor(d); err != nil {
			return nil, err
		}
		r.formats[d.format] = d

		layout, err := deriveBitLayout(d)
		if err != nil {
			return nil, err
		}
		r.bits[d.format] = layout

		if d.bits == [4]uint8{} {
			continue
		}
		key := shape{layout: d.layout, typ: d.typ, bits: d.bits}
		if other, ok := r.byShape[key]; ok {
			return nil, fmt.Errorf("%w: %s and %s share the same shape", core.ErrDuplicateKey, d.name, r.formats[other].name)
		}
		r.byShape[key] = d.format
	}

	for i := range yuvs {
		d := &yuvs[i]
		if err := r.addName(d.format, d.name); err != nil {
			return nil, err
		}
		if err := r.validateYUVDescriptor(d); err != nil {
			return nil, err
		}
		r.yuv[d.format] = d

		layout, err := deriveYUVBitLayout(d)
		if err != nil {
			return nil, err
		}
		r.yuvBits[d.format] = layout
	}

	for _, b := range blocks {
		if !r.known(b.format) {
			return nil, fmt.Errorf("%w: block geometry for unregistered format %d", core.ErrMalformedEntry, b.format)
		}
		if _, ok := r.blocks[b.format]; ok {
			return nil, fmt.Errorf("%w: block geometry for %s listed twice", core.ErrDuplicateKey, r.name(b.format))
		}
		g := b.geometry
		if g.Width == 0 || g.Height == 0 || g.Bytes == 0 {
			return nil, fmt.Errorf("%w: empty block geometry for %s", core.ErrMalformedEntry, r.name(b.format))
		}
		r.blocks[b.format] = g
	}

	for i := range classes {
		c := &classes[i]
		for _, f := range c.formats {
			if !r.known(f) {
				return nil, fmt.Errorf("%w: class %s lists unregistered format %d", core.ErrMalformedEntry, c.name, f)
			}
			if prev, ok := r.classes[f]; ok {
				return nil, fmt.Errorf("%w: %s is in classes %s and %s", core.ErrDuplicateKey, r.name(f), prev.name, c.name)
			}
			r.classes[f] = c
		}
	}

	for _, f := range r.byName {
		r.all = append(r.all, f)
	}
	sort.Slice(r.all, func(i, j int) bool { return r.all[i] < r.all[j] })
	for _, f := range r.all {
		if _, ok := r.classes[f]; !ok {
			return nil, fmt.Errorf("%w: %s", core.ErrUnclassified, r.name(f))
		}
		if r.isCompressed(f) {
			if _, ok := r.blocks[f]; !ok {
				return nil, fmt.Errorf("%w: compressed format %s has no block geometry", core.ErrMalformedEntry, r.name(f))
			}
		}
	}
	return r, nil
}

func (r *registry) addName(f Format, name string) error {
	if f == FormatUndefined {
		return fmt.Errorf("%w: %q uses the undefined format id", core.ErrMalformedEntry, name)
	}
	if name == "" {
		return fmt.Errorf("%w: format %d has no name", core.ErrMalformedEntry, f)
	}
	if r.known(f) {
		return fmt.Errorf("%w: format %s (%d) listed twice", core.ErrDuplicateKey, name, f)
	}
	key := strings.ToUpper(name)
	if _, ok := r.byName[key]; ok {
		return fmt.Errorf("%w: name %s listed twice", core.ErrDuplicateKey, name)
	}
	r.byName[key] = f
	return nil
}

func (r *registry) known(f Format) bool {
	if _, ok := r.formats[f]; ok {
		return true
	}
	_, ok := r.yuv[f]
	return ok
}

func (r *registry) name(f Format) string {
	if d, ok := r.formats[f]; ok {
		return d.name
	}
	if d, ok := r.yuv[f]; ok {
		return d.name
	}
	return fmt.Sprintf("Format(%d)", int32(f))
}

func (r *registry) isCompressed(f Format) bool {
	if d, ok := r.formats[f]; ok {
		return d.bits == [4]uint8{}
	}
	if d, ok := r.yuv[f]; ok {
		return !d.multiPlanar && d.planes[0].layout.chromaSubsampled()
	}
	return false
}

func validateDescriptor(d *descriptor) error {
	comps := d.layout.components()
	if len(comps) == 0 {
		return fmt.Errorf("%w: %s has no component layout", core.ErrMalformedEntry, d.name)
	}
	if d.bits == [4]uint8{} {
		// Block-compressed.
		return nil
	}
	for i, b := range d.bits {
		if (i < len(comps)) != (b != 0) {
			return fmt.Errorf("%w: %s bit widths %v do not match layout %s", core.ErrMalformedEntry, d.name, d.bits, d.layout)
		}
	}
	return nil
}

func (r *registry) validateYUVDescriptor(d *yuvDescriptor) error {
	n := len(d.planes)
	if n < 1 || n > 3 {
		return fmt.Errorf("%w: %s has %d planes", core.ErrMalformedEntry, d.name, n)
	}
	if d.multiPlanar != (n > 1) {
		return fmt.Errorf("%w: %s multi-planar flag disagrees with its %d planes", core.ErrMalformedEntry, d.name, n)
	}
	for i, p := range d.planes {
		if _, ok := r.formats[p.format]; !ok {
			return fmt.Errorf("%w: plane %d of %s is not sampled as a non-YUV format", core.ErrMalformedEntry, i, d.name)
		}
		comps := p.layout.components()
		if len(comps) == 0 {
			return fmt.Errorf("%w: plane %d of %s has no component layout", core.ErrMalformedEntry, i, d.name)
		}
		for j, b := range p.used {
			if (j < len(comps)) != (b != 0) {
				return fmt.Errorf("%w: plane %d of %s bit widths %v do not match layout %s", core.ErrMalformedEntry, i, d.name, p.used, p.layout)
			}
			if j >= len(comps) && p.unused[j] != 0 {
				return fmt.Errorf("%w: plane %d of %s pads a missing component", core.ErrMalformedEntry, i, d.name)
			}
		}
	}
	return nil
}
