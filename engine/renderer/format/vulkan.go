package format

import (
	vk "github.com/goki/vulkan"
)

// Vk returns the native format enumerant.
func (f Format) Vk() vk.Format {
	return vk.Format(f)
}

// FromVk maps a native format onto the registry. Formats the registry does
// not describe map to FormatUndefined.
func FromVk(f vk.Format) Format {
	if !reg.known(Format(f)) {
		return FormatUndefined
	}
	return Format(f)
}

// Vk returns the native aspect mask.
func (a Aspect) Vk() vk.ImageAspectFlags {
	return vk.ImageAspectFlags(a)
}

func AspectFromVk(flags vk.ImageAspectFlags) Aspect {
	return Aspect(flags)
}

// Vk returns the native extent.
func (e Extent3D) Vk() vk.Extent3D {
	return vk.Extent3D{
		Width:  e.Width,
		Height: e.Height,
		Depth:  e.Depth,
	}
}

func ExtentFromVk(e vk.Extent3D) Extent3D {
	e.Deref()
	return Extent3D{
		Width:  e.Width,
		Height: e.Height,
		Depth:  e.Depth,
	}
}
