package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"

	"github.com/spaghettifunk/anvil/engine/core"
	"github.com/spaghettifunk/anvil/engine/renderer/format"
)

var titleStyle = lipgloss.NewStyle().Bold(true)

func selectFormats(names []string) ([]format.Format, error) {
	if len(names) == 0 {
		return format.All(), nil
	}
	out := make([]format.Format, 0, len(names))
	for _, name := range names {
		f := format.Lookup(name)
		if f == format.FormatUndefined {
			return nil, fmt.Errorf("unknown format %q", name)
		}
		out = append(out, f)
	}
	return out, nil
}

func joinBits(bits [4]uint32, n uint32) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = fmt.Sprint(bits[i])
	}
	return strings.Join(parts, " ")
}

func joinAspects(aspects []format.Aspect) string {
	parts := make([]string, len(aspects))
	for i, a := range aspects {
		parts[i] = a.String()
	}
	return strings.Join(parts, " ")
}

func describe(w io.Writer, f format.Format) error {
	if _, err := fmt.Fprintf(w, "%s (%d)\n", titleStyle.Render(f.String()), int32(f)); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	row := func(key string, value interface{}) {
		fmt.Fprintf(tw, "  %s\t%v\n", key, value)
	}

	row("type", format.TypeOf(f))
	if format.IsYUV(f) {
		for i, a := range format.Aspects(f) {
			bits := format.ComponentBits(f, a)
			unused := format.ComponentUnusedBits(f, a)
			n := format.ComponentCount(f, a)
			row(fmt.Sprintf("plane %d", i), fmt.Sprintf("%s %s bits %s padding %s", a, format.PlaneLayout(f, a), joinBits(bits, n), joinBits(unused, n)))
		}
	} else {
		row("layout", format.LayoutOf(f))
		if !format.IsCompressed(f) {
			row("bits", joinBits(format.ComponentBits(f, format.AspectColor), format.ComponentCount(f, format.AspectColor)))
		}
	}
	row("packed", format.IsPacked(f))
	row("compressed", format.IsCompressed(f))
	row("aspects", joinAspects(format.Aspects(f)))
	if format.IsCompressed(f) {
		g := format.BlockGeometryOf(f)
		row("block", fmt.Sprintf("%dx%d, %d bytes", g.Width, g.Height, g.Bytes))
	}
	row("class", fmt.Sprintf("%s (%d formats)", format.CompatibilityClassName(f), len(format.CompatibilityClass(f))))
	return tw.Flush()
}

func describeAll(w io.Writer, formats []format.Format) error {
	for _, f := range formats {
		if err := describe(w, f); err != nil {
			return err
		}
	}
	return nil
}

// reload applies a configuration read by the watcher and prints the
// formats again under it.
func reload(w io.Writer, cfg *core.Config, formats []format.Format) error {
	if err := cfg.Apply(); err != nil {
		return err
	}
	core.LogInfo("configuration reloaded")
	return describeAll(w, formats)
}
