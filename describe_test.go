package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/anvil/engine/core"
	"github.com/spaghettifunk/anvil/engine/renderer/format"
)

func TestSelectFormats(t *testing.T) {
	all, err := selectFormats(nil)
	require.NoError(t, err)
	assert.Equal(t, format.All(), all)

	some, err := selectFormats([]string{"r8g8b8a8_unorm", "VK_FORMAT_BC3_SRGB_BLOCK"})
	require.NoError(t, err)
	assert.Equal(t, []format.Format{format.FormatR8G8B8A8Unorm, format.FormatBC3SrgbBlock}, some)

	astc, err := selectFormats([]string{"ASTC_4x4_UNORM_BLOCK", "astc_10x5_srgb_block"})
	require.NoError(t, err)
	assert.Equal(t, []format.Format{format.FormatASTC4x4UnormBlock, format.FormatASTC10x5SrgbBlock}, astc)

	_, err = selectFormats([]string{"R9G9_UNORM"})
	assert.Error(t, err)
}

func TestDescribeColorFormat(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, describe(&buf, format.FormatR8G8B8A8Unorm))

	out := buf.String()
	assert.Contains(t, out, "VK_FORMAT_R8G8B8A8_UNORM")
	assert.Contains(t, out, "(37)")
	assert.Regexp(t, `layout\s+RGBA`, out)
	assert.Regexp(t, `bits\s+8 8 8 8\n`, out)
	assert.Regexp(t, `aspects\s+COLOR\n`, out)
	assert.Regexp(t, `class\s+32-bit`, out)
	assert.NotContains(t, out, "block")
}

func TestDescribeCompressedFormat(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, describe(&buf, format.FormatBC3SrgbBlock))

	out := buf.String()
	assert.Regexp(t, `block\s+4x4, 16 bytes`, out)
	assert.Regexp(t, `class\s+BC3 \(2 formats\)`, out)
	assert.NotContains(t, out, "bits")
}

func TestDescribeYUVFormat(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, describe(&buf, format.FormatG8B8R83Plane420Unorm))

	out := buf.String()
	assert.Contains(t, out, "plane 0")
	assert.Contains(t, out, "plane 2")
	assert.Regexp(t, `aspects\s+PLANE_0 PLANE_1 PLANE_2`, out)
}

func TestReload(t *testing.T) {
	defer func() { require.NoError(t, core.DefaultConfig().Apply()) }()
	formats := []format.Format{format.FormatR8G8B8A8Unorm, format.FormatASTC4x4UnormBlock}

	cfg := core.DefaultConfig()
	cfg.Images.ThreadSafe = false
	var buf bytes.Buffer
	require.NoError(t, reload(&buf, cfg, formats))
	assert.Contains(t, buf.String(), "VK_FORMAT_R8G8B8A8_UNORM")
	assert.Contains(t, buf.String(), "VK_FORMAT_ASTC_4x4_UNORM_BLOCK")
	assert.Same(t, cfg, core.CurrentConfig())

	bad := core.DefaultConfig()
	bad.Log.Level = "chatty"
	buf.Reset()
	assert.Error(t, reload(&buf, bad, formats))
	assert.Empty(t, buf.String())
}
