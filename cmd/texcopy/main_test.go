package main

import (
	"bytes"
	"encoding/json"
	stdimage "image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/texcopy"
	"github.com/gogpu/texcopy/format"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// run executes the CLI in-process and returns stdout, stderr and the error.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Cleanup(func() { texcopy.SetLogger(nil) })

	var stdout, stderr bytes.Buffer
	root := newRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const validPlan = `
images:
  atlas: {width: 64, height: 64, format: R8G8B8A8_UNORM, usage: [transfer_dst]}
buffers:
  staging: {len: 16384, usage: [transfer_src]}
copies:
  - {name: upload, type: buffer-to-image, buffer: staging, image: atlas}
  - {name: mip1, type: buffer-to-image, buffer: staging, image: atlas, mip: 1}
`

const failingPlan = `{
  "images": {"atlas": {"width": 64, "height": 64, "format": "R8G8B8A8_UNORM", "usage": ["transfer_dst"]}},
  "buffers": {"tiny": {"len": 100, "usage": ["transfer_src"]}},
  "copies": [
    {"name": "too big", "type": "buffer-to-image", "buffer": "tiny", "image": "atlas"}, // 16 KiB needed
  ],
}`

func TestCheck(t *testing.T) {
	t.Run("valid plan", func(t *testing.T) {
		out, _, err := run(t, "check", writeFile(t, "ok.yaml", validPlan))
		require.NoError(t, err)
		assert.Contains(t, out, "upload")
		assert.Contains(t, out, "16 KiB")
		assert.Contains(t, out, "4.0 KiB")
		assert.Contains(t, out, "2 copies, 0 failed")
	})

	t.Run("failing plan", func(t *testing.T) {
		out, _, err := run(t, "check", writeFile(t, "bad.jsonc", failingPlan))
		require.ErrorIs(t, err, errCopiesFailed)
		assert.Contains(t, out, "FAIL")
		assert.Contains(t, out, "requires 16384 elements, has 100")
	})

	t.Run("JSON output", func(t *testing.T) {
		out, _, err := run(t, "check", "-o", "json", writeFile(t, "bad.json", failingPlan))
		require.ErrorIs(t, err, errCopiesFailed)

		var report checkReport
		require.NoError(t, json.Unmarshal([]byte(out), &report))
		assert.Equal(t, 1, report.Failed)
		require.Len(t, report.Copies, 1)
		assert.False(t, report.Copies[0].OK)
		assert.Equal(t, uint64(16384), report.Copies[0].RequiredBytes)
	})

	t.Run("verbose logs rejections", func(t *testing.T) {
		_, stderr, err := run(t, "check", "-v", writeFile(t, "bad.jsonc", failingPlan))
		require.Error(t, err)
		assert.Contains(t, stderr, "copy rejected")
	})

	t.Run("bad output format", func(t *testing.T) {
		_, _, err := run(t, "check", "-o", "xml", writeFile(t, "ok.yaml", validPlan))
		assert.ErrorContains(t, err, "invalid output format")
	})

	t.Run("missing file", func(t *testing.T) {
		_, _, err := run(t, "check", filepath.Join(t.TempDir(), "none.yaml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("requires one argument", func(t *testing.T) {
		_, _, err := run(t, "check")
		assert.Error(t, err)
	})
}

func TestMips(t *testing.T) {
	t.Run("2D chain", func(t *testing.T) {
		out, _, err := run(t, "mips", "--width", "8", "--height", "4")
		require.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(out), "\n")
		// Header plus levels 8x4, 4x2, 2x1, 1x1.
		require.Len(t, lines, 5)
		assert.Contains(t, lines[1], "8x4x1")
		assert.Contains(t, lines[4], "1x1x1")
	})

	t.Run("3D inferred from depth", func(t *testing.T) {
		out, _, err := run(t, "mips", "-o", "json", "--width", "16", "--height", "16", "--depth", "64")
		require.NoError(t, err)
		var report mipsReport
		require.NoError(t, json.Unmarshal([]byte(out), &report))
		assert.Len(t, report.Levels, 7)
		assert.Equal(t, [3]uint32{4, 4, 16}, report.Levels[2].Size)
	})

	t.Run("compressed format sizes", func(t *testing.T) {
		out, _, err := run(t, "mips", "-o", "json", "--width", "16", "--height", "16", "--format", "BC1_RGB_UNORM_BLOCK")
		require.NoError(t, err)
		var report mipsReport
		require.NoError(t, json.Unmarshal([]byte(out), &report))
		require.Len(t, report.Levels, 5)
		// 4x4 blocks, then 2x2, then one block per level.
		assert.Equal(t, uint64(128), report.Levels[0].RequiredBytes)
		assert.Equal(t, uint64(32), report.Levels[1].RequiredBytes)
		assert.Equal(t, uint64(8), report.Levels[2].RequiredBytes)
		assert.Equal(t, uint64(8), report.Levels[4].RequiredBytes)
		assert.Equal(t, uint64(128+32+8+8+8), report.TotalBytes)
	})

	t.Run("element must view the format", func(t *testing.T) {
		_, _, err := run(t, "mips", "--width", "4", "--format", "R8G8B8A8_UNORM", "--element", "u32")
		assert.ErrorIs(t, err, format.ErrIncompatiblePixelsType)
	})

	t.Run("zero width", func(t *testing.T) {
		_, _, err := run(t, "mips")
		assert.ErrorContains(t, err, "--width")
	})

	t.Run("3D with layers", func(t *testing.T) {
		_, _, err := run(t, "mips", "--type", "3d", "--width", "8", "--height", "8", "--depth", "8", "--layers", "2")
		assert.ErrorContains(t, err, "single layer")
	})

	t.Run("depth inferred 3D rejects layers", func(t *testing.T) {
		_, _, err := run(t, "mips", "--width", "8", "--depth", "4", "--layers", "3")
		assert.ErrorContains(t, err, "single layer")
	})

	t.Run("2D with depth", func(t *testing.T) {
		_, _, err := run(t, "mips", "--type", "2d", "--width", "8", "--depth", "4")
		assert.ErrorContains(t, err, "no depth")
	})

	t.Run("1D array", func(t *testing.T) {
		out, _, err := run(t, "mips", "--type", "1d", "--width", "4", "--layers", "3")
		require.NoError(t, err)
		assert.Contains(t, out, "3 layers")
	})
}

func TestMips_From(t *testing.T) {
	dir := t.TempDir()
	rgba := stdimage.NewRGBA(stdimage.Rect(0, 0, 32, 16))
	gray := stdimage.NewGray(stdimage.Rect(0, 0, 20, 10))

	pngPath := filepath.Join(dir, "sprite.png")
	f, err := os.Create(pngPath)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, rgba))
	require.NoError(t, f.Close())

	bmpPath := filepath.Join(dir, "mask.bmp")
	f, err = os.Create(bmpPath)
	require.NoError(t, err)
	require.NoError(t, bmp.Encode(f, gray))
	require.NoError(t, f.Close())

	tiffPath := filepath.Join(dir, "scan.tiff")
	f, err = os.Create(tiffPath)
	require.NoError(t, err)
	require.NoError(t, tiff.Encode(f, rgba, nil))
	require.NoError(t, f.Close())

	tests := []struct {
		path   string
		codec  string
		width  uint32
		height uint32
	}{
		{pngPath, "png", 32, 16},
		{bmpPath, "bmp", 20, 10},
		{tiffPath, "tiff", 32, 16},
	}
	for _, tt := range tests {
		t.Run(tt.codec, func(t *testing.T) {
			probed, err := probeImage(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.codec, probed.Codec)
			assert.Equal(t, tt.width, probed.Width)
			assert.Equal(t, tt.height, probed.Height)
		})
	}

	out, _, err := run(t, "mips", "-o", "json", "--from", pngPath)
	require.NoError(t, err)
	var report mipsReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, "png", report.Source)
	assert.Equal(t, "R8G8B8A8_UNORM", report.Format)
	assert.Equal(t, uint64(32*16*4), report.Levels[0].RequiredBytes)

	// Explicit flags win over the probed header.
	out, _, err = run(t, "mips", "-o", "json", "--from", pngPath, "--width", "8")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, uint32(8), report.Levels[0].Size[0])

	_, err = probeImage(writeFile(t, "notes.txt", "not an image"))
	assert.Error(t, err)
}

func TestFormatForModel(t *testing.T) {
	assert.Equal(t, format.FormatR8Unorm, formatForModel(color.GrayModel))
	assert.Equal(t, format.FormatR16Unorm, formatForModel(color.Gray16Model))
	assert.Equal(t, format.FormatR16G16B16A16Unorm, formatForModel(color.NRGBA64Model))
	assert.Equal(t, format.FormatR8G8B8A8Unorm, formatForModel(color.RGBAModel))
}

func TestFormats(t *testing.T) {
	out, _, err := run(t, "formats")
	require.NoError(t, err)
	assert.Contains(t, out, "R8G8B8A8_UNORM")
	assert.Contains(t, out, "ASTC_12x12_SRGB_BLOCK")

	out, _, err = run(t, "formats", "-o", "json", "--family", "bc")
	require.NoError(t, err)
	var rows []formatRow
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.NotEmpty(t, rows)
	for _, r := range rows {
		assert.Equal(t, "BC", r.Family)
		assert.Equal(t, "4x4", r.Block)
	}

	out, _, err = run(t, "formats", "-o", "json", "--webgpu")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	assert.Len(t, rows, 9)

	_, _, err = run(t, "formats", "--family", "pvrtc")
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, texcopy.Version)
}
