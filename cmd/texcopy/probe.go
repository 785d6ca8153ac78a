package main

import (
	"fmt"
	stdimage "image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/gogpu/texcopy/format"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// probedImage is the header of an image file.
type probedImage struct {
	Width  uint32
	Height uint32
	Codec  string
	Format format.Format
}

// probeImage reads the header of the image file at path. Only the header is
// decoded, so large files are cheap to probe.
func probeImage(path string) (probedImage, error) {
	f, err := os.Open(path)
	if err != nil {
		return probedImage{}, err
	}
	defer f.Close()

	cfg, codec, err := stdimage.DecodeConfig(f)
	if err != nil {
		return probedImage{}, fmt.Errorf("probe %s: %w", path, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return probedImage{}, fmt.Errorf("probe %s: empty image %dx%d", path, cfg.Width, cfg.Height)
	}
	return probedImage{
		Width:  uint32(cfg.Width),
		Height: uint32(cfg.Height),
		Codec:  codec,
		Format: formatForModel(cfg.ColorModel),
	}, nil
}

// formatForModel returns the upload format matching a decoder's color model.
func formatForModel(m color.Model) format.Format {
	switch m {
	case color.GrayModel:
		return format.FormatR8Unorm
	case color.Gray16Model:
		return format.FormatR16Unorm
	case color.RGBA64Model, color.NRGBA64Model:
		return format.FormatR16G16B16A16Unorm
	default:
		return format.FormatR8G8B8A8Unorm
	}
}
