package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/gogpu/texcopy/format"
	"github.com/gogpu/texcopy/image"
	"github.com/gogpu/texcopy/internal/checked"
	"github.com/gogpu/texcopy/transfer"
	"github.com/spf13/cobra"
)

type mipsFlags struct {
	typ     string
	width   uint32
	height  uint32
	depth   uint32
	layers  uint32
	from    string
	format  string
	element string
	output  string
}

type mipLevel struct {
	Level         uint32    `json:"level"`
	Size          [3]uint32 `json:"size"`
	Layers        uint32    `json:"layers"`
	Texels        uint64    `json:"texels"`
	RequiredLen   uint64    `json:"required_len,omitempty"`
	RequiredBytes uint64    `json:"required_bytes,omitempty"`
}

type mipsReport struct {
	Dimensions string     `json:"dimensions"`
	Format     string     `json:"format,omitempty"`
	Element    string     `json:"element,omitempty"`
	Source     string     `json:"source,omitempty"`
	Levels     []mipLevel `json:"levels"`
	TotalBytes uint64     `json:"total_bytes,omitempty"`
}

func newMipsCmd() *cobra.Command {
	var f mipsFlags

	cmd := &cobra.Command{
		Use:   "mips",
		Short: "Print the mip chain of an image",
		Long: `Prints every mip level of an image. The shape comes from flags or, with --from,
from the header of a PNG, JPEG, GIF, BMP, TIFF or WebP file.

With --format (implied by --from) each level also shows the buffer length a
full copy of that level needs.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkOutput(f.output); err != nil {
				return err
			}
			report, err := buildMipsReport(cmd, f)
			if err != nil {
				return err
			}
			if f.output == "json" {
				return printJSON(cmd.OutOrStdout(), report)
			}
			return printMipsText(cmd.OutOrStdout(), report)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.typ, "type", "", "image type: 1d, 2d or 3d (default 2d, or 3d when --depth > 1)")
	flags.Uint32Var(&f.width, "width", 0, "width in texels")
	flags.Uint32Var(&f.height, "height", 1, "height in texels")
	flags.Uint32Var(&f.depth, "depth", 1, "depth in texels (3D only)")
	flags.Uint32Var(&f.layers, "layers", 1, "array layers (1D and 2D only)")
	flags.StringVar(&f.from, "from", "", "read width and height from an image file")
	flags.StringVar(&f.format, "format", "", "texel format, e.g. R8G8B8A8_UNORM")
	flags.StringVar(&f.element, "element", "u8", "buffer element type, e.g. u8 or [4]u8")
	addOutputFlag(cmd, &f.output)
	return cmd
}

func buildMipsReport(cmd *cobra.Command, f mipsFlags) (mipsReport, error) {
	var report mipsReport

	formatName := f.format
	if f.from != "" {
		probed, err := probeImage(f.from)
		if err != nil {
			return report, err
		}
		if !cmd.Flags().Changed("width") {
			f.width = probed.Width
		}
		if !cmd.Flags().Changed("height") {
			f.height = probed.Height
		}
		if formatName == "" {
			formatName = probed.Format.String()
		}
		report.Source = probed.Codec
	}

	dims, err := mipsDimensions(f)
	if err != nil {
		return report, err
	}
	report.Dimensions = dims.String()

	var (
		texFormat format.Format
		elem      format.PixelType
	)
	if formatName != "" {
		if texFormat, err = format.ParseFormat(formatName); err != nil {
			return report, err
		}
		if elem, err = format.ParsePixelType(f.element); err != nil {
			return report, err
		}
		if err := texFormat.EnsureAcceptsPixelType(elem); err != nil {
			return report, err
		}
		report.Format = texFormat.String()
		report.Element = elem.String()
	}

	for i, level := range dims.MipChain() {
		m := mipLevel{
			Level:  uint32(i),
			Size:   level.WidthHeightDepth(),
			Layers: level.ArrayLayers(),
			Texels: level.NumTexels(),
		}
		if formatName != "" {
			n, err := transfer.RequiredLenForFormat(texFormat, elem, m.Size, m.Layers)
			if err != nil {
				return report, err
			}
			m.RequiredLen = n
			m.RequiredBytes = checked.MulSat(n, uint64(elem.Size()))
			report.TotalBytes = checked.AddSat(report.TotalBytes, m.RequiredBytes)
		}
		report.Levels = append(report.Levels, m)
	}
	return report, nil
}

func mipsDimensions(f mipsFlags) (image.Dimensions, error) {
	typ := image.Type2D
	switch {
	case f.typ != "":
		t, err := image.ParseType(f.typ)
		if err != nil {
			return image.Dimensions{}, err
		}
		typ = t
	case f.depth > 1:
		typ = image.Type3D
	}

	var dims image.Dimensions
	switch typ {
	case image.Type1D:
		dims = image.Dim1D(f.width, f.layers)
	case image.Type3D:
		if f.layers > 1 {
			return image.Dimensions{}, fmt.Errorf("3D images have a single layer, got --layers %d", f.layers)
		}
		dims = image.Dim3D(f.width, f.height, f.depth)
	default:
		dims = image.Dim2D(f.width, f.height, f.layers)
	}
	if typ != image.Type3D && f.depth > 1 {
		return image.Dimensions{}, fmt.Errorf("%v images have no depth, got --depth %d", typ, f.depth)
	}
	if err := dims.Validate(); err != nil {
		return image.Dimensions{}, fmt.Errorf("%w (set --width or --from)", err)
	}
	return dims, nil
}

func printMipsText(w io.Writer, report mipsReport) error {
	header := report.Dimensions
	if report.Format != "" {
		header += " " + report.Format + " as " + report.Element
	}
	if report.Source != "" {
		header += " (" + report.Source + ")"
	}
	if _, err := fmt.Fprintln(w, header); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, m := range report.Levels {
		line := fmt.Sprintf("%d\t%dx%dx%d\t%d layers\t%s texels",
			m.Level, m.Size[0], m.Size[1], m.Size[2], m.Layers, humanize.Comma(int64(min(m.Texels, 1<<62))))
		if report.Format != "" {
			line += fmt.Sprintf("\t%d elements\t%s", m.RequiredLen, humanize.IBytes(m.RequiredBytes))
		}
		fmt.Fprintln(tw, line)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if report.Format != "" {
		_, err := fmt.Fprintf(w, "total %s\n", humanize.IBytes(report.TotalBytes))
		return err
	}
	return nil
}
