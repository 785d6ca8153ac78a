package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/gogpu/texcopy/format"
	"github.com/spf13/cobra"
)

type formatRow struct {
	Name       string `json:"name"`
	Family     string `json:"family"`
	Aspect     string `json:"aspect"`
	Block      string `json:"block"`
	BlockBytes uint32 `json:"block_bytes"`
	Components string `json:"components"`
	SRGB       bool   `json:"srgb"`
	WebGPU     string `json:"webgpu,omitempty"`
}

func newFormatsCmd() *cobra.Command {
	var (
		family     string
		webgpuOnly bool
		output     string
	)

	cmd := &cobra.Command{
		Use:   "formats",
		Short: "List known texel formats and their block layout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkOutput(output); err != nil {
				return err
			}
			rows := formatRows(family, webgpuOnly)
			if len(rows) == 0 {
				return fmt.Errorf("no formats match family %q", family)
			}
			if output == "json" {
				return printJSON(cmd.OutOrStdout(), rows)
			}
			return printFormatsText(cmd.OutOrStdout(), rows)
		},
	}
	cmd.Flags().StringVar(&family, "family", "", "only list one family: uncompressed, bc, etc2, eac or astc")
	cmd.Flags().BoolVar(&webgpuOnly, "webgpu", false, "only list formats with a WebGPU equivalent")
	addOutputFlag(cmd, &output)
	return cmd
}

func formatRows(family string, webgpuOnly bool) []formatRow {
	var rows []formatRow
	for _, f := range format.All() {
		if family != "" && !strings.EqualFold(f.Family().String(), family) {
			continue
		}
		tf, ok := f.TextureFormat()
		if webgpuOnly && !ok {
			continue
		}
		w, h := f.BlockDimensions()
		row := formatRow{
			Name:       f.String(),
			Family:     f.Family().String(),
			Aspect:     f.Aspect().String(),
			Block:      fmt.Sprintf("%dx%d", w, h),
			BlockBytes: f.BlockSize(),
			Components: f.Components().String(),
			SRGB:       f.IsSRGB(),
		}
		if ok {
			row.WebGPU = fmt.Sprint(tf)
		}
		rows = append(rows, row)
	}
	return rows
}

func printFormatsText(w io.Writer, rows []formatRow) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "FORMAT\tFAMILY\tASPECT\tBLOCK\tBYTES\tCOMPONENTS\tWEBGPU")
	for _, r := range rows {
		webgpu := r.WebGPU
		if webgpu == "" {
			webgpu = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%s\t%s\n",
			r.Name, r.Family, r.Aspect, r.Block, r.BlockBytes, r.Components, webgpu)
	}
	return tw.Flush()
}
