package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/gogpu/texcopy"
	"github.com/spf13/cobra"
)

var validOutputFormats = []string{"json"}

// newRootCmd builds the command tree. Each call returns fresh flag state so
// tests can run commands independently.
func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "texcopy",
		Short:        "Validate GPU buffer-image copies",
		Long:         `Checks copies between GPU buffers and images before they reach a driver: usage flags, sample count, mip level and layer range, region bounds, buffer element type and buffer length.`,
		Version:      texcopy.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if verbose {
				texcopy.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
					Level: slog.LevelDebug,
				})))
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log validation details to stderr")

	root.AddCommand(newCheckCmd(), newMipsCmd(), newFormatsCmd())
	return root
}

// addOutputFlag registers -o/--output on cmd.
func addOutputFlag(cmd *cobra.Command, output *string) {
	cmd.Flags().StringVarP(output, "output", "o", "", "output format (json)")
}

// checkOutput rejects unknown output formats.
func checkOutput(output string) error {
	if output != "" && !slices.Contains(validOutputFormats, output) {
		return fmt.Errorf("invalid output format: %s (valid: %v)", output, validOutputFormats)
	}
	return nil
}

// printJSON writes v as indented JSON.
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
