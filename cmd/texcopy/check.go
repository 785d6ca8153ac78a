package main

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/gogpu/texcopy/internal/plan"
	"github.com/spf13/cobra"
)

// errCopiesFailed is returned by check when at least one copy is invalid,
// which makes the process exit with status 1.
var errCopiesFailed = errors.New("copies failed validation")

type checkReport struct {
	Plan   string       `json:"plan"`
	Copies []copyReport `json:"copies"`
	Failed int          `json:"failed"`
}

type copyReport struct {
	Index         int    `json:"index"`
	Name          string `json:"name"`
	OK            bool   `json:"ok"`
	RequiredLen   uint64 `json:"required_len"`
	RequiredBytes uint64 `json:"required_bytes"`
	Error         string `json:"error,omitempty"`
}

func newCheckCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "check <plan>",
		Short: "Validate every copy in a plan file",
		Long: `Loads a YAML (.yaml, .yml) or JSONC (.json, .jsonc) plan and validates each copy.

Exit status is 1 if any copy is invalid.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkOutput(output); err != nil {
				return err
			}
			p, err := plan.Load(args[0])
			if err != nil {
				return err
			}

			results := p.Evaluate()
			report := newCheckReport(args[0], results)

			w := cmd.OutOrStdout()
			if output == "json" {
				if err := printJSON(w, report); err != nil {
					return err
				}
			} else if err := printCheckText(w, report); err != nil {
				return err
			}

			if report.Failed > 0 {
				return fmt.Errorf("%w: %d of %d", errCopiesFailed, report.Failed, len(results))
			}
			return nil
		},
	}
	addOutputFlag(cmd, &output)
	return cmd
}

func newCheckReport(path string, results []plan.Result) checkReport {
	report := checkReport{Plan: path, Copies: make([]copyReport, 0, len(results))}
	for _, r := range results {
		c := copyReport{
			Index:         r.Index,
			Name:          r.Name,
			OK:            r.OK(),
			RequiredLen:   r.RequiredLen,
			RequiredBytes: r.RequiredBytes,
		}
		if r.Err != nil {
			c.Error = r.Err.Error()
			report.Failed++
		}
		report.Copies = append(report.Copies, c)
	}
	return report
}

func printCheckText(w io.Writer, report checkReport) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, c := range report.Copies {
		status := "ok"
		if !c.OK {
			status = "FAIL"
		}
		size := "-"
		if c.RequiredBytes > 0 {
			size = humanize.IBytes(c.RequiredBytes)
		}
		line := fmt.Sprintf("%d\t%s\t%s\t%s", c.Index, status, c.Name, size)
		if c.Error != "" {
			line += "\t" + c.Error
		}
		fmt.Fprintln(tw, line)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%d copies, %d failed\n", len(report.Copies), report.Failed)
	return err
}
