package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dhamidi/arith/arith/workspace"
	"github.com/dhamidi/arith/format"
)

func newCheckCmd() *cobra.Command {
	var timeout time.Duration
	var workers int
	var outputFormat string
	var colored bool

	cmd := &cobra.Command{
		Use:   "check <path>",
		Short: "Evaluate every .arith file in a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()
			return runCheck(ctx, cmd, args[0], workers, outputFormat, colored)
		},
	}

	cmd.Flags().DurationVarP(&timeout, "timeout", "t", 30*time.Second, "timeout for the whole check")
	cmd.Flags().IntVarP(&workers, "workers", "j", 4, "number of files compiled at once")
	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "output format (text, json)")
	cmd.Flags().BoolVar(&colored, "color", false, "color diagnostic lines")

	return cmd
}

func runCheck(ctx context.Context, cmd *cobra.Command, path string, workers int, outputFormat string, colored bool) error {
	out := cmd.OutOrStdout()
	enc, err := format.New(outputFormat, out, colored)
	if err != nil {
		return err
	}

	ws := workspace.New(path, workspace.WithWorkers(workers))
	scanErr := ws.ScanAll(ctx)

	files := ws.Files()
	failed := 0
	for _, f := range files {
		if err := enc.Encode(f.Report); err != nil {
			return fmt.Errorf("encode %s: %w", f.Path, err)
		}
		if !f.Report.OK() {
			failed++
		}
	}

	if outputFormat == "text" {
		fmt.Fprintf(out, "\n=== CHECK COMPLETE ===\n")
		fmt.Fprintf(out, "Files: %d\n", len(files))
		fmt.Fprintf(out, "Failed: %d\n", failed)
	}

	if scanErr != nil {
		return fmt.Errorf("check %s: %w", path, scanErr)
	}
	if failed > 0 {
		return errNotOK
	}
	return nil
}
