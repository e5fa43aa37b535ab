package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dhamidi/arith/arith/compiler"
	"github.com/dhamidi/arith/format"
)

var errNotOK = errors.New("one or more expressions did not evaluate")

func newRunCmd() *cobra.Command {
	var outputFormat string
	var file string
	var colored bool

	cmd := &cobra.Command{
		Use:   "run [expression...]",
		Short: "Tokenize and evaluate expressions",
		RunE: func(cmd *cobra.Command, args []string) error {
			enc, err := format.New(outputFormat, cmd.OutOrStdout(), colored)
			if err != nil {
				return err
			}

			var reports []*compiler.Report
			if file != "" {
				data, err := os.ReadFile(file)
				if err != nil {
					return fmt.Errorf("read %s: %w", file, err)
				}
				reports = append(reports, compiler.CompileFile(file, string(data)))
			}
			for _, src := range args {
				reports = append(reports, compiler.Compile(src))
			}
			if len(reports) == 0 {
				return fmt.Errorf("no expression given")
			}

			failed := false
			for _, r := range reports {
				if err := enc.Encode(r); err != nil {
					return fmt.Errorf("encode: %w", err)
				}
				if !r.OK() {
					failed = true
				}
			}
			if failed {
				return errNotOK
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "output format (text, json)")
	cmd.Flags().StringVar(&file, "file", "", "read the expression from a file")
	cmd.Flags().BoolVar(&colored, "color", false, "color diagnostic lines")

	return cmd
}
