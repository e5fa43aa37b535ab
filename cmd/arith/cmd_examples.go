package main

import (
	"github.com/spf13/cobra"

	"github.com/dhamidi/arith/arith/compiler"
)

func newExamplesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "examples",
		Short: "Run the built-in example expressions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := compiler.RunExamples(cmd.OutOrStdout())
			return err
		},
	}
}
