package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dhamidi/arith/arith/compiler"
	"github.com/dhamidi/arith/arith/parser"
)

func newTokensCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens <expression>",
		Short: "Print the token sequence of an expression",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src := strings.Join(args, " ")
			tokens, diags := parser.Tokenize([]byte(src))
			out := cmd.OutOrStdout()
			for _, d := range diags {
				fmt.Fprintln(out, d.String())
			}
			fmt.Fprintln(out, compiler.TokenListing(tokens))
			return nil
		},
	}
}
