package main

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/dhamidi/arith/ui"
)

func newUICmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Serve an expression evaluator over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			server, err := ui.NewServer()
			if err != nil {
				return fmt.Errorf("create server: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Listening on http://%s\n", addr)
			return http.ListenAndServe(addr, server)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "localhost:8080", "address to listen on")

	return cmd
}
