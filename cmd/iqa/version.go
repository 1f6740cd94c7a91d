package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cwbudde/iqa/internal/metric"
)

var version = "0.1.0"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "iqa version %s (ssd kernel: %s)\n", version, metric.ActiveSSDBackend)
		},
	}
}
