package main

import (
	"github.com/spf13/cobra"

	"github.com/cwbudde/iqa/internal/cli"
	"github.com/cwbudde/iqa/internal/metric"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "iqa",
		Short: "Full-reference image quality metrics",
		Long: `iqa compares a distorted image against a reference and reports
MSE, PSNR or SSIM per channel or averaged over a color space.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	for _, name := range metric.Names() {
		fn, _ := metric.Lookup(name)
		root.AddCommand(cli.NewCommand(name, fn))
	}
	root.AddCommand(newVersionCmd())
	return root
}
