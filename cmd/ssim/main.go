package main

import (
	"os"

	"github.com/cwbudde/iqa/internal/cli"
	"github.com/cwbudde/iqa/internal/metric"
)

func main() {
	os.Exit(cli.Execute(cli.NewCommand(metric.NameSSIM, metric.SSIM)))
}
