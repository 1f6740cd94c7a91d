package main

import (
	"os"

	"github.com/cwbudde/iqa/internal/cli"
)

func main() {
	os.Exit(cli.Execute(newRootCmd()))
}
