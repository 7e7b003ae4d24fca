package main

import (
	"os"

	"github.com/mytravelspring/rio-nido-complete/internal/cli"
)

func main() {
	if err := cli.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
