package main

import (
	"os"

	"github.com/calegray/modship/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		cli.PrintError(err)
		os.Exit(cli.ExitCodeFor(err))
	}
}
