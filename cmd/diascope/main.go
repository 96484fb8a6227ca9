package main

import (
	"fmt"
	"os"

	"github.com/runnerr0/diascope/internal/cli"
	"github.com/runnerr0/diascope/internal/version"
)

func main() {
	if err := cli.Run(version.Version); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
