package main

import (
	"os"

	"github.com/sofmeright/nbforge/src/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
