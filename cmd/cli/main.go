// Package main is the entry point for the cargo-cost CLI.
package main

import (
	"os"

	"cargo-cost/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
