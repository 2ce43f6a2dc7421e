// Package main is the entry point for the flexparse CLI.
package main

import (
	"os"

	"github.com/charmbracelet/log"

	"github.com/jacoblockett/flex-parse/internal/cli"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	rootCmd := cli.NewRootCommand(version)
	if err := rootCmd.Execute(); err != nil {
		log.Error("command failed", "error", err)
		return 1
	}
	return 0
}
