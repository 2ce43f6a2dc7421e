// Package cli provides the Cobra command structure for the flexparse tool.
package cli

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// NewRootCommand creates the root flexparse command with all subcommands.
func NewRootCommand(version string) *cobra.Command {
	var debug bool

	rootCmd := &cobra.Command{
		Use:   "flexparse",
		Short: "Permissive HTML/XML parsing toolkit",
		Long: `flexparse parses HTML/XML-like documents with maximal recovery:
malformed input is resolved heuristically rather than rejected. It can dump
the parsed node tree in several formats and serve a live scanner trace for
debugging.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				log.SetLevel(log.DebugLevel)
			}
		},
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(newDumpCommand())
	rootCmd.AddCommand(newServeCommand())

	return rootCmd
}
