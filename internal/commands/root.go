// Package commands implements the tripctl command line.
package commands

import (
	"github.com/spf13/cobra"
)

// Version is set at build time via -ldflags.
var Version = "dev"

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "tripctl",
		Short:   "Summarize and export trip expense snapshots",
		Version: Version,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newSummaryCommand())
	rootCmd.AddCommand(newExportCommand())

	return rootCmd
}
