// Package cli provides the Cobra command structure for lintwarden.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/lintwarden/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root lintwarden command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "lintwarden",
		Short: "Keep approved lint warnings quiet and project health visible",
		Long: `lintwarden maintains a reviewed ledger of lint warnings so that known,
accepted warnings stop drowning out new ones.

Warnings are identified by content fingerprints that survive line moves
and refactors. The check command diffs current lint output against the
approved ledger, approve reviews new warnings interactively, and filter
rewrites lint JSON with approved warnings removed. The score command runs
a plugin pipeline of project health detectors and can emit a remediation
prompt for an automated fixing agent.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newCheckCommand())
	rootCmd.AddCommand(newApproveCommand())
	rootCmd.AddCommand(newFilterCommand())
	rootCmd.AddCommand(newScoreCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	// Apply styled help formatting.
	helpFormatter := NewHelpFormatter(color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}
