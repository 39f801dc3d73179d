// Package main is the entry point for the lintwarden CLI.
package main

import (
	"os"

	"github.com/yaklabco/lintwarden/internal/cli"
	"github.com/yaklabco/lintwarden/internal/logging"

	// Import plugins package to register built-in detectors via init().
	_ "github.com/yaklabco/lintwarden/pkg/score/plugins"
)

// Build-time variables set by GoReleaser via ldflags.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	rootCmd := cli.NewRootCommand(info)

	if err := rootCmd.Execute(); err != nil {
		// Blocking-issue sentinels are just exit-code signals, not failures to log.
		if !cli.IsBlockingSignal(err) {
			logger := logging.Default()
			logger.Error("command failed", logging.FieldError, err)
		}
		return cli.ExitCodeFromError(err)
	}

	return cli.ExitSuccess
}
