package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/yaklabco/lintwarden/internal/logging"
	"github.com/yaklabco/lintwarden/pkg/cache"
	"github.com/yaklabco/lintwarden/pkg/config"
	"github.com/yaklabco/lintwarden/pkg/eslint"
)

type filterFlags struct {
	input string
	root  string
}

func newFilterCommand() *cobra.Command {
	var cfg config.Config
	flags := &filterFlags{}

	cmd := &cobra.Command{
		Use:   "filter",
		Short: "Rewrite lint JSON with approved warnings removed",
		Long: `Read lint JSON on stdin (or from --input), drop every message whose
fingerprint is in the approved ledger, and write the filtered JSON to
stdout in the same shape.

The filter fails open: if the cache or the input cannot be used, the
input passes through unmodified. Suppressing nothing is always safe.

Examples:
  npx eslint . --format json | lintwarden filter
  lintwarden filter --input out.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runFilter(cmd, &cfg, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.input, "input", "i", "-", "lint JSON file to read (- for stdin)")
	cmd.Flags().StringVar(&flags.root, "root", "", "project root directory (default current directory)")

	return cmd
}

func runFilter(cmd *cobra.Command, cliCfg *config.Config, flags *filterFlags) error {
	logger := logging.Default()

	root, err := resolveRoot(flags.root)
	if err != nil {
		return err
	}
	cliCfg.RootDir = root

	cfg, err := loadConfig(cmd, cliCfg)
	if err != nil {
		return err
	}

	output, err := readLintOutput(cmd, cfg, root, flags.input)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	results, err := eslint.ParseResults(output)
	if err != nil {
		// Fail open: pass unparseable input through untouched.
		logger.Warn("lint output not parseable, passing through", logging.FieldError, err)
		_, writeErr := out.Write(output)
		return writeErr
	}

	cachePath := resolveCachePath(root, cfg.CachePath)
	cacheFile := cache.Load(cachePath)

	filtered := eslint.Filter(root, results, cacheFile)

	data, err := json.Marshal(filtered)
	if err != nil {
		return fmt.Errorf("encode filtered results: %w", err)
	}
	if _, err := out.Write(data); err != nil {
		return fmt.Errorf("write filtered results: %w", err)
	}
	_, err = io.WriteString(out, "\n")
	return err
}
