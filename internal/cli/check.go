package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/lintwarden/internal/logging"
	"github.com/yaklabco/lintwarden/pkg/cache"
	"github.com/yaklabco/lintwarden/pkg/config"
	"github.com/yaklabco/lintwarden/pkg/eslint"
)

type checkFlags struct {
	input   string
	root    string
	yes     bool
	noPrune bool
}

func newCheckCommand() *cobra.Command {
	var cfg config.Config
	flags := &checkFlags{}

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Diff current lint warnings against the approved ledger",
		Long: `Run the configured lint command (or read its JSON output) and compare
every warning's fingerprint against the approved-warnings cache.

Approved warnings are reported as a count only. New warnings are printed
in full and make the command exit nonzero, which is the gate for CI.
Approved warnings that no longer occur are pruned from the cache.

Examples:
  lintwarden check                   # Run the configured lint command
  lintwarden check --input out.json  # Read lint JSON from a file
  lintwarden check --input -         # Read lint JSON from stdin`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCheck(cmd, &cfg, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.input, "input", "i", "", "lint JSON file to read instead of running the lint command (- for stdin)")
	cmd.Flags().StringVar(&flags.root, "root", "", "project root directory (default current directory)")
	cmd.Flags().BoolVar(&flags.yes, "yes", false, "accept a changed lint configuration without prompting")
	cmd.Flags().BoolVar(&flags.noPrune, "no-prune", false, "keep approvals for warnings that no longer occur")
	cmd.Flags().StringVar(&cfg.LintCommand, "lint-command", "", "override the configured lint command")

	return cmd
}

func runCheck(cmd *cobra.Command, cliCfg *config.Config, flags *checkFlags) error {
	logger := logging.Default()
	ctx := commandContext(cmd)

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

	results, err := eslint.ParseResults(output)
	if err != nil {
		return fmt.Errorf("parse lint results: %w", err)
	}

	fps := eslint.Fingerprints(root, results)

	cachePath := resolveCachePath(root, cfg.CachePath)
	cacheFile := cache.Load(cachePath)
	logger.Debug("cache loaded",
		logging.FieldCache, cachePath,
		logging.FieldApproved, len(cacheFile.ApprovedWarnings),
	)

	if err := reconcileConfigHash(cmd, cacheFile, root, flags.yes, cfg.NonInteractive); err != nil {
		return err
	}

	diff := cacheFile.Diff(fps)

	pruned := 0
	if !flags.noPrune {
		pruned = cacheFile.Prune(fps)
	}

	styles := stylesFor(cmd)
	out := cmd.OutOrStdout()

	if len(diff.New) > 0 {
		newKeys := make(map[string]bool, len(diff.New))
		for _, fp := range diff.New {
			newKeys[fp.Key()] = true
		}

		for _, result := range results {
			for _, msg := range result.Messages {
				fp := eslint.MessageFingerprint(root, result.FilePath, msg)
				if !newKeys[fp.Key()] {
					continue
				}
				sourceLine := msg.Source
				if sourceLine == "" {
					sourceLine = eslint.SourceLine(result.FilePath, msg.Line)
				}
				fmt.Fprint(out, styles.FormatLintMessage(fp.File, msg, sourceLine))
			}
		}
	}

	fmt.Fprint(out, styles.FormatCheckSummary(len(diff.New), len(diff.AlreadyApproved), pruned))

	if err := cacheFile.Save(ctx, cachePath); err != nil {
		return err
	}
	if pruned > 0 {
		logger.Debug("stale approvals pruned", logging.FieldPruned, pruned)
	}

	if len(diff.New) > 0 {
		return ErrNewWarningsFound
	}
	return nil
}

// reconcileConfigHash detects lint-config drift and requires explicit
// acceptance before the cache may be reused or mutated. Declining aborts
// without touching the cache file.
func reconcileConfigHash(cmd *cobra.Command, cacheFile *cache.File, root string, assumeYes, nonInteractive bool) error {
	currentHash := eslint.ConfigHash(root)

	if cacheFile.ConfigDrifted(currentHash) {
		accepted := assumeYes
		if !accepted && !nonInteractive && isInteractive() {
			var err error
			accepted, err = confirmConfigChange(cmd.InOrStdin(), cmd.OutOrStdout())
			if err != nil {
				return err
			}
		}
		if !accepted {
			fmt.Fprintln(cmd.OutOrStdout(),
				"Aborting: re-run with --yes to keep approvals, or re-approve warnings under the new configuration.")
			return ErrConfigDeclined
		}
	}

	cacheFile.SetConfigHash(currentHash)
	return nil
}
