package cli

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/yaklabco/lintwarden/internal/logging"
	"github.com/yaklabco/lintwarden/internal/wizard"
	"github.com/yaklabco/lintwarden/pkg/cache"
	"github.com/yaklabco/lintwarden/pkg/config"
	"github.com/yaklabco/lintwarden/pkg/eslint"
	"github.com/yaklabco/lintwarden/pkg/fingerprint"
)

type approveFlags struct {
	input string
	root  string
	yes   bool
	all   bool
}

func newApproveCommand() *cobra.Command {
	var cfg config.Config
	flags := &approveFlags{}

	cmd := &cobra.Command{
		Use:   "approve",
		Short: "Review new warnings and add them to the approved ledger",
		Long: `Present each new warning for review and record approvals in the cache.

Approval is interactive by default and requires a terminal: y approves
the current warning, n skips it, a approves all remaining, q stops and
keeps the decisions made so far. Use --all to approve every new warning
without prompting, e.g. when adopting lintwarden on an existing project.

Examples:
  lintwarden approve                 # Review new warnings one by one
  lintwarden approve --all           # Approve everything outstanding
  lintwarden approve --input out.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runApprove(cmd, &cfg, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.input, "input", "i", "", "lint JSON file to read instead of running the lint command (- for stdin)")
	cmd.Flags().StringVar(&flags.root, "root", "", "project root directory (default current directory)")
	cmd.Flags().BoolVar(&flags.yes, "yes", false, "accept a changed lint configuration without prompting")
	cmd.Flags().BoolVar(&flags.all, "all", false, "approve all new warnings without prompting")

	return cmd
}

func runApprove(cmd *cobra.Command, cliCfg *config.Config, flags *approveFlags) error {
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

	if err := reconcileConfigHash(cmd, cacheFile, root, flags.yes, cfg.NonInteractive); err != nil {
		return err
	}

	diff := cacheFile.Diff(fps)

	styles := stylesFor(cmd)
	out := cmd.OutOrStdout()

	if len(diff.New) == 0 {
		fmt.Fprintln(out, styles.Success.Render("No new warnings to approve."))
		return cacheFile.Save(ctx, cachePath)
	}

	approvedCount := 0
	switch {
	case flags.all:
		for _, fp := range diff.New {
			cacheFile.Approve(fp)
		}
		approvedCount = len(diff.New)
	default:
		// The wizard reads decisions from stdin; warnings piped through
		// --input - would collide with it.
		if !isatty.IsTerminal(os.Stdin.Fd()) || flags.input == "-" {
			return ErrNoTTY
		}

		items := wizardItems(root, results, diff.New)
		approved, err := wizard.New(cmd.InOrStdin(), out, styles).Run(items)
		if err != nil {
			return err
		}
		for _, fp := range approved {
			cacheFile.Approve(fp)
		}
		approvedCount = len(approved)
	}

	if err := cacheFile.Save(ctx, cachePath); err != nil {
		return err
	}

	logger.Debug("approvals saved",
		logging.FieldCache, cachePath,
		logging.FieldApproved, approvedCount,
	)
	fmt.Fprintf(out, "%d approved, %d left unapproved\n",
		approvedCount, len(diff.New)-approvedCount)

	return nil
}

// wizardItems pairs each new fingerprint with its lint message for display,
// in lint-output order.
func wizardItems(root string, results []eslint.Result, newFps []fingerprint.Fingerprint) []wizard.Item {
	newKeys := make(map[string]bool, len(newFps))
	for _, fp := range newFps {
		newKeys[fp.Key()] = true
	}

	var items []wizard.Item
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
			items = append(items, wizard.Item{
				Fingerprint: fp,
				FilePath:    fp.File,
				Message:     msg,
				SourceLine:  sourceLine,
			})
		}
	}
	return items
}
