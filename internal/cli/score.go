package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yaklabco/lintwarden/internal/logging"
	"github.com/yaklabco/lintwarden/pkg/config"
	"github.com/yaklabco/lintwarden/pkg/score"
)

type scoreFlags struct {
	root    string
	prompt  bool
	enable  []string
	disable []string
}

func newScoreCommand() *cobra.Command {
	var cfg config.Config
	flags := &scoreFlags{}

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Run project health detectors and report findings",
		Long: `Run the plugin pipeline of project health detectors against the project
root and print a per-plugin report with aggregated severity counts.

Detectors run in dependency order and are fault-isolated: a failing
detector becomes a critical finding instead of aborting the run. With
--prompt the fixable findings are also rendered as a remediation prompt
for an automated code-fixing agent, most severe first.

Examples:
  lintwarden score                   # Report on the current directory
  lintwarden score --root ../app
  lintwarden score --disable docs
  lintwarden score --prompt          # Also emit the remediation prompt`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runScore(cmd, &cfg, flags)
		},
	}

	cmd.Flags().StringVar(&flags.root, "root", "", "project root directory (default current directory)")
	cmd.Flags().BoolVar(&flags.prompt, "prompt", false, "emit a remediation prompt for fixable findings")
	cmd.Flags().StringSliceVar(&flags.enable, "enable", nil, "plugin IDs to enable")
	cmd.Flags().StringSliceVar(&flags.disable, "disable", nil, "plugin IDs to disable")

	return cmd
}

func runScore(cmd *cobra.Command, cliCfg *config.Config, flags *scoreFlags) error {
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

	enabled := enabledOverrides(cfg, flags)

	registry := score.DefaultRegistry
	logger.Debug("running health check",
		logging.FieldWorkingDir, root,
		logging.FieldPlugins, registry.IDs(),
	)

	report, err := score.NewRunner(registry).Run(ctx, score.Options{
		RootDir: root,
		Enabled: enabled,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if flags.prompt {
		// Prompt output replaces the report so it can be piped to an agent.
		prompt := score.BuildFixPrompt(report, score.PromptOptions{
			ProjectName: filepath.Base(root),
			Endpoint:    cfg.AIHost,
		})
		fmt.Fprint(out, prompt)
	} else {
		fmt.Fprint(out, stylesFor(cmd).FormatReport(report))
	}

	if report.HasBlockingIssues() {
		return ErrBlockingFindings
	}
	return nil
}

// enabledOverrides folds config-file toggles and CLI flags into the
// runner's enablement map. CLI flags win over config.
func enabledOverrides(cfg *config.Config, flags *scoreFlags) map[string]bool {
	enabled := make(map[string]bool)
	for id := range cfg.Plugins {
		if on, set := cfg.PluginEnabled(id); set {
			enabled[id] = on
		}
	}
	for _, id := range flags.enable {
		enabled[id] = true
	}
	for _, id := range flags.disable {
		enabled[id] = false
	}
	return enabled
}
