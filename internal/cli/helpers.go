package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/lintwarden/internal/configloader"
	"github.com/yaklabco/lintwarden/internal/logging"
	"github.com/yaklabco/lintwarden/internal/ui/pretty"
	"github.com/yaklabco/lintwarden/pkg/config"
)

// commandContext returns the command's context, defaulting to Background.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// loadConfig resolves the merged configuration for a command invocation.
func loadConfig(cmd *cobra.Command, cliCfg *config.Config) (*config.Config, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("get config flag: %w", err)
	}

	workDir := ""
	if cliCfg != nil && cliCfg.RootDir != "" {
		workDir = cliCfg.RootDir
	}

	result, err := configloader.Load(commandContext(cmd), configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cliCfg,
	})
	if err != nil {
		return nil, errors.Join(errors.New("failed to load configuration"), err)
	}

	if len(result.LoadedFrom) > 0 {
		logging.Default().Debug("loaded configuration from", "files", result.LoadedFrom)
	}

	return result.Config, nil
}

// resolveRoot resolves the project root directory to an absolute path.
func resolveRoot(root string) (string, error) {
	if root == "" {
		root = "."
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("resolve project root: %w", err)
	}
	return abs, nil
}

// resolveCachePath resolves the cache path relative to the project root.
func resolveCachePath(root, cachePath string) string {
	if filepath.IsAbs(cachePath) {
		return cachePath
	}
	return filepath.Join(root, cachePath)
}

// readLintOutput obtains raw lint engine output. An explicit input path wins
// over running the configured lint command; "-" reads from stdin.
func readLintOutput(cmd *cobra.Command, cfg *config.Config, root, inputPath string) ([]byte, error) {
	switch {
	case inputPath == "-":
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	case inputPath != "":
		data, err := os.ReadFile(inputPath)
		if err != nil {
			return nil, fmt.Errorf("read lint output: %w", err)
		}
		return data, nil
	default:
		return runLintCommand(commandContext(cmd), cfg.LintCommand, root)
	}
}

// runLintCommand executes the configured lint command in the project root
// and captures stdout. Lint engines exit nonzero when they report issues,
// so a nonzero exit with parseable output is not an error here.
func runLintCommand(ctx context.Context, command, root string) ([]byte, error) {
	logging.Default().Debug("running lint command",
		logging.FieldCommand, command,
		logging.FieldWorkingDir, root,
	)

	execCmd := exec.CommandContext(ctx, "sh", "-c", command)
	execCmd.Dir = root

	output, err := execCmd.Output()
	if err != nil && len(output) == 0 {
		return nil, fmt.Errorf("run lint command %q: %w", command, err)
	}
	return output, nil
}

// stylesFor builds output styles from the persistent --color flag.
func stylesFor(cmd *cobra.Command) *pretty.Styles {
	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}
	return pretty.NewStyles(pretty.IsColorEnabled(colorMode, os.Stdout))
}

// isInteractive returns true if stdin is a terminal.
func isInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// confirmConfigChange asks the user to accept a changed lint configuration.
// Declining is the default answer.
func confirmConfigChange(in io.Reader, out io.Writer) (bool, error) {
	if _, err := io.WriteString(out,
		"Lint configuration has changed since warnings were approved.\n"); err != nil {
		return false, fmt.Errorf("write prompt: %w", err)
	}
	if _, err := io.WriteString(out,
		"Keep existing approvals under the new configuration? [y/N] "); err != nil {
		return false, fmt.Errorf("write prompt: %w", err)
	}

	response, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("read response: %w", err)
	}

	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes", nil
}
