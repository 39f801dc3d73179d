package cli_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/lintwarden/internal/cli"
	"github.com/yaklabco/lintwarden/pkg/cache"
	"github.com/yaklabco/lintwarden/pkg/eslint"

	// Import plugins package to register built-in detectors via init(),
	// matching the production entry point in cmd/lintwarden.
	_ "github.com/yaklabco/lintwarden/pkg/score/plugins"
)

// newProject creates an isolated project root with a VCS marker and a lint
// JSON fixture, and keeps user-level config out of the test.
func newProject(t *testing.T, results []eslint.Result) (root, inputPath string) {
	t.Helper()

	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("LINTWARDEN_CACHE_PATH", "")
	t.Setenv("LINTWARDEN_LINT_COMMAND", "")
	t.Setenv("LINTWARDEN_AI_HOST", "")

	root = t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, ".git"), 0755))

	data, err := json.Marshal(results)
	require.NoError(t, err)
	inputPath = filepath.Join(root, "lint-output.json")
	require.NoError(t, os.WriteFile(inputPath, data, 0644))

	return root, inputPath
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := cli.NewRootCommand(cli.BuildInfo{Version: "test", Commit: "test", Date: "test"})
	cmd.SetArgs(args)

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	err := cmd.Execute()
	return out.String(), err
}

func sampleResults(root string) []eslint.Result {
	return []eslint.Result{
		{
			FilePath: filepath.Join(root, "src", "app.ts"),
			Messages: []eslint.Message{
				{
					RuleID:   "no-unused-vars",
					Severity: eslint.SeverityWarning,
					Message:  "'x' is defined but never used.",
					Line:     4,
					Column:   7,
					Source:   "const x = 1;",
				},
				{
					RuleID:   "eqeqeq",
					Severity: eslint.SeverityError,
					Message:  "Expected '===' and instead saw '=='.",
					Line:     9,
					Column:   3,
					Source:   "if (a == b) {",
				},
			},
		},
	}
}

func TestCheck_NewWarningsFailTheRun(t *testing.T) {
	root, _ := newProject(t, nil)
	_, input := rewriteFixture(t, root, sampleResults(root))

	out, err := execute(t, "check", "--input", input, "--root", root)

	require.ErrorIs(t, err, cli.ErrNewWarningsFound)
	assert.Contains(t, out, "2 new warnings")
	assert.Contains(t, out, "'x' is defined but never used.")
	assert.Contains(t, out, "src/app.ts:4:7")
}

// rewriteFixture rewrites the lint fixture for a root created earlier.
func rewriteFixture(t *testing.T, root string, results []eslint.Result) (string, string) {
	t.Helper()
	data, err := json.Marshal(results)
	require.NoError(t, err)
	input := filepath.Join(root, "lint-output.json")
	require.NoError(t, os.WriteFile(input, data, 0644))
	return root, input
}

func TestCheckApproveCheck_RoundTrip(t *testing.T) {
	root, input := newProject(t, nil)
	_, input = rewriteFixture(t, root, sampleResults(root))

	_, err := execute(t, "approve", "--all", "--input", input, "--root", root)
	require.NoError(t, err)

	out, err := execute(t, "check", "--input", input, "--root", root)
	require.NoError(t, err)
	assert.Contains(t, out, "No new warnings")
	assert.Contains(t, out, "(2 approved)")

	// The cache file is committed alongside the project.
	cacheFile := cache.Load(filepath.Join(root, ".lintwarden-cache.json"))
	assert.Len(t, cacheFile.ApprovedWarnings, 2)
}

func TestCheck_PrunesFixedWarnings(t *testing.T) {
	root, input := newProject(t, nil)
	_, input = rewriteFixture(t, root, sampleResults(root))

	_, err := execute(t, "approve", "--all", "--input", input, "--root", root)
	require.NoError(t, err)

	// One warning got fixed.
	remaining := sampleResults(root)
	remaining[0].Messages = remaining[0].Messages[:1]
	_, input = rewriteFixture(t, root, remaining)

	out, err := execute(t, "check", "--input", input, "--root", root)
	require.NoError(t, err)
	assert.Contains(t, out, "1 stale pruned")

	cacheFile := cache.Load(filepath.Join(root, ".lintwarden-cache.json"))
	assert.Len(t, cacheFile.ApprovedWarnings, 1)
}

func TestCheck_ConfigDriftDeclinedWithoutTerminal(t *testing.T) {
	root, input := newProject(t, nil)
	_, input = rewriteFixture(t, root, sampleResults(root))

	_, err := execute(t, "approve", "--all", "--input", input, "--root", root)
	require.NoError(t, err)

	// Changing the lint config invalidates the recorded hash.
	require.NoError(t, os.WriteFile(filepath.Join(root, "eslint.config.js"),
		[]byte("export default []"), 0644))

	_, err = execute(t, "check", "--input", input, "--root", root)
	require.ErrorIs(t, err, cli.ErrConfigDeclined)

	// Declining leaves approvals intact.
	cacheFile := cache.Load(filepath.Join(root, ".lintwarden-cache.json"))
	assert.Len(t, cacheFile.ApprovedWarnings, 2)
}

func TestCheck_ConfigDriftAcceptedWithYes(t *testing.T) {
	root, input := newProject(t, nil)
	_, input = rewriteFixture(t, root, sampleResults(root))

	_, err := execute(t, "approve", "--all", "--input", input, "--root", root)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(root, "eslint.config.js"),
		[]byte("export default []"), 0644))

	out, err := execute(t, "check", "--yes", "--input", input, "--root", root)
	require.NoError(t, err)
	assert.Contains(t, out, "No new warnings")
}

func TestFilter_RemovesApprovedMessages(t *testing.T) {
	root, input := newProject(t, nil)
	_, input = rewriteFixture(t, root, sampleResults(root))

	_, err := execute(t, "approve", "--all", "--input", input, "--root", root)
	require.NoError(t, err)

	out, err := execute(t, "filter", "--input", input, "--root", root)
	require.NoError(t, err)

	var filtered []eslint.Result
	require.NoError(t, json.Unmarshal([]byte(out), &filtered))
	require.Len(t, filtered, 1)
	assert.Empty(t, filtered[0].Messages)
}

func TestFilter_FailsOpenWithoutCache(t *testing.T) {
	root, input := newProject(t, nil)
	_, input = rewriteFixture(t, root, sampleResults(root))

	out, err := execute(t, "filter", "--input", input, "--root", root)
	require.NoError(t, err)

	var filtered []eslint.Result
	require.NoError(t, json.Unmarshal([]byte(out), &filtered))
	require.Len(t, filtered, 1)
	assert.Len(t, filtered[0].Messages, 2)
}

func TestFilter_PassesThroughMalformedInput(t *testing.T) {
	root, _ := newProject(t, nil)
	input := filepath.Join(root, "garbage.txt")
	require.NoError(t, os.WriteFile(input, []byte("not json at all"), 0644))

	out, err := execute(t, "filter", "--input", input, "--root", root)
	require.NoError(t, err)
	assert.Equal(t, "not json at all", out)
}

func TestApprove_RequiresTerminalWithoutAll(t *testing.T) {
	root, input := newProject(t, nil)
	_, input = rewriteFixture(t, root, sampleResults(root))

	// Test stdin is not a terminal.
	_, err := execute(t, "approve", "--input", input, "--root", root)
	require.ErrorIs(t, err, cli.ErrNoTTY)
}

func TestScore_ReportsOnProject(t *testing.T) {
	root, _ := newProject(t, nil)
	require.NoError(t, os.WriteFile(filepath.Join(root, "package.json"),
		[]byte(`{"name":"acme","scripts":{"test":"vitest"}}`), 0644))

	out, err := execute(t, "score", "--root", root)

	// The bare project is missing an eslint config, which is critical.
	require.ErrorIs(t, err, cli.ErrBlockingFindings)
	assert.Contains(t, out, "Plugins run:")
	assert.Contains(t, out, "Project health check failed")
}

func TestScore_PromptOutput(t *testing.T) {
	root, _ := newProject(t, nil)

	out, err := execute(t, "score", "--prompt", "--root", root)

	require.ErrorIs(t, err, cli.ErrBlockingFindings)
	assert.Contains(t, out, "Apply each fix below, most severe first.")
	assert.Contains(t, out, "## critical")
}

func TestExitCodeFromError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{nil, cli.ExitSuccess},
		{cli.ErrNewWarningsFound, cli.ExitNewWarnings},
		{cli.ErrBlockingFindings, cli.ExitBlockingFindings},
		{cli.ErrConfigDeclined, cli.ExitConfigError},
		{cli.ErrNoTTY, cli.ExitInvalidUsage},
		{fmt.Errorf("boom"), cli.ExitInternalError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, cli.ExitCodeFromError(tt.err))
	}
}

func TestIsBlockingSignal(t *testing.T) {
	assert.True(t, cli.IsBlockingSignal(cli.ErrNewWarningsFound))
	assert.True(t, cli.IsBlockingSignal(cli.ErrBlockingFindings))
	assert.True(t, cli.IsBlockingSignal(cli.ErrConfigDeclined))
	assert.False(t, cli.IsBlockingSignal(cli.ErrNoTTY))
	assert.False(t, cli.IsBlockingSignal(fmt.Errorf("boom")))
}
