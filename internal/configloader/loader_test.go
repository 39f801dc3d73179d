package configloader

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/lintwarden/pkg/config"
)

// isolatedOpts keeps tests away from real system/user config files.
func isolatedOpts(workDir string) LoadOptions {
	return LoadOptions{
		WorkingDir:         workDir,
		IgnoreSystemConfig: true,
		IgnoreUserConfig:   true,
		IgnoreEnv:          true,
	}
}

func TestLoad_DefaultsWhenNoConfig(t *testing.T) {
	dir := t.TempDir()
	// A .git dir bounds the upward search to the temp tree.
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0755))

	result, err := Load(context.Background(), isolatedOpts(dir))
	require.NoError(t, err)

	assert.Equal(t, config.DefaultLintCommand, result.Config.LintCommand)
	assert.Equal(t, config.DefaultCachePath, result.Config.CachePath)
	assert.Empty(t, result.LoadedFrom)
}

func TestLoad_ProjectConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0755))
	path := filepath.Join(dir, ".lintwarden.yml")
	require.NoError(t, os.WriteFile(path, []byte("lint_command: \"eslint src --format json\"\ncache_path: \".cache/warnings.json\"\n"), 0644))

	result, err := Load(context.Background(), isolatedOpts(dir))
	require.NoError(t, err)

	assert.Equal(t, "eslint src --format json", result.Config.LintCommand)
	assert.Equal(t, ".cache/warnings.json", result.Config.CachePath)
	assert.Equal(t, config.DefaultAIHost, result.Config.AIHost)
	assert.Equal(t, []string{path}, result.LoadedFrom)
}

func TestLoad_ProjectConfigFoundUpward(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".lintwarden.yml"),
		[]byte("ai_host: \"http://models.internal:11434\"\n"), 0644))
	nested := filepath.Join(dir, "packages", "web")
	require.NoError(t, os.MkdirAll(nested, 0755))

	result, err := Load(context.Background(), isolatedOpts(nested))
	require.NoError(t, err)

	assert.Equal(t, "http://models.internal:11434", result.Config.AIHost)
}

func TestLoad_SearchStopsAtVCSRoot(t *testing.T) {
	outer := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(outer, ".lintwarden.yml"),
		[]byte("lint_command: \"should-not-load\"\n"), 0644))
	inner := filepath.Join(outer, "repo")
	require.NoError(t, os.MkdirAll(filepath.Join(inner, ".git"), 0755))

	result, err := Load(context.Background(), isolatedOpts(inner))
	require.NoError(t, err)

	assert.Equal(t, config.DefaultLintCommand, result.Config.LintCommand)
	assert.Empty(t, result.Paths.Project)
}

func TestLoad_ExplicitPathOverridesProject(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".lintwarden.yml"),
		[]byte("lint_command: \"from-project\"\n"), 0644))
	explicit := filepath.Join(dir, "ci.yml")
	require.NoError(t, os.WriteFile(explicit, []byte("lint_command: \"from-explicit\"\n"), 0644))

	opts := isolatedOpts(dir)
	opts.ExplicitPath = explicit

	result, err := Load(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, "from-explicit", result.Config.LintCommand)
}

func TestLoad_ExplicitPathMissing(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0755))

	opts := isolatedOpts(dir)
	opts.ExplicitPath = filepath.Join(dir, "nope.yml")

	_, err := Load(context.Background(), opts)
	assert.Error(t, err)
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".lintwarden.yml"),
		[]byte(":\n  - not: [valid\n"), 0644))

	_, err := Load(context.Background(), isolatedOpts(dir))
	assert.Error(t, err)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".lintwarden.yml"),
		[]byte("cache_path: \"from-file.json\"\n"), 0644))
	t.Setenv("LINTWARDEN_CACHE_PATH", "from-env.json")

	opts := isolatedOpts(dir)
	opts.IgnoreEnv = false

	result, err := Load(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, "from-env.json", result.Config.CachePath)
}

func TestLoad_CLIConfigHighestPrecedence(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0755))
	t.Setenv("LINTWARDEN_AI_HOST", "http://env:11434")

	opts := isolatedOpts(dir)
	opts.IgnoreEnv = false
	opts.CLIConfig = &config.Config{AIHost: "http://flag:11434"}

	result, err := Load(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, "http://flag:11434", result.Config.AIHost)
}

func TestLoad_PluginToggles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".lintwarden.yml"),
		[]byte("plugins:\n  docs:\n    enabled: false\n  languages:\n    enabled: true\n"), 0644))

	result, err := Load(context.Background(), isolatedOpts(dir))
	require.NoError(t, err)

	enabled, set := result.Config.PluginEnabled("docs")
	assert.True(t, set)
	assert.False(t, enabled)

	enabled, set = result.Config.PluginEnabled("languages")
	assert.True(t, set)
	assert.True(t, enabled)

	_, set = result.Config.PluginEnabled("git")
	assert.False(t, set)
}

func TestMerge_PluginDeepMerge(t *testing.T) {
	on := true
	off := false

	base := &config.Config{Plugins: map[string]config.PluginConfig{
		"docs": {Enabled: &on, Options: map[string]any{"readme": "README.md"}},
	}}
	override := &config.Config{Plugins: map[string]config.PluginConfig{
		"docs": {Enabled: &off},
	}}

	merged := merge(base, override)

	pc := merged.Plugins["docs"]
	require.NotNil(t, pc.Enabled)
	assert.False(t, *pc.Enabled)
	assert.Equal(t, "README.md", pc.Options["readme"])
}
