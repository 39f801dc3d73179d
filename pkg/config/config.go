// Package config defines core configuration types for lintwarden.
// These types are pure data structures with no dependency on the loader.
package config

// Default values applied by NewConfig.
const (
	// DefaultLintCommand is the command run to produce lint results as JSON.
	DefaultLintCommand = "npx eslint . --format json"

	// DefaultCachePath is the approved-warnings cache file, relative to the
	// project root.
	DefaultCachePath = ".lintwarden-cache.json"

	// DefaultAIHost is the local model endpoint named in generated fix prompts.
	DefaultAIHost = "http://localhost:11434"
)

// PluginConfig holds per-plugin configuration options.
type PluginConfig struct {
	Enabled *bool          `mapstructure:"enabled" yaml:"enabled"`
	Options map[string]any `mapstructure:"options" yaml:"options"`
}

// Config is the root configuration structure for lintwarden.
type Config struct {
	// LintCommand is the shell command that emits ESLint JSON on stdout.
	LintCommand string `mapstructure:"lint_command" yaml:"lint_command"`

	// CachePath is where the approved-warnings cache lives, relative to the
	// project root unless absolute.
	CachePath string `mapstructure:"cache_path" yaml:"cache_path"`

	// AIHost is the model endpoint referenced in generated fix prompts.
	AIHost string `mapstructure:"ai_host" yaml:"ai_host"`

	// Plugins contains per-plugin configuration keyed by plugin ID.
	Plugins map[string]PluginConfig `mapstructure:"plugins" yaml:"plugins"`

	// CLI-level options (not persisted to config files).

	// RootDir is the project root to operate on.
	RootDir string `mapstructure:"-" yaml:"-"`

	// NonInteractive disables prompts (e.g., in CI).
	NonInteractive bool `mapstructure:"-" yaml:"-"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		LintCommand: DefaultLintCommand,
		CachePath:   DefaultCachePath,
		AIHost:      DefaultAIHost,
		Plugins:     make(map[string]PluginConfig),
	}
}

// PluginEnabled reports whether a plugin is explicitly enabled or disabled in
// config. The second return is false when the config says nothing about it.
func (c *Config) PluginEnabled(id string) (enabled, set bool) {
	pc, ok := c.Plugins[id]
	if !ok || pc.Enabled == nil {
		return false, false
	}
	return *pc.Enabled, true
}
