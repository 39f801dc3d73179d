package configloader

import (
	"os"

	"github.com/yaklabco/lintwarden/pkg/config"
)

// envVarPrefix is the prefix for all lintwarden environment variables.
const envVarPrefix = "LINTWARDEN_"

// envMappings maps environment variable names (without prefix) to setter
// functions on the config.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = map[string]func(cfg *config.Config, value string){
	"LINT_COMMAND": func(cfg *config.Config, value string) { cfg.LintCommand = value },
	"CACHE_PATH":   func(cfg *config.Config, value string) { cfg.CachePath = value },
	"AI_HOST":      func(cfg *config.Config, value string) { cfg.AIHost = value },
}

// LoadFromEnv applies environment variable overrides to the configuration.
// Environment variables are prefixed with LINTWARDEN_ (e.g., LINTWARDEN_LINT_COMMAND).
func LoadFromEnv(cfg *config.Config) {
	if cfg == nil {
		return
	}

	for envSuffix, apply := range envMappings {
		value := os.Getenv(envVarPrefix + envSuffix)
		if value == "" {
			continue
		}
		apply(cfg, value)
	}
}

// ListEnvVars returns all supported environment variables with their descriptions.
func ListEnvVars() map[string]string {
	return map[string]string{
		"LINTWARDEN_LINT_COMMAND": "Command that emits ESLint JSON on stdout",
		"LINTWARDEN_CACHE_PATH":   "Path to the approved-warnings cache file",
		"LINTWARDEN_AI_HOST":      "Model endpoint referenced in generated fix prompts",
	}
}
