package configloader

import "github.com/yaklabco/lintwarden/pkg/config"

// merge combines two configurations, with override taking precedence over base.
// The merge follows these rules:
//   - Scalar values: override overwrites base if override is non-zero
//   - Maps: deep merge, with override's values taking precedence
//   - Nil/unset values in override do not override values in base
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := *base

	if override.LintCommand != "" {
		result.LintCommand = override.LintCommand
	}
	if override.CachePath != "" {
		result.CachePath = override.CachePath
	}
	if override.AIHost != "" {
		result.AIHost = override.AIHost
	}
	if override.RootDir != "" {
		result.RootDir = override.RootDir
	}
	if override.NonInteractive {
		result.NonInteractive = override.NonInteractive
	}

	result.Plugins = mergePlugins(base.Plugins, override.Plugins)

	return &result
}

// mergePlugins performs a deep merge of plugin configurations.
// Both maps are iterated, with override's values taking precedence.
func mergePlugins(base, override map[string]config.PluginConfig) map[string]config.PluginConfig {
	if base == nil && override == nil {
		return nil
	}

	result := make(map[string]config.PluginConfig, len(base)+len(override))
	for key, val := range base {
		result[key] = val
	}
	for key, val := range override {
		if existing, ok := result[key]; ok {
			result[key] = mergePluginConfig(existing, val)
		} else {
			result[key] = val
		}
	}
	return result
}

// mergePluginConfig merges individual plugin configurations.
func mergePluginConfig(base, override config.PluginConfig) config.PluginConfig {
	result := base

	if override.Enabled != nil {
		result.Enabled = override.Enabled
	}
	if override.Options != nil {
		if result.Options == nil {
			result.Options = make(map[string]any)
		}
		for key, val := range override.Options {
			result.Options[key] = val
		}
	}

	return result
}
