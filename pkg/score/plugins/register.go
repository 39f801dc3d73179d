package plugins

import "github.com/yaklabco/lintwarden/pkg/score"

// RegisterAll registers all built-in plugins with the given registry.
func RegisterAll(registry *score.Registry) {
	registry.Register(NewManifestPlugin())
	registry.Register(NewFrameworkPlugin())
	registry.Register(NewGitPlugin())
	registry.Register(NewTypeScriptPlugin())
	registry.Register(NewESLintPlugin())
	registry.Register(NewTestsPlugin())
	registry.Register(NewDocsPlugin())
	registry.Register(NewLanguagesPlugin())
}

// init registers all built-in plugins with the default registry.
//
//nolint:gochecknoinits // Init is intentional for automatic plugin registration
func init() {
	RegisterAll(score.DefaultRegistry)
}
