package plugins

import (
	"fmt"

	"github.com/yaklabco/lintwarden/pkg/eslint"
	"github.com/yaklabco/lintwarden/pkg/score"
)

// frameworkLintPlugins maps a detected framework to the lint plugin that
// should accompany it.
//
//nolint:gochecknoglobals // Read-only lookup table.
var frameworkLintPlugins = map[score.Framework]string{
	score.FrameworkReact:   "eslint-plugin-react",
	score.FrameworkNext:    "eslint-config-next",
	score.FrameworkVue:     "eslint-plugin-vue",
	score.FrameworkSvelte:  "eslint-plugin-svelte",
	score.FrameworkAngular: "@angular-eslint/eslint-plugin",
}

// ESLintPlugin checks lint configuration, including the framework-specific
// plugin implied by the framework detector.
type ESLintPlugin struct {
	score.BasePlugin
}

// NewESLintPlugin creates the lint-configuration detector.
func NewESLintPlugin() *ESLintPlugin {
	return &ESLintPlugin{
		BasePlugin: score.NewBasePlugin("eslint", "Lint configuration", "framework"),
	}
}

// Detect checks that a lint config exists and matches the detected stack.
func (p *ESLintPlugin) Detect(ctx *score.Context) (score.Result, error) {
	var findings []score.Finding

	configs := eslint.DiscoverConfigFiles(ctx.RootDir)
	if len(configs) == 0 {
		findings = append(findings, score.Finding{
			Message:  "no lint configuration found",
			Severity: score.SeverityCritical,
			Fixable:  true,
			FixHint:  "create eslint.config.js and add eslint as a devDependency",
		})
		return score.Result{Findings: findings}, nil
	}

	if ctx.Manifest != nil && !ctx.Manifest.HasDependency("eslint") {
		findings = append(findings, score.Finding{
			Message:  "lint config exists but eslint is not a dependency",
			Severity: score.SeverityWarning,
			Fixable:  true,
			FixHint:  "add eslint as a devDependency",
		})
	}

	if want, ok := frameworkLintPlugins[ctx.Framework]; ok {
		if ctx.Manifest != nil && !ctx.Manifest.HasDependency(want) {
			findings = append(findings, score.Finding{
				Message:  fmt.Sprintf("%s project without %s", ctx.Framework, want),
				Severity: score.SeverityWarning,
				Fixable:  true,
				FixHint:  fmt.Sprintf("add %s as a devDependency", want),
			})
		}
	}

	return score.Result{Findings: findings}, nil
}
