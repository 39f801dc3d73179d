package plugins

import (
	"strings"

	"github.com/yaklabco/lintwarden/pkg/score"
)

// testFrameworks are recognized test-runner dependencies.
//
//nolint:gochecknoglobals // Read-only lookup table.
var testFrameworks = []string{"vitest", "jest", "mocha", "ava", "@playwright/test", "cypress"}

// TestsPlugin checks that the project has a working test setup.
type TestsPlugin struct {
	score.BasePlugin
}

// NewTestsPlugin creates the test-setup detector.
func NewTestsPlugin() *TestsPlugin {
	return &TestsPlugin{
		BasePlugin: score.NewBasePlugin("tests", "Test setup", "manifest"),
	}
}

// Detect checks for a test script and a known test framework.
func (p *TestsPlugin) Detect(ctx *score.Context) (score.Result, error) {
	if ctx.Manifest == nil {
		return score.Result{}, nil
	}

	var findings []score.Finding

	script, ok := ctx.Manifest.Scripts["test"]
	switch {
	case !ok || strings.TrimSpace(script) == "":
		findings = append(findings, score.Finding{
			Message:  "no test script in package.json",
			Severity: score.SeverityWarning,
			Fixable:  true,
			FixHint:  "add a test script that runs your test framework",
		})
	case strings.Contains(script, "no test specified"):
		// npm init's placeholder counts as no tests at all.
		findings = append(findings, score.Finding{
			Message:  "test script is the npm placeholder",
			Severity: score.SeverityWarning,
			Fixable:  true,
			FixHint:  "replace the placeholder test script with a real test command",
		})
	}

	hasFramework := false
	for _, framework := range testFrameworks {
		if ctx.Manifest.HasDependency(framework) {
			hasFramework = true
			break
		}
	}
	if !hasFramework {
		findings = append(findings, score.Finding{
			Message:  "no test framework dependency found",
			Severity: score.SeverityWarning,
			Fixable:  false,
		})
	}

	return score.Result{Findings: findings}, nil
}
