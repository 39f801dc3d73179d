package pretty

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/lintwarden/pkg/eslint"
	"github.com/yaklabco/lintwarden/pkg/fingerprint"
	"github.com/yaklabco/lintwarden/pkg/score"
)

func TestIsColorEnabled(t *testing.T) {
	var buf bytes.Buffer

	assert.True(t, IsColorEnabled("always", &buf))
	assert.False(t, IsColorEnabled("never", &buf))
	// A bytes.Buffer is never a TTY.
	assert.False(t, IsColorEnabled("auto", &buf))
}

func TestIsColorEnabled_NoColorEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	assert.False(t, IsColorEnabled("auto", &buf))
	// "always" wins over NO_COLOR.
	assert.True(t, IsColorEnabled("always", &buf))
}

func TestFormatLintMessage(t *testing.T) {
	styles := NewStyles(false)

	out := styles.FormatLintMessage("src/app.ts", eslint.Message{
		RuleID:   "no-unused-vars",
		Severity: eslint.SeverityWarning,
		Message:  "'x' is defined but never used.",
		Line:     4,
		Column:   7,
	}, "const x = 1;")

	assert.Contains(t, out, "src/app.ts:4:7")
	assert.Contains(t, out, "warning")
	assert.Contains(t, out, "'x' is defined but never used.")
	assert.Contains(t, out, "(no-unused-vars)")
	assert.Contains(t, out, "const x = 1;")
}

func TestFormatLintMessage_MissingRuleID(t *testing.T) {
	styles := NewStyles(false)

	out := styles.FormatLintMessage("src/app.ts", eslint.Message{
		Severity: eslint.SeverityError,
		Message:  "Parsing error",
		Line:     1,
		Column:   1,
	}, "")

	assert.Contains(t, out, "(unknown)")
	assert.Contains(t, out, "error")
}

func TestFormatFingerprint(t *testing.T) {
	styles := NewStyles(false)

	fp := fingerprint.Fingerprint{
		File:    "src/app.ts",
		RuleID:  "eqeqeq",
		Message: "Expected '===' and instead saw '=='.",
	}
	out := styles.FormatFingerprint(fp)

	assert.Contains(t, out, "src/app.ts")
	assert.Contains(t, out, "(eqeqeq)")
}

func TestFormatCheckSummary(t *testing.T) {
	styles := NewStyles(false)

	tests := []struct {
		name     string
		newCount int
		approved int
		pruned   int
		want     []string
	}{
		{name: "clean", newCount: 0, approved: 14, pruned: 0, want: []string{"No new warnings", "14 approved"}},
		{name: "clean with pruned", newCount: 0, approved: 5, pruned: 3, want: []string{"No new warnings", "3 stale pruned"}},
		{name: "one new", newCount: 1, approved: 2, pruned: 0, want: []string{"1 new warning,", "2 approved"}},
		{name: "many new", newCount: 4, approved: 0, pruned: 1, want: []string{"4 new warnings", "1 stale pruned"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := styles.FormatCheckSummary(tt.newCount, tt.approved, tt.pruned)
			for _, want := range tt.want {
				assert.Contains(t, out, want)
			}
		})
	}
}

func TestFormatReport(t *testing.T) {
	styles := NewStyles(false)

	report := score.NewReport()
	report.Add(score.Section{
		PluginID:    "git",
		Description: "Version control",
		Findings: []score.Finding{{
			PluginID: "git",
			Message:  "project is not a git repository",
			Severity: score.SeverityCritical,
			Fixable:  true,
			FixHint:  "run `git init`",
		}},
	})
	report.Add(score.Section{
		PluginID:        "docs",
		Description:     "Project documentation",
		Recommendations: []string{"consider adding a CONTRIBUTING.md"},
	})

	out := styles.FormatReport(report)

	assert.Contains(t, out, "git")
	assert.Contains(t, out, "project is not a git repository")
	assert.Contains(t, out, "fix: run `git init`")
	assert.Contains(t, out, "note: consider adding a CONTRIBUTING.md")
	assert.Contains(t, out, "Plugins run:    2")
	assert.Contains(t, out, "Total findings: 1")
	assert.Contains(t, out, "Critical:     1")
	assert.Contains(t, out, "Project health check failed")
}

func TestFormatReport_Passing(t *testing.T) {
	styles := NewStyles(false)

	report := score.NewReport()
	report.Add(score.Section{PluginID: "manifest", Description: "Package manifest"})

	out := styles.FormatReport(report)

	assert.Contains(t, out, "Project health check passed")
	assert.NotContains(t, out, "Critical:")
}
