package score

import (
	"fmt"
	"strings"
)

// PromptOptions configures remediation prompt rendering.
type PromptOptions struct {
	// ProjectName labels the prompt header; may be empty.
	ProjectName string

	// Endpoint is the AI endpoint base URL recorded in the header so the
	// operator knows where the prompt is meant to be sent.
	Endpoint string
}

// BuildFixPrompt renders the report's fixable findings as a flat
// instruction list for an automated code-fixing agent.
//
// Findings are filtered to Fixable, grouped by tier highest first, and
// keep their plugin attribution and fix hints. Info-tier findings are
// excluded entirely: they are observations, not work items.
func BuildFixPrompt(report *Report, opts PromptOptions) string {
	groups := map[Severity][]Finding{}
	for _, finding := range report.Findings() {
		if !finding.Fixable || finding.Severity == SeverityInfo {
			continue
		}
		groups[finding.Severity] = append(groups[finding.Severity], finding)
	}

	var b strings.Builder
	b.WriteString("You are fixing issues in ")
	if opts.ProjectName != "" {
		b.WriteString(opts.ProjectName)
	} else {
		b.WriteString("this project")
	}
	b.WriteString(". Apply each fix below, most severe first.\n")
	if opts.Endpoint != "" {
		fmt.Fprintf(&b, "# endpoint: %s\n", opts.Endpoint)
	}

	total := 0
	for _, tier := range []Severity{SeverityCritical, SeverityWarning} {
		findings := groups[tier]
		if len(findings) == 0 {
			continue
		}
		fmt.Fprintf(&b, "\n## %s (%d)\n", tier, len(findings))
		for _, finding := range findings {
			total++
			fmt.Fprintf(&b, "%d. [%s] %s", total, finding.PluginID, finding.Message)
			if finding.FixHint != "" {
				fmt.Fprintf(&b, " (fix: %s)", finding.FixHint)
			}
			b.WriteString("\n")
		}
	}

	if total == 0 {
		b.WriteString("\nNothing to fix.\n")
	}
	return b.String()
}
