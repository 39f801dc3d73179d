package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/lintwarden/pkg/eslint"
	"github.com/yaklabco/lintwarden/pkg/fingerprint"
)

// FormatLintMessage formats a single lint message for terminal output.
func (s *Styles) FormatLintMessage(filePath string, msg eslint.Message, sourceLine string) string {
	var builder strings.Builder

	location := fmt.Sprintf("%s:%d:%d",
		s.FilePath.Render(filePath),
		msg.Line,
		msg.Column,
	)

	severity := s.FormatLintSeverity(msg.Severity)

	ruleID := msg.RuleID
	if ruleID == "" {
		ruleID = fingerprint.UnknownRuleID
	}
	ruleDisplay := s.RuleID.Render("(" + ruleID + ")")

	builder.WriteString(fmt.Sprintf("  %s  %s  %s  %s\n",
		location,
		severity,
		s.Message.Render(msg.Message),
		ruleDisplay,
	))

	if sourceLine != "" {
		builder.WriteString("        " + s.SourceLine.Render(strings.TrimRight(sourceLine, "\n")) + "\n")
	}

	return builder.String()
}

// FormatLintSeverity returns a styled severity string for an ESLint level.
func (s *Styles) FormatLintSeverity(severity int) string {
	switch severity {
	case eslint.SeverityError:
		return s.Critical.Render("error")
	case eslint.SeverityWarning:
		return s.Warning.Render("warning")
	default:
		return s.Info.Render("info")
	}
}

// FormatFingerprint formats an approved-warning fingerprint for review output.
func (s *Styles) FormatFingerprint(fp fingerprint.Fingerprint) string {
	return fmt.Sprintf("  %s  %s  %s\n",
		s.FilePath.Render(fp.File),
		s.Message.Render(fp.Message),
		s.RuleID.Render("("+fp.RuleID+")"),
	)
}

// FormatCheckSummary formats the one-line outcome of a cache check.
// Example: "2 new warnings, 14 approved".
func (s *Styles) FormatCheckSummary(newCount, approvedCount, prunedCount int) string {
	if newCount == 0 {
		msg := s.Success.Render("No new warnings") +
			s.Dim.Render(fmt.Sprintf(" (%d approved)", approvedCount))
		if prunedCount > 0 {
			msg += s.Dim.Render(fmt.Sprintf(", %d stale pruned", prunedCount))
		}
		return msg + "\n"
	}

	warningWord := "warnings"
	if newCount == 1 {
		warningWord = "warning"
	}

	parts := []string{
		s.Failure.Render(fmt.Sprintf("%d new %s", newCount, warningWord)),
		fmt.Sprintf("%d approved", approvedCount),
	}
	if prunedCount > 0 {
		parts = append(parts, fmt.Sprintf("%d stale pruned", prunedCount))
	}
	return strings.Join(parts, ", ") + "\n"
}
