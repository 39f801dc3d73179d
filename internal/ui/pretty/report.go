package pretty

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/yaklabco/lintwarden/pkg/score"
)

const (
	defaultDividerWidth = 40
	maxDividerWidth     = 72
)

// dividerWidth picks a divider width from the terminal, bounded for readability.
func dividerWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return defaultDividerWidth
	}
	if width > maxDividerWidth {
		return maxDividerWidth
	}
	return width
}

// FormatReport formats a full pipeline report for terminal output.
func (s *Styles) FormatReport(report *score.Report) string {
	var builder strings.Builder

	for i := range report.Sections {
		builder.WriteString(s.FormatSection(&report.Sections[i]))
	}
	builder.WriteString(s.FormatReportSummary(report))

	return builder.String()
}

// FormatSection formats one plugin's section, headed by its worst tier.
func (s *Styles) FormatSection(section *score.Section) string {
	var builder strings.Builder

	header := s.PluginID.Render(section.PluginID)
	if section.Description != "" {
		header += "  " + s.Dim.Render(section.Description)
	}
	builder.WriteString(header)
	builder.WriteString("  " + s.FormatSeverity(section.MaxSeverity()) + "\n")

	for _, finding := range section.Findings {
		builder.WriteString(fmt.Sprintf("  %s  %s",
			s.FormatSeverity(finding.Severity),
			s.Message.Render(finding.Message),
		))
		if finding.Fixable && finding.FixHint != "" {
			builder.WriteString("  " + s.FixHint.Render("fix: "+finding.FixHint))
		}
		builder.WriteString("\n")
	}

	for _, rec := range section.Recommendations {
		builder.WriteString("  " + s.Dim.Render("note: "+rec) + "\n")
	}

	return builder.String()
}

// FormatSeverity returns a styled tier label.
func (s *Styles) FormatSeverity(severity score.Severity) string {
	switch severity {
	case score.SeverityCritical:
		return s.Critical.Render("critical")
	case score.SeverityWarning:
		return s.Warning.Render("warning")
	default:
		return s.Info.Render("info")
	}
}

// FormatReportSummary formats the aggregate tallies as a summary block.
func (s *Styles) FormatReportSummary(report *score.Report) string {
	var builder strings.Builder

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", dividerWidth()))
	builder.WriteString("\n")

	builder.WriteString("  Plugins run:    " +
		s.SummaryValue.Render(strconv.Itoa(report.Stats.PluginsRun)) + "\n")
	builder.WriteString("  Total findings: " +
		s.SummaryValue.Render(strconv.Itoa(report.Stats.FindingsTotal)) + "\n")

	if critical := report.Stats.FindingsBySeverity["critical"]; critical > 0 {
		builder.WriteString("    Critical:     " +
			s.Critical.Render(strconv.Itoa(critical)) + "\n")
	}
	if warnings := report.Stats.FindingsBySeverity["warning"]; warnings > 0 {
		builder.WriteString("    Warnings:     " +
			s.Warning.Render(strconv.Itoa(warnings)) + "\n")
	}
	if infos := report.Stats.FindingsBySeverity["info"]; infos > 0 {
		builder.WriteString("    Info:         " +
			s.Info.Render(strconv.Itoa(infos)) + "\n")
	}
	if report.Stats.FindingsFixable > 0 {
		builder.WriteString("  Fixable:        " +
			s.Success.Render(strconv.Itoa(report.Stats.FindingsFixable)) + "\n")
	}

	builder.WriteString("\n")

	switch {
	case report.HasBlockingIssues():
		builder.WriteString(s.Failure.Render("Project health check failed"))
	case report.Stats.FindingsBySeverity["warning"] > 0:
		builder.WriteString(s.Warning.Render("Project health check passed with warnings"))
	default:
		builder.WriteString(s.Success.Render("Project health check passed"))
	}
	builder.WriteString("\n")

	return builder.String()
}
