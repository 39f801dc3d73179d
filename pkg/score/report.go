package score

// Section groups one plugin's output in the report.
type Section struct {
	// PluginID identifies the plugin that produced this section.
	PluginID string

	// Description is the plugin's summary line.
	Description string

	// Findings are the plugin's issues, runner-attributed.
	Findings []Finding

	// Recommendations are free-text suggestions.
	Recommendations []string
}

// MaxSeverity returns the highest tier present among the section's
// findings. A single top-tier finding dominates the section's emphasis
// even if most findings are low-tier. Sections without findings report
// SeverityInfo.
func (s *Section) MaxSeverity() Severity {
	max := SeverityInfo
	for _, finding := range s.Findings {
		if finding.Severity > max {
			max = finding.Severity
		}
	}
	return max
}

// Stats are the per-tier counts for a run. Scoring is counting: no
// weighted arithmetic or normalization is applied beyond the tallies.
type Stats struct {
	// FindingsTotal is the number of findings across all plugins.
	FindingsTotal int

	// FindingsBySeverity maps tier name to count.
	FindingsBySeverity map[string]int

	// FindingsFixable is the number of fixable findings.
	FindingsFixable int

	// PluginsRun is the number of plugins executed.
	PluginsRun int
}

// Report is the aggregated output of a pipeline run.
type Report struct {
	// Sections are per-plugin outputs in execution order.
	Sections []Section

	// Stats are the aggregate tallies.
	Stats Stats
}

// NewReport creates an empty report with initialized maps.
func NewReport() *Report {
	return &Report{
		Stats: Stats{FindingsBySeverity: make(map[string]int)},
	}
}

// Add appends a section and folds its findings into the stats.
func (r *Report) Add(section Section) {
	r.Sections = append(r.Sections, section)
	r.Stats.PluginsRun++
	for _, finding := range section.Findings {
		r.Stats.FindingsTotal++
		r.Stats.FindingsBySeverity[finding.Severity.String()]++
		if finding.Fixable {
			r.Stats.FindingsFixable++
		}
	}
}

// HasBlockingIssues reports whether any finding reached the critical tier.
func (r *Report) HasBlockingIssues() bool {
	if r == nil {
		return false
	}
	return r.Stats.FindingsBySeverity[SeverityCritical.String()] > 0
}

// Findings returns all findings across sections in execution order.
func (r *Report) Findings() []Finding {
	var all []Finding
	for _, section := range r.Sections {
		all = append(all, section.Findings...)
	}
	return all
}
