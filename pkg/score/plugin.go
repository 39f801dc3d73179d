// Package score provides the project-inspection plugin pipeline: a registry
// of independent detectors executed in dependency order, with per-plugin
// fault isolation and severity-tiered aggregation.
package score

// Severity is the three-tier ordered finding severity, lowest first.
type Severity int

const (
	// SeverityInfo is informational only and never blocks or appears in the
	// remediation prompt.
	SeverityInfo Severity = iota

	// SeverityWarning marks an issue worth fixing.
	SeverityWarning

	// SeverityCritical marks an issue that dominates a section's emphasis.
	SeverityCritical
)

// String returns the lowercase name of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Finding is a single detected issue.
type Finding struct {
	// PluginID attributes the finding to the plugin that produced it.
	// The runner fills it in; plugins may leave it empty.
	PluginID string

	// Message describes the issue.
	Message string

	// Severity is the finding's tier.
	Severity Severity

	// Fixable marks the finding as addressable by an automated fixing agent.
	Fixable bool

	// FixHint is an optional instruction for fixing the issue.
	FixHint string
}

// Result is the output of one plugin run.
type Result struct {
	// Findings are the detected issues, possibly empty.
	Findings []Finding

	// Recommendations are free-text suggestions that are not issues.
	Recommendations []string
}

// Plugin is a named, independently testable project detector.
//
// Detect must not return an error for expected conditions (missing file,
// missing dependency); those are modeled as findings. An error or panic is
// converted by the runner into a single synthetic critical finding and the
// run continues with the remaining plugins.
type Plugin interface {
	// ID returns the unique key for this plugin.
	ID() string

	// Description returns a short human-readable summary.
	Description() string

	// Dependencies returns the ids of plugins that must run first.
	Dependencies() []string

	// DefaultEnabled returns whether the plugin runs unless configured off.
	DefaultEnabled() bool

	// Detect inspects the project and reports findings. It must be a pure
	// function of the context and the filesystem at call time.
	Detect(ctx *Context) (Result, error)
}

// BasePlugin provides the boilerplate half of the Plugin interface.
// Embed it and implement Detect.
type BasePlugin struct {
	id   string
	desc string
	deps []string
}

// NewBasePlugin creates a BasePlugin with the given identity.
func NewBasePlugin(id, desc string, deps ...string) BasePlugin {
	return BasePlugin{id: id, desc: desc, deps: deps}
}

// ID returns the unique key for this plugin.
func (p *BasePlugin) ID() string { return p.id }

// Description returns a short human-readable summary.
func (p *BasePlugin) Description() string { return p.desc }

// Dependencies returns the ids of plugins that must run first.
func (p *BasePlugin) Dependencies() []string { return p.deps }

// DefaultEnabled returns true. Override to change the default.
func (p *BasePlugin) DefaultEnabled() bool { return true }
