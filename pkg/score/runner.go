package score

import (
	"context"
	"fmt"
)

// Options configures a pipeline run.
type Options struct {
	// RootDir is the project directory to inspect.
	RootDir string

	// Enabled overrides plugin enablement by id. Plugins not present use
	// their DefaultEnabled value.
	Enabled map[string]bool
}

// Runner executes the plugin pipeline against a project directory.
type Runner struct {
	registry *Registry
}

// NewRunner creates a runner over the given registry.
func NewRunner(registry *Registry) *Runner {
	return &Runner{registry: registry}
}

// Run executes every enabled plugin in dependency order and aggregates
// their findings into a report.
//
// A plugin never aborts the run: an error or panic from Detect is
// converted into a single synthetic critical finding attributed to that
// plugin, and execution continues. Only a malformed dependency graph or
// context cancellation fails the run as a whole.
func (r *Runner) Run(ctx context.Context, opts Options) (*Report, error) {
	ordered, err := r.registry.Order(enabledFunc(opts.Enabled))
	if err != nil {
		return nil, fmt.Errorf("validate plugin graph: %w", err)
	}

	store := NewContext(ctx, opts.RootDir)
	report := NewReport()

	for _, plugin := range ordered {
		select {
		case <-ctx.Done():
			return report, fmt.Errorf("analysis cancelled: %w", ctx.Err())
		default:
		}

		result := runPlugin(plugin, store)

		section := Section{
			PluginID:        plugin.ID(),
			Description:     plugin.Description(),
			Recommendations: result.Recommendations,
		}
		for _, finding := range result.Findings {
			finding.PluginID = plugin.ID()
			section.Findings = append(section.Findings, finding)
		}
		report.Add(section)
	}

	return report, nil
}

// runPlugin invokes Detect with fault isolation.
func runPlugin(plugin Plugin, store *Context) (result Result) {
	defer func() {
		if rec := recover(); rec != nil {
			result = failureResult(fmt.Sprintf("plugin panicked: %v", rec))
		}
	}()

	result, err := plugin.Detect(store)
	if err != nil {
		return failureResult(fmt.Sprintf("plugin failed: %v", err))
	}
	return result
}

// failureResult is the synthetic maximum-severity finding for a plugin
// that errored or panicked.
func failureResult(msg string) Result {
	return Result{Findings: []Finding{{
		Message:  msg,
		Severity: SeverityCritical,
	}}}
}

func enabledFunc(overrides map[string]bool) func(Plugin) bool {
	return func(p Plugin) bool {
		if on, ok := overrides[p.ID()]; ok {
			return on
		}
		return p.DefaultEnabled()
	}
}
