package plugins

import (
	"fmt"

	"github.com/yaklabco/lintwarden/pkg/score"
)

// frameworkMarkers maps a manifest dependency to the framework it implies.
// Order matters: next implies react, so it is checked first.
//
//nolint:gochecknoglobals // Read-only lookup table.
var frameworkMarkers = []struct {
	dep       string
	framework score.Framework
}{
	{"next", score.FrameworkNext},
	{"react", score.FrameworkReact},
	{"vue", score.FrameworkVue},
	{"svelte", score.FrameworkSvelte},
	{"@angular/core", score.FrameworkAngular},
}

// FrameworkPlugin detects the frontend framework from manifest dependencies
// and records it for downstream detectors.
type FrameworkPlugin struct {
	score.BasePlugin
}

// NewFrameworkPlugin creates the framework detector.
func NewFrameworkPlugin() *FrameworkPlugin {
	return &FrameworkPlugin{
		BasePlugin: score.NewBasePlugin("framework", "Frontend framework detection", "manifest"),
	}
}

// Detect records the first matching framework. No manifest means no
// detection; that is already reported by the manifest plugin.
func (p *FrameworkPlugin) Detect(ctx *score.Context) (score.Result, error) {
	if ctx.Manifest == nil {
		return score.Result{}, nil
	}

	for _, marker := range frameworkMarkers {
		if ctx.Manifest.HasDependency(marker.dep) {
			ctx.Framework = marker.framework
			return score.Result{Findings: []score.Finding{{
				Message:  fmt.Sprintf("detected framework: %s", marker.framework),
				Severity: score.SeverityInfo,
			}}}, nil
		}
	}

	return score.Result{
		Recommendations: []string{"no frontend framework detected; framework-specific checks are skipped"},
	}, nil
}
