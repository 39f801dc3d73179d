// Package plugins contains the built-in project-inspection detectors.
package plugins

import (
	"errors"
	"io/fs"

	"github.com/yaklabco/lintwarden/pkg/score"
)

// ManifestPlugin reads package.json and publishes it to the context for
// downstream detectors.
type ManifestPlugin struct {
	score.BasePlugin
}

// NewManifestPlugin creates the manifest detector.
func NewManifestPlugin() *ManifestPlugin {
	return &ManifestPlugin{
		BasePlugin: score.NewBasePlugin("manifest", "Project manifest (package.json)"),
	}
}

// Detect parses package.json. A missing or unparsable manifest is a
// finding, not an error: most downstream checks degrade gracefully.
func (p *ManifestPlugin) Detect(ctx *score.Context) (score.Result, error) {
	var manifest score.Manifest
	err := ctx.ReadJSON("package.json", &manifest)
	if errors.Is(err, fs.ErrNotExist) {
		return score.Result{Findings: []score.Finding{{
			Message:  "no package.json found",
			Severity: score.SeverityCritical,
			Fixable:  true,
			FixHint:  "run `npm init -y` to create a manifest",
		}}}, nil
	}
	if err != nil {
		return score.Result{Findings: []score.Finding{{
			Message:  "package.json is not valid JSON",
			Severity: score.SeverityCritical,
			Fixable:  true,
			FixHint:  "repair the JSON syntax in package.json",
		}}}, nil
	}

	ctx.Manifest = &manifest

	var findings []score.Finding
	if manifest.Name == "" {
		findings = append(findings, score.Finding{
			Message:  "package.json has no name field",
			Severity: score.SeverityWarning,
			Fixable:  true,
			FixHint:  "set the name field in package.json",
		})
	}
	if len(manifest.Scripts) == 0 {
		findings = append(findings, score.Finding{
			Message:  "package.json declares no scripts",
			Severity: score.SeverityWarning,
			Fixable:  false,
		})
	}
	return score.Result{Findings: findings}, nil
}
