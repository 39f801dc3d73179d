package plugins

import (
	"errors"
	"io/fs"

	"github.com/yaklabco/lintwarden/pkg/score"
)

// tsconfig is the subset of tsconfig.json the detector reads.
type tsconfig struct {
	CompilerOptions struct {
		Strict *bool `json:"strict"`
	} `json:"compilerOptions"`
}

// TypeScriptPlugin checks TypeScript configuration and records whether the
// project uses TypeScript at all.
type TypeScriptPlugin struct {
	score.BasePlugin
}

// NewTypeScriptPlugin creates the TypeScript detector.
func NewTypeScriptPlugin() *TypeScriptPlugin {
	return &TypeScriptPlugin{
		BasePlugin: score.NewBasePlugin("typescript", "TypeScript configuration", "manifest"),
	}
}

// Detect reports on tsconfig presence and strictness for TypeScript
// projects, and stays silent for plain-JavaScript ones.
func (p *TypeScriptPlugin) Detect(ctx *score.Context) (score.Result, error) {
	usesTS := ctx.Manifest.HasDependency("typescript") || ctx.FileExists("tsconfig.json")
	ctx.HasTypeScript = usesTS
	if !usesTS {
		return score.Result{}, nil
	}

	var cfg tsconfig
	err := ctx.ReadJSON("tsconfig.json", &cfg)
	if errors.Is(err, fs.ErrNotExist) {
		return score.Result{Findings: []score.Finding{{
			Message:  "typescript is a dependency but tsconfig.json is missing",
			Severity: score.SeverityCritical,
			Fixable:  true,
			FixHint:  "run `npx tsc --init`",
		}}}, nil
	}
	if err != nil {
		// tsconfig allows comments; a parse failure is drift, not certainty.
		return score.Result{
			Recommendations: []string{"tsconfig.json could not be parsed as JSON; strictness was not checked"},
		}, nil
	}

	if cfg.CompilerOptions.Strict == nil || !*cfg.CompilerOptions.Strict {
		return score.Result{Findings: []score.Finding{{
			Message:  "tsconfig.json does not enable strict mode",
			Severity: score.SeverityWarning,
			Fixable:  true,
			FixHint:  `set "strict": true under compilerOptions`,
		}}}, nil
	}

	return score.Result{}, nil
}
