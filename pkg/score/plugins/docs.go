package plugins

import (
	"os"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/yaklabco/lintwarden/pkg/score"
)

// DocsPlugin checks that the project has a README with minimal structure.
type DocsPlugin struct {
	score.BasePlugin
}

// NewDocsPlugin creates the documentation detector.
func NewDocsPlugin() *DocsPlugin {
	return &DocsPlugin{
		BasePlugin: score.NewBasePlugin("docs", "Project documentation"),
	}
}

// Detect checks README presence and that it opens with a top-level heading.
func (p *DocsPlugin) Detect(ctx *score.Context) (score.Result, error) {
	source, err := os.ReadFile(ctx.Path("README.md"))
	if err != nil {
		return score.Result{Findings: []score.Finding{{
			Message:  "no README.md",
			Severity: score.SeverityWarning,
			Fixable:  true,
			FixHint:  "create a README.md describing the project",
		}}}, nil
	}

	var findings []score.Finding
	if !hasTopLevelHeading(source) {
		findings = append(findings, score.Finding{
			Message:  "README.md has no top-level heading",
			Severity: score.SeverityInfo,
			Fixable:  true,
			FixHint:  "start README.md with a # heading naming the project",
		})
	}
	return score.Result{Findings: findings}, nil
}

// hasTopLevelHeading parses the Markdown and looks for a level-1 heading.
func hasTopLevelHeading(source []byte) bool {
	root := goldmark.New().Parser().Parse(text.NewReader(source))

	found := false
	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if heading, ok := n.(*ast.Heading); ok && heading.Level == 1 {
			found = true
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})
	return found
}
