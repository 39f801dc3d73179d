package plugins

import (
	"os"
	"strings"

	"github.com/yaklabco/lintwarden/pkg/score"
)

// GitPlugin checks repository hygiene. It only inspects the filesystem;
// it never shells out to git.
type GitPlugin struct {
	score.BasePlugin
}

// NewGitPlugin creates the git hygiene detector.
func NewGitPlugin() *GitPlugin {
	return &GitPlugin{
		BasePlugin: score.NewBasePlugin("git", "Git repository hygiene"),
	}
}

// Detect checks for a repository, an ignore file, and node_modules coverage.
func (p *GitPlugin) Detect(ctx *score.Context) (score.Result, error) {
	var findings []score.Finding

	if !ctx.DirExists(".git") {
		findings = append(findings, score.Finding{
			Message:  "project is not a git repository",
			Severity: score.SeverityCritical,
			Fixable:  true,
			FixHint:  "run `git init`",
		})
		return score.Result{Findings: findings}, nil
	}

	ignore, err := os.ReadFile(ctx.Path(".gitignore"))
	if err != nil {
		findings = append(findings, score.Finding{
			Message:  "no .gitignore file",
			Severity: score.SeverityWarning,
			Fixable:  true,
			FixHint:  "create a .gitignore with node_modules/ and build output",
		})
		return score.Result{Findings: findings}, nil
	}

	if !ignoresNodeModules(string(ignore)) {
		findings = append(findings, score.Finding{
			Message:  "node_modules is not ignored",
			Severity: score.SeverityWarning,
			Fixable:  true,
			FixHint:  "add node_modules/ to .gitignore",
		})
	}

	return score.Result{Findings: findings}, nil
}

// ignoresNodeModules scans ignore-file lines for a node_modules entry.
func ignoresNodeModules(content string) bool {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		trimmed := strings.Trim(line, "/")
		if trimmed == "node_modules" || strings.HasSuffix(trimmed, "/node_modules") {
			return true
		}
	}
	return false
}
