// Package wizard implements the interactive approval flow for new warnings.
package wizard

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/yaklabco/lintwarden/internal/ui/pretty"
	"github.com/yaklabco/lintwarden/pkg/eslint"
	"github.com/yaklabco/lintwarden/pkg/fingerprint"
)

// Decision is the user's answer for a single warning.
type Decision int

const (
	// DecisionReject leaves the warning unapproved.
	DecisionReject Decision = iota

	// DecisionApprove approves the current warning.
	DecisionApprove

	// DecisionApproveAll approves the current and all remaining warnings.
	DecisionApproveAll

	// DecisionQuit stops the wizard, keeping decisions made so far.
	DecisionQuit
)

// Item is one new warning presented for review.
type Item struct {
	// Fingerprint identifies the warning in the cache.
	Fingerprint fingerprint.Fingerprint

	// FilePath is the file the warning was reported in, for display.
	FilePath string

	// Message is the underlying lint message, for display.
	Message eslint.Message

	// SourceLine is the offending source line, empty if unavailable.
	SourceLine string
}

// Wizard walks the user through new warnings one at a time.
type Wizard struct {
	in     *bufio.Reader
	out    io.Writer
	styles *pretty.Styles
}

// New creates a wizard reading answers from in and writing prompts to out.
func New(in io.Reader, out io.Writer, styles *pretty.Styles) *Wizard {
	return &Wizard{
		in:     bufio.NewReader(in),
		out:    out,
		styles: styles,
	}
}

// Run presents each item and collects approvals. It returns the approved
// fingerprints; quitting early keeps the approvals made before the quit.
func (w *Wizard) Run(items []Item) ([]fingerprint.Fingerprint, error) {
	var approved []fingerprint.Fingerprint
	approveRest := false

	for i, item := range items {
		if approveRest {
			approved = append(approved, item.Fingerprint)
			continue
		}

		header := fmt.Sprintf("[%d/%d]\n", i+1, len(items))
		if _, err := io.WriteString(w.out, header); err != nil {
			return approved, fmt.Errorf("write prompt: %w", err)
		}
		if _, err := io.WriteString(w.out,
			w.styles.FormatLintMessage(item.FilePath, item.Message, item.SourceLine)); err != nil {
			return approved, fmt.Errorf("write prompt: %w", err)
		}

		decision, err := w.prompt()
		if err != nil {
			return approved, err
		}

		switch decision {
		case DecisionApprove:
			approved = append(approved, item.Fingerprint)
		case DecisionApproveAll:
			approved = append(approved, item.Fingerprint)
			approveRest = true
		case DecisionQuit:
			return approved, nil
		case DecisionReject:
		}
	}

	return approved, nil
}

// prompt asks for one decision, re-asking on unrecognized input.
func (w *Wizard) prompt() (Decision, error) {
	for {
		if _, err := io.WriteString(w.out, "Approve this warning? [y/n/a/q] "); err != nil {
			return DecisionQuit, fmt.Errorf("write prompt: %w", err)
		}

		line, err := w.in.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				// Input exhausted; treat like quitting.
				return DecisionQuit, nil
			}
			return DecisionQuit, fmt.Errorf("read response: %w", err)
		}

		decision, ok := parseDecision(line)
		if ok {
			return decision, nil
		}
	}
}

// parseDecision maps an input line to a decision.
func parseDecision(line string) (Decision, bool) {
	switch strings.TrimSpace(strings.ToLower(line)) {
	case "y", "yes":
		return DecisionApprove, true
	case "n", "no", "":
		return DecisionReject, true
	case "a", "all":
		return DecisionApproveAll, true
	case "q", "quit":
		return DecisionQuit, true
	default:
		return DecisionReject, false
	}
}
