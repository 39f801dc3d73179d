// Package eslint implements the wire contract with the external lint
// engine: the JSON result format, tolerant parsing of engine output, and
// source-line lookup for fingerprinting.
package eslint

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/yaklabco/lintwarden/pkg/fingerprint"
)

// Severity values used by the lint engine. Both are treated identically by
// fingerprinting and diffing; severity only affects display labels.
const (
	SeverityWarning = 1
	SeverityError   = 2
)

// Message is a single diagnostic within a file result.
type Message struct {
	RuleID   string `json:"ruleId"`
	Severity int    `json:"severity"`
	Message  string `json:"message"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`

	// Source is the offending source line, when the engine provides it.
	Source string `json:"source,omitempty"`
}

// Result is the per-file entry of the engine's JSON output.
type Result struct {
	FilePath string    `json:"filePath"`
	Messages []Message `json:"messages"`
}

// ParseResults decodes the engine's JSON output. Engines commonly print
// human-readable preamble (npm banners, deprecation notices) before the
// JSON array, so decoding starts at the first '[' in the output.
func ParseResults(output []byte) ([]Result, error) {
	start := bytes.IndexByte(output, '[')
	if start < 0 {
		return nil, fmt.Errorf("no JSON array in lint output (%d bytes)", len(output))
	}

	var results []Result
	if err := json.Unmarshal(output[start:], &results); err != nil {
		return nil, fmt.Errorf("parse lint output: %w", err)
	}
	return results, nil
}

// SourceLine returns the 1-based line of the file, trimmed of the trailing
// newline. A missing or unreadable file, or an out-of-range line, returns
// "" so that fingerprinting hashes the empty string instead of failing.
func SourceLine(path string, line int) string {
	if line < 1 {
		return ""
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	lines := bytes.Split(data, []byte("\n"))
	if line > len(lines) {
		return ""
	}
	return string(bytes.TrimSuffix(lines[line-1], []byte("\r")))
}

// Fingerprints converts results into diagnostic fingerprints, relative to
// root. The message's embedded source line is preferred; otherwise the line
// is read from disk.
func Fingerprints(root string, results []Result) []fingerprint.Fingerprint {
	var fps []fingerprint.Fingerprint
	for _, result := range results {
		for _, msg := range result.Messages {
			fps = append(fps, MessageFingerprint(root, result.FilePath, msg))
		}
	}
	return fps
}

// MessageFingerprint computes the fingerprint for one diagnostic.
func MessageFingerprint(root, filePath string, msg Message) fingerprint.Fingerprint {
	line := msg.Source
	if line == "" {
		line = SourceLine(filePath, msg.Line)
	}
	return fingerprint.New(root, filePath, msg.RuleID, msg.Message, line)
}
