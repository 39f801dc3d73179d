// Package fingerprint computes stable, content-derived identities for lint
// diagnostics. A fingerprint survives line-number drift caused by unrelated
// edits: it depends only on the file path, the rule, the message, and the
// trimmed text of the offending line.
package fingerprint

import (
	"crypto/sha256"
	"encoding/hex"
	"path/filepath"
	"strings"
)

// UnknownRuleID is used for diagnostics that carry no rule identifier.
const UnknownRuleID = "unknown"

// Fingerprint is the identity of a single diagnostic instance.
// Two fingerprints are equal iff all four fields are equal.
type Fingerprint struct {
	// File is the path relative to the project root, forward-slash normalized.
	File string `json:"file"`

	// RuleID is the rule identifier, or "unknown" when the diagnostic has none.
	RuleID string `json:"ruleId"`

	// CodeHash is the hex sha-256 digest of the trimmed offending line.
	CodeHash string `json:"codeHash"`

	// Message is the diagnostic text, verbatim.
	Message string `json:"message"`
}

// CodeHash returns the hex sha-256 digest of the line with surrounding
// whitespace trimmed. An unreadable line is passed in as "" and hashes the
// empty string rather than failing the run.
func CodeHash(line string) string {
	sum := sha256.Sum256([]byte(strings.TrimSpace(line)))
	return hex.EncodeToString(sum[:])
}

// New builds a fingerprint for a diagnostic.
//
// The file path is made relative to root and normalized to forward slashes,
// so the same logical file produces the same fingerprint on any OS. A path
// that cannot be made relative is kept as given (slash-normalized).
func New(root, file, ruleID, message, line string) Fingerprint {
	return Fingerprint{
		File:     NormalizePath(root, file),
		RuleID:   normalizeRuleID(ruleID),
		CodeHash: CodeHash(line),
		Message:  message,
	}
}

// NormalizePath makes file relative to root and converts separators to
// forward slashes.
func NormalizePath(root, file string) string {
	if root != "" {
		if rel, err := filepath.Rel(root, file); err == nil {
			file = rel
		}
	}
	return filepath.ToSlash(file)
}

func normalizeRuleID(ruleID string) string {
	if ruleID == "" {
		return UnknownRuleID
	}
	return ruleID
}

// Equal reports whether two fingerprints identify the same diagnostic.
// Matching is exact on all four fields; there is no fuzzy similarity.
func (f Fingerprint) Equal(other Fingerprint) bool {
	return f == other
}

// Key returns a string usable as a map key for set membership.
func (f Fingerprint) Key() string {
	return f.File + "\x00" + f.RuleID + "\x00" + f.CodeHash + "\x00" + f.Message
}
