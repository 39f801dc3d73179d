// Package cache persists the ledger of approved warning fingerprints.
//
// The cache file is plain JSON with a trailing newline so it stays
// human-reviewable and diff-friendly when committed to version control.
// A missing, corrupt, or version-mismatched file is treated as an empty
// cache; failing to write the cache is fatal for the invocation.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/yaklabco/lintwarden/pkg/fingerprint"
	"github.com/yaklabco/lintwarden/pkg/fsutil"
)

// SchemaVersion gates the cache file schema. A mismatched version
// invalidates the entire cache; a changed config hash does not (that is
// reconciled interactively instead, see ConfigDrifted).
const SchemaVersion = "2"

// File is the persisted approval ledger.
type File struct {
	// Version is the schema version gate.
	Version string `json:"version"`

	// ESLintConfigHash is the digest over all discovered lint-config files,
	// used to detect silent rule-set changes between runs.
	ESLintConfigHash string `json:"eslintConfigHash,omitempty"`

	// ApprovedWarnings is the ordered list of approved fingerprints. It acts
	// as a set under fingerprint equality; duplicates are tolerated on load.
	ApprovedWarnings []fingerprint.Fingerprint `json:"approvedWarnings"`
}

// NewFile returns an empty cache at the current schema version.
func NewFile() *File {
	return &File{
		Version:          SchemaVersion,
		ApprovedWarnings: []fingerprint.Fingerprint{},
	}
}

// Load reads the cache file at path. A missing file, unparsable content,
// or a schema version mismatch all yield an empty cache rather than an
// error: suppressing nothing is always safe, so the cache fails open.
func Load(path string) *File {
	data, err := os.ReadFile(path)
	if err != nil {
		return NewFile()
	}

	var file File
	if err := json.Unmarshal(data, &file); err != nil {
		return NewFile()
	}
	if file.Version != SchemaVersion {
		return NewFile()
	}
	if file.ApprovedWarnings == nil {
		file.ApprovedWarnings = []fingerprint.Fingerprint{}
	}
	return &file
}

// Save writes the cache to path atomically. Unlike Load, a save failure is
// returned to the caller: losing approval decisions must not go unnoticed.
func (f *File) Save(ctx context.Context, path string) error {
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("encode cache: %w", err)
	}
	data = append(data, '\n')

	if err := fsutil.WriteAtomic(ctx, path, data, 0); err != nil {
		return fmt.Errorf("write cache: %w", err)
	}
	return nil
}

// Has reports whether fp is in the approved set.
func (f *File) Has(fp fingerprint.Fingerprint) bool {
	for _, approved := range f.ApprovedWarnings {
		if approved.Equal(fp) {
			return true
		}
	}
	return false
}

// Approve adds fp to the approved set if not already present.
func (f *File) Approve(fp fingerprint.Fingerprint) {
	if f.Has(fp) {
		return
	}
	f.ApprovedWarnings = append(f.ApprovedWarnings, fp)
}

// ConfigDrifted reports whether the persisted config hash differs from the
// freshly computed one. The first run records the hash without drifting.
// On drift the caller must obtain explicit user confirmation before
// proceeding; accepting should call SetConfigHash, declining should abort
// the operation without mutating the cache.
func (f *File) ConfigDrifted(currentHash string) bool {
	return f.ESLintConfigHash != "" && f.ESLintConfigHash != currentHash
}

// SetConfigHash records the current config hash. Existing approvals are
// kept: a config change does not invalidate prior decisions.
func (f *File) SetConfigHash(hash string) {
	f.ESLintConfigHash = hash
}
