package cache

import "github.com/yaklabco/lintwarden/pkg/fingerprint"

// DiffResult partitions the current diagnostics against the approved set.
type DiffResult struct {
	// New contains fingerprints not present in the approved set.
	New []fingerprint.Fingerprint

	// AlreadyApproved contains fingerprints matched by prior approvals.
	AlreadyApproved []fingerprint.Fingerprint
}

// Diff partitions current fingerprints by membership in the approved set.
// The operation is pure: running it twice on the same inputs yields the
// same partition, and input order is preserved within each part.
func (f *File) Diff(current []fingerprint.Fingerprint) DiffResult {
	approved := make(map[string]bool, len(f.ApprovedWarnings))
	for _, fp := range f.ApprovedWarnings {
		approved[fp.Key()] = true
	}

	var result DiffResult
	for _, fp := range current {
		if approved[fp.Key()] {
			result.AlreadyApproved = append(result.AlreadyApproved, fp)
		} else {
			result.New = append(result.New, fp)
		}
	}
	return result
}

// Prune removes approved fingerprints that no longer appear in the current
// diagnostic set, treating them as fixed. This is unconditional and
// destructive; there is no confirmation step. Returns the number removed.
func (f *File) Prune(current []fingerprint.Fingerprint) int {
	seen := make(map[string]bool, len(current))
	for _, fp := range current {
		seen[fp.Key()] = true
	}

	kept := f.ApprovedWarnings[:0]
	removed := 0
	for _, approved := range f.ApprovedWarnings {
		if seen[approved.Key()] {
			kept = append(kept, approved)
		} else {
			removed++
		}
	}
	f.ApprovedWarnings = kept
	return removed
}
