package eslint

import "github.com/yaklabco/lintwarden/pkg/cache"

// Filter implements the plugin-host contract: it removes messages whose
// fingerprint is in the approved set and returns the same result shape.
//
// The filter fails open: a nil cache (absent or malformed on the caller's
// side) returns the input unmodified. Suppressing nothing is always safe;
// suppressing wrongly could hide a real error.
func Filter(root string, results []Result, approved *cache.File) []Result {
	if approved == nil || len(approved.ApprovedWarnings) == 0 {
		return results
	}

	filtered := make([]Result, 0, len(results))
	for _, result := range results {
		kept := make([]Message, 0, len(result.Messages))
		for _, msg := range result.Messages {
			if approved.Has(MessageFingerprint(root, result.FilePath, msg)) {
				continue
			}
			kept = append(kept, msg)
		}
		filtered = append(filtered, Result{FilePath: result.FilePath, Messages: kept})
	}
	return filtered
}
