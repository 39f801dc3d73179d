package eslint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/lintwarden/pkg/cache"
)

func TestFilter_RemovesApprovedMessages(t *testing.T) {
	approvedMsg := Message{RuleID: "no-var", Severity: 1, Message: "Unexpected var", Line: 3, Source: "var x = 1;"}
	newMsg := Message{RuleID: "no-undef", Severity: 2, Message: "y is not defined", Line: 7, Source: "y();"}

	results := []Result{{FilePath: "a.ts", Messages: []Message{approvedMsg, newMsg}}}

	approved := cache.NewFile()
	approved.Approve(MessageFingerprint("", "a.ts", approvedMsg))

	filtered := Filter("", results, approved)
	require.Len(t, filtered, 1)
	require.Len(t, filtered[0].Messages, 1)
	assert.Equal(t, "no-undef", filtered[0].Messages[0].RuleID)
}

func TestFilter_NilCacheFailsOpen(t *testing.T) {
	results := []Result{{FilePath: "a.ts", Messages: []Message{{RuleID: "no-var", Source: "var x;"}}}}

	filtered := Filter("", results, nil)
	assert.Equal(t, results, filtered)
}

func TestFilter_EmptyCacheFailsOpen(t *testing.T) {
	results := []Result{{FilePath: "a.ts", Messages: []Message{{RuleID: "no-var", Source: "var x;"}}}}

	filtered := Filter("", results, cache.NewFile())
	assert.Equal(t, results, filtered)
}

func TestFilter_KeepsShapeForCleanFiles(t *testing.T) {
	approved := cache.NewFile()
	approved.Approve(MessageFingerprint("", "other.ts", Message{RuleID: "r", Message: "m", Source: "x"}))

	results := []Result{
		{FilePath: "a.ts", Messages: []Message{}},
		{FilePath: "b.ts", Messages: []Message{{RuleID: "no-var", Source: "var x;"}}},
	}

	filtered := Filter("", results, approved)
	require.Len(t, filtered, 2)
	assert.Empty(t, filtered[0].Messages)
	assert.Len(t, filtered[1].Messages, 1)
}
