package cache

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/lintwarden/pkg/fingerprint"
)

func fp(file, rule, msg, line string) fingerprint.Fingerprint {
	return fingerprint.New("", file, rule, msg, line)
}

func TestLoad_MissingFile(t *testing.T) {
	file := Load(filepath.Join(t.TempDir(), "absent.json"))
	assert.Equal(t, SchemaVersion, file.Version)
	assert.Empty(t, file.ApprovedWarnings)
}

func TestLoad_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")
	require.NoError(t, os.WriteFile(path, []byte("not json{"), 0644))

	file := Load(path)
	assert.Empty(t, file.ApprovedWarnings)
}

func TestLoad_VersionMismatchInvalidatesCache(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")
	stale := `{"version":"1","approvedWarnings":[{"file":"a.ts","ruleId":"no-var","codeHash":"ab","message":"m"}]}`
	require.NoError(t, os.WriteFile(path, []byte(stale), 0644))

	file := Load(path)
	assert.Empty(t, file.ApprovedWarnings)
	assert.Equal(t, SchemaVersion, file.Version)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")

	file := NewFile()
	file.SetConfigHash("abc123")
	file.Approve(fp("a.ts", "no-var", "Unexpected var", "var x = 1;"))
	file.Approve(fp("b.ts", "no-undef", "x is not defined", "x();"))

	require.NoError(t, file.Save(context.Background(), path))

	// Human-reviewable: JSON with trailing newline.
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, len(raw) > 0 && raw[len(raw)-1] == '\n')

	loaded := Load(path)
	assert.Equal(t, "abc123", loaded.ESLintConfigHash)
	assert.ElementsMatch(t, file.ApprovedWarnings, loaded.ApprovedWarnings)
}

func TestSave_MissingDirectoryIsFatal(t *testing.T) {
	file := NewFile()
	err := file.Save(context.Background(), filepath.Join(t.TempDir(), "no", "cache.json"))
	assert.Error(t, err)
}

func TestApprove_Deduplicates(t *testing.T) {
	file := NewFile()
	warning := fp("a.ts", "no-var", "Unexpected var", "var x = 1;")

	file.Approve(warning)
	file.Approve(warning)

	assert.Len(t, file.ApprovedWarnings, 1)
}

func TestConfigDrifted(t *testing.T) {
	file := NewFile()

	// First run: no stored hash, nothing to reconcile.
	assert.False(t, file.ConfigDrifted("abc"))

	file.SetConfigHash("abc")
	assert.False(t, file.ConfigDrifted("abc"))
	assert.True(t, file.ConfigDrifted("def"))
}

func TestSetConfigHash_KeepsApprovals(t *testing.T) {
	file := NewFile()
	file.Approve(fp("a.ts", "no-var", "m", "var x;"))
	file.SetConfigHash("new-hash")

	assert.Equal(t, "new-hash", file.ESLintConfigHash)
	assert.Len(t, file.ApprovedWarnings, 1)
}
