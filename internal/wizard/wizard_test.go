package wizard

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/lintwarden/internal/ui/pretty"
	"github.com/yaklabco/lintwarden/pkg/eslint"
	"github.com/yaklabco/lintwarden/pkg/fingerprint"
)

func item(file, rule, msg string) Item {
	return Item{
		Fingerprint: fingerprint.Fingerprint{
			File:     file,
			RuleID:   rule,
			CodeHash: fingerprint.CodeHash("const x = 1;"),
			Message:  msg,
		},
		FilePath: file,
		Message: eslint.Message{
			RuleID:   rule,
			Severity: eslint.SeverityWarning,
			Message:  msg,
			Line:     1,
			Column:   1,
		},
		SourceLine: "const x = 1;",
	}
}

func run(t *testing.T, input string, items []Item) ([]fingerprint.Fingerprint, string) {
	t.Helper()

	var out bytes.Buffer
	w := New(strings.NewReader(input), &out, pretty.NewStyles(false))
	approved, err := w.Run(items)
	require.NoError(t, err)
	return approved, out.String()
}

func TestRun_ApproveAndReject(t *testing.T) {
	items := []Item{
		item("a.ts", "eqeqeq", "first"),
		item("b.ts", "no-console", "second"),
		item("c.ts", "eqeqeq", "third"),
	}

	approved, out := run(t, "y\nn\ny\n", items)

	require.Len(t, approved, 2)
	assert.Equal(t, "a.ts", approved[0].File)
	assert.Equal(t, "c.ts", approved[1].File)
	assert.Contains(t, out, "[1/3]")
	assert.Contains(t, out, "[3/3]")
}

func TestRun_ApproveAll(t *testing.T) {
	items := []Item{
		item("a.ts", "eqeqeq", "first"),
		item("b.ts", "no-console", "second"),
		item("c.ts", "eqeqeq", "third"),
	}

	approved, out := run(t, "n\na\n", items)

	require.Len(t, approved, 2)
	assert.Equal(t, "b.ts", approved[0].File)
	assert.Equal(t, "c.ts", approved[1].File)
	// The third item is approved without prompting.
	assert.NotContains(t, out, "[3/3]")
}

func TestRun_QuitKeepsEarlierApprovals(t *testing.T) {
	items := []Item{
		item("a.ts", "eqeqeq", "first"),
		item("b.ts", "no-console", "second"),
		item("c.ts", "eqeqeq", "third"),
	}

	approved, _ := run(t, "y\nq\n", items)

	require.Len(t, approved, 1)
	assert.Equal(t, "a.ts", approved[0].File)
}

func TestRun_EmptyAnswerRejects(t *testing.T) {
	approved, _ := run(t, "\n", []Item{item("a.ts", "eqeqeq", "first")})
	assert.Empty(t, approved)
}

func TestRun_InvalidInputReprompts(t *testing.T) {
	approved, out := run(t, "maybe\ny\n", []Item{item("a.ts", "eqeqeq", "first")})

	require.Len(t, approved, 1)
	assert.Equal(t, 2, strings.Count(out, "Approve this warning?"))
}

func TestRun_EOFStopsCleanly(t *testing.T) {
	items := []Item{
		item("a.ts", "eqeqeq", "first"),
		item("b.ts", "no-console", "second"),
	}

	approved, _ := run(t, "y\n", items)

	require.Len(t, approved, 1)
	assert.Equal(t, "a.ts", approved[0].File)
}

func TestRun_NoItems(t *testing.T) {
	approved, out := run(t, "", nil)
	assert.Empty(t, approved)
	assert.Empty(t, out)
}

func TestParseDecision(t *testing.T) {
	tests := []struct {
		input string
		want  Decision
		ok    bool
	}{
		{"y\n", DecisionApprove, true},
		{"YES\n", DecisionApprove, true},
		{"n\n", DecisionReject, true},
		{"no\n", DecisionReject, true},
		{"\n", DecisionReject, true},
		{"a\n", DecisionApproveAll, true},
		{"all\n", DecisionApproveAll, true},
		{"q\n", DecisionQuit, true},
		{"quit\n", DecisionQuit, true},
		{"banana\n", DecisionReject, false},
	}

	for _, tt := range tests {
		got, ok := parseDecision(tt.input)
		assert.Equal(t, tt.ok, ok, "input %q", tt.input)
		if ok {
			assert.Equal(t, tt.want, got, "input %q", tt.input)
		}
	}
}
