package findings

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReportOrdering(t *testing.T) {
	report := NewReport()
	report.Add(Finding{Check: "tasks", File: "b.md", Severity: SeverityError, Message: "first"})
	report.Add(Finding{Check: "tasks", File: "a.md", Severity: SeverityWarning, Message: "second"})
	report.Add(Finding{Check: "tasks", File: "b.md", Severity: SeverityWarning, Message: "third"})

	// Files come back in scan order, not sorted
	assert.Equal(t, []string{"b.md", "a.md"}, report.Files())
	assert.Len(t, report.ForFile("b.md"), 2)
	assert.Len(t, report.ForFile("a.md"), 1)
}

func TestReportCounts(t *testing.T) {
	report := NewReport()
	assert.False(t, report.HasErrors())
	assert.Equal(t, 0, report.Len())

	report.AddAll([]Finding{
		{File: "x.go", Severity: SeverityError, Message: "bad"},
		{File: "x.go", Severity: SeverityWarning, Message: "meh"},
		{File: "y.go", Severity: SeverityWarning, Message: "meh"},
	})

	assert.True(t, report.HasErrors())
	assert.Equal(t, 3, report.Len())
	assert.Equal(t, 1, report.ErrorCount())
	assert.Equal(t, 2, report.WarningCount())
}

func TestReportMerge(t *testing.T) {
	first := NewReport()
	first.Add(Finding{File: "a.go", Severity: SeverityWarning, Message: "w"})

	second := NewReport()
	second.Add(Finding{File: "b.go", Severity: SeverityError, Message: "e"})

	first.Merge(second)
	first.Merge(nil)

	assert.Equal(t, []string{"a.go", "b.go"}, first.Files())
	assert.True(t, first.HasErrors())
	assert.Equal(t, 2, first.Len())
}

func TestFindingString(t *testing.T) {
	tests := []struct {
		name     string
		finding  Finding
		expected string
	}{
		{
			name:     "with line",
			finding:  Finding{File: "config.py", Line: 12, Message: "hardcoded secret"},
			expected: "config.py:12: hardcoded secret",
		},
		{
			name:     "without line",
			finding:  Finding{File: "tasks/LGDA-004-x.md", Message: "missing identifier"},
			expected: "tasks/LGDA-004-x.md: missing identifier",
		},
		{
			name:     "no file",
			finding:  Finding{Message: "directory not found"},
			expected: "directory not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.finding.String())
		})
	}
}

func TestReporterPlainOutput(t *testing.T) {
	report := NewReport()
	report.Add(Finding{Check: "secrets", File: "main.go", Line: 3, Severity: SeverityError, Message: "token bound to literal"})
	report.Add(Finding{Check: "secrets", File: "util.go", Line: 9, Severity: SeverityWarning, Message: "suspicious name"})

	var buf bytes.Buffer
	NewReporter(&buf, false).Print("secrets", report)

	out := buf.String()
	assert.Contains(t, out, GlyphError+" main.go:3: token bound to literal")
	assert.Contains(t, out, GlyphWarning+" util.go:9: suspicious name")
	assert.Contains(t, out, "secrets: 1 error(s), 1 warning(s)")
}

func TestReporterCleanRun(t *testing.T) {
	var buf bytes.Buffer
	NewReporter(&buf, false).Print("adr", NewReport())

	out := strings.TrimSpace(buf.String())
	assert.Equal(t, GlyphOK+" adr: no findings", out)
}
