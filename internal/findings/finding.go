// Package findings contains the shared finding model and report aggregation
// used by every RepoLint checker.
package findings

import "fmt"

// Severity classifies a finding.
type Severity string

const (
	// SeverityError fails the invoking process (exit code 1).
	SeverityError Severity = "error"
	// SeverityWarning is advisory only.
	SeverityWarning Severity = "warning"
)

// Finding is a single diagnostic produced by a checker.
type Finding struct {
	Check    string   // checker name: "adr", "secrets", "tasks"
	Rule     string   // rule identifier within the checker
	File     string   // path the finding applies to
	Line     int      // 1-based source line, 0 when not line-scoped
	Name     string   // bound name for secret findings, identifier for task findings
	Sample   string   // truncated value sample, never the full secret
	Severity Severity
	Message  string
}

// String renders the finding as a single diagnostic line.
func (f Finding) String() string {
	loc := f.File
	if f.Line > 0 {
		loc = fmt.Sprintf("%s:%d", f.File, f.Line)
	}
	if loc == "" {
		return f.Message
	}
	return fmt.Sprintf("%s: %s", loc, f.Message)
}
