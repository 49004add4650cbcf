package findings

import (
	"github.com/elliotchance/orderedmap/v2"
)

// Report aggregates findings grouped by file, preserving the order in which
// files were scanned so output is deterministic across runs.
type Report struct {
	byFile *orderedmap.OrderedMap[string, []Finding]
	total  int
	errors int
}

// NewReport creates an empty report.
func NewReport() *Report {
	return &Report{
		byFile: orderedmap.NewOrderedMap[string, []Finding](),
	}
}

// Add appends a finding to the report.
func (r *Report) Add(f Finding) {
	existing, _ := r.byFile.Get(f.File)
	r.byFile.Set(f.File, append(existing, f))
	r.total++
	if f.Severity == SeverityError {
		r.errors++
	}
}

// AddAll appends a batch of findings.
func (r *Report) AddAll(fs []Finding) {
	for _, f := range fs {
		r.Add(f)
	}
}

// Merge folds another report into this one, keeping file order.
func (r *Report) Merge(other *Report) {
	if other == nil {
		return
	}
	for el := other.byFile.Front(); el != nil; el = el.Next() {
		for _, f := range el.Value {
			r.Add(f)
		}
	}
}

// Files returns the scanned file paths in insertion order.
func (r *Report) Files() []string {
	files := make([]string, 0, r.byFile.Len())
	for el := r.byFile.Front(); el != nil; el = el.Next() {
		files = append(files, el.Key)
	}
	return files
}

// ForFile returns the findings recorded against a path.
func (r *Report) ForFile(path string) []Finding {
	fs, _ := r.byFile.Get(path)
	return fs
}

// Len returns the total number of findings.
func (r *Report) Len() int {
	return r.total
}

// HasErrors reports whether any finding has error severity.
func (r *Report) HasErrors() bool {
	return r.errors > 0
}

// ErrorCount returns the number of error-severity findings.
func (r *Report) ErrorCount() int {
	return r.errors
}

// WarningCount returns the number of warning-severity findings.
func (r *Report) WarningCount() int {
	return r.total - r.errors
}
