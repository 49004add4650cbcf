// Package adrcheck checks files for architecture-decision-record references
// against the ADR directory and a configurable rule table.
package adrcheck

import (
	"fmt"
	"os"
	"regexp"
	"sort"

	"github.com/elliotchance/orderedmap/v2"
)

// adrFilePattern matches ADR filenames like "002-bigquery-access.md".
var adrFilePattern = regexp.MustCompile(`^(\d{3})-(.+)\.md$`)

// Index maps ADR identifiers to titles, built from the filenames in the
// ADR directory. Iteration order is ascending by identifier.
type Index struct {
	entries *orderedmap.OrderedMap[string, string]
}

// LoadIndex scans dir for files matching the NNN-title.md convention.
// A missing or unreadable directory is a hard error: without the index no
// citation can be trusted.
func LoadIndex(dir string) (*Index, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("ADR directory %s is not readable: %w", dir, err)
	}

	type adr struct {
		id    string
		title string
	}
	var found []adr
	for _, entry := range dirEntries {
		if entry.IsDir() {
			continue
		}
		m := adrFilePattern.FindStringSubmatch(entry.Name())
		if m == nil {
			continue
		}
		found = append(found, adr{id: m[1], title: m[2]})
	}

	sort.Slice(found, func(i, j int) bool { return found[i].id < found[j].id })

	entries := orderedmap.NewOrderedMap[string, string]()
	for _, a := range found {
		entries.Set(a.id, a.title)
	}

	return &Index{entries: entries}, nil
}

// Has reports whether an identifier is known.
func (idx *Index) Has(id string) bool {
	_, ok := idx.entries.Get(id)
	return ok
}

// Title returns the title recorded for an identifier.
func (idx *Index) Title(id string) string {
	title, _ := idx.entries.Get(id)
	return title
}

// IDs returns all known identifiers in ascending order.
func (idx *Index) IDs() []string {
	ids := make([]string, 0, idx.entries.Len())
	for el := idx.entries.Front(); el != nil; el = el.Next() {
		ids = append(ids, el.Key)
	}
	return ids
}

// Len returns the number of indexed ADRs.
func (idx *Index) Len() int {
	return idx.entries.Len()
}
