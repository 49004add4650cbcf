package adrcheck

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/dbsmedya/repolint/internal/config"
	"github.com/dbsmedya/repolint/internal/findings"
	"github.com/dbsmedya/repolint/internal/logger"
)

// citationPattern matches citations like "ADR 002", "ADR-002", or "ADR002".
var citationPattern = regexp.MustCompile(`ADR[\s-]?(\d{3})`)

// Checker validates ADR citations in arbitrary files.
// All findings are warnings: ADR hygiene never fails a pipeline.
type Checker struct {
	index  *Index
	rules  []config.ADRRule
	logger *logger.Logger
}

// NewChecker creates a checker from a loaded index and rule table.
func NewChecker(index *Index, rules []config.ADRRule, log *logger.Logger) (*Checker, error) {
	if index == nil {
		return nil, fmt.Errorf("index is nil")
	}
	if log == nil {
		log = logger.NewDefault()
	}
	return &Checker{
		index:  index,
		rules:  rules,
		logger: log.WithCheck("adr"),
	}, nil
}

// CheckFiles runs the checker over a list of paths.
// Unreadable files contribute no findings.
func (c *Checker) CheckFiles(paths []string) *findings.Report {
	report := findings.NewReport()
	for _, path := range paths {
		content, err := os.ReadFile(path)
		if err != nil {
			c.logger.WithFile(path).Debugw("skipping unreadable file", "error", err)
			continue
		}
		report.AddAll(c.CheckFile(path, content))
	}
	return report
}

// CheckFile checks a single file's content against the rule table and the
// known-identifier set.
func (c *Checker) CheckFile(path string, content []byte) []findings.Finding {
	cited := extractCitations(content)
	var results []findings.Finding

	base := strings.ToLower(filepath.Base(path))
	for _, rule := range c.rules {
		if !matchesRule(base, rule) {
			continue
		}
		results = append(results, c.applyRule(path, rule, cited)...)
	}

	// Citations of ADRs that do not exist in the index
	for _, id := range cited {
		if c.index.Has(id) {
			continue
		}
		results = append(results, findings.Finding{
			Check:    "adr",
			Rule:     "unknown-reference",
			File:     path,
			Severity: findings.SeverityWarning,
			Message:  fmt.Sprintf("cites ADR %s which does not exist in the ADR directory", id),
		})
	}

	return results
}

// applyRule produces warnings for required citations the file lacks.
func (c *Checker) applyRule(path string, rule config.ADRRule, cited []string) []findings.Finding {
	required := expandIDs(rule.Require)
	citedSet := make(map[string]bool, len(cited))
	for _, id := range cited {
		citedSet[id] = true
	}

	if rule.Any {
		for _, id := range required {
			if citedSet[id] {
				return nil
			}
		}
		return []findings.Finding{{
			Check:    "adr",
			Rule:     rule.Name,
			File:     path,
			Severity: findings.SeverityWarning,
			Message: fmt.Sprintf("must reference at least one of ADR %s",
				strings.Join(required, ", ADR ")),
		}}
	}

	var results []findings.Finding
	for _, id := range required {
		if citedSet[id] {
			continue
		}
		results = append(results, findings.Finding{
			Check:    "adr",
			Rule:     rule.Name,
			File:     path,
			Severity: findings.SeverityWarning,
			Message:  fmt.Sprintf("must reference ADR %s (%s)", id, c.index.Title(id)),
		})
	}
	return results
}

// matchesRule reports whether the filename triggers the rule.
func matchesRule(lowerBase string, rule config.ADRRule) bool {
	for _, keyword := range rule.Match {
		if strings.Contains(lowerBase, strings.ToLower(keyword)) {
			return true
		}
	}
	return false
}

// extractCitations returns the unique cited identifiers in appearance order.
func extractCitations(content []byte) []string {
	matches := citationPattern.FindAllSubmatch(content, -1)
	seen := make(map[string]bool, len(matches))
	var ids []string
	for _, m := range matches {
		id := string(m[1])
		if seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids
}

// expandIDs expands "001-006" style ranges into individual identifiers.
// Malformed entries are dropped; config validation rejects them up front.
func expandIDs(entries []string) []string {
	var ids []string
	for _, entry := range entries {
		lo, hi, ok := parseRange(entry)
		if !ok {
			continue
		}
		for n := lo; n <= hi; n++ {
			ids = append(ids, fmt.Sprintf("%03d", n))
		}
	}
	return ids
}

func parseRange(entry string) (int, int, bool) {
	parts := strings.SplitN(entry, "-", 2)
	lo, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, false
	}
	if len(parts) == 1 {
		return lo, lo, true
	}
	hi, err := strconv.Atoi(parts[1])
	if err != nil || hi < lo {
		return 0, 0, false
	}
	return lo, hi, true
}
