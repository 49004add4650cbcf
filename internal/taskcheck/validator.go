// Package taskcheck validates LGDA task files against the required
// identifier and section schema.
package taskcheck

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/dbsmedya/repolint/internal/config"
	"github.com/dbsmedya/repolint/internal/findings"
	"github.com/dbsmedya/repolint/internal/logger"
)

// adrMentionPattern matches an ADR citation anywhere in the body.
var adrMentionPattern = regexp.MustCompile(`ADR[\s-]?\d{3}`)

// conditionalRule requires a topic mention when trigger keywords appear in
// the body.
type conditionalRule struct {
	name     string
	triggers []string
	mentions []string
}

// conditionalRules mirrors the review checklist: tasks touching credentials
// need a security note, data-heavy tasks a performance note, surface changes
// a test strategy.
var conditionalRules = []conditionalRule{
	{
		name:     "security-note",
		triggers: []string{"auth", "token", "secret", "password", "credential"},
		mentions: []string{"security", "güvenlik"},
	},
	{
		name:     "performance-note",
		triggers: []string{"sql", "query", "index", "bigquery"},
		mentions: []string{"performance", "performans"},
	},
	{
		name:     "test-strategy",
		triggers: []string{"endpoint", "api", "migration"},
		mentions: []string{"test strategy", "test stratejisi"},
	},
}

// Validator checks task files for schema compliance.
type Validator struct {
	dir      string
	prefix   string
	sections []config.SectionRule
	logger   *logger.Logger

	filePattern *regexp.Regexp
	idPattern   *regexp.Regexp
}

// NewValidator creates a validator from configuration.
func NewValidator(cfg config.TasksConfig, log *logger.Logger) (*Validator, error) {
	if cfg.Prefix == "" {
		return nil, fmt.Errorf("identifier prefix is empty")
	}
	if log == nil {
		log = logger.NewDefault()
	}

	prefix := regexp.QuoteMeta(cfg.Prefix)
	return &Validator{
		dir:         cfg.Dir,
		prefix:      cfg.Prefix,
		sections:    cfg.Sections,
		logger:      log.WithCheck("tasks"),
		filePattern: regexp.MustCompile(`^` + prefix + `-(\d{3})-.+\.md$`),
		idPattern:   regexp.MustCompile(prefix + `-(\d{3})`),
	}, nil
}

// ValidateDir validates every markdown file in the task directory and
// performs cross-file identifier bookkeeping. A missing directory is a hard
// error.
func (v *Validator) ValidateDir() (*findings.Report, error) {
	entries, err := os.ReadDir(v.dir)
	if err != nil {
		return nil, fmt.Errorf("task directory %s is not readable: %w", v.dir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	report := findings.NewReport()
	seen := make(map[string]string) // identifier -> first file
	var ids []int

	for _, name := range names {
		path := filepath.Join(v.dir, name)
		content, err := os.ReadFile(path)
		if err != nil {
			v.logger.WithFile(path).Debugw("skipping unreadable file", "error", err)
			continue
		}

		report.AddAll(v.ValidateFile(path, content))

		id, ok := v.identifierFromName(name)
		if !ok {
			continue
		}
		if first, dup := seen[id]; dup {
			report.Add(findings.Finding{
				Check:    "tasks",
				Rule:     "duplicate-identifier",
				File:     path,
				Name:     v.prefix + "-" + id,
				Severity: findings.SeverityError,
				Message:  fmt.Sprintf("identifier %s-%s already used by %s", v.prefix, id, first),
			})
			continue
		}
		seen[id] = name
		if n, err := strconv.Atoi(id); err == nil {
			ids = append(ids, n)
		}
	}

	report.AddAll(v.checkSequence(ids))
	return report, nil
}

// ValidateFile checks one task file's name and body.
func (v *Validator) ValidateFile(path string, content []byte) []findings.Finding {
	var results []findings.Finding
	name := filepath.Base(path)
	body := string(content)
	lowerBody := strings.ToLower(body)

	fileID, named := v.identifierFromName(name)
	if !named {
		results = append(results, findings.Finding{
			Check:    "tasks",
			Rule:     "filename-pattern",
			File:     path,
			Severity: findings.SeverityError,
			Message:  fmt.Sprintf("filename must match %s-NNN-title.md", v.prefix),
		})
	}

	// The body must carry the identifier; when the filename names one, it
	// must be that identifier.
	bodyIDs := v.idPattern.FindAllStringSubmatch(body, -1)
	switch {
	case len(bodyIDs) == 0:
		results = append(results, findings.Finding{
			Check:    "tasks",
			Rule:     "missing-identifier",
			File:     path,
			Severity: findings.SeverityError,
			Message:  fmt.Sprintf("body must contain a %s-NNN identifier", v.prefix),
		})
	case named && !containsID(bodyIDs, fileID):
		results = append(results, findings.Finding{
			Check:    "tasks",
			Rule:     "identifier-mismatch",
			File:     path,
			Name:     v.prefix + "-" + fileID,
			Severity: findings.SeverityError,
			Message:  fmt.Sprintf("body never mentions %s-%s from the filename", v.prefix, fileID),
		})
	}

	// Required sections, each accepted in any configured spelling
	for _, section := range v.sections {
		if hasHeading(body, section.Alternatives) {
			continue
		}
		results = append(results, findings.Finding{
			Check:    "tasks",
			Rule:     "missing-section",
			File:     path,
			Severity: findings.SeverityError,
			Message:  fmt.Sprintf("missing required section %q (accepted: %s)", section.Name, strings.Join(section.Alternatives, ", ")),
		})
	}

	if !adrMentionPattern.MatchString(body) {
		results = append(results, findings.Finding{
			Check:    "tasks",
			Rule:     "missing-adr",
			File:     path,
			Severity: findings.SeverityError,
			Message:  "task must cite at least one ADR",
		})
	}

	for _, rule := range conditionalRules {
		if !containsAny(lowerBody, rule.triggers) {
			continue
		}
		if containsAny(lowerBody, rule.mentions) {
			continue
		}
		results = append(results, findings.Finding{
			Check:    "tasks",
			Rule:     rule.name,
			File:     path,
			Severity: findings.SeverityError,
			Message: fmt.Sprintf("content mentions %s but has no %s",
				strings.Join(rule.triggers, "/"), rule.mentions[0]),
		})
	}

	return results
}

// checkSequence warns about gaps in the identifier sequence.
// Gaps are advisory: renumbering finished tasks is worse than a hole.
func (v *Validator) checkSequence(ids []int) []findings.Finding {
	if len(ids) < 2 {
		return nil
	}
	sort.Ints(ids)

	var results []findings.Finding
	for i := 1; i < len(ids); i++ {
		if ids[i] == ids[i-1]+1 {
			continue
		}
		results = append(results, findings.Finding{
			Check:    "tasks",
			Rule:     "sequence-gap",
			File:     v.dir,
			Severity: findings.SeverityWarning,
			Message: fmt.Sprintf("identifier sequence jumps from %s-%03d to %s-%03d",
				v.prefix, ids[i-1], v.prefix, ids[i]),
		})
	}
	return results
}

func (v *Validator) identifierFromName(name string) (string, bool) {
	m := v.filePattern.FindStringSubmatch(name)
	if m == nil {
		return "", false
	}
	return m[1], true
}

func containsID(matches [][]string, id string) bool {
	for _, m := range matches {
		if m[1] == id {
			return true
		}
	}
	return false
}

// hasHeading reports whether any markdown heading line contains one of the
// accepted spellings.
func hasHeading(body string, alternatives []string) bool {
	for _, line := range strings.Split(body, "\n") {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, "#") {
			continue
		}
		heading := strings.ToLower(strings.TrimLeft(trimmed, "# "))
		for _, alt := range alternatives {
			if strings.Contains(heading, strings.ToLower(alt)) {
				return true
			}
		}
	}
	return false
}

func containsAny(lowerBody string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(lowerBody, keyword) {
			return true
		}
	}
	return false
}
