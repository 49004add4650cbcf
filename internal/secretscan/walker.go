package secretscan

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/dbsmedya/repolint/internal/findings"
)

// ScanDir recursively scans Go files under root, aggregating findings into a
// report. Individual file errors are skipped; only a missing root is fatal.
func (s *Scanner) ScanDir(root string, exclude []string) (*findings.Report, error) {
	if _, err := os.Stat(root); err != nil {
		return nil, fmt.Errorf("scan root %s is not accessible: %w", root, err)
	}

	excluded := make(map[string]bool, len(exclude))
	for _, name := range exclude {
		excluded[name] = true
	}

	report := findings.NewReport()
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			s.logger.Debugw("skipping unreadable entry", "path", path, "error", err)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if excluded[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") {
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			s.logger.WithFile(path).Debugw("skipping unreadable file", "error", err)
			return nil
		}
		report.AddAll(s.ScanFile(path, content))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}

	return report, nil
}
