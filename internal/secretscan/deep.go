package secretscan

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/zricethezav/gitleaks/v8/detect"

	"github.com/dbsmedya/repolint/internal/findings"
	"github.com/dbsmedya/repolint/internal/logger"
)

// deepScanMaxFileSize caps the per-file content handed to the rule engine.
const deepScanMaxFileSize = 1 << 20

// DeepScanner runs the gitleaks default rule set over raw file contents.
// It complements the AST scanner: the AST pass understands binding shapes,
// the rule pass recognizes provider-specific token formats anywhere in text.
type DeepScanner struct {
	detector *detect.Detector
	logger   *logger.Logger
}

// NewDeepScanner creates a scanner with the gitleaks default configuration.
func NewDeepScanner(log *logger.Logger) (*DeepScanner, error) {
	detector, err := detect.NewDetectorDefaultConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to build rule detector: %w", err)
	}
	if log == nil {
		log = logger.NewDefault()
	}
	return &DeepScanner{
		detector: detector,
		logger:   log.WithCheck("secrets-deep"),
	}, nil
}

// ScanFile runs the rule set over content. Samples are truncated the same
// way as AST findings; the full match never appears in output.
func (d *DeepScanner) ScanFile(path string, content []byte) []findings.Finding {
	var results []findings.Finding
	for _, f := range d.detector.DetectString(string(content)) {
		results = append(results, findings.Finding{
			Check:    "secrets",
			Rule:     f.RuleID,
			File:     path,
			Line:     f.StartLine,
			Name:     f.RuleID,
			Sample:   Sample(f.Secret),
			Severity: findings.SeverityError,
			Message:  fmt.Sprintf("%s (sample %s)", f.Description, Sample(f.Secret)),
		})
	}
	return results
}

// ScanDir walks root and scans every text file. Binary and oversized files
// are skipped, as are the excluded directories.
func (d *DeepScanner) ScanDir(root string, exclude []string) (*findings.Report, error) {
	if _, err := os.Stat(root); err != nil {
		return nil, fmt.Errorf("scan root %s is not accessible: %w", root, err)
	}

	excluded := make(map[string]bool, len(exclude))
	for _, name := range exclude {
		excluded[name] = true
	}

	report := findings.NewReport()
	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			if entry != nil && entry.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if entry.IsDir() {
			if excluded[entry.Name()] {
				return filepath.SkipDir
			}
			return nil
		}

		info, err := entry.Info()
		if err != nil || info.Size() > deepScanMaxFileSize {
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			d.logger.WithFile(path).Debugw("skipping unreadable file", "error", err)
			return nil
		}
		if bytes.IndexByte(content, 0) >= 0 {
			// Binary file
			return nil
		}
		report.AddAll(d.ScanFile(path, content))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}

	return report, nil
}
