package cmd

import (
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/repolint/internal/adrcheck"
	"github.com/dbsmedya/repolint/internal/taskcheck"
)

// adrCheckExtensions are the file types swept for ADR references when no
// explicit paths are given.
var adrCheckExtensions = map[string]bool{
	".go":   true,
	".py":   true,
	".sql":  true,
	".md":   true,
	".yaml": true,
	".yml":  true,
}

var checkCmd = &cobra.Command{
	Use:   "check [paths...]",
	Short: "Run all checkers in one pass",
	Long: `Check runs the ADR checker, the secret scanner and the task validator
together. Explicit paths are handed to the ADR checker; without them the
secret-scan root is swept for checkable files. The secret scanner and the
task validator always use their configured root and directory.

Exits 1 when the secret scanner or the task validator finds errors; ADR
warnings stay advisory.

Example:
  repolint check
  repolint check internal/config/config.go`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer log.Sync()

	reporter := newReporter()

	// ADR references, advisory
	index, err := adrcheck.LoadIndex(cfg.ADR.Dir)
	if err != nil {
		return err
	}
	checker, err := adrcheck.NewChecker(index, cfg.ADR.Rules, log)
	if err != nil {
		return fmt.Errorf("failed to create ADR checker: %w", err)
	}

	paths := args
	if len(paths) == 0 {
		paths, err = collectCheckableFiles(cfg.Secrets.Root, cfg.Secrets.Exclude, cfg.ADR.Dir, cfg.Tasks.Dir)
		if err != nil {
			return err
		}
	}
	reporter.Print("adr", checker.CheckFiles(paths))

	// Secrets
	secretsReport, err := scanSecrets(cfg.Secrets, cfg.Secrets.Root, log)
	if err != nil {
		return err
	}
	reporter.Print("secrets", secretsReport)

	// Tasks
	validator, err := taskcheck.NewValidator(cfg.Tasks, log)
	if err != nil {
		return fmt.Errorf("failed to create task validator: %w", err)
	}
	tasksReport, err := validator.ValidateDir()
	if err != nil {
		return err
	}
	reporter.Print("tasks", tasksReport)

	errorCount := secretsReport.ErrorCount() + tasksReport.ErrorCount()
	if errorCount > 0 {
		return fmt.Errorf("%d errors across checks", errorCount)
	}
	return nil
}

// collectCheckableFiles walks the root collecting files the ADR checker can
// inspect. Excluded directories and the ADR and task directories are skipped.
func collectCheckableFiles(root string, exclude []string, skipDirs ...string) ([]string, error) {
	excluded := make(map[string]bool, len(exclude))
	for _, name := range exclude {
		excluded[name] = true
	}
	skipped := make(map[string]bool, len(skipDirs))
	for _, dir := range skipDirs {
		skipped[filepath.Clean(dir)] = true
	}

	var paths []string
	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			if excluded[entry.Name()] || skipped[filepath.Clean(path)] {
				return filepath.SkipDir
			}
			return nil
		}
		if adrCheckExtensions[filepath.Ext(entry.Name())] {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan root %s is not accessible: %w", root, err)
	}
	return paths, nil
}
