package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/repolint/internal/taskcheck"
)

var tasksCmd = &cobra.Command{
	Use:   "tasks [dir]",
	Short: "Validate task files against the identifier and section schema",
	Long: `Tasks validates every markdown file in the task directory: filename
pattern, identifier presence, required sections (English or Turkish
headings accepted), ADR citations, topic notes keyed on content, and
duplicate or gapped identifiers across the set.

Exits 1 when any file has errors; sequence gaps alone are warnings.

Example:
  repolint tasks
  repolint tasks docs/tasks`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTasks,
}

func init() {
	rootCmd.AddCommand(tasksCmd)
}

func runTasks(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer log.Sync()

	if len(args) == 1 {
		cfg.Tasks.Dir = args[0]
	}

	validator, err := taskcheck.NewValidator(cfg.Tasks, log)
	if err != nil {
		return fmt.Errorf("failed to create task validator: %w", err)
	}

	report, err := validator.ValidateDir()
	if err != nil {
		return err
	}

	newReporter().Print("tasks", report)

	if report.HasErrors() {
		return fmt.Errorf("%d task file errors", report.ErrorCount())
	}
	return nil
}
