package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/repolint/internal/config"
	"github.com/dbsmedya/repolint/internal/findings"
	"github.com/dbsmedya/repolint/internal/logger"
	"github.com/dbsmedya/repolint/internal/secretscan"
)

var deepScan bool

var secretsCmd = &cobra.Command{
	Use:   "secrets [root]",
	Short: "Scan source files for hardcoded secrets",
	Long: `Secrets parses every Go file under the root into a syntax tree and
flags assignments and constructor arguments that bind a sensitive-sounding
name to a literal string resembling a real credential. Dynamic lookups such
as os.Getenv are never flagged, and reported samples are truncated to six
characters.

With --deep the ruleset-based detector also runs over non-Go text files.

Exits 1 when any finding exists.

Example:
  repolint secrets ./internal
  repolint secrets --deep`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSecrets,
}

func init() {
	secretsCmd.Flags().BoolVar(&deepScan, "deep", false,
		"Also run the ruleset detector over non-Go text files")
	rootCmd.AddCommand(secretsCmd)
}

func runSecrets(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cfg.ApplyOverrides("", "", deepScan)

	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer log.Sync()

	root := cfg.Secrets.Root
	if len(args) == 1 {
		root = args[0]
	}

	report, err := scanSecrets(cfg.Secrets, root, log)
	if err != nil {
		return err
	}

	newReporter().Print("secrets", report)

	if report.HasErrors() {
		return fmt.Errorf("found %d potential secrets", report.ErrorCount())
	}
	return nil
}

// scanSecrets runs the AST scanner, plus the deep detector when enabled,
// and merges the results. Shared with the combined check command.
func scanSecrets(cfg config.SecretsConfig, root string, log *logger.Logger) (*findings.Report, error) {
	scanner, err := secretscan.NewScanner(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create secret scanner: %w", err)
	}

	report, err := scanner.ScanDir(root, cfg.Exclude)
	if err != nil {
		return nil, err
	}

	if cfg.Deep {
		deep, err := secretscan.NewDeepScanner(log)
		if err != nil {
			return nil, fmt.Errorf("failed to create deep scanner: %w", err)
		}
		deepReport, err := deep.ScanDir(root, cfg.Exclude)
		if err != nil {
			return nil, err
		}
		report.Merge(deepReport)
	}
	return report, nil
}
