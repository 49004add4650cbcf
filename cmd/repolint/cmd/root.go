package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/repolint/internal/config"
	"github.com/dbsmedya/repolint/internal/findings"
	"github.com/dbsmedya/repolint/internal/logger"
)

// Version information (set via ldflags at build time)
var (
	Version = "0.0.1-dev"
	Commit  = "unknown"
)

const defaultConfigFile = "repolint.yaml"

// CLI flags that override config file values
var (
	cfgFile   string
	logLevel  string
	logFormat string
	noColor   bool
)

var rootCmd = &cobra.Command{
	Use:   "repolint",
	Short: "Repository hygiene checks and test-fixture generation",
	Long: `A CLI toolset for keeping a repository honest:

  - ADR compliance checker (advisory, never fails the build)
  - AST-based secret scanner for Go sources
  - Task-file schema validator
  - Deterministic e-commerce fixture generator and MySQL loader

Each checker prints a glyph-prefixed report and exits nonzero when it
finds errors; ADR warnings alone never do.`,
	Version:      Version,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Config file flag
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", defaultConfigFile,
		"Path to configuration file")

	// Logging overrides
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"Override log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "",
		"Override log format (json, text)")

	// Output control
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false,
		"Disable colored report output")
}

// loadConfig loads the configuration file and applies CLI overrides.
// The default config file is optional; built-in defaults apply when it is
// absent. An explicitly named file must exist.
func loadConfig() (*config.Config, error) {
	path := cfgFile
	if path == defaultConfigFile {
		if _, err := os.Stat(path); err != nil {
			path = ""
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	cfg.ApplyOverrides(logLevel, logFormat, false)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// newLogger initializes the logger from configuration.
func newLogger(cfg *config.Config) (*logger.Logger, error) {
	log, err := logger.New(&cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return log, nil
}

// newReporter builds the stdout report printer.
func newReporter() *findings.Reporter {
	return findings.NewReporter(os.Stdout, !noColor)
}
