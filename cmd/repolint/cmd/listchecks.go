package cmd

import (
	"strings"

	"github.com/spf13/cobra"
)

var listChecksCmd = &cobra.Command{
	Use:   "list-checks",
	Short: "List the rules each checker runs with",
	Long: `List-checks displays the effective configuration of every checker:
ADR reference rules, secret-scanner keyword and constructor lists, and the
required task sections.

Example:
  repolint list-checks --config repolint.yaml`,
	RunE: runListChecks,
}

func init() {
	rootCmd.AddCommand(listChecksCmd)
}

func runListChecks(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	cmd.Printf("adr (directory: %s)\n", cfg.ADR.Dir)
	for _, rule := range cfg.ADR.Rules {
		requirement := "all of"
		if rule.Any {
			requirement = "any of"
		}
		cmd.Printf("  %-14s files matching %s must cite %s %s\n",
			rule.Name,
			strings.Join(rule.Match, "/"),
			requirement,
			strings.Join(rule.Require, ", "))
	}

	cmd.Printf("\nsecrets (root: %s, min length: %d)\n",
		cfg.Secrets.Root, cfg.Secrets.MinLength)
	cmd.Printf("  keywords:      %s\n", strings.Join(cfg.Secrets.Keywords, ", "))
	cmd.Printf("  constructors:  %s\n", strings.Join(cfg.Secrets.Constructors, ", "))
	cmd.Printf("  excluded dirs: %s\n", strings.Join(cfg.Secrets.Exclude, ", "))

	cmd.Printf("\ntasks (directory: %s, prefix: %s)\n", cfg.Tasks.Dir, cfg.Tasks.Prefix)
	for _, section := range cfg.Tasks.Sections {
		cmd.Printf("  %-20s accepted headings: %s\n",
			section.Name, strings.Join(section.Alternatives, ", "))
	}

	cmd.Printf("\nfixtures (seed: %d)\n", cfg.Fixtures.Seed)
	cmd.Printf("  users: %d, products: %d, orders: %d\n",
		cfg.Fixtures.Users, cfg.Fixtures.Products, cfg.Fixtures.Orders)
	return nil
}
