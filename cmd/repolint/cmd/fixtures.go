package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/repolint/internal/database"
	"github.com/dbsmedya/repolint/internal/fixtures"
)

var (
	fixturesSeed    int64
	fixturesOut     string
	fixturesPreview bool
	previewRows     int
)

var fixturesCmd = &cobra.Command{
	Use:   "fixtures",
	Short: "Generate, load and query the synthetic analytics dataset",
	Long: `Fixtures produces a deterministic e-commerce dataset (users, products,
orders, order items) for the analytics test suite. The same seed always
yields the same rows.`,
}

var fixturesGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the dataset as CSV files",
	Long: `Generate builds the dataset and writes one CSV file per table into the
output directory. With --preview the first rows of each table are printed
instead and nothing is written.

Example:
  repolint fixtures generate --seed 7 --out testdata/fixtures
  repolint fixtures generate --preview`,
	RunE: runFixturesGenerate,
}

var fixturesLoadCmd = &cobra.Command{
	Use:   "load",
	Short: "Generate the dataset and insert it into MySQL",
	Long: `Load generates the dataset and inserts every table into the configured
MySQL database in foreign-key order, using multi-row INSERTs inside a
single transaction.

Example:
  repolint fixtures load --config repolint.yaml`,
	RunE: runFixturesLoad,
}

var fixturesAnswerCmd = &cobra.Command{
	Use:   "answer <question...>",
	Short: "Print the canned analyst answer for a question",
	Long: `Answer matches a free-text question against the canned report topics
(revenue, top products, signups) and prints the report text together with
the query that would have produced it.

Example:
  repolint fixtures answer what was our revenue last month`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFixturesAnswer,
}

func init() {
	fixturesGenerateCmd.Flags().Int64Var(&fixturesSeed, "seed", 0,
		"Override the random seed")
	fixturesGenerateCmd.Flags().StringVar(&fixturesOut, "out", "",
		"Override the output directory")
	fixturesGenerateCmd.Flags().BoolVar(&fixturesPreview, "preview", false,
		"Print the first rows of each table instead of writing files")
	fixturesGenerateCmd.Flags().IntVar(&previewRows, "preview-rows", 5,
		"Rows per table shown by --preview")

	fixturesCmd.AddCommand(fixturesGenerateCmd)
	fixturesCmd.AddCommand(fixturesLoadCmd)
	fixturesCmd.AddCommand(fixturesAnswerCmd)
	rootCmd.AddCommand(fixturesCmd)
}

func runFixturesGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if fixturesSeed != 0 {
		cfg.Fixtures.Seed = fixturesSeed
	}
	if fixturesOut != "" {
		cfg.Fixtures.OutDir = fixturesOut
	}

	ds := fixtures.NewGenerator(cfg.Fixtures).Generate()

	if fixturesPreview {
		return ds.Preview(os.Stdout, previewRows)
	}

	if err := ds.WriteCSV(cfg.Fixtures.OutDir); err != nil {
		return err
	}

	cmd.Printf("Wrote %d users, %d products, %d orders, %d order items to %s\n",
		len(ds.Users), len(ds.Products), len(ds.Orders), len(ds.OrderItems),
		cfg.Fixtures.OutDir)
	return nil
}

func runFixturesLoad(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer log.Sync()

	ds := fixtures.NewGenerator(cfg.Fixtures).Generate()

	ctx := context.Background()
	manager := database.NewManager(&cfg.Fixtures.Database)
	if err := manager.Connect(ctx); err != nil {
		return err
	}
	defer manager.Close()

	loader, err := fixtures.NewLoader(manager.DB, cfg.Fixtures.Database.BatchSize, log)
	if err != nil {
		return fmt.Errorf("failed to create loader: %w", err)
	}

	stats, err := loader.Load(ctx, ds)
	if err != nil {
		return err
	}

	cmd.Printf("Loaded %d rows in %s\n", stats.RowsLoaded, stats.Duration)
	for _, table := range []string{"users", "products", "orders", "order_items"} {
		cmd.Printf("  %-12s %d\n", table, stats.RowsPerTable[table])
	}
	return nil
}

func runFixturesAnswer(cmd *cobra.Command, args []string) error {
	answer := fixtures.AnswerQuestion(strings.Join(args, " "))

	cmd.Printf("Topic: %s\n\n", answer.Topic)
	cmd.Println(answer.Report)
	cmd.Println()
	cmd.Println(answer.Query)
	return nil
}
