package fixtures

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/dbsmedya/repolint/internal/logger"
	"github.com/dbsmedya/repolint/internal/sqlutil"
)

const defaultBatchSize = 100

// LoadStats contains statistics about a load run.
type LoadStats struct {
	RowsLoaded   int64
	RowsPerTable map[string]int64
	Duration     time.Duration
}

// Loader inserts a generated dataset into MySQL. All tables are loaded in
// foreign-key order inside a single transaction.
type Loader struct {
	db        *sql.DB
	batchSize int
	logger    *logger.Logger
}

// NewLoader creates a loader. A non-positive batch size falls back to the
// default.
func NewLoader(db *sql.DB, batchSize int, log *logger.Logger) (*Loader, error) {
	if db == nil {
		return nil, fmt.Errorf("database is nil")
	}
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	if log == nil {
		log = logger.NewDefault()
	}
	return &Loader{db: db, batchSize: batchSize, logger: log}, nil
}

// Load inserts every table of the dataset. Parent tables go first so FK
// constraints hold; any failure rolls the whole load back.
func (l *Loader) Load(ctx context.Context, ds *Dataset) (*LoadStats, error) {
	startTime := time.Now()
	stats := &LoadStats{RowsPerTable: make(map[string]int64)}

	tx, err := l.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if tx != nil {
			l.logger.Warn("Rolling back fixture load")
			if rbErr := tx.Rollback(); rbErr != nil {
				l.logger.Errorf("Failed to rollback transaction: %v", rbErr)
			}
		}
	}()

	tables := []struct {
		name    string
		columns []string
		rows    [][]interface{}
	}{
		{"users", userHeaders, userValues(ds.Users)},
		{"products", productHeaders, productValues(ds.Products)},
		{"orders", orderHeaders, orderValues(ds.Orders)},
		{"order_items", orderItemHeaders, orderItemValues(ds.OrderItems)},
	}

	for _, table := range tables {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("load interrupted: %w", err)
		}

		loaded, err := l.loadTable(ctx, tx, table.name, table.columns, table.rows)
		if err != nil {
			return nil, fmt.Errorf("failed to load table %s: %w", table.name, err)
		}
		stats.RowsLoaded += loaded
		stats.RowsPerTable[table.name] = loaded
		l.logger.WithTable(table.name).Debugf("Loaded %d rows", loaded)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	tx = nil

	stats.Duration = time.Since(startTime)
	l.logger.Infof("Fixture load complete: %d rows, duration: %s",
		stats.RowsLoaded, stats.Duration)

	return stats, nil
}

// loadTable inserts rows for one table in multi-row batches.
func (l *Loader) loadTable(ctx context.Context, tx *sql.Tx, table string, columns []string, rows [][]interface{}) (int64, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	var loaded int64
	for start := 0; start < len(rows); start += l.batchSize {
		end := start + l.batchSize
		if end > len(rows) {
			end = len(rows)
		}
		batch := rows[start:end]

		query, err := buildInsertQuery(table, columns, len(batch))
		if err != nil {
			return loaded, err
		}

		args := make([]interface{}, 0, len(batch)*len(columns))
		for _, row := range batch {
			args = append(args, row...)
		}

		result, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return loaded, fmt.Errorf("insert failed: %w", err)
		}
		affected, _ := result.RowsAffected()
		loaded += affected
	}
	return loaded, nil
}

// buildInsertQuery constructs a multi-row INSERT with validated, quoted
// identifiers.
// Example: INSERT INTO `users` (`id`, `name`) VALUES (?, ?), (?, ?)
func buildInsertQuery(table string, columns []string, rowCount int) (string, error) {
	quotedTable, err := sqlutil.QuoteIdentifierSafe(table)
	if err != nil {
		return "", err
	}

	quotedColumns := make([]string, len(columns))
	for i, column := range columns {
		quoted, err := sqlutil.QuoteIdentifierSafe(column)
		if err != nil {
			return "", err
		}
		quotedColumns[i] = quoted
	}

	placeholders := make([]string, len(columns))
	for i := range placeholders {
		placeholders[i] = "?"
	}
	rowTemplate := "(" + strings.Join(placeholders, ", ") + ")"

	valueRows := make([]string, rowCount)
	for i := range valueRows {
		valueRows[i] = rowTemplate
	}

	return fmt.Sprintf("INSERT INTO %s (%s) VALUES %s",
		quotedTable,
		strings.Join(quotedColumns, ", "),
		strings.Join(valueRows, ", "),
	), nil
}

func userValues(users []User) [][]interface{} {
	rows := make([][]interface{}, 0, len(users))
	for _, u := range users {
		rows = append(rows, []interface{}{u.ID, u.Name, u.Email, u.Country, u.SignupDate})
	}
	return rows
}

func productValues(products []Product) [][]interface{} {
	rows := make([][]interface{}, 0, len(products))
	for _, p := range products {
		rows = append(rows, []interface{}{p.ID, p.Name, p.Category, p.PriceCents})
	}
	return rows
}

func orderValues(orders []Order) [][]interface{} {
	rows := make([][]interface{}, 0, len(orders))
	for _, o := range orders {
		var shipped interface{}
		if o.ShippedAt != nil {
			shipped = *o.ShippedAt
		}
		rows = append(rows, []interface{}{o.ID, o.UserID, o.Status, o.CreatedAt, shipped})
	}
	return rows
}

func orderItemValues(items []OrderItem) [][]interface{} {
	rows := make([][]interface{}, 0, len(items))
	for _, it := range items {
		rows = append(rows, []interface{}{it.ID, it.OrderID, it.ProductID, it.Quantity, it.UnitPriceCents})
	}
	return rows
}
