package fixtures

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

const (
	dateFormat      = "2006-01-02"
	timestampFormat = time.RFC3339
)

// WriteCSV writes one CSV file per table into outDir, creating the
// directory if needed.
func (ds *Dataset) WriteCSV(outDir string) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", outDir, err)
	}

	tables := []struct {
		name    string
		headers []string
		rows    [][]string
	}{
		{"users", userHeaders, userRows(ds.Users)},
		{"products", productHeaders, productRows(ds.Products)},
		{"orders", orderHeaders, orderRows(ds.Orders)},
		{"order_items", orderItemHeaders, orderItemRows(ds.OrderItems)},
	}

	for _, table := range tables {
		path := filepath.Join(outDir, table.name+".csv")
		if err := writeCSVFile(path, table.headers, table.rows); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
	}
	return nil
}

func writeCSVFile(path string, headers []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(headers); err != nil {
		return err
	}
	if err := w.WriteAll(rows); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

var (
	userHeaders      = []string{"id", "name", "email", "country", "signup_date"}
	productHeaders   = []string{"id", "name", "category", "price_cents"}
	orderHeaders     = []string{"id", "user_id", "status", "created_at", "shipped_at"}
	orderItemHeaders = []string{"id", "order_id", "product_id", "quantity", "unit_price_cents"}
)

func userRows(users []User) [][]string {
	rows := make([][]string, 0, len(users))
	for _, u := range users {
		rows = append(rows, []string{
			strconv.Itoa(u.ID), u.Name, u.Email, u.Country,
			u.SignupDate.Format(dateFormat),
		})
	}
	return rows
}

func productRows(products []Product) [][]string {
	rows := make([][]string, 0, len(products))
	for _, p := range products {
		rows = append(rows, []string{
			strconv.Itoa(p.ID), p.Name, p.Category, strconv.Itoa(p.PriceCents),
		})
	}
	return rows
}

func orderRows(orders []Order) [][]string {
	rows := make([][]string, 0, len(orders))
	for _, o := range orders {
		shipped := ""
		if o.ShippedAt != nil {
			shipped = o.ShippedAt.Format(timestampFormat)
		}
		rows = append(rows, []string{
			strconv.Itoa(o.ID), strconv.Itoa(o.UserID), o.Status,
			o.CreatedAt.Format(timestampFormat), shipped,
		})
	}
	return rows
}

func orderItemRows(items []OrderItem) [][]string {
	rows := make([][]string, 0, len(items))
	for _, it := range items {
		rows = append(rows, []string{
			strconv.Itoa(it.ID), strconv.Itoa(it.OrderID), strconv.Itoa(it.ProductID),
			strconv.Itoa(it.Quantity), strconv.Itoa(it.UnitPriceCents),
		})
	}
	return rows
}
