package fixtures

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Preview renders the first rows of each table as aligned text. Columns are
// padded by display width so names with wide or combining runes line up.
func (ds *Dataset) Preview(w io.Writer, limit int) error {
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
		rows := table.rows
		if limit > 0 && len(rows) > limit {
			rows = rows[:limit]
		}
		if _, err := fmt.Fprintf(w, "%s (%d rows)\n", table.name, len(table.rows)); err != nil {
			return err
		}
		if err := renderTable(w, table.headers, rows); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

func renderTable(w io.Writer, headers []string, rows [][]string) error {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if cw := runewidth.StringWidth(cell); cw > widths[i] {
				widths[i] = cw
			}
		}
	}

	if err := writeRow(w, headers, widths); err != nil {
		return err
	}

	separators := make([]string, len(headers))
	for i, width := range widths {
		separators[i] = strings.Repeat("-", width)
	}
	if err := writeRow(w, separators, widths); err != nil {
		return err
	}

	for _, row := range rows {
		if err := writeRow(w, row, widths); err != nil {
			return err
		}
	}
	return nil
}

func writeRow(w io.Writer, cells []string, widths []int) error {
	padded := make([]string, len(cells))
	for i, cell := range cells {
		padded[i] = runewidth.FillRight(cell, widths[i])
	}
	_, err := fmt.Fprintln(w, strings.TrimRight(strings.Join(padded, "  "), " "))
	return err
}
