package sqlutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuoteIdentifier(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "Simple table name", input: "users", expected: "`users`"},
		{name: "Table with underscore", input: "order_items", expected: "`order_items`"},
		{name: "Mixed case", input: "OrderItems", expected: "`OrderItems`"},
		{name: "Empty string", input: "", expected: "``"},
		{name: "Single backtick escaped", input: "my`table", expected: "`my``table`"},
		{name: "Backtick at end", input: "table`", expected: "`table```"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, QuoteIdentifier(tt.input))
		})
	}
}

func TestIsValidIdentifier(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{name: "Simple name", input: "products", valid: true},
		{name: "With underscore", input: "order_items", valid: true},
		{name: "Numeric", input: "shard12", valid: true},
		{name: "Empty string", input: "", valid: false},
		{name: "With space", input: "my table", valid: false},
		{name: "With dot", input: "db.table", valid: false},
		{name: "With backtick", input: "my`table", valid: false},
		{name: "SQL injection attempt", input: "users; DROP TABLE users--", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsValidIdentifier(tt.input))
		})
	}
}

func TestQuoteIdentifierSafe(t *testing.T) {
	result, err := QuoteIdentifierSafe("orders")
	require.NoError(t, err)
	assert.Equal(t, "`orders`", result)

	result, err = QuoteIdentifierSafe("orders; DROP TABLE orders--")
	assert.Error(t, err)
	assert.Empty(t, result)
	assert.IsType(t, &InvalidIdentifierError{}, err)
	assert.Contains(t, err.Error(), "invalid identifier")
}
