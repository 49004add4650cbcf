package fixtures

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnswerQuestion(t *testing.T) {
	tests := []struct {
		name     string
		question string
		topic    string
	}{
		{name: "revenue question", question: "What was our revenue last quarter?", topic: "revenue"},
		{name: "sales synonym", question: "show me sales by month", topic: "revenue"},
		{name: "top products", question: "Which are the top products?", topic: "top-products"},
		{name: "bestseller", question: "list the bestsellers", topic: "top-products"},
		{name: "signups", question: "how many signups did we get?", topic: "signups"},
		{name: "customers", question: "customer breakdown by country", topic: "signups"},
		{name: "case insensitive", question: "REVENUE trend please", topic: "revenue"},
		{name: "no match falls back", question: "what is the weather like?", topic: "general"},
		{name: "empty question falls back", question: "", topic: "general"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			answer := AnswerQuestion(tt.question)
			assert.Equal(t, tt.topic, answer.Topic)
			assert.NotEmpty(t, answer.Report)
			assert.NotEmpty(t, answer.Query)
		})
	}
}

func TestAnswerQueriesReferenceFixtureTables(t *testing.T) {
	assert.Contains(t, AnswerQuestion("revenue").Query, "order_items")
	assert.Contains(t, AnswerQuestion("top products").Query, "products")
	assert.Contains(t, AnswerQuestion("signups").Query, "users")
}

func TestEnvConfig(t *testing.T) {
	env := EnvConfig()

	assert.Equal(t, "localhost", env["ANALYTICS_DB_HOST"])
	assert.Equal(t, "fixtures", env["ANALYTICS_DB_NAME"])

	// Secret-shaped values must never carry real-looking material.
	assert.Equal(t, "***MASKED***", env["ANALYTICS_DB_PASSWORD"])
	assert.Equal(t, "***MASKED***", env["ANALYTICS_API_KEY"])
}
