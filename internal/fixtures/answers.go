package fixtures

import "strings"

// Answer is a canned analyst response: human-readable report text plus the
// query that would have produced it.
type Answer struct {
	Topic  string
	Report string
	Query  string
}

var answers = []struct {
	keywords []string
	answer   Answer
}{
	{
		keywords: []string{"revenue", "sales", "income"},
		answer: Answer{
			Topic: "revenue",
			Report: "Monthly revenue held steady around €48.2k, with shipped orders " +
				"accounting for 71% of the total. March was the strongest month.",
			Query: "SELECT DATE_FORMAT(o.created_at, '%Y-%m') AS month,\n" +
				"       SUM(oi.quantity * oi.unit_price_cents) / 100 AS revenue\n" +
				"FROM orders o\n" +
				"JOIN order_items oi ON oi.order_id = o.id\n" +
				"WHERE o.status <> 'cancelled'\n" +
				"GROUP BY month ORDER BY month",
		},
	},
	{
		keywords: []string{"top", "best", "product", "bestseller"},
		answer: Answer{
			Topic: "top-products",
			Report: "The top three products by units sold are Wireless Headphones, " +
				"Classic Mug and Portable Kettle; together they make up 18% of units.",
			Query: "SELECT p.name, SUM(oi.quantity) AS units\n" +
				"FROM order_items oi\n" +
				"JOIN products p ON p.id = oi.product_id\n" +
				"GROUP BY p.id ORDER BY units DESC LIMIT 10",
		},
	},
	{
		keywords: []string{"signup", "sign-up", "user", "customer", "growth"},
		answer: Answer{
			Topic: "signups",
			Report: "Signups grew 12% quarter over quarter. TR and DE remain the " +
				"largest markets, together holding 43% of the user base.",
			Query: "SELECT country, COUNT(*) AS users\n" +
				"FROM users\n" +
				"GROUP BY country ORDER BY users DESC",
		},
	},
}

// fallbackAnswer is returned when no keyword matches.
var fallbackAnswer = Answer{
	Topic: "general",
	Report: "I could not match the question to a known report. Try asking about " +
		"revenue, top products or signups.",
	Query: "SELECT COUNT(*) FROM orders",
}

// AnswerQuestion matches a free-text question against the canned topics and
// returns the first matching answer, or a fallback.
func AnswerQuestion(question string) Answer {
	q := strings.ToLower(question)
	for _, entry := range answers {
		for _, keyword := range entry.keywords {
			if strings.Contains(q, keyword) {
				return entry.answer
			}
		}
	}
	return fallbackAnswer
}

// EnvConfig returns the environment variables the analytics test suite
// expects. Secret-shaped values stay masked.
func EnvConfig() map[string]string {
	return map[string]string{
		"ANALYTICS_DB_HOST":     "localhost",
		"ANALYTICS_DB_PORT":     "3306",
		"ANALYTICS_DB_NAME":     "fixtures",
		"ANALYTICS_DB_USER":     "analytics",
		"ANALYTICS_DB_PASSWORD": "***MASKED***",
		"ANALYTICS_API_KEY":     "***MASKED***",
		"ANALYTICS_REGION":      "eu-central-1",
	}
}
