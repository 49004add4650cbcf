package fixtures

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dbsmedya/repolint/internal/config"
)

func testFixturesConfig() config.FixturesConfig {
	return config.FixturesConfig{
		Seed:     42,
		Users:    50,
		Products: 20,
		Orders:   120,
	}
}

func TestSameSeedYieldsIdenticalUsers(t *testing.T) {
	cfg := testFixturesConfig()

	first := NewGenerator(cfg).GenerateUsers()
	second := NewGenerator(cfg).GenerateUsers()

	require.Len(t, first, cfg.Users)
	assert.Equal(t, first, second)
}

func TestSameSeedYieldsIdenticalDataset(t *testing.T) {
	cfg := testFixturesConfig()

	first := NewGenerator(cfg).Generate()
	second := NewGenerator(cfg).Generate()

	assert.Equal(t, first, second)
}

func TestDifferentSeedsDiffer(t *testing.T) {
	cfg := testFixturesConfig()
	first := NewGenerator(cfg).GenerateUsers()

	cfg.Seed = 43
	second := NewGenerator(cfg).GenerateUsers()

	assert.NotEqual(t, first, second)
}

func TestOrdersReferenceGeneratedUsers(t *testing.T) {
	cfg := testFixturesConfig()
	ds := NewGenerator(cfg).Generate()

	require.Len(t, ds.Orders, cfg.Orders)
	for _, order := range ds.Orders {
		assert.GreaterOrEqual(t, order.UserID, 1)
		assert.LessOrEqual(t, order.UserID, len(ds.Users))
	}
}

func TestShippedAtAfterCreatedAt(t *testing.T) {
	ds := NewGenerator(testFixturesConfig()).Generate()

	var shipped int
	for _, order := range ds.Orders {
		if order.Status != "shipped" {
			assert.Nil(t, order.ShippedAt)
			continue
		}
		shipped++
		require.NotNil(t, order.ShippedAt)
		assert.True(t, order.ShippedAt.After(order.CreatedAt),
			"order %d shipped at %s before created at %s",
			order.ID, order.ShippedAt, order.CreatedAt)
	}
	assert.Positive(t, shipped)
}

func TestOrderItemsConsistent(t *testing.T) {
	ds := NewGenerator(testFixturesConfig()).Generate()
	require.NotEmpty(t, ds.OrderItems)

	productByID := make(map[int]Product, len(ds.Products))
	for _, p := range ds.Products {
		productByID[p.ID] = p
	}

	prevID := 0
	for _, item := range ds.OrderItems {
		assert.Equal(t, prevID+1, item.ID)
		prevID = item.ID

		assert.GreaterOrEqual(t, item.OrderID, 1)
		assert.LessOrEqual(t, item.OrderID, len(ds.Orders))

		product, ok := productByID[item.ProductID]
		require.True(t, ok, "item %d references unknown product %d", item.ID, item.ProductID)
		assert.Equal(t, product.PriceCents, item.UnitPriceCents)
		assert.GreaterOrEqual(t, item.Quantity, 1)
	}
}

func TestEmailsAreASCIIAndUnique(t *testing.T) {
	users := NewGenerator(testFixturesConfig()).GenerateUsers()

	pattern := regexp.MustCompile(`^[a-z]+\.[a-z]+\d+@example\.com$`)
	seen := make(map[string]bool, len(users))
	for _, u := range users {
		assert.Regexp(t, pattern, u.Email)
		assert.False(t, seen[u.Email], "duplicate email %s", u.Email)
		seen[u.Email] = true
	}
}

func TestZeroCountsProduceEmptyTables(t *testing.T) {
	ds := NewGenerator(config.FixturesConfig{Seed: 1}).Generate()

	assert.Empty(t, ds.Users)
	assert.Empty(t, ds.Products)
	assert.Empty(t, ds.Orders)
	assert.Empty(t, ds.OrderItems)
}
