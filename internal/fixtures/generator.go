// Package fixtures generates a deterministic e-commerce dataset for tests.
//
// The generator is a pure function of the seed and the configured row
// counts: the same configuration always yields the same rows, so tests that
// consume the fixtures can assert on exact values.
package fixtures

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/dbsmedya/repolint/internal/config"
)

// User is a synthetic customer record.
type User struct {
	ID         int
	Name       string
	Email      string
	Country    string
	SignupDate time.Time
}

// Product is a synthetic catalog entry.
type Product struct {
	ID         int
	Name       string
	Category   string
	PriceCents int
}

// Order is a synthetic purchase. ShippedAt is nil unless the order shipped,
// and always after CreatedAt when set.
type Order struct {
	ID        int
	UserID    int
	Status    string
	CreatedAt time.Time
	ShippedAt *time.Time
}

// OrderItem is a line on an order. UnitPriceCents matches the referenced
// product's price.
type OrderItem struct {
	ID             int
	OrderID        int
	ProductID      int
	Quantity       int
	UnitPriceCents int
}

// Dataset holds all generated tables.
type Dataset struct {
	Users      []User
	Products   []Product
	Orders     []Order
	OrderItems []OrderItem
}

var (
	firstNames = []string{
		"Ada", "Burak", "Ceren", "Deniz", "Elif", "Fatih", "Gül", "Hakan",
		"Irene", "Jonas", "Kerem", "Leyla", "Mert", "Nora", "Omar", "Pelin",
		"Quentin", "Rana", "Selim", "Tuna",
	}
	lastNames = []string{
		"Acar", "Bauer", "Costa", "Demir", "Eriksen", "Fischer", "García",
		"Hansen", "Ivanov", "Jensen", "Kaya", "Larsen", "Moreau", "Novak",
		"Öztürk", "Petrov", "Rossi", "Silva", "Tanaka", "Yılmaz",
	}
	countries = []string{"TR", "DE", "NL", "FR", "ES", "IT", "PL", "SE", "US", "BR"}

	productAdjectives = []string{
		"Classic", "Compact", "Deluxe", "Eco", "Foldable", "Heavy-Duty",
		"Portable", "Premium", "Slim", "Wireless",
	}
	productNouns = []string{
		"Backpack", "Blender", "Desk Lamp", "Headphones", "Kettle",
		"Keyboard", "Monitor Stand", "Mug", "Notebook", "Water Bottle",
	}
	categories = []string{"electronics", "home", "kitchen", "office", "outdoors"}

	orderStatuses = []string{"pending", "paid", "shipped", "shipped", "cancelled"}
)

// epoch anchors all generated timestamps so runs do not depend on the clock.
var epoch = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// Generator produces the dataset from a seeded random source.
type Generator struct {
	cfg config.FixturesConfig
	rng *rand.Rand
}

// NewGenerator creates a generator for the given configuration.
func NewGenerator(cfg config.FixturesConfig) *Generator {
	return &Generator{
		cfg: cfg,
		rng: rand.New(rand.NewSource(cfg.Seed)),
	}
}

// Generate builds all tables. Orders reference generated users, order items
// reference generated orders and products.
func (g *Generator) Generate() *Dataset {
	ds := &Dataset{
		Users:    g.generateUsers(),
		Products: g.generateProducts(),
	}
	ds.Orders = g.generateOrders(len(ds.Users))
	ds.OrderItems = g.generateOrderItems(ds.Orders, ds.Products)
	return ds
}

// GenerateUsers builds only the user table. Callers that want the full
// dataset should use Generate; this exists for tests that assert on user
// rows alone.
func (g *Generator) GenerateUsers() []User {
	return g.generateUsers()
}

func (g *Generator) generateUsers() []User {
	users := make([]User, 0, g.cfg.Users)
	for i := 0; i < g.cfg.Users; i++ {
		id := i + 1
		first := firstNames[g.rng.Intn(len(firstNames))]
		last := lastNames[g.rng.Intn(len(lastNames))]
		users = append(users, User{
			ID:         id,
			Name:       first + " " + last,
			Email:      emailFor(first, last, id),
			Country:    countries[g.rng.Intn(len(countries))],
			SignupDate: epoch.AddDate(0, 0, -g.rng.Intn(730)),
		})
	}
	return users
}

func (g *Generator) generateProducts() []Product {
	products := make([]Product, 0, g.cfg.Products)
	for i := 0; i < g.cfg.Products; i++ {
		adjective := productAdjectives[g.rng.Intn(len(productAdjectives))]
		noun := productNouns[g.rng.Intn(len(productNouns))]
		products = append(products, Product{
			ID:         i + 1,
			Name:       adjective + " " + noun,
			Category:   categories[g.rng.Intn(len(categories))],
			PriceCents: 499 + g.rng.Intn(20000),
		})
	}
	return products
}

func (g *Generator) generateOrders(userCount int) []Order {
	if userCount == 0 {
		return nil
	}
	orders := make([]Order, 0, g.cfg.Orders)
	for i := 0; i < g.cfg.Orders; i++ {
		created := epoch.Add(time.Duration(g.rng.Intn(365*24)) * time.Hour)
		order := Order{
			ID:        i + 1,
			UserID:    g.rng.Intn(userCount) + 1,
			Status:    orderStatuses[g.rng.Intn(len(orderStatuses))],
			CreatedAt: created,
		}
		if order.Status == "shipped" {
			shipped := created.Add(time.Duration(1+g.rng.Intn(72)) * time.Hour)
			order.ShippedAt = &shipped
		}
		orders = append(orders, order)
	}
	return orders
}

func (g *Generator) generateOrderItems(orders []Order, products []Product) []OrderItem {
	if len(products) == 0 {
		return nil
	}
	var items []OrderItem
	nextID := 1
	for _, order := range orders {
		lines := 1 + g.rng.Intn(4)
		for l := 0; l < lines; l++ {
			product := products[g.rng.Intn(len(products))]
			items = append(items, OrderItem{
				ID:             nextID,
				OrderID:        order.ID,
				ProductID:      product.ID,
				Quantity:       1 + g.rng.Intn(5),
				UnitPriceCents: product.PriceCents,
			})
			nextID++
		}
	}
	return items
}

func emailFor(first, last string, id int) string {
	slug := strings.ToLower(first + "." + last)
	slug = strings.Map(func(r rune) rune {
		switch r {
		case 'ç':
			return 'c'
		case 'ğ':
			return 'g'
		case 'ı':
			return 'i'
		case 'ö':
			return 'o'
		case 'ş':
			return 's'
		case 'ü':
			return 'u'
		case 'á':
			return 'a'
		case 'í':
			return 'i'
		case ' ', '\'':
			return -1
		}
		return r
	}, slug)
	return fmt.Sprintf("%s%d@example.com", slug, id)
}
