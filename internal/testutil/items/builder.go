// Package items provides test infrastructure for seeding shopping list items.
// It offers a fluent API for building item sets and predefined fixtures so
// tests across packages agree on what a "typical" list looks like.
//
// Example usage:
//
//	list := items.NewBuilder(t).
//		WithFixture(items.FixtureWeekly).
//		WithItem("Coffee", 1, 12.5, model.SectionBeverages).
//		Build()
package items

import (
	"testing"

	"github.com/Veraticus/shopping-buddy/internal/model"
)

// Builder provides a fluent interface for constructing test items.
type Builder interface {
	// WithItem adds a single unpurchased item.
	WithItem(name ItemName, quantity int, unitPrice float64, section model.Section) Builder

	// WithPurchasedItem adds a single item already marked as purchased.
	WithPurchasedItem(name ItemName, quantity int, unitPrice float64, section model.Section) Builder

	// WithFixture adds every item from a predefined fixture.
	WithFixture(fixture Fixture) Builder

	// Build validates and returns the items in insertion order.
	Build() Items
}

// ItemName is a strongly-typed item name used by fixtures.
type ItemName string

// String returns the string representation of the item name.
func (n ItemName) String() string {
	return string(n)
}

// Common item names used across tests.
const (
	ItemApple   ItemName = "Apple"
	ItemBread   ItemName = "Bread"
	ItemCheese  ItemName = "Cheese"
	ItemCoffee  ItemName = "Coffee"
	ItemEggs    ItemName = "Eggs"
	ItemMilk    ItemName = "Milk"
	ItemPizza   ItemName = "Frozen Pizza"
	ItemSoap    ItemName = "Soap"
	ItemSpinach ItemName = "Spinach"
)

// Items is a collection of built test items.
type Items []model.Item

// Find returns the item with the given name, or nil if not found.
func (it Items) Find(name ItemName) *model.Item {
	for i := range it {
		if model.SameName(it[i].Name, name.String()) {
			return &it[i]
		}
	}
	return nil
}

// MustFind returns the item with the given name or fails the test.
func (it Items) MustFind(t *testing.T, name ItemName) model.Item {
	t.Helper()
	item := it.Find(name)
	if item == nil {
		t.Fatalf("item %q not found in test data", name)
	}
	return *item
}

// Names returns the item names in order.
func (it Items) Names() []string {
	names := make([]string, len(it))
	for i, item := range it {
		names[i] = item.Name
	}
	return names
}

// Total returns the sum of line totals.
func (it Items) Total() float64 {
	var total float64
	for _, item := range it {
		total += item.TotalPrice()
	}
	return total
}

type entry struct {
	name      ItemName
	section   model.Section
	unitPrice float64
	quantity  int
	purchased bool
}

type itemBuilder struct {
	t     *testing.T
	entries []entry
}

// NewBuilder creates a new item builder for the given test.
func NewBuilder(t *testing.T) Builder {
	t.Helper()
	return &itemBuilder{t: t}
}

func (b *itemBuilder) WithItem(name ItemName, quantity int, unitPrice float64, section model.Section) Builder {
	b.entries = append(b.entries, entry{name: name, quantity: quantity, unitPrice: unitPrice, section: section})
	return b
}

func (b *itemBuilder) WithPurchasedItem(name ItemName, quantity int, unitPrice float64, section model.Section) Builder {
	b.entries = append(b.entries, entry{name: name, quantity: quantity, unitPrice: unitPrice, section: section, purchased: true})
	return b
}

func (b *itemBuilder) WithFixture(fixture Fixture) Builder {
	b.entries = append(b.entries, fixture.entries()...)
	return b
}

func (b *itemBuilder) Build() Items {
	b.t.Helper()

	result := make(Items, 0, len(b.entries))
	for _, s := range b.entries {
		item, err := model.NewItem(s.name.String(), s.quantity, s.unitPrice, s.section)
		if err != nil {
			b.t.Fatalf("failed to build item %q: %v", s.name, err)
		}
		item.IsPurchased = s.purchased
		result = append(result, item)
	}
	return result
}
