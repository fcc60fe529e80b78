package items

import "github.com/Veraticus/shopping-buddy/internal/model"

// Fixture is a predefined set of items for a test scenario.
type Fixture interface {
	// Name returns the fixture's descriptive name.
	Name() string

	// Description returns what the fixture is meant to exercise.
	Description() string

	entries() []entry
}

type fixture struct {
	name        string
	description string
	items       []entry
}

func (f *fixture) Name() string        { return f.name }
func (f *fixture) Description() string { return f.description }
func (f *fixture) entries() []entry    { return f.items }

// Predefined fixtures for common test scenarios.
var (
	// FixtureMinimal is a single unpurchased item.
	FixtureMinimal Fixture = &fixture{
		name:        "Minimal",
		description: "One unpurchased item",
		items: []entry{
			{name: ItemApple, quantity: 2, unitPrice: 0.99, section: model.SectionFruits},
		},
	}

	// FixtureWeekly spans several sections and mixes purchased state.
	FixtureWeekly Fixture = &fixture{
		name:        "Weekly",
		description: "A typical weekly list across sections with some items bought",
		items: []entry{
			{name: ItemMilk, quantity: 2, unitPrice: 4.5, section: model.SectionDairy},
			{name: ItemCheese, quantity: 1, unitPrice: 12, section: model.SectionDairy, purchased: true},
			{name: ItemPizza, quantity: 3, unitPrice: 15.9, section: model.SectionFrozen},
			{name: ItemSpinach, quantity: 1, unitPrice: 3.25, section: model.SectionFruits},
			{name: ItemSoap, quantity: 4, unitPrice: 2, section: model.SectionHygiene, purchased: true},
			{name: ItemBread, quantity: 1, unitPrice: 0, section: model.SectionOthers},
		},
	}
)
