// Package shopping owns the shopping list state: the item collection, the
// add/edit form, two-step deletion and the view-only section toggles.
package shopping

import (
	"slices"

	"github.com/Veraticus/shopping-buddy/internal/model"
)

// Draft holds raw, unvalidated form input.
type Draft struct {
	Name          string
	QuantityText  string
	UnitPriceText string
	Section       model.Section
}

// State is a read-only copy of everything a presentation layer renders.
type State struct {
	EditingItem      *model.Item
	PendingDelete    *model.Item
	Draft            Draft
	Items            []model.Item
	HiddenSections   []model.Section
	Loading          bool
	DuplicateWarning bool
	ConfirmDelete    bool
	ConfirmDeleteAll bool
	ShowInputFields  bool
}

// IsEditing reports whether the form is editing an existing item.
func (s State) IsEditing() bool {
	return s.EditingItem != nil
}

// SectionHidden reports whether section is collapsed.
func (s State) SectionHidden(section model.Section) bool {
	return slices.Contains(s.HiddenSections, section)
}

// TotalPrice sums the total price of every item, purchased or not.
func (s State) TotalPrice() float64 {
	return totalPrice(s.Items)
}

// SectionGroup is one section's items in display order.
type SectionGroup struct {
	Section model.Section
	Items   []model.Item
	Count   int
	Hidden  bool
}

// Groups splits the items by section in canonical section order. Hidden
// sections keep their count but carry no items.
func (s State) Groups() []SectionGroup {
	groups := make([]SectionGroup, 0, len(model.AllSections()))
	for _, section := range model.AllSections() {
		var items []model.Item
		for _, item := range s.Items {
			if item.Section == section {
				items = append(items, item)
			}
		}
		slices.SortStableFunc(items, CompareForDisplay)

		group := SectionGroup{
			Section: section,
			Count:   len(items),
			Hidden:  s.SectionHidden(section),
		}
		if !group.Hidden {
			group.Items = items
		}
		groups = append(groups, group)
	}
	return groups
}

func totalPrice(items []model.Item) float64 {
	var total float64
	for _, item := range items {
		total += item.TotalPrice()
	}
	return total
}

func cloneItem(item *model.Item) *model.Item {
	if item == nil {
		return nil
	}
	c := *item
	return &c
}
