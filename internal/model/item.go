// Package model defines the shopping list domain types.
package model

import (
	"github.com/google/uuid"
)

// Item is a single shopping-list entry.
// Two items are equal (==) only when every field, id included, matches.
// Field order is the persisted key order.
type Item struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name" validate:"required"`
	Quantity    int       `json:"quantity" validate:"gte=1"`
	UnitPrice   float64   `json:"unitPrice" validate:"gte=0"`
	IsPurchased bool      `json:"isPurchased"`
	Section     Section   `json:"section" validate:"required,section"`
}

// NewItem builds an unpurchased item with a fresh id.
// The name is trimmed before validation.
func NewItem(name string, quantity int, unitPrice float64, section Section) (Item, error) {
	return RestoreItem(uuid.New(), name, quantity, unitPrice, false, section)
}

// RestoreItem builds an item that already carries an id, as on decode or edit.
func RestoreItem(id uuid.UUID, name string, quantity int, unitPrice float64, purchased bool, section Section) (Item, error) {
	item := Item{
		ID:          id,
		Name:        trimName(name),
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		IsPurchased: purchased,
		Section:     section,
	}
	if err := item.Validate(); err != nil {
		return Item{}, err
	}
	return item, nil
}

// Validate checks the item invariants.
func (i Item) Validate() error {
	fields := make(map[string]string)
	if i.ID == uuid.Nil {
		fields["id"] = "is required"
	}
	if err := validate.Struct(i); err != nil {
		for field, msg := range describe(err) {
			fields[field] = msg
		}
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// TotalPrice is quantity times unit price.
func (i Item) TotalPrice() float64 {
	return float64(i.Quantity) * i.UnitPrice
}
