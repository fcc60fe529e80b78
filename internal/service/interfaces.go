// Package service defines the interfaces shared between the list manager and its collaborators.
package service

import (
	"context"
	"time"

	"github.com/Veraticus/shopping-buddy/internal/model"
)

// ItemStore is a fallible store for the whole item collection.
// LoadItems returns common.ErrNotFound when nothing was saved yet.
type ItemStore interface {
	SaveItems(ctx context.Context, items []model.Item) error
	LoadItems(ctx context.Context) ([]model.Item, error)
	Close() error
}

// Persistence is the total save/load boundary the list manager depends on.
// Neither method reports failure: Save leaves prior state in place and Load
// falls back to an empty collection.
type Persistence interface {
	Save(ctx context.Context, items []model.Item)
	Load(ctx context.Context) []model.Item
}

// RetryOptions configures retry behavior for operations.
type RetryOptions struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}
