package storage

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/Veraticus/shopping-buddy/internal/common"
	"github.com/Veraticus/shopping-buddy/internal/model"
	"github.com/Veraticus/shopping-buddy/internal/service"
)

var _ service.Persistence = (*Gateway)(nil)

// DefaultRetryOptions retries a save a few times when the store reports lock
// contention.
var DefaultRetryOptions = service.RetryOptions{
	MaxAttempts:  3,
	InitialDelay: 25 * time.Millisecond,
	MaxDelay:     250 * time.Millisecond,
	Multiplier:   2,
}

// Gateway adapts a fallible ItemStore to the total Persistence contract.
// Failures are logged and swallowed; the cause of the last failed load stays
// available through LastLoadErr.
type Gateway struct {
	store       service.ItemStore
	lastLoadErr error
	lastSaveErr error
	retry       service.RetryOptions
	mu          sync.Mutex
}

// GatewayOption configures a Gateway.
type GatewayOption func(*Gateway)

// WithRetryOptions overrides the save retry policy.
func WithRetryOptions(opts service.RetryOptions) GatewayOption {
	return func(g *Gateway) {
		g.retry = opts
	}
}

// NewGateway wraps store.
func NewGateway(store service.ItemStore, opts ...GatewayOption) *Gateway {
	g := &Gateway{
		store: store,
		retry: DefaultRetryOptions,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Save overwrites the stored collection. On failure the prior state remains.
func (g *Gateway) Save(ctx context.Context, items []model.Item) {
	err := common.WithRetry(ctx, func() error {
		return g.store.SaveItems(ctx, items)
	}, g.retry)

	g.mu.Lock()
	g.lastSaveErr = err
	g.mu.Unlock()

	if err != nil {
		common.LogError(err, "failed to save items", common.Fields{"count": len(items)})
	}
}

// Load returns the stored collection, or an empty one when nothing was saved
// or the stored data cannot be read.
func (g *Gateway) Load(ctx context.Context) []model.Item {
	items, err := g.store.LoadItems(ctx)

	g.mu.Lock()
	g.lastLoadErr = err
	g.mu.Unlock()

	switch {
	case err == nil:
		return items
	case errors.Is(err, common.ErrNotFound):
		common.LogDebug("no saved items", nil)
	default:
		common.LogWarn(err, "discarding unreadable saved items", nil)
	}
	return []model.Item{}
}

// LastLoadErr reports why the most recent Load fell back to an empty list.
// It is nil after a successful load.
func (g *Gateway) LastLoadErr() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.lastLoadErr
}

// LastSaveErr reports the failure of the most recent Save, if any.
func (g *Gateway) LastSaveErr() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.lastSaveErr
}

// Close releases the underlying store.
func (g *Gateway) Close() error {
	return g.store.Close()
}
