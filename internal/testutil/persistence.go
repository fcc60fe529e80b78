package testutil

import (
	"context"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/Veraticus/shopping-buddy/internal/model"
	"github.com/Veraticus/shopping-buddy/internal/shopping"
)

// RecordingPersistence is an in-memory persistence boundary that records
// every save. Load returns whatever was last saved or seeded.
type RecordingPersistence struct {
	stored    []model.Item
	saves     [][]model.Item
	loadDelay time.Duration
	mu        sync.Mutex
}

// NewRecordingPersistence returns a fake seeded with the given items.
func NewRecordingPersistence(seed []model.Item) *RecordingPersistence {
	return &RecordingPersistence{stored: slices.Clone(seed)}
}

// WithLoadDelay makes Load block for d, to observe the loading state.
func (p *RecordingPersistence) WithLoadDelay(d time.Duration) *RecordingPersistence {
	p.loadDelay = d
	return p
}

// Save records a copy of items.
func (p *RecordingPersistence) Save(_ context.Context, items []model.Item) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stored = slices.Clone(items)
	p.saves = append(p.saves, slices.Clone(items))
}

// Load returns a copy of the stored items.
func (p *RecordingPersistence) Load(ctx context.Context) []model.Item {
	if p.loadDelay > 0 {
		select {
		case <-time.After(p.loadDelay):
		case <-ctx.Done():
			return []model.Item{}
		}
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.stored == nil {
		return []model.Item{}
	}
	return slices.Clone(p.stored)
}

// SaveCount reports how many saves have happened.
func (p *RecordingPersistence) SaveCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.saves)
}

// Stored returns the most recently saved list.
func (p *RecordingPersistence) Stored() []model.Item {
	p.mu.Lock()
	defer p.mu.Unlock()
	return slices.Clone(p.stored)
}

// NewTestManager builds a manager over persistence, initializes it and waits
// for the load to finish. The manager is closed on cleanup.
func NewTestManager(t *testing.T, persistence *RecordingPersistence, opts ...shopping.Option) *shopping.Manager {
	t.Helper()

	m := shopping.NewManager(persistence, opts...)
	t.Cleanup(m.Close)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	m.Initialize(ctx)
	if err := m.WaitReady(ctx); err != nil {
		t.Fatalf("manager did not become ready: %v", err)
	}
	return m
}
