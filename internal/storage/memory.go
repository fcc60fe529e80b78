package storage

import (
	"context"
	"fmt"
	"sync"

	"github.com/Veraticus/shopping-buddy/internal/common"
	"github.com/Veraticus/shopping-buddy/internal/model"
	"github.com/Veraticus/shopping-buddy/internal/service"
)

var _ service.ItemStore = (*MemoryStorage)(nil)

// MemoryStorage holds the encoded collection in memory. It goes through the
// same codec as the durable stores so round trips behave identically.
type MemoryStorage struct {
	data []byte
	mu   sync.Mutex
}

// NewMemoryStorage creates an empty in-memory store.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

// SaveItems replaces the stored collection.
func (m *MemoryStorage) SaveItems(ctx context.Context, items []model.Item) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	data, err := EncodeItems(items)
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.data = data
	m.mu.Unlock()
	return nil
}

// LoadItems decodes the stored collection.
func (m *MemoryStorage) LoadItems(ctx context.Context) ([]model.Item, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	m.mu.Lock()
	data := m.data
	m.mu.Unlock()

	if data == nil {
		return nil, fmt.Errorf("items: %w", common.ErrNotFound)
	}
	return DecodeItems(data)
}

// SetRaw replaces the stored bytes verbatim.
func (m *MemoryStorage) SetRaw(data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = append([]byte(nil), data...)
}

// Close is a no-op.
func (m *MemoryStorage) Close() error {
	return nil
}
