package storage

import (
	"context"
	"fmt"

	"github.com/Veraticus/shopping-buddy/internal/common"
	"github.com/Veraticus/shopping-buddy/internal/service"
)

// Backend names a store implementation.
type Backend string

// Supported backends.
const (
	BackendSQLite Backend = "sqlite"
	BackendFile   Backend = "file"
	BackendMemory Backend = "memory"
)

// Options selects and locates a store.
type Options struct {
	Backend      Backend
	DatabasePath string
	FilePath     string
}

// Open creates the configured store, running migrations where needed.
func Open(ctx context.Context, opts Options) (service.ItemStore, error) {
	switch opts.Backend {
	case BackendSQLite, "":
		store, err := NewSQLiteStorage(opts.DatabasePath)
		if err != nil {
			return nil, err
		}
		if err := store.Migrate(ctx); err != nil {
			_ = store.Close()
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		return store, nil
	case BackendFile:
		return NewFileStorage(opts.FilePath)
	case BackendMemory:
		return NewMemoryStorage(), nil
	default:
		return nil, fmt.Errorf("%w: unknown storage backend %q", common.ErrInvalidConfig, opts.Backend)
	}
}
