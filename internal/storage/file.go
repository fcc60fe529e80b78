package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Veraticus/shopping-buddy/internal/common"
	"github.com/Veraticus/shopping-buddy/internal/model"
	"github.com/Veraticus/shopping-buddy/internal/service"
)

var _ service.ItemStore = (*FileStorage)(nil)

// FileStorage keeps the collection in a single JSON file.
type FileStorage struct {
	path string
}

// NewFileStorage creates a file-backed store at path. The file itself is
// created on first save.
func NewFileStorage(path string) (*FileStorage, error) {
	if err := validateString(path, "path"); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &FileStorage{path: path}, nil
}

// Path returns the file location.
func (f *FileStorage) Path() string {
	return f.path
}

// SaveItems writes a temp file next to the target and renames it into place,
// so readers see either the old list or the new one.
func (f *FileStorage) SaveItems(ctx context.Context, items []model.Item) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	data, err := EncodeItems(items)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.path), "."+filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpName) }

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		cleanup()
		return fmt.Errorf("failed to write items: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		cleanup()
		return fmt.Errorf("failed to sync items: %w", err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		cleanup()
		return fmt.Errorf("failed to replace items file: %w", err)
	}

	slog.Debug("saved items", "count", len(items), "path", f.path)
	return nil
}

// LoadItems reads the collection, or returns common.ErrNotFound when the
// file does not exist yet.
func (f *FileStorage) LoadItems(ctx context.Context) ([]model.Item, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("items file %s: %w", f.path, common.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read items: %w", err)
	}

	return DecodeItems(data)
}

// Close is a no-op; the file is not held open between calls.
func (f *FileStorage) Close() error {
	return nil
}
