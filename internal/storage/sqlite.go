package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Veraticus/shopping-buddy/internal/common"
	"github.com/Veraticus/shopping-buddy/internal/model"
	"github.com/Veraticus/shopping-buddy/internal/service"

	sqlite3 "github.com/mattn/go-sqlite3"
)

var _ service.ItemStore = (*SQLiteStorage)(nil)

// SQLiteStorage keeps the encoded collection in a single key/value row.
type SQLiteStorage struct {
	db     *sql.DB
	dbPath string
}

// NewSQLiteStorage creates a new SQLite storage instance.
func NewSQLiteStorage(dbPath string) (*SQLiteStorage, error) {
	if err := validateString(dbPath, "dbPath"); err != nil {
		return nil, err
	}

	if dbPath != ":memory:" {
		dir := filepath.Dir(dbPath)
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite doesn't benefit from multiple connections, and :memory: needs exactly one.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &SQLiteStorage{
		db:     db,
		dbPath: dbPath,
	}, nil
}

// Close closes the database connection.
func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

// Path returns the database location.
func (s *SQLiteStorage) Path() string {
	return s.dbPath
}

// SaveItems overwrites the stored collection.
func (s *SQLiteStorage) SaveItems(ctx context.Context, items []model.Item) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	data, err := EncodeItems(items)
	if err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return classifySQLiteError(fmt.Errorf("failed to begin transaction: %w", err))
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO kv_store (key, value, revision, updated_at)
		VALUES (?, ?, 1, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			revision = kv_store.revision + 1,
			updated_at = CURRENT_TIMESTAMP`,
		ItemsKey, data)
	if err != nil {
		return classifySQLiteError(fmt.Errorf("failed to save items: %w", err))
	}

	if err := tx.Commit(); err != nil {
		return classifySQLiteError(fmt.Errorf("failed to commit items: %w", err))
	}

	slog.Debug("saved items", "count", len(items), "bytes", len(data))
	return nil
}

// LoadItems returns the stored collection, or common.ErrNotFound.
func (s *SQLiteStorage) LoadItems(ctx context.Context) ([]model.Item, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	data, err := s.loadRaw(ctx)
	if err != nil {
		return nil, err
	}

	items, err := DecodeItems(data)
	if err != nil {
		return nil, err
	}

	slog.Debug("loaded items", "count", len(items))
	return items, nil
}

// Revision counts how many times the collection has been saved.
func (s *SQLiteStorage) Revision(ctx context.Context) (int, error) {
	var revision int
	err := s.db.QueryRowContext(ctx, `SELECT revision FROM kv_store WHERE key = ?`, ItemsKey).Scan(&revision)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to query revision: %w", err)
	}
	return revision, nil
}

func (s *SQLiteStorage) loadRaw(ctx context.Context) ([]byte, error) {
	var data []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv_store WHERE key = ?`, ItemsKey).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("items: %w", common.ErrNotFound)
	}
	if err != nil {
		return nil, classifySQLiteError(fmt.Errorf("failed to query items: %w", err))
	}
	return data, nil
}

// classifySQLiteError marks lock contention as retryable and every other
// driver error as final.
func classifySQLiteError(err error) error {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return err
	}
	if sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked {
		return &common.RetryableError{Err: fmt.Errorf("%w: %w", common.ErrStoreBusy, err), Retryable: true}
	}
	return &common.RetryableError{Err: err, Retryable: false}
}
