package storage

import (
	"context"
	"fmt"

	"github.com/Veraticus/shopping-buddy/internal/common"
)

// ExpectedSchemaVersion is the schema this build reads and writes.
const ExpectedSchemaVersion = 2

// Migration is one step of the kv_store schema. Version is stored in
// PRAGMA user_version once the statements commit.
type Migration struct {
	Description string
	Statements  []string
	Version     int
}

var migrations = []Migration{
	{
		Version:     1,
		Description: "key/value table for the encoded list",
		Statements: []string{`
			CREATE TABLE IF NOT EXISTS kv_store (
				key TEXT PRIMARY KEY,
				value BLOB NOT NULL,
				updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
			)`,
		},
	},
	{
		Version:     2,
		Description: "count saves per key",
		Statements: []string{
			`ALTER TABLE kv_store ADD COLUMN revision INTEGER NOT NULL DEFAULT 0`,
		},
	},
}

// Migrate applies every migration newer than the stored schema version, each
// in its own transaction.
func (s *SQLiteStorage) Migrate(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	current, err := s.SchemaVersion(ctx)
	if err != nil {
		return err
	}

	for _, m := range migrations {
		if m.Version <= current {
			continue
		}
		if err := s.apply(ctx, m); err != nil {
			return err
		}
		common.LogDebug("applied migration", common.Fields{
			"version":     m.Version,
			"description": m.Description,
		})
	}

	final, err := s.SchemaVersion(ctx)
	if err != nil {
		return err
	}
	if final != ExpectedSchemaVersion {
		return fmt.Errorf("%w: schema version %d, want %d", common.ErrDatabaseCorrupted, final, ExpectedSchemaVersion)
	}
	return nil
}

func (s *SQLiteStorage) apply(ctx context.Context, m Migration) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return classifySQLiteError(fmt.Errorf("migration %d: %w", m.Version, err))
	}
	defer func() { _ = tx.Rollback() }()

	for _, stmt := range m.Statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration %d (%s): %w", m.Version, m.Description, err)
		}
	}
	// PRAGMA does not take bind parameters.
	if _, err := tx.ExecContext(ctx, fmt.Sprintf("PRAGMA user_version = %d", m.Version)); err != nil {
		return fmt.Errorf("migration %d: set user_version: %w", m.Version, err)
	}
	if err := tx.Commit(); err != nil {
		return classifySQLiteError(fmt.Errorf("migration %d: commit: %w", m.Version, err))
	}
	return nil
}

// SchemaVersion reports the applied migration version; 0 for a new file.
func (s *SQLiteStorage) SchemaVersion(ctx context.Context) (int, error) {
	var version int
	if err := s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&version); err != nil {
		return 0, fmt.Errorf("failed to read schema version: %w", err)
	}
	return version, nil
}
