// Package testutil provides shared fixtures for shopping-buddy tests: migrated
// in-memory databases, recording persistence fakes and ready-to-use managers.
package testutil

import (
	"context"
	"testing"

	"github.com/Veraticus/shopping-buddy/internal/storage"
	"github.com/Veraticus/shopping-buddy/internal/testutil/items"
)

// TestDB is a migrated in-memory SQLite store with its seeded items.
type TestDB struct {
	Storage *storage.SQLiteStorage
	t       *testing.T
	Items   items.Items
}

// SetupTestDB creates a new in-memory database seeded with the given items.
// Migrations and cleanup are handled automatically.
//
// Example:
//
//	db := testutil.SetupTestDB(t,
//		items.NewBuilder(t).WithFixture(items.FixtureWeekly).Build(),
//	)
func SetupTestDB(t *testing.T, seed items.Items) *TestDB {
	t.Helper()

	store, err := storage.NewSQLiteStorage(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})

	ctx := context.Background()
	if err := store.Migrate(ctx); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	if len(seed) > 0 {
		if err := store.SaveItems(ctx, seed); err != nil {
			t.Fatalf("failed to seed items: %v", err)
		}
	}

	return &TestDB{
		Storage: store,
		Items:   seed,
		t:       t,
	}
}

// SetupTestDBWithBuilder creates a test database using an item builder.
//
// Example:
//
//	db := testutil.SetupTestDBWithBuilder(t, func(b items.Builder) items.Builder {
//		return b.WithFixture(items.FixtureWeekly)
//	})
func SetupTestDBWithBuilder(t *testing.T, configure func(items.Builder) items.Builder) *TestDB {
	t.Helper()

	builder := items.NewBuilder(t)
	if configure != nil {
		builder = configure(builder)
	}
	return SetupTestDB(t, builder.Build())
}

// Gateway wraps the database in the total persistence boundary.
func (db *TestDB) Gateway() *storage.Gateway {
	return storage.NewGateway(db.Storage)
}

// MustLoad reads the stored list or fails the test.
func (db *TestDB) MustLoad() items.Items {
	db.t.Helper()
	loaded, err := db.Storage.LoadItems(context.Background())
	if err != nil {
		db.t.Fatalf("failed to load items: %v", err)
	}
	return loaded
}
