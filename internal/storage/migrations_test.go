package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_ReachesExpectedVersion(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()

	version, err := store.SchemaVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ExpectedSchemaVersion, version)
}

func TestMigrate_Idempotent(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	require.NoError(t, store.SaveItems(ctx, testItems(t)))
	require.NoError(t, store.Migrate(ctx))

	loaded, err := store.LoadItems(ctx)
	require.NoError(t, err)
	assert.Len(t, loaded, 2)
}

func TestMigrations_AreSequential(t *testing.T) {
	for i, migration := range migrations {
		assert.Equal(t, i+1, migration.Version, "migration %q out of order", migration.Description)
		assert.NotEmpty(t, migration.Description)
	}
	assert.Equal(t, ExpectedSchemaVersion, migrations[len(migrations)-1].Version)
}
