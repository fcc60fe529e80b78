package storage

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/Veraticus/shopping-buddy/internal/common"
	"github.com/Veraticus/shopping-buddy/internal/model"
	"github.com/Veraticus/shopping-buddy/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// flakyStore fails a fixed number of saves before delegating.
type flakyStore struct {
	*MemoryStorage
	saveErr   error
	loadErr   error
	failSaves int
	saveCalls int
}

func (f *flakyStore) SaveItems(ctx context.Context, items []model.Item) error {
	f.saveCalls++
	if f.saveCalls <= f.failSaves {
		return f.saveErr
	}
	return f.MemoryStorage.SaveItems(ctx, items)
}

func (f *flakyStore) LoadItems(ctx context.Context) ([]model.Item, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return f.MemoryStorage.LoadItems(ctx)
}

var fastRetry = service.RetryOptions{
	MaxAttempts:  3,
	InitialDelay: time.Millisecond,
	MaxDelay:     time.Millisecond,
	Multiplier:   1,
}

func TestGateway_RoundTrip(t *testing.T) {
	ctx := context.Background()
	gateway := NewGateway(NewMemoryStorage())
	items := testItems(t)

	gateway.Save(ctx, items)
	assert.Equal(t, items, gateway.Load(ctx))
	assert.NoError(t, gateway.LastLoadErr())
	assert.NoError(t, gateway.LastSaveErr())

	gateway.Save(ctx, []model.Item{})
	assert.Empty(t, gateway.Load(ctx))
}

func TestGateway_LoadWithoutSaveIsEmpty(t *testing.T) {
	gateway := NewGateway(NewMemoryStorage())

	loaded := gateway.Load(context.Background())
	assert.NotNil(t, loaded)
	assert.Empty(t, loaded)
	assert.ErrorIs(t, gateway.LastLoadErr(), common.ErrNotFound)
}

func TestGateway_CorruptLoadIsEmpty(t *testing.T) {
	store := NewMemoryStorage()
	store.SetRaw([]byte("invalid data"))
	gateway := NewGateway(store)

	assert.Empty(t, gateway.Load(context.Background()))
	assert.ErrorIs(t, gateway.LastLoadErr(), common.ErrDatabaseCorrupted)
}

func TestGateway_SaveFailureKeepsPriorState(t *testing.T) {
	ctx := context.Background()
	store := &flakyStore{MemoryStorage: NewMemoryStorage(), saveErr: errors.New("disk full")}
	gateway := NewGateway(store, WithRetryOptions(fastRetry))

	items := testItems(t)
	gateway.Save(ctx, items)
	require.NoError(t, gateway.LastSaveErr())

	store.failSaves = store.saveCalls + 10
	gateway.Save(ctx, items[:1])

	assert.Error(t, gateway.LastSaveErr())
	assert.Equal(t, items, gateway.Load(ctx))
	// Non-retryable errors are attempted once.
	assert.Equal(t, 2, store.saveCalls)
}

func TestGateway_SaveOfInvalidItemKeepsPriorState(t *testing.T) {
	ctx := context.Background()
	gateway := NewGateway(NewMemoryStorage(), WithRetryOptions(fastRetry))

	items := testItems(t)
	gateway.Save(ctx, items)
	require.NoError(t, gateway.LastSaveErr())

	broken := items[0]
	broken.Quantity = 0
	gateway.Save(ctx, []model.Item{items[0], broken})

	var verr *model.ValidationError
	assert.ErrorAs(t, gateway.LastSaveErr(), &verr)
	assert.Equal(t, items, gateway.Load(ctx))
	assert.NoError(t, gateway.LastLoadErr())
}

func TestGateway_RetriesBusyStore(t *testing.T) {
	ctx := context.Background()
	store := &flakyStore{
		MemoryStorage: NewMemoryStorage(),
		saveErr:       fmt.Errorf("locked: %w", common.ErrStoreBusy),
		failSaves:     2,
	}
	gateway := NewGateway(store, WithRetryOptions(fastRetry))

	items := testItems(t)
	gateway.Save(ctx, items)

	assert.NoError(t, gateway.LastSaveErr())
	assert.Equal(t, 3, store.saveCalls)
	assert.Equal(t, items, gateway.Load(ctx))
}

func TestGateway_LoadErrorFromStore(t *testing.T) {
	store := &flakyStore{MemoryStorage: NewMemoryStorage(), loadErr: errors.New("io error")}
	gateway := NewGateway(store)

	assert.Empty(t, gateway.Load(context.Background()))
	assert.EqualError(t, gateway.LastLoadErr(), "io error")
}

func TestOpen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	tests := []struct {
		name    string
		opts    Options
		wantErr bool
	}{
		{name: "sqlite", opts: Options{Backend: BackendSQLite, DatabasePath: dir + "/buddy.db"}},
		{name: "default is sqlite", opts: Options{DatabasePath: dir + "/default.db"}},
		{name: "file", opts: Options{Backend: BackendFile, FilePath: dir + "/items.json"}},
		{name: "memory", opts: Options{Backend: BackendMemory}},
		{name: "unknown", opts: Options{Backend: "redis"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, err := Open(ctx, tt.opts)
			if tt.wantErr {
				assert.ErrorIs(t, err, common.ErrInvalidConfig)
				return
			}
			require.NoError(t, err)
			defer func() { _ = store.Close() }()

			gateway := NewGateway(store)
			items := testItems(t)
			gateway.Save(ctx, items)
			assert.Equal(t, items, gateway.Load(ctx))
		})
	}
}
