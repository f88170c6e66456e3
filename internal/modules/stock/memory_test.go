package stock

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/arka-distribution/arka-backend/internal/modules/catalog"
)

func TestMemoryLedgerTryDecrement(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	id := seedProduct(store, 5, true)

	ok, err := store.TryDecrement(ctx, id, 3)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 2, stockOf(t, store, id))

	// guard fails without partial effect
	ok, err = store.TryDecrement(ctx, id, 3)
	require.NoError(t, err)
	require.False(t, ok)
	require.Equal(t, 2, stockOf(t, store, id))

	// non-positive quantities never pass the guard
	ok, err = store.TryDecrement(ctx, id, 0)
	require.NoError(t, err)
	require.False(t, ok)
	ok, err = store.TryDecrement(ctx, id, -1)
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = store.TryDecrement(ctx, uuid.New(), 1)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestMemoryLedgerTryIncrement(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	id := seedProduct(store, 0, true)

	ok, err := store.TryIncrement(ctx, id, 12)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 12, stockOf(t, store, id))

	ok, err = store.TryIncrement(ctx, id, 0)
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = store.TryIncrement(ctx, uuid.New(), 1)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestMemoryLedgerTrySet(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	id := seedProduct(store, 7, true)

	ok, err := store.TrySet(ctx, id, 0)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 0, stockOf(t, store, id))

	ok, err = store.TrySet(ctx, id, -1)
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = store.TrySet(ctx, uuid.New(), 3)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestMemoryStoreGetByIDReturnsCopy(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	id := seedProduct(store, 7, true)

	p, err := store.GetByID(ctx, id)
	require.NoError(t, err)
	p.StockQuantity = 999

	require.Equal(t, 7, stockOf(t, store, id))
}

func TestMemoryStoreGetByIDNotFound(t *testing.T) {
	store := NewMemoryStore()
	_, err := store.GetByID(context.Background(), uuid.New())
	require.ErrorIs(t, err, catalog.ErrProductNotFound)
}
