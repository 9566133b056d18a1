package orders

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greengrove/backoffice/internal/backoffice/models"
	"github.com/greengrove/backoffice/internal/store"

	_ "modernc.org/sqlite"
)

func setupService(t *testing.T) *Service {
	t.Helper()
	st, err := store.Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	return NewService(st)
}

func TestRecent(t *testing.T) {
	s := setupService(t)
	ctx := context.Background()

	require.NoError(t, store.Write(ctx, s.store, store.CollectionOrders, []models.Order{
		{ID: "o1", Buyer: "a@b.com", Total: 10, Status: "delivered"},
		{ID: "o2", Buyer: "a@b.com", Total: 20, Status: "pending"},
		{ID: "o3", Buyer: "c@d.com", Total: 30, Status: "pending"},
	}))

	got, err := s.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "o3", got[0].ID)
	assert.Equal(t, "o2", got[1].ID)

	// n larger than the ledger returns everything, newest first
	got, err = s.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "o3", got[0].ID)
	assert.Equal(t, "o1", got[2].ID)

	got, err = s.Recent(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRecent_EmptyLedger(t *testing.T) {
	s := setupService(t)
	got, err := s.Recent(context.Background(), 4)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestStats(t *testing.T) {
	s := setupService(t)
	ctx := context.Background()

	require.NoError(t, store.Write(ctx, s.store, store.CollectionUsers, []models.User{
		{Email: "a@b.com", Active: true},
		{Email: "c@d.com", Active: false},
	}))
	require.NoError(t, store.Write(ctx, s.store, store.CollectionSellerReqs, []models.SellerRequest{
		{ID: "r1", Status: models.StatusApproved},
		{ID: "r2", Status: models.StatusPending},
		{ID: "r3", Status: models.StatusRejected},
	}))
	require.NoError(t, store.Write(ctx, s.store, store.CollectionOrders, []models.Order{
		{ID: "o1"},
	}))

	got, err := s.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, &Stats{Users: 2, Sellers: 1, Orders: 1}, got)
}
