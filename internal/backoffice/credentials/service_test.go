package credentials

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greengrove/backoffice/internal/backoffice/directory"
	"github.com/greengrove/backoffice/internal/backoffice/models"
	"github.com/greengrove/backoffice/internal/backoffice/verification"
	"github.com/greengrove/backoffice/internal/common"
	"github.com/greengrove/backoffice/internal/cryptox"
	"github.com/greengrove/backoffice/internal/store"

	_ "modernc.org/sqlite"
)

func setupService(t *testing.T) (*Service, *store.Store) {
	t.Helper()
	st, err := store.Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	return NewService(directory.NewService(st), verification.NewService(st)), st
}

func seedBoth(t *testing.T, st *store.Store) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, store.Write(ctx, st, store.CollectionUsers, []models.User{
		{Email: "geeland@example.com", Password: cryptox.HashPassword("admin123"), Name: "Geeland", Active: true},
		{Email: "buyer1@example.com", Password: cryptox.HashPassword("x"), Name: "Buyer One", Active: true},
	}))
	require.NoError(t, store.Write(ctx, st, store.CollectionSellerReqs, []models.SellerRequest{
		{ID: "r1", Name: "Liam Brown", Email: "liam@example.com", Status: models.StatusApproved},
		{ID: "r2", Name: "Liam Pending", Email: "pending@example.com", Status: models.StatusPending},
	}))
}

func TestFindCandidates_UnionAcrossKinds(t *testing.T) {
	s, st := setupService(t)
	seedBoth(t, st)

	got, err := s.FindCandidates(context.Background(), "liam")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, Candidate{Email: "liam@example.com", DisplayName: "Liam Brown", Kind: KindSeller}, got[0])

	got, err = s.FindCandidates(context.Background(), "example.com")
	require.NoError(t, err)
	require.Len(t, got, 3)
	kinds := map[Kind]int{}
	for _, c := range got {
		kinds[c.Kind]++
	}
	assert.Equal(t, 2, kinds[KindUser])
	assert.Equal(t, 1, kinds[KindSeller]) // pending seller excluded
}

func TestResetPassword_SellerLeavesUsersUntouched(t *testing.T) {
	s, st := setupService(t)
	seedBoth(t, st)
	ctx := context.Background()

	require.NoError(t, s.ResetPassword(ctx, KindSeller, "liam@example.com", "abcdef", "abcdef"))

	reqs, err := store.Read[models.SellerRequest](ctx, st, store.CollectionSellerReqs)
	require.NoError(t, err)
	assert.True(t, cryptox.VerifyPassword(reqs[0].Password, "abcdef"))

	// no user record was ever created for the seller
	users, err := store.Read[models.User](ctx, st, store.CollectionUsers)
	require.NoError(t, err)
	require.Len(t, users, 2)
	for _, u := range users {
		assert.NotEqual(t, "liam@example.com", u.Email)
	}
}

func TestResetPassword_User(t *testing.T) {
	s, st := setupService(t)
	seedBoth(t, st)
	ctx := context.Background()

	require.NoError(t, s.ResetPassword(ctx, KindUser, "buyer1@example.com", "newpass", "newpass"))

	users, err := store.Read[models.User](ctx, st, store.CollectionUsers)
	require.NoError(t, err)
	assert.True(t, cryptox.VerifyPassword(users[1].Password, "newpass"))
}

func TestResetPassword_Validation(t *testing.T) {
	s, st := setupService(t)
	seedBoth(t, st)
	ctx := context.Background()

	err := s.ResetPassword(ctx, "", "liam@example.com", "abcdef", "abcdef")
	assert.ErrorIs(t, err, common.ErrNoSelection)

	err = s.ResetPassword(ctx, KindUser, "  ", "abcdef", "abcdef")
	assert.ErrorIs(t, err, common.ErrNoSelection)

	err = s.ResetPassword(ctx, KindSeller, "liam@example.com", "short", "short")
	assert.ErrorIs(t, err, common.ErrWeakPassword)

	err = s.ResetPassword(ctx, KindSeller, "liam@example.com", "abcdef", "fedcba")
	assert.ErrorIs(t, err, common.ErrPasswordMismatch)

	err = s.ResetPassword(ctx, KindSeller, "ghost@example.com", "abcdef", "abcdef")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestEditIdentity_RoutesByKind(t *testing.T) {
	s, st := setupService(t)
	seedBoth(t, st)
	ctx := context.Background()

	require.NoError(t, s.EditIdentity(ctx, KindSeller, "liam@example.com", "Liam B.", "555-0100"))
	reqs, err := store.Read[models.SellerRequest](ctx, st, store.CollectionSellerReqs)
	require.NoError(t, err)
	assert.Equal(t, "Liam B.", reqs[0].Name)
	assert.Equal(t, "555-0100", reqs[0].Phone)
	assert.Equal(t, "liam@example.com", reqs[0].Email)

	require.NoError(t, s.EditIdentity(ctx, KindUser, "buyer1@example.com", "Buyer 1", ""))
	users, err := store.Read[models.User](ctx, st, store.CollectionUsers)
	require.NoError(t, err)
	assert.Equal(t, "Buyer 1", users[1].Name)
}

func TestEditIdentity_Validation(t *testing.T) {
	s, st := setupService(t)
	seedBoth(t, st)
	ctx := context.Background()

	err := s.EditIdentity(ctx, "wizard", "liam@example.com", "Liam", "")
	assert.ErrorIs(t, err, common.ErrNoSelection)

	err = s.EditIdentity(ctx, KindSeller, "liam@example.com", "   ", "")
	assert.ErrorIs(t, err, common.ErrEmptyName)

	err = s.EditIdentity(ctx, KindUser, "ghost@example.com", "Ghost", "")
	assert.ErrorIs(t, err, common.ErrNotFound)
}
