// Package seed installs the first-run demo data. Seeding is idempotent:
// a collection that already exists is never overwritten, whatever it holds.
package seed

import (
	"context"

	"github.com/greengrove/backoffice/internal/backoffice/models"
	"github.com/greengrove/backoffice/internal/backoffice/profile"
	"github.com/greengrove/backoffice/internal/cryptox"
	"github.com/greengrove/backoffice/internal/store"
)

// Users returns the default account records. Demo passwords are hashed at
// seed time; the well-known admin credential is geeland/admin123.
func Users() []models.User {
	return []models.User{
		{Email: "geeland@example.com", Password: cryptox.HashPassword("admin123"), Name: "Geeland", Active: true},
		{Email: "buyer1@example.com", Password: cryptox.HashPassword("x"), Name: "Buyer One", Active: true},
	}
}

// SellerRequests returns the default verification queue.
func SellerRequests() []models.SellerRequest {
	return []models.SellerRequest{
		{ID: "r1", Name: "Liam Brown", Email: "liam@example.com", Status: models.StatusPending},
	}
}

// Orders returns the default order ledger.
func Orders() []models.Order {
	return []models.Order{
		{ID: "o1", Buyer: "buyer1@example.com", Total: 20.5, Status: "delivered"},
	}
}

// Run seeds every absent collection in one transaction, so a first run
// either installs the full demo data set or none of it.
func Run(ctx context.Context, st *store.Store) error {
	return st.WithTx(ctx, func(ctx context.Context, tx *store.Store) error {
		if err := store.SeedIfAbsent(ctx, tx, store.CollectionUsers, Users()); err != nil {
			return err
		}
		if err := store.SeedIfAbsent(ctx, tx, store.CollectionSellerReqs, SellerRequests()); err != nil {
			return err
		}
		if err := store.SeedIfAbsent(ctx, tx, store.CollectionOrders, Orders()); err != nil {
			return err
		}
		return store.SeedValueIfAbsent(ctx, tx, store.CollectionProfile, profile.Default())
	})
}
