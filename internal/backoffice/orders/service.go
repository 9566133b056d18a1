// Package orders is the read-only order ledger, used for display
// aggregation on the overview page.
package orders

import (
	"context"

	"github.com/greengrove/backoffice/internal/backoffice/models"
	"github.com/greengrove/backoffice/internal/store"
)

type Service struct {
	store *store.Store
}

func NewService(st *store.Store) *Service {
	return &Service{store: st}
}

// List returns all orders in insertion order.
func (s *Service) List(ctx context.Context) ([]models.Order, error) {
	return store.Read[models.Order](ctx, s.store, store.CollectionOrders)
}

// Recent returns the last n orders by insertion order, most recent first.
func (s *Service) Recent(ctx context.Context, n int) ([]models.Order, error) {
	if n <= 0 {
		return nil, nil
	}
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	if n > len(all) {
		n = len(all)
	}
	recent := make([]models.Order, 0, n)
	for i := len(all) - 1; i >= len(all)-n; i-- {
		recent = append(recent, all[i])
	}
	return recent, nil
}

// Stats are the overview counters: total accounts, approved sellers, and
// orders.
type Stats struct {
	Users   int
	Sellers int
	Orders  int
}

// Stats aggregates counts across the users, sellerReqs, and orders
// collections. Only approved requests count as sellers.
func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	users, err := store.Read[models.User](ctx, s.store, store.CollectionUsers)
	if err != nil {
		return nil, err
	}
	reqs, err := store.Read[models.SellerRequest](ctx, s.store, store.CollectionSellerReqs)
	if err != nil {
		return nil, err
	}
	orders, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	sellers := 0
	for _, r := range reqs {
		if r.Status == models.StatusApproved {
			sellers++
		}
	}

	return &Stats{Users: len(users), Sellers: sellers, Orders: len(orders)}, nil
}
