// Package verification implements the seller-verification request lifecycle:
// submission, moderation (approve/reject), and lookups over approved sellers.
package verification

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/greengrove/backoffice/internal/backoffice/models"
	"github.com/greengrove/backoffice/internal/common"
	"github.com/greengrove/backoffice/internal/cryptox"
	"github.com/greengrove/backoffice/internal/store"
)

// Service manages SellerRequest records. Requests are never removed;
// rejection is a status, not a deletion.
type Service struct {
	store *store.Store
}

func NewService(st *store.Store) *Service {
	return &Service{store: st}
}

// List returns all requests in insertion order.
func (s *Service) List(ctx context.Context) ([]models.SellerRequest, error) {
	return store.Read[models.SellerRequest](ctx, s.store, store.CollectionSellerReqs)
}

// Submit records a new pending verification request and returns it.
func (s *Service) Submit(ctx context.Context, name, email string) (*models.SellerRequest, error) {
	email = common.NormalizeEmail(email)
	if !common.IsValidEmail(email) {
		return nil, common.ErrInvalidEmail
	}
	if strings.TrimSpace(name) == "" {
		return nil, common.ErrEmptyName
	}

	req := models.SellerRequest{
		ID:     uuid.NewString(),
		Name:   strings.TrimSpace(name),
		Email:  email,
		Status: models.StatusPending,
	}

	err := s.store.WithTx(ctx, func(ctx context.Context, tx *store.Store) error {
		reqs, err := store.Read[models.SellerRequest](ctx, tx, store.CollectionSellerReqs)
		if err != nil {
			return err
		}
		return store.Write(ctx, tx, store.CollectionSellerReqs, append(reqs, req))
	})
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// Approve marks the request approved. The source behavior is preserved:
// a terminal status is overwritten without a transition guard.
func (s *Service) Approve(ctx context.Context, id string) error {
	return s.setStatus(ctx, id, models.StatusApproved)
}

// Reject marks the request rejected. Symmetric to Approve.
func (s *Service) Reject(ctx context.Context, id string) error {
	return s.setStatus(ctx, id, models.StatusRejected)
}

func (s *Service) setStatus(ctx context.Context, id string, status models.RequestStatus) error {
	return s.store.WithTx(ctx, func(ctx context.Context, tx *store.Store) error {
		reqs, err := store.Read[models.SellerRequest](ctx, tx, store.CollectionSellerReqs)
		if err != nil {
			return err
		}
		for i := range reqs {
			if reqs[i].ID == id {
				reqs[i].Status = status
				return store.Write(ctx, tx, store.CollectionSellerReqs, reqs)
			}
		}
		return common.ErrNotFound
	})
}

// Search returns approved requests whose email or name contains term,
// case-insensitively. Pending and rejected sellers are not valid reset or
// edit targets and are excluded. An empty term matches nothing.
func (s *Service) Search(ctx context.Context, term string) ([]models.SellerRequest, error) {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return nil, nil
	}
	reqs, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	var matched []models.SellerRequest
	for _, r := range reqs {
		if r.Status != models.StatusApproved {
			continue
		}
		if strings.Contains(strings.ToLower(r.Email), term) ||
			strings.Contains(strings.ToLower(r.Name), term) {
			matched = append(matched, r)
		}
	}
	return matched, nil
}

// FindByID returns the request with the given id regardless of status.
func (s *Service) FindByID(ctx context.Context, id string) (*models.SellerRequest, error) {
	reqs, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, r := range reqs {
		if r.ID == id {
			req := r
			return &req, nil
		}
	}
	return nil, common.ErrNotFound
}

// SetPassword replaces the request's credential with a digest of
// newPassword. A seller's password lives on the request record itself; no
// User record is involved even after approval.
func (s *Service) SetPassword(ctx context.Context, email, newPassword string) error {
	encoded := cryptox.HashPassword(newPassword)
	return s.mutate(ctx, email, func(r *models.SellerRequest) {
		r.Password = encoded
	})
}

// UpdateProfile sets the request's name and phone. Email is immutable.
func (s *Service) UpdateProfile(ctx context.Context, email, name, phone string) error {
	return s.mutate(ctx, email, func(r *models.SellerRequest) {
		r.Name = name
		r.Phone = phone
	})
}

func (s *Service) mutate(ctx context.Context, email string, fn func(*models.SellerRequest)) error {
	return s.store.WithTx(ctx, func(ctx context.Context, tx *store.Store) error {
		reqs, err := store.Read[models.SellerRequest](ctx, tx, store.CollectionSellerReqs)
		if err != nil {
			return err
		}
		for i := range reqs {
			if strings.EqualFold(reqs[i].Email, email) {
				fn(&reqs[i])
				return store.Write(ctx, tx, store.CollectionSellerReqs, reqs)
			}
		}
		return common.ErrNotFound
	})
}
