// Package profile manages the admin's own profile record, a singleton
// stored under its own key.
package profile

import (
	"context"
	"strings"

	"github.com/greengrove/backoffice/internal/backoffice/models"
	"github.com/greengrove/backoffice/internal/common"
	"github.com/greengrove/backoffice/internal/store"
)

type Service struct {
	store *store.Store
}

func NewService(st *store.Store) *Service {
	return &Service{store: st}
}

// Get returns the stored profile, or the seeded default when none exists.
func (s *Service) Get(ctx context.Context) (*models.Profile, error) {
	p, found, err := store.ReadValue[models.Profile](ctx, s.store, store.CollectionProfile)
	if err != nil {
		return nil, err
	}
	if !found {
		d := Default()
		return &d, nil
	}
	return &p, nil
}

// Save validates and replaces the profile. Name must be non-empty and the
// email well-formed.
func (s *Service) Save(ctx context.Context, p models.Profile) error {
	p.Name = strings.TrimSpace(p.Name)
	p.Email = strings.TrimSpace(p.Email)
	p.Phone = strings.TrimSpace(p.Phone)

	if p.Name == "" {
		return common.ErrEmptyName
	}
	if !common.IsValidEmail(p.Email) {
		return common.ErrInvalidEmail
	}
	return store.WriteValue(ctx, s.store, store.CollectionProfile, p)
}

// Default is the first-run profile, derived from the seeded admin account.
func Default() models.Profile {
	return models.Profile{Name: "Geeland", Email: "geeland@example.com", Phone: ""}
}
