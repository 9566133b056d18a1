// Package directory implements the account directory: registration,
// activation-state management, profile edits, and lookups over User records.
package directory

import (
	"context"
	"strings"

	"github.com/greengrove/backoffice/internal/backoffice/models"
	"github.com/greengrove/backoffice/internal/common"
	"github.com/greengrove/backoffice/internal/cryptox"
	"github.com/greengrove/backoffice/internal/store"
)

// Service provides CRUD and activation-state management over User records.
// It holds no record state of its own; every operation re-reads the users
// collection and writes it back whole.
type Service struct {
	store *store.Store
}

func NewService(st *store.Store) *Service {
	return &Service{store: st}
}

// List returns all users in insertion order.
func (s *Service) List(ctx context.Context) ([]models.User, error) {
	return store.Read[models.User](ctx, s.store, store.CollectionUsers)
}

// FindByEmail looks a user up by email, case-insensitively.
// Returns common.ErrNotFound when no user matches.
func (s *Service) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	users, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	if i := indexByEmail(users, email); i >= 0 {
		u := users[i]
		return &u, nil
	}
	return nil, common.ErrNotFound
}

// FindByIdentifier looks a user up by email or by name, case-insensitively.
// Returns common.ErrNotFound when no user matches.
func (s *Service) FindByIdentifier(ctx context.Context, identifier string) (*models.User, error) {
	users, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if strings.EqualFold(u.Email, identifier) || (u.Name != "" && strings.EqualFold(u.Name, identifier)) {
			user := u
			return &user, nil
		}
	}
	return nil, common.ErrNotFound
}

// Register validates and creates a new account. Validation order: email
// shape, password length, confirmation match, duplicate email. The stored
// name defaults to the local part of the email; the account starts active.
func (s *Service) Register(ctx context.Context, email, password, confirmPassword string) (*models.User, error) {
	email = common.NormalizeEmail(email)

	if !common.IsValidEmail(email) {
		return nil, common.ErrInvalidEmail
	}
	if len(password) < 6 {
		return nil, common.ErrWeakPassword
	}
	if password != confirmPassword {
		return nil, common.ErrPasswordMismatch
	}

	user := models.User{
		Email:    email,
		Password: cryptox.HashPassword(password),
		Name:     strings.SplitN(email, "@", 2)[0],
		Active:   true,
	}

	err := s.store.WithTx(ctx, func(ctx context.Context, tx *store.Store) error {
		users, err := store.Read[models.User](ctx, tx, store.CollectionUsers)
		if err != nil {
			return err
		}
		if indexByEmail(users, email) >= 0 {
			return common.ErrDuplicateEmail
		}
		return store.Write(ctx, tx, store.CollectionUsers, append(users, user))
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// SetActive sets the activation flag. Setting the already-held state is a
// valid no-op. Returns common.ErrNotFound when no user matches.
func (s *Service) SetActive(ctx context.Context, email string, active bool) error {
	return s.mutate(ctx, email, func(u *models.User) {
		u.Active = active
	})
}

// UpdateProfile sets the user's name and phone. Email is immutable.
func (s *Service) UpdateProfile(ctx context.Context, email, name, phone string) error {
	return s.mutate(ctx, email, func(u *models.User) {
		u.Name = name
		u.Phone = phone
	})
}

// SetPassword replaces the user's credential with a digest of newPassword.
// Strength and confirmation checks are the caller's responsibility.
func (s *Service) SetPassword(ctx context.Context, email, newPassword string) error {
	encoded := cryptox.HashPassword(newPassword)
	return s.mutate(ctx, email, func(u *models.User) {
		u.Password = encoded
	})
}

// Search returns users whose email or name contains term, case-insensitively.
// An empty term matches nothing.
func (s *Service) Search(ctx context.Context, term string) ([]models.User, error) {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return nil, nil
	}
	users, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	var matched []models.User
	for _, u := range users {
		if strings.Contains(strings.ToLower(u.Email), term) ||
			(u.Name != "" && strings.Contains(strings.ToLower(u.Name), term)) {
			matched = append(matched, u)
		}
	}
	return matched, nil
}

// mutate applies fn to the user with the given email inside one transaction.
func (s *Service) mutate(ctx context.Context, email string, fn func(*models.User)) error {
	return s.store.WithTx(ctx, func(ctx context.Context, tx *store.Store) error {
		users, err := store.Read[models.User](ctx, tx, store.CollectionUsers)
		if err != nil {
			return err
		}
		i := indexByEmail(users, email)
		if i < 0 {
			return common.ErrNotFound
		}
		fn(&users[i])
		return store.Write(ctx, tx, store.CollectionUsers, users)
	})
}

func indexByEmail(users []models.User, email string) int {
	for i, u := range users {
		if strings.EqualFold(u.Email, email) {
			return i
		}
	}
	return -1
}
