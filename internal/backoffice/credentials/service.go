// Package credentials implements the cross-entity reset/edit workflow: a
// target identity is found among two heterogeneous collections (users and
// approved seller requests) and the mutation is routed to whichever
// collection actually holds it.
package credentials

import (
	"context"
	"strings"

	"github.com/greengrove/backoffice/internal/backoffice/directory"
	"github.com/greengrove/backoffice/internal/backoffice/verification"
	"github.com/greengrove/backoffice/internal/common"
)

// Kind discriminates which collection owns a candidate identity.
type Kind string

const (
	KindUser   Kind = "user"
	KindSeller Kind = "seller"
)

// Candidate is one search hit, tagged with the collection it came from.
type Candidate struct {
	Email       string
	DisplayName string
	Kind        Kind
}

// identity is the capability set a collection must expose to take part in
// the reset/edit flow. Both the account directory and the verification
// workflow implement it.
type identity interface {
	SetPassword(ctx context.Context, email, newPassword string) error
	UpdateProfile(ctx context.Context, email, name, phone string) error
}

// Service routes credential resets and identity edits by kind. The two
// collections are mutated independently; an approved seller's password
// lives on the request record, never on a User.
type Service struct {
	users   *directory.Service
	sellers *verification.Service
}

func NewService(users *directory.Service, sellers *verification.Service) *Service {
	return &Service{users: users, sellers: sellers}
}

// FindCandidates returns the union of user and approved-seller matches for
// term. Rejecting an empty term is the caller's contract, not enforced here.
func (s *Service) FindCandidates(ctx context.Context, term string) ([]Candidate, error) {
	users, err := s.users.Search(ctx, term)
	if err != nil {
		return nil, err
	}
	sellers, err := s.sellers.Search(ctx, term)
	if err != nil {
		return nil, err
	}

	candidates := make([]Candidate, 0, len(users)+len(sellers))
	for _, u := range users {
		name := u.Name
		if name == "" {
			name = u.Email
		}
		candidates = append(candidates, Candidate{Email: u.Email, DisplayName: name, Kind: KindUser})
	}
	for _, r := range sellers {
		candidates = append(candidates, Candidate{Email: r.Email, DisplayName: r.Name, Kind: KindSeller})
	}
	return candidates, nil
}

// ResetPassword validates newPassword and routes the reset to the
// collection selected by kind.
func (s *Service) ResetPassword(ctx context.Context, kind Kind, email, newPassword, confirmPassword string) error {
	target, err := s.target(kind, email)
	if err != nil {
		return err
	}
	if len(newPassword) < 6 {
		return common.ErrWeakPassword
	}
	if newPassword != confirmPassword {
		return common.ErrPasswordMismatch
	}
	return target.SetPassword(ctx, email, newPassword)
}

// EditIdentity updates name and phone on the selected record. Email is
// immutable once a record is selected.
func (s *Service) EditIdentity(ctx context.Context, kind Kind, email, name, phone string) error {
	target, err := s.target(kind, email)
	if err != nil {
		return err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return common.ErrEmptyName
	}
	return target.UpdateProfile(ctx, email, name, strings.TrimSpace(phone))
}

func (s *Service) target(kind Kind, email string) (identity, error) {
	if strings.TrimSpace(email) == "" {
		return nil, common.ErrNoSelection
	}
	switch kind {
	case KindUser:
		return s.users, nil
	case KindSeller:
		return s.sellers, nil
	default:
		return nil, common.ErrNoSelection
	}
}
