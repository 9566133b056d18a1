// Package auth implements the login simulation: credential checks against
// the account directory, the persisted session marker, and session tokens.
package auth

import (
	"context"
	"strings"
	"time"

	"github.com/greengrove/backoffice/internal/backoffice/directory"
	"github.com/greengrove/backoffice/internal/backoffice/models"
	"github.com/greengrove/backoffice/internal/common"
	"github.com/greengrove/backoffice/internal/cryptox"
	"github.com/greengrove/backoffice/internal/store"
)

// Session is the result of a successful login. The account's canonical
// email is persisted as the session marker; Token is an advisory signed
// token the caller may hold on to.
type Session struct {
	User  models.User
	Token string
}

// Service validates logins and owns the persisted currentUser marker.
type Service struct {
	store         *store.Store
	users         *directory.Service
	secretKey     []byte
	tokenValidity time.Duration
}

func NewService(st *store.Store, users *directory.Service, secretKey string, tokenValidity time.Duration) *Service {
	return &Service{
		store:         st,
		users:         users,
		secretKey:     []byte(secretKey),
		tokenValidity: tokenValidity,
	}
}

// Login authenticates identifier/password. The identifier may be the
// account's email or its name, matched case-insensitively after trimming
// whitespace from both fields.
//
// Check order: both fields non-empty, lookup, active flag, password. The
// ordering surfaces the most specific actionable error; in particular a
// non-existent identifier returns ErrNotFound, never ErrWrongPassword, and
// a deactivated account is reported before any password comparison.
func (s *Service) Login(ctx context.Context, identifier, password string) (*Session, error) {
	identifier = strings.TrimSpace(identifier)
	password = strings.TrimSpace(password)

	if identifier == "" || password == "" {
		return nil, common.ErrEmptyInput
	}

	user, err := s.users.FindByIdentifier(ctx, identifier)
	if err != nil {
		return nil, err
	}

	if !user.Active {
		return nil, common.ErrDeactivated
	}

	if !cryptox.VerifyPassword(user.Password, password) {
		return nil, common.ErrWrongPassword
	}

	email := common.NormalizeEmail(user.Email)
	if err := store.WriteValue(ctx, s.store, store.KeyCurrentUser, email); err != nil {
		return nil, err
	}

	token, err := GenerateToken(email, s.secretKey, s.tokenValidity)
	if err != nil {
		return nil, err
	}

	return &Session{User: *user, Token: token}, nil
}

// Logout clears the session marker. Logging out while logged out is a no-op.
func (s *Service) Logout(ctx context.Context) error {
	return s.store.DeleteValue(ctx, store.KeyCurrentUser)
}

// CurrentUser returns the email of the logged-in account, if any.
func (s *Service) CurrentUser(ctx context.Context) (string, bool, error) {
	return store.ReadValue[string](ctx, s.store, store.KeyCurrentUser)
}
