package service

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/ilibrary/admin-portal/internal/core/domain"
	"github.com/ilibrary/admin-portal/internal/core/ports"
)

// AuthService verifies credentials against the identity store and hands
// verified users to the session issuer.
//
// There is deliberately no attempt counter, lockout or rate limit around
// failed logins; changing that changes externally observable behaviour and
// needs a product decision first.
type AuthService struct {
	store    ports.IdentityStore
	sessions ports.SessionIssuer
}

func NewAuthService(store ports.IdentityStore, sessions ports.SessionIssuer) *AuthService {
	return &AuthService{store: store, sessions: sessions}
}

// Login checks email and password and returns a signed session artifact plus
// the credential record. Missing fields fail before any store lookup runs.
// The distinct error values exist for diagnostics only; callers at the HTTP
// boundary must collapse all of them to one generic message.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrMissingCredentials
	}

	user, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrBadPassword
	}

	token, err := s.sessions.Issue(user)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}
