package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ilibrary/admin-portal/internal/core/domain"
)

const (
	// DefaultValidity is the session validity window. Sessions are never
	// refreshed; expiry forces a fresh login.
	DefaultValidity = 24 * time.Hour

	// issuedAtSkew backdates the backend token's iat to tolerate clock
	// drift between this service and the data API.
	issuedAtSkew = 30 * time.Second
)

// SessionService mints and verifies session artifacts. The outer token is the
// browser-held session; nested inside it is the backend-authorization token
// whose claims the data API enforces permissions from. Both are HS256 over
// symmetric secrets.
type SessionService struct {
	sessionSecret []byte
	dataAPISecret []byte
	validity      time.Duration

	now func() time.Time
}

func NewSessionService(sessionSecret, dataAPISecret []byte, validity time.Duration) *SessionService {
	if validity <= 0 {
		validity = DefaultValidity
	}
	return &SessionService{
		sessionSecret: sessionSecret,
		dataAPISecret: dataAPISecret,
		validity:      validity,
		now:           time.Now,
	}
}

// Issue mints the session artifact for a verified user. The role embedded in
// both tokens is the credential record's role at this moment; it goes stale
// if the record changes later and stays stale until re-login.
func (s *SessionService) Issue(user *domain.User) (string, error) {
	now := s.now().UTC()

	apiToken, err := s.issueDataAPIToken(user, now)
	if err != nil {
		return "", err
	}

	claims := jwt.MapClaims{
		"sub":       user.ID,
		"role":      string(user.Role),
		"name":      user.DisplayName,
		"email":     user.Email,
		"api_token": apiToken,
		"iat":       now.Unix(),
		"exp":       now.Add(s.validity).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.sessionSecret)
}

func (s *SessionService) issueDataAPIToken(user *domain.User, now time.Time) (string, error) {
	claims := jwt.MapClaims{
		domain.HasuraClaimsNamespace: domain.NewDataAPIClaims(user),
		"iat":                        now.Add(-issuedAtSkew).Unix(),
		"exp":                        now.Add(s.validity).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.dataAPISecret)
}

// Read verifies raw and returns the embedded claims, or nil on any failure.
// It never re-checks the claims against the live credential record.
func (s *SessionService) Read(raw string) *domain.SessionClaims {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.sessionSecret, nil
	})
	if err != nil || !tkn.Valid {
		return nil
	}

	roleStr, _ := claims["role"].(string)
	role, err := domain.ParseRole(roleStr)
	if err != nil {
		return nil
	}

	sub, _ := claims["sub"].(string)
	name, _ := claims["name"].(string)
	email, _ := claims["email"].(string)
	apiToken, _ := claims["api_token"].(string)

	return &domain.SessionClaims{
		UserID:       sub,
		Role:         role,
		DisplayName:  name,
		Email:        email,
		DataAPIToken: apiToken,
	}
}
