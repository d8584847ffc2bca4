package ports

import "github.com/ilibrary/admin-portal/internal/core/domain"

// SessionIssuer mints the signed session artifact for a verified user,
// including the nested backend-authorization token.
type SessionIssuer interface {
	Issue(user *domain.User) (string, error)
}

// SessionReader verifies a raw session artifact and recovers its claims
// without contacting the identity store. It returns nil on any verification
// failure: to the caller, a bad signature, an expired token and a malformed
// artifact are all the same "no session".
type SessionReader interface {
	Read(raw string) *domain.SessionClaims
}
