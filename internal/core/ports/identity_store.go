package ports

import (
	"context"

	"github.com/ilibrary/admin-portal/internal/core/domain"
)

// IdentityStore is the read-only query interface to the platform identity
// store. Lookups are keyed by email and match case-insensitively.
type IdentityStore interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}

// Pinger is implemented by identity backends that can report connectivity,
// for the readiness probe.
type Pinger interface {
	Ping(ctx context.Context) error
}
