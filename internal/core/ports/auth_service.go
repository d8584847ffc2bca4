package ports

import (
	"context"

	"github.com/ilibrary/admin-portal/internal/core/domain"
)

// AuthService verifies credentials and returns a signed session artifact on
// success.
type AuthService interface {
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
