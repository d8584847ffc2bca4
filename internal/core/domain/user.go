package domain

import (
	"errors"
	"fmt"
)

// Role is the closed set of permission levels an account can hold.
type Role string

const (
	RoleUser   Role = "user"
	RoleAuthor Role = "author"
	RoleAdmin  Role = "admin"
)

// ParseRole validates s against the closed role set. An unrecognised value is
// a construction-time error, never a silent fall-through.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleUser, RoleAuthor, RoleAdmin:
		return Role(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownRole, s)
}

var (
	ErrMissingCredentials = errors.New("missing credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrBadPassword        = errors.New("bad password")
	ErrUnknownRole        = errors.New("unknown role")
)

// User is the credential record held by the platform identity store. This
// service only ever reads it; mutation belongs to the user-management pages.
type User struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	DisplayName  string `json:"display_name"`
	Role         Role   `json:"role"`
}
