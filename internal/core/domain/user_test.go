package domain

import (
	"errors"
	"testing"
)

func TestParseRole_Known(t *testing.T) {
	for _, s := range []string{"user", "author", "admin"} {
		role, err := ParseRole(s)
		if err != nil {
			t.Fatalf("ParseRole(%q) returned error: %v", s, err)
		}
		if string(role) != s {
			t.Fatalf("ParseRole(%q) = %q", s, role)
		}
	}
}

func TestParseRole_Unknown(t *testing.T) {
	for _, s := range []string{"", "superadmin", "Admin", "USER"} {
		if _, err := ParseRole(s); !errors.Is(err, ErrUnknownRole) {
			t.Fatalf("ParseRole(%q): expected ErrUnknownRole, got %v", s, err)
		}
	}
}

func TestNewDataAPIClaims_AuthorIncludesBaseRole(t *testing.T) {
	claims := NewDataAPIClaims(&User{ID: "u1", Role: RoleAuthor})

	if len(claims.AllowedRoles) != 2 || claims.AllowedRoles[0] != "author" || claims.AllowedRoles[1] != "user" {
		t.Fatalf("unexpected allowed roles: %v", claims.AllowedRoles)
	}
	if claims.DefaultRole != "author" {
		t.Fatalf("unexpected default role: %s", claims.DefaultRole)
	}
	if claims.UserID != "u1" {
		t.Fatalf("unexpected user id: %s", claims.UserID)
	}
}

func TestNewDataAPIClaims_UserRoleNotDuplicated(t *testing.T) {
	claims := NewDataAPIClaims(&User{ID: "u2", Role: RoleUser})

	if len(claims.AllowedRoles) != 1 || claims.AllowedRoles[0] != "user" {
		t.Fatalf("unexpected allowed roles: %v", claims.AllowedRoles)
	}
	if claims.DefaultRole != "user" {
		t.Fatalf("unexpected default role: %s", claims.DefaultRole)
	}
}
