package service

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ilibrary/admin-portal/internal/core/domain"
)

var (
	sessionSecret = []byte("session-secret")
	dataAPISecret = []byte("data-api-secret")
)

func testUser() *domain.User {
	return &domain.User{
		ID:          "7f9c24e5",
		Email:       "carol@example.com",
		DisplayName: "Carol",
		Role:        domain.RoleAuthor,
	}
}

func TestSessionService_RoundTrip(t *testing.T) {
	svc := NewSessionService(sessionSecret, dataAPISecret, time.Hour)
	user := testUser()

	raw, err := svc.Issue(user)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	claims := svc.Read(raw)
	if claims == nil {
		t.Fatalf("Read returned nil for a freshly issued artifact")
	}
	if claims.UserID != user.ID {
		t.Fatalf("user id: got %q, want %q", claims.UserID, user.ID)
	}
	if claims.Role != user.Role {
		t.Fatalf("role: got %q, want %q", claims.Role, user.Role)
	}
	if claims.DisplayName != user.DisplayName {
		t.Fatalf("display name: got %q, want %q", claims.DisplayName, user.DisplayName)
	}
	if claims.Email != user.Email {
		t.Fatalf("email: got %q, want %q", claims.Email, user.Email)
	}
	if claims.DataAPIToken == "" {
		t.Fatalf("expected nested data-api token")
	}
}

func TestSessionService_DataAPITokenClaims(t *testing.T) {
	svc := NewSessionService(sessionSecret, dataAPISecret, time.Hour)
	issuedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return issuedAt }

	raw, err := svc.Issue(testUser())
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	inner := readDataAPIToken(t, svc.Read(raw).DataAPIToken)

	ns, ok := inner[domain.HasuraClaimsNamespace].(map[string]interface{})
	if !ok {
		t.Fatalf("missing claim namespace, got %v", inner)
	}
	allowed, _ := ns["x-hasura-allowed-roles"].([]interface{})
	if len(allowed) != 2 || allowed[0] != "author" || allowed[1] != "user" {
		t.Fatalf("unexpected allowed roles: %v", allowed)
	}
	if ns["x-hasura-default-role"] != "author" {
		t.Fatalf("unexpected default role: %v", ns["x-hasura-default-role"])
	}
	if ns["x-hasura-user-id"] != "7f9c24e5" {
		t.Fatalf("unexpected user id: %v", ns["x-hasura-user-id"])
	}

	iat, _ := inner["iat"].(float64)
	if int64(iat) != issuedAt.Add(-30*time.Second).Unix() {
		t.Fatalf("iat not backdated by 30s: got %d, want %d", int64(iat), issuedAt.Add(-30*time.Second).Unix())
	}
	exp, _ := inner["exp"].(float64)
	if int64(exp) != issuedAt.Add(time.Hour).Unix() {
		t.Fatalf("unexpected exp: got %d, want %d", int64(exp), issuedAt.Add(time.Hour).Unix())
	}
}

func readDataAPIToken(t *testing.T, raw string) jwt.MapClaims {
	t.Helper()
	claims := jwt.MapClaims{}
	// The inner token is backdated, so its exp may already be in the past
	// relative to nothing here; validate signature only.
	parsed, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		return dataAPISecret, nil
	}, jwt.WithoutClaimsValidation())
	if err != nil || !parsed.Valid {
		t.Fatalf("inner token invalid: %v", err)
	}
	return claims
}

func TestSessionService_Expired(t *testing.T) {
	svc := NewSessionService(sessionSecret, dataAPISecret, time.Hour)
	svc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	raw, err := svc.Issue(testUser())
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if claims := svc.Read(raw); claims != nil {
		t.Fatalf("expected nil for expired artifact, got %+v", claims)
	}
}

func TestSessionService_Tampered(t *testing.T) {
	svc := NewSessionService(sessionSecret, dataAPISecret, time.Hour)

	raw, err := svc.Issue(testUser())
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	parts := strings.Split(raw, ".")
	if len(parts) != 3 {
		t.Fatalf("expected three token segments, got %d", len(parts))
	}

	flip := func(s string) string {
		c := byte('A')
		if s[0] == 'A' {
			c = 'B'
		}
		return string(c) + s[1:]
	}

	variants := map[string]string{
		"header":    flip(parts[0]) + "." + parts[1] + "." + parts[2],
		"payload":   parts[0] + "." + flip(parts[1]) + "." + parts[2],
		"signature": parts[0] + "." + parts[1] + "." + flip(parts[2]),
		"truncated": parts[0] + "." + parts[1],
		"garbage":   "not-a-token",
		"empty":     "",
	}
	for name, v := range variants {
		if claims := svc.Read(v); claims != nil {
			t.Fatalf("tampered variant %q was accepted: %+v", name, claims)
		}
	}
}

func TestSessionService_WrongSecret(t *testing.T) {
	issuer := NewSessionService([]byte("other-secret"), dataAPISecret, time.Hour)
	raw, err := issuer.Issue(testUser())
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	reader := NewSessionService(sessionSecret, dataAPISecret, time.Hour)
	if claims := reader.Read(raw); claims != nil {
		t.Fatalf("artifact signed with a different secret was accepted")
	}
}

func TestSessionService_UnknownRoleRejected(t *testing.T) {
	svc := NewSessionService(sessionSecret, dataAPISecret, time.Hour)

	claims := jwt.MapClaims{
		"sub":  "u1",
		"role": "superuser",
		"exp":  time.Now().Add(time.Hour).Unix(),
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(sessionSecret)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if got := svc.Read(raw); got != nil {
		t.Fatalf("artifact with unknown role was accepted: %+v", got)
	}
}

func TestSessionService_RejectsUnexpectedAlgorithm(t *testing.T) {
	svc := NewSessionService(sessionSecret, dataAPISecret, time.Hour)

	claims := jwt.MapClaims{
		"sub":  "u1",
		"role": "admin",
		"exp":  time.Now().Add(time.Hour).Unix(),
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString(sessionSecret)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if got := svc.Read(raw); got != nil {
		t.Fatalf("artifact signed with HS512 was accepted: %+v", got)
	}
}
