// Package graphqlstore looks up credential records through the platform's
// GraphQL data API using the administrative secret. This is the portal's
// default identity backend: the user table lives behind the data API, and
// this store is its only reader.
package graphqlstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/ilibrary/admin-portal/internal/core/domain"
)

// The email variable is citext, so matching is case-insensitive at the
// column level.
const findUserByEmail = `
  query FindUserByEmail($email: citext!) {
    users(where: {email: {_eq: $email}}) {
      id
      email
      passwordHash
      displayName
      defaultRole
    }
  }`

const defaultTimeout = 10 * time.Second

type Store struct {
	endpoint    string
	adminSecret string
	client      *http.Client
}

func New(endpoint, adminSecret string) *Store {
	return &Store{
		endpoint:    endpoint,
		adminSecret: adminSecret,
		client:      &http.Client{Timeout: defaultTimeout},
	}
}

type gqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type gqlError struct {
	Message string `json:"message"`
}

type userRow struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	PasswordHash string `json:"passwordHash"`
	DisplayName  string `json:"displayName"`
	DefaultRole  string `json:"defaultRole"`
}

type findUserResponse struct {
	Data struct {
		Users []userRow `json:"users"`
	} `json:"data"`
	Errors []gqlError `json:"errors"`
}

// FindByEmail returns the single credential record for email, or
// domain.ErrUserNotFound when no account matches.
func (s *Store) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var out findUserResponse
	err := s.query(ctx, gqlRequest{
		Query:     findUserByEmail,
		Variables: map[string]any{"email": email},
	}, &out)
	if err != nil {
		return nil, err
	}
	if len(out.Errors) > 0 {
		return nil, fmt.Errorf("data api: %s", out.Errors[0].Message)
	}
	if len(out.Data.Users) == 0 {
		return nil, domain.ErrUserNotFound
	}

	row := out.Data.Users[0]
	role, err := domain.ParseRole(row.DefaultRole)
	if err != nil {
		return nil, fmt.Errorf("identity store: record %s: %w", row.ID, err)
	}

	return &domain.User{
		ID:           row.ID,
		Email:        row.Email,
		PasswordHash: row.PasswordHash,
		DisplayName:  row.DisplayName,
		Role:         role,
	}, nil
}

// Ping reports whether the data API answers a trivial query. Used by the
// readiness probe.
func (s *Store) Ping(ctx context.Context) error {
	var out struct {
		Errors []gqlError `json:"errors"`
	}
	return s.query(ctx, gqlRequest{Query: `query { __typename }`}, &out)
}

func (s *Store) query(ctx context.Context, payload gqlRequest, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("data api: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("data api: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-hasura-admin-secret", s.adminSecret)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("data api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("data api: unexpected status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("data api: decode response: %w", err)
	}
	return nil
}
