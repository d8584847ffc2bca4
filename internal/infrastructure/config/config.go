package config

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Identity store drivers.
const (
	StoreGraphQL = "graphql"
	StoreMongo   = "mongo"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`
	WebRoot  string `env:"WEB_ROOT,  default=web/dist"`

	// SessionSecret signs the browser-held session artifact.
	SessionSecret string `env:"SESSION_SECRET"`
	// SessionValidity is the fixed window from issuance; sessions are not
	// refreshed.
	SessionValidity time.Duration `env:"SESSION_VALIDITY, default=24h"`

	DataAPI DataAPIConfig
	Store   StoreConfig
}

// DataAPIConfig describes the downstream Hasura-style GraphQL data API.
type DataAPIConfig struct {
	Endpoint    string `env:"DATA_API_URL"`
	AdminSecret string `env:"DATA_API_ADMIN_SECRET"`
	// JWTSecret is the shared signing secret in the data API's structured
	// form: a JSON object with a "key" field, e.g. {"type":"HS256","key":"…"}.
	JWTSecret string `env:"DATA_API_JWT_SECRET"`
}

type StoreConfig struct {
	Driver string `env:"IDENTITY_STORE, default=graphql"`
	Mongo  MongoConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=ilibrary"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}

type signingSecret struct {
	Type string `json:"type"`
	Key  string `json:"key"`
}

// DataAPIKey parses the structured JWT secret and returns the raw signing key.
func (c *Config) DataAPIKey() ([]byte, error) {
	if c.DataAPI.JWTSecret == "" {
		return nil, fmt.Errorf("config: DATA_API_JWT_SECRET is required")
	}
	var s signingSecret
	if err := json.Unmarshal([]byte(c.DataAPI.JWTSecret), &s); err != nil {
		return nil, fmt.Errorf("config: DATA_API_JWT_SECRET is not valid JSON: %w", err)
	}
	if s.Key == "" {
		return nil, fmt.Errorf("config: DATA_API_JWT_SECRET has no \"key\" field")
	}
	return []byte(s.Key), nil
}

// Validate reports fatal configuration gaps. The service must refuse to start
// rather than run with an unsigned or unverifiable session scheme.
func (c *Config) Validate() error {
	if c.SessionSecret == "" {
		return fmt.Errorf("config: SESSION_SECRET is required")
	}
	if _, err := c.DataAPIKey(); err != nil {
		return err
	}
	if c.DataAPI.Endpoint == "" {
		return fmt.Errorf("config: DATA_API_URL is required")
	}

	switch c.Store.Driver {
	case StoreGraphQL:
		if c.DataAPI.AdminSecret == "" {
			return fmt.Errorf("config: DATA_API_ADMIN_SECRET is required for the graphql identity store")
		}
	case StoreMongo:
		if c.Store.Mongo.URI == "" {
			return fmt.Errorf("config: MONGO_URI is required for the mongo identity store")
		}
	default:
		return fmt.Errorf("config: unknown identity store driver %q", c.Store.Driver)
	}

	return nil
}
