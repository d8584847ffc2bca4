package main

import (
	"context"
	"errors"
	"net/http"

	"github.com/ilibrary/admin-portal/internal/api"
	"github.com/ilibrary/admin-portal/internal/core/ports"
	"github.com/ilibrary/admin-portal/internal/infrastructure/config"
	"github.com/ilibrary/admin-portal/internal/infrastructure/identity/graphqlstore"
	"github.com/ilibrary/admin-portal/internal/infrastructure/identity/mongostore"
	"github.com/ilibrary/admin-portal/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	// Refuse to start with an unsigned or unverifiable session scheme.
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("configuration invalid")
	}

	ctx := context.Background()

	var (
		store  ports.IdentityStore
		probes = make(map[string]ports.Pinger)
	)
	switch cfg.Store.Driver {
	case config.StoreMongo:
		client, db, err := mongostore.Connect(ctx, mongostore.Config{
			URI:      cfg.Store.Mongo.URI,
			Database: cfg.Store.Mongo.Database,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("mongo connection failed")
		}
		defer func() { _ = client.Disconnect(ctx) }()

		ms := mongostore.New(db)
		store = ms
		probes["mongodb"] = ms
	default:
		gs := graphqlstore.New(cfg.DataAPI.Endpoint, cfg.DataAPI.AdminSecret)
		store = gs
		probes["data_api"] = gs
	}

	e, err := api.NewRouter(cfg, store, probes, log)
	if err != nil {
		log.Fatal().Err(err).Msg("router setup failed")
	}

	addr := ":" + cfg.Port
	log.Info().
		Str("addr", addr).
		Str("identity_store", cfg.Store.Driver).
		Msg("starting admin portal")

	if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
