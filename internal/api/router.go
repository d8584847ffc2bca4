package api

import (
	"path/filepath"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/ilibrary/admin-portal/internal/api/handler"
	"github.com/ilibrary/admin-portal/internal/api/middleware"
	"github.com/ilibrary/admin-portal/internal/core/ports"
	"github.com/ilibrary/admin-portal/internal/core/service"
	"github.com/ilibrary/admin-portal/internal/infrastructure/config"
	healthhandlers "github.com/ilibrary/admin-portal/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, store ports.IdentityStore, probes map[string]ports.Pinger, log zerolog.Logger) (*echo.Echo, error) {
	dataAPIKey, err := cfg.DataAPIKey()
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Dependencies ---
	sessionService := service.NewSessionService([]byte(cfg.SessionSecret), dataAPIKey, cfg.SessionValidity)
	authService := service.NewAuthService(store, sessionService)
	authHandler := handler.NewAuthHandler(authService, cfg.SessionValidity, log)
	hashHandler := handler.NewHashHandler()
	graphqlHandler := handler.NewGraphQLHandler(cfg.DataAPI.Endpoint)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("ilibrary"))
	e.Use(middleware.RouteGate(middleware.DefaultGateConfig(), sessionService))

	// --- Auth routes ---
	e.POST("/api/login", authHandler.Login)
	e.POST("/api/logout", authHandler.Logout)
	e.POST("/api/hash-password", hashHandler.HashPassword)

	authed := e.Group("/api", middleware.Auth(sessionService))
	authed.GET("/session", authHandler.Session)
	authed.POST("/graphql", graphqlHandler.Forward)

	// --- Dashboard page trees (built assets; the Route Gate decides access) ---
	for _, tree := range []string{"login", "admin", "author", "read"} {
		e.Static("/"+tree, filepath.Join(cfg.WebRoot, tree))
	}

	// --- Observability (no auth required) ---
	healthHandler := healthhandlers.NewHealthHandler()
	readinessHandler := healthhandlers.NewReadinessHandler(probes)

	e.GET("/health", healthHandler.Liveness)        // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – is the identity backend up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e, nil
}
