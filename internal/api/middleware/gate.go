package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/ilibrary/admin-portal/internal/api/metrics"
	"github.com/ilibrary/admin-portal/internal/core/domain"
	"github.com/ilibrary/admin-portal/internal/core/ports"
)

// SessionCookie is the name of the browser-held session artifact cookie.
const SessionCookie = "ilibrary_session"

const claimsKey = "session_claims"

// RoleGate binds a path prefix to the exact role it requires.
type RoleGate struct {
	Prefix string
	Role   domain.Role
}

// GateConfig is the static path-protection policy. Prefix matching only;
// nothing here is computed per request.
type GateConfig struct {
	LoginPath string
	// Protected prefixes require a valid session of any role.
	Protected []string
	// Roles narrows protected prefixes to one exact role. Admin is not
	// author: the match is equality, not a hierarchy.
	Roles []RoleGate
}

// DefaultGateConfig is the portal's policy: /admin for admins, /author for
// authors, /login always open.
func DefaultGateConfig() GateConfig {
	return GateConfig{
		LoginPath: "/login",
		Protected: []string{"/admin", "/author"},
		Roles: []RoleGate{
			{Prefix: "/admin", Role: domain.RoleAdmin},
			{Prefix: "/author", Role: domain.RoleAuthor},
		},
	}
}

// RouteGate intercepts every request and decides allow or redirect-to-login.
// A missing session and a wrong role produce byte-identical redirects so the
// response never reveals which protected areas exist.
func RouteGate(cfg GateConfig, sessions ports.SessionReader) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Request().URL.Path

			// Never gate the login page itself; gating it loops.
			if path == cfg.LoginPath {
				return next(c)
			}

			claims := sessionFromCookie(c, sessions)

			if claims == nil {
				for _, p := range cfg.Protected {
					if strings.HasPrefix(path, p) {
						return redirectToLogin(c, cfg.LoginPath)
					}
				}
			}

			for _, g := range cfg.Roles {
				if strings.HasPrefix(path, g.Prefix) && (claims == nil || claims.Role != g.Role) {
					return redirectToLogin(c, cfg.LoginPath)
				}
			}

			if claims != nil {
				c.Set(claimsKey, claims)
			}
			metrics.GateDecisionsTotal.WithLabelValues("allow").Inc()
			return next(c)
		}
	}
}

func redirectToLogin(c echo.Context, loginPath string) error {
	metrics.GateDecisionsTotal.WithLabelValues("redirect").Inc()
	return c.Redirect(http.StatusSeeOther, loginPath)
}

func sessionFromCookie(c echo.Context, sessions ports.SessionReader) *domain.SessionClaims {
	cookie, err := c.Cookie(SessionCookie)
	if err != nil {
		return nil
	}
	return sessions.Read(cookie.Value)
}

// ClaimsFrom returns the session claims stashed by RouteGate or Auth, or nil
// when the request carries no verified session.
func ClaimsFrom(c echo.Context) *domain.SessionClaims {
	claims, _ := c.Get(claimsKey).(*domain.SessionClaims)
	return claims
}
