package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/ilibrary/admin-portal/internal/api/metrics"
	"github.com/ilibrary/admin-portal/internal/api/middleware"
	"github.com/ilibrary/admin-portal/internal/core/ports"
)

// genericLoginError is the only credential-failure message the API ever
// returns. Missing fields, unknown account and wrong password all map here so
// responses cannot be used to enumerate accounts.
const genericLoginError = "invalid email or password"

type AuthHandler struct {
	authService ports.AuthService
	validity    time.Duration
	log         zerolog.Logger
}

func NewAuthHandler(authService ports.AuthService, validity time.Duration, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, validity: validity, log: log}
}

// Login authenticates a user and stores the session artifact in an HTTP-only
// cookie scoped to the whole application.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginAttemptsTotal.WithLabelValues("failure").Inc()
		// The failure kind stays in the log; the response is generic.
		h.log.Info().Err(err).Msg("login rejected")
		return c.JSON(http.StatusUnauthorized, errorResponse{Error: genericLoginError})
	}

	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
	metrics.SessionsIssuedTotal.WithLabelValues(string(user.Role)).Inc()
	h.log.Info().Str("user_id", user.ID).Str("role", string(user.Role)).Msg("session issued")

	c.SetCookie(h.sessionCookie(token, int(h.validity.Seconds())))
	return c.JSON(http.StatusOK, loginResponse{OK: true})
}

// Logout clears the session cookie. The artifact itself stays valid until it
// expires; sessions are stateless and there is nothing server-side to revoke.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  loginResponse
// @Router       /api/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(h.sessionCookie("", -1))
	return c.JSON(http.StatusOK, loginResponse{OK: true})
}

// Session returns the claims of the current session, including the
// backend-authorization token the dashboard attaches to data-API calls.
//
// @Summary      Current session
// @Tags         auth
// @Produce      json
// @Success      200  {object}  sessionResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/session [get]
func (h *AuthHandler) Session(c echo.Context) error {
	claims := middleware.ClaimsFrom(c)
	if claims == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing session")
	}

	return c.JSON(http.StatusOK, sessionResponse{
		ID:           claims.UserID,
		Name:         claims.DisplayName,
		Email:        claims.Email,
		Role:         string(claims.Role),
		DataAPIToken: claims.DataAPIToken,
	})
}

func (h *AuthHandler) sessionCookie(token string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}
