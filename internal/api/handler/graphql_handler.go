package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ilibrary/admin-portal/internal/api/middleware"
)

// GraphQLHandler forwards authenticated GraphQL calls to the data API with the
// session's backend-authorization token attached. The portal never interprets
// the query; row and column level permissions are the data API's job, driven
// by the token's claims.
type GraphQLHandler struct {
	endpoint string
	client   *http.Client
}

func NewGraphQLHandler(endpoint string) *GraphQLHandler {
	return &GraphQLHandler{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 15 * time.Second},
	}
}

// Forward relays the request body to the data API and the data API's status
// and body back to the caller.
//
// @Summary      Forward a GraphQL request to the data API
// @Tags         data
// @Accept       json
// @Produce      json
// @Failure      401  {object}  errorResponse
// @Failure      502  {object}  errorResponse
// @Router       /api/graphql [post]
func (h *GraphQLHandler) Forward(c echo.Context) error {
	claims := middleware.ClaimsFrom(c)
	if claims == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing session")
	}

	req, err := http.NewRequestWithContext(c.Request().Context(), http.MethodPost, h.endpoint, c.Request().Body)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, "data api unreachable")
	}
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+claims.DataAPIToken)

	resp, err := h.client.Do(req)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, "data api unreachable")
	}
	defer resp.Body.Close()

	contentType := resp.Header.Get(echo.HeaderContentType)
	if contentType == "" {
		contentType = echo.MIMEApplicationJSON
	}
	return c.Stream(resp.StatusCode, contentType, resp.Body)
}
