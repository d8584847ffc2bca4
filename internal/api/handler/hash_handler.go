package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
)

// hashCost is the bcrypt cost factor for newly hashed passwords. It is a
// security margin, not a performance knob; lowering it needs re-evaluation of
// brute-force resistance first.
const hashCost = 10

// HashHandler exposes the password-hashing utility the user-management pages
// call when creating accounts or resetting passwords.
type HashHandler struct{}

func NewHashHandler() *HashHandler {
	return &HashHandler{}
}

// HashPassword hashes a plaintext password with bcrypt.
//
// @Summary      Hash a password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      hashPasswordRequest  true  "Plaintext password"
// @Success      200   {object}  hashPasswordResponse
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/hash-password [post]
func (h *HashHandler) HashPassword(c echo.Context) error {
	var req hashPasswordRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "password is required"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "password is required"})
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), hashCost)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}

	return c.JSON(http.StatusOK, hashPasswordResponse{HashedPassword: string(hash)})
}
