package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---

// loginRequest carries no validate tags on purpose: a malformed email and a
// missing field must be indistinguishable from a wrong password at this
// boundary, so the service decides and the handler answers generically.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	OK bool `json:"ok"`
}

type sessionResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	DataAPIToken string `json:"dataApiToken"`
}

type hashPasswordRequest struct {
	Password string `json:"password" validate:"required"`
}

type hashPasswordResponse struct {
	HashedPassword string `json:"hashedPassword"`
}
