package echoapi

import "github.com/go-playground/validator/v10"

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) Validate(validate *validator.Validate) error {
	return validate.Struct(r)
}

type TokenResponse struct {
	Token string `json:"token"`
}

// SessionResponse is the caller's current session snapshot.
type SessionResponse struct {
	Authenticated bool   `json:"authenticated"`
	Username      string `json:"username,omitempty"`
	Role          string `json:"role,omitempty"`
}
