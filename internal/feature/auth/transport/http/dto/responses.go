package dto

import "github.com/blackcobradev90/waterLillyDemo/internal/feature/auth/domain/entity"

// ErrorResponse is the body returned on any failed request. Fields carries
// per-field validation detail and is omitted for non-validation failures.
type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// SignupRes is the body returned on successful signup. The user never
// includes the password hash.
type SignupRes struct {
	User *entity.User `json:"user"`
}

// LoginRes is the body returned on successful login.
type LoginRes struct {
	User  *entity.User `json:"user"`
	Token string       `json:"token"`
}
