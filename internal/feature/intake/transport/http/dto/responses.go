package dto

import "github.com/blackcobradev90/waterLillyDemo/internal/feature/intake/domain/entity"

// ErrorResponse is the body returned on any failed request. Fields carries
// per-field validation detail and is omitted for non-validation failures.
type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// UserFormRes is the body returned when a single submission is created or fetched.
type UserFormRes struct {
	UserForm *entity.UserForm `json:"userForm"`
}

// UserFormListRes is the body returned by the review listing endpoint.
type UserFormListRes struct {
	UserForms []entity.UserForm `json:"userForms"`
}
