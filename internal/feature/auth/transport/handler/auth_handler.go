// Package handler provides the HTTP handlers for the auth feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/blackcobradev90/waterLillyDemo/internal/feature/auth/domain/entity"
	"github.com/blackcobradev90/waterLillyDemo/internal/feature/auth/transport/http/dto"
	"github.com/blackcobradev90/waterLillyDemo/internal/feature/auth/usecase"
	"github.com/blackcobradev90/waterLillyDemo/internal/shared/validation"
)

// AuthUsecase defines the auth operations the handler depends on.
// Following Go convention, the interface is defined by the consumer (handler),
// not the provider (usecase).
type AuthUsecase interface {
	// Signup registers a new user and returns it without the password hash.
	Signup(ctx context.Context, name, email, password string, age *int) (*entity.User, error)
	// Login authenticates a user, returning the sanitized user and a signed token.
	Login(ctx context.Context, email, password string) (*entity.User, string, error)
}

// AuthHandler handles HTTP requests for signup and login.
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Signup handles POST /auth/signup.
// - 400 with field detail when the payload fails the signup schema
// - 400 "User already exists" when the email is taken
// - 500 generic on store failure (detail stays in the server log)
// - 201 with the created user (no password hash) on success
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("signup validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request", Fields: validation.Describe(err)})
		return
	}

	user, err := h.auth.Signup(c.Request.Context(), req.Name, req.Email, req.Password, req.Age)
	if err != nil {
		if errors.Is(err, usecase.ErrEmailAlreadyExists) {
			slog.Warn("signup rejected: duplicate email", "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "User already exists"})
			return
		}
		slog.Error("signup failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
		return
	}

	slog.Info("user signup successful", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, dto.SignupRes{User: user})
}

// Login handles POST /auth/login.
// Unknown email and wrong password produce the same 401 body so the response
// never reveals whether the account exists.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request", Fields: validation.Describe(err)})
		return
	}

	user, token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			slog.Warn("login failed", "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Invalid credentials"})
			return
		}
		slog.Error("login failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
		return
	}

	slog.Info("user login successful", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.LoginRes{User: user, Token: token})
}
