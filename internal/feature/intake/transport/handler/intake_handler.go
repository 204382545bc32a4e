// Package handler provides the HTTP handlers for the intake feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/blackcobradev90/waterLillyDemo/internal/feature/intake/domain/entity"
	"github.com/blackcobradev90/waterLillyDemo/internal/feature/intake/transport/http/dto"
	"github.com/blackcobradev90/waterLillyDemo/internal/feature/intake/usecase"
	"github.com/blackcobradev90/waterLillyDemo/internal/feature/intake/wizard"
	"github.com/blackcobradev90/waterLillyDemo/internal/shared/validation"
)

// IntakeUsecase defines the intake operations the handler depends on.
// Following Go convention, the interface is defined by the consumer (handler),
// not the provider (usecase).
type IntakeUsecase interface {
	Submit(ctx context.Context, form *entity.UserForm) (*entity.UserForm, error)
	List(ctx context.Context) ([]entity.UserForm, error)
	Get(ctx context.Context, id uint) (*entity.UserForm, error)
}

// IntakeHandler handles HTTP requests for questionnaire submissions.
type IntakeHandler struct {
	intake IntakeUsecase
}

// NewIntakeHandler creates a new IntakeHandler.
func NewIntakeHandler(intake IntakeUsecase) *IntakeHandler {
	return &IntakeHandler{intake: intake}
}

// Create handles POST /userform.
// - 400 with field detail when any of the 13 fields fails its constraint
// - 500 generic on store failure (nothing persisted partially; the record is
//   one insert)
// - 201 with the persisted record, including its generated ID, on success
func (h *IntakeHandler) Create(c *gin.Context) {
	var req dto.CreateUserFormReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("user form validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request", Fields: validation.Describe(err)})
		return
	}

	form, err := req.ToEntity()
	if err != nil {
		// Unreachable after the datetime binding rule, kept as a guard.
		slog.Warn("user form normalization failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request"})
		return
	}

	created, err := h.intake.Submit(c.Request.Context(), form)
	if err != nil {
		slog.Error("user form submission failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
		return
	}

	slog.Info("user form submitted", "id", created.ID, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, dto.UserFormRes{UserForm: created})
}

// List handles GET /userforms (authenticated review), newest first.
func (h *IntakeHandler) List(c *gin.Context) {
	forms, err := h.intake.List(c.Request.Context())
	if err != nil {
		slog.Error("user form listing failed", "error", err)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
		return
	}
	c.JSON(http.StatusOK, dto.UserFormListRes{UserForms: forms})
}

// Get handles GET /userforms/:id (authenticated review).
func (h *IntakeHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid id"})
		return
	}

	form, err := h.intake.Get(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, usecase.ErrFormNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "user form not found"})
			return
		}
		slog.Error("user form lookup failed", "error", err, "id", id)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
		return
	}
	c.JSON(http.StatusOK, dto.UserFormRes{UserForm: form})
}

// Schema handles GET /userform/schema. It publishes the wizard's step and
// field definitions so clients render and validate from the same schema the
// server enforces.
func (h *IntakeHandler) Schema(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"steps": wizard.Schema()})
}
