package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/blackcobradev90/waterLillyDemo/internal/feature/intake/domain/entity"
)

// FormRepository abstracts the persistence layer for intake submissions.
// Following Go convention, the interface is defined by the consumer (usecase),
// not the provider (adapters).
type FormRepository interface {
	// Create appends a new submission. Submissions carry no uniqueness
	// constraint beyond the generated ID.
	Create(ctx context.Context, form *entity.UserForm) error

	// List returns all submissions, newest first.
	List(ctx context.Context) ([]entity.UserForm, error)

	// FindByID returns the submission with the given ID, or ErrFormNotFound.
	FindByID(ctx context.Context, id uint) (*entity.UserForm, error)
}

// IntakeUsecase implements the questionnaire submission and review flows.
type IntakeUsecase struct {
	forms   FormRepository
	timeout time.Duration
}

// NewIntakeUsecase creates a new IntakeUsecase. queryTimeout bounds every
// store call; zero disables the bound.
func NewIntakeUsecase(forms FormRepository, queryTimeout time.Duration) *IntakeUsecase {
	return &IntakeUsecase{forms: forms, timeout: queryTimeout}
}

func (u *IntakeUsecase) storeCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if u.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, u.timeout)
}

// Submit persists a validated submission and returns it with its generated ID.
// Validation happens upstream (transport binding or wizard); by the time a
// form reaches this method it is structurally sound.
func (u *IntakeUsecase) Submit(ctx context.Context, form *entity.UserForm) (*entity.UserForm, error) {
	ctx, cancel := u.storeCtx(ctx)
	defer cancel()
	if err := u.forms.Create(ctx, form); err != nil {
		return nil, fmt.Errorf("failed to create user form: %w", err)
	}
	return form, nil
}

// List returns all submissions, newest first.
func (u *IntakeUsecase) List(ctx context.Context) ([]entity.UserForm, error) {
	ctx, cancel := u.storeCtx(ctx)
	defer cancel()
	forms, err := u.forms.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list user forms: %w", err)
	}
	return forms, nil
}

// Get returns the submission with the given ID.
func (u *IntakeUsecase) Get(ctx context.Context, id uint) (*entity.UserForm, error) {
	ctx, cancel := u.storeCtx(ctx)
	defer cancel()
	form, err := u.forms.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrFormNotFound) {
			return nil, ErrFormNotFound
		}
		return nil, fmt.Errorf("failed to find user form: %w", err)
	}
	return form, nil
}
