// Package adapters provides repository implementations for the intake feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/blackcobradev90/waterLillyDemo/internal/feature/intake/domain/entity"
	"github.com/blackcobradev90/waterLillyDemo/internal/feature/intake/usecase"
)

// formPostgres is the gorm-backed implementation of usecase.FormRepository.
type formPostgres struct {
	db *gorm.DB
}

var _ usecase.FormRepository = (*formPostgres)(nil)

// NewFormPostgres creates a form repository on top of the given gorm connection.
func NewFormPostgres(db *gorm.DB) *formPostgres {
	return &formPostgres{db: db}
}

// Create appends a submission. The store assigns the ID and CreatedAt.
func (r *formPostgres) Create(ctx context.Context, form *entity.UserForm) error {
	return r.db.WithContext(ctx).Create(form).Error
}

// List returns all submissions, newest first.
func (r *formPostgres) List(ctx context.Context) ([]entity.UserForm, error) {
	var forms []entity.UserForm
	if err := r.db.WithContext(ctx).Order("id DESC").Find(&forms).Error; err != nil {
		return nil, err
	}
	return forms, nil
}

// FindByID returns one submission, or usecase.ErrFormNotFound.
func (r *formPostgres) FindByID(ctx context.Context, id uint) (*entity.UserForm, error) {
	var form entity.UserForm
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&form).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrFormNotFound
		}
		return nil, err
	}
	return &form, nil
}
