// Package dto defines data transfer objects for the intake feature's HTTP transport layer.
package dto

import (
	"fmt"
	"time"

	"github.com/blackcobradev90/waterLillyDemo/internal/feature/intake/domain/entity"
)

// BirthdayLayout is the ISO-8601 date-time layout the questionnaire accepts.
const BirthdayLayout = time.RFC3339

// CreateUserFormReq represents the request body for POST /userform.
//
// The binding tags on this struct are the single declarative schema for the
// questionnaire: the server validates full payloads against it and the wizard
// validates each step's subset of the same struct, so the two can never
// drift apart. The boolean answers are pointers so that `false` satisfies
// `required` while an absent or non-boolean value does not.
type CreateUserFormReq struct {
	FirstName             string `json:"firstName" binding:"required"`
	LastName              string `json:"lastName" binding:"required"`
	Email                 string `json:"email" binding:"required,email"`
	Address               string `json:"address" binding:"required"`
	Phone                 string `json:"phone" binding:"required"`
	PostCode              string `json:"postCode" binding:"required"`
	Gender                string `json:"gender" binding:"required"`
	Birthday              string `json:"birthday" binding:"required,datetime=2006-01-02T15:04:05Z07:00"`
	ExpectedIncome        string `json:"expectedIncome" binding:"required,oneof=LESS_THAN_50K BETWEEN_50K_100K ABOVE_100K"`
	PregnantOrAdopting    *bool  `json:"pregnantOrAdopting" binding:"required"`
	Coverage              string `json:"coverage" binding:"required,oneof=MYSELF FAMILY"`
	TobaccoUser           *bool  `json:"tobaccoUser" binding:"required"`
	MajorMedicalCondition *bool  `json:"majorMedicalCondition" binding:"required"`
}

// ToEntity normalizes a validated request into the domain entity, parsing the
// birthday string into a time value.
func (r *CreateUserFormReq) ToEntity() (*entity.UserForm, error) {
	birthday, err := time.Parse(BirthdayLayout, r.Birthday)
	if err != nil {
		return nil, fmt.Errorf("invalid birthday: %w", err)
	}
	return &entity.UserForm{
		FirstName:             r.FirstName,
		LastName:              r.LastName,
		Email:                 r.Email,
		Address:               r.Address,
		Phone:                 r.Phone,
		PostCode:              r.PostCode,
		Gender:                r.Gender,
		Birthday:              birthday,
		ExpectedIncome:        r.ExpectedIncome,
		PregnantOrAdopting:    *r.PregnantOrAdopting,
		Coverage:              r.Coverage,
		TobaccoUser:           *r.TobaccoUser,
		MajorMedicalCondition: *r.MajorMedicalCondition,
	}, nil
}
