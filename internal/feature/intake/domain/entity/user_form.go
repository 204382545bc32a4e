// Package entity defines the domain entities for the intake feature.
package entity

import "time"

// Expected income brackets accepted by the questionnaire.
const (
	IncomeLessThan50K    = "LESS_THAN_50K"
	IncomeBetween50K100K = "BETWEEN_50K_100K"
	IncomeAbove100K      = "ABOVE_100K"
)

// Coverage selections accepted by the questionnaire.
const (
	CoverageMyself = "MYSELF"
	CoverageFamily = "FAMILY"
)

// UserForm represents a single health-insurance intake submission.
// Records are append-only: created once on a validated submission and
// never updated or deleted. Submissions are not linked to a User.
type UserForm struct {
	ID uint `gorm:"primaryKey" json:"id"`

	FirstName string `gorm:"size:255;not null" json:"firstName"`
	LastName  string `gorm:"size:255;not null" json:"lastName"`
	Email     string `gorm:"size:255;not null" json:"email"`
	Address   string `gorm:"size:255;not null" json:"address"`
	Phone     string `gorm:"size:64;not null" json:"phone"`
	PostCode  string `gorm:"size:32;not null" json:"postCode"`
	Gender    string `gorm:"size:64;not null" json:"gender"`

	// Birthday is stored as a timestamp; the transport layer parses
	// the ISO-8601 string before the record reaches this type.
	Birthday time.Time `gorm:"not null" json:"birthday"`

	// ExpectedIncome holds one of the Income* constants.
	ExpectedIncome string `gorm:"size:32;not null" json:"expectedIncome"`

	PregnantOrAdopting bool `gorm:"not null" json:"pregnantOrAdopting"`

	// Coverage holds one of the Coverage* constants.
	Coverage string `gorm:"size:16;not null" json:"coverage"`

	TobaccoUser           bool `gorm:"not null" json:"tobaccoUser"`
	MajorMedicalCondition bool `gorm:"not null" json:"majorMedicalCondition"`

	CreatedAt time.Time `json:"createdAt"`
}
