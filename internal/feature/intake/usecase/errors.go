// Package usecase implements the business logic for the intake feature.
package usecase

import "errors"

// ErrFormNotFound is returned when no intake submission matches the given ID.
var ErrFormNotFound = errors.New("user form not found")
