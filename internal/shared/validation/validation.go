// Package validation turns binding failures into field-level error detail
// shared by the HTTP handlers and the wizard.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// FieldErrors maps a request field name to the reason it was rejected.
type FieldErrors map[string]string

// Describe extracts per-field detail from a request binding error. It
// understands validator constraint violations and JSON type mismatches;
// anything else yields nil, leaving only the generic error message.
func Describe(err error) FieldErrors {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make(FieldErrors, len(verrs))
		for _, fe := range verrs {
			out[jsonName(fe.Field())] = reason(fe)
		}
		return out
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return FieldErrors{typeErr.Field: "must be of type " + kindName(typeErr.Type)}
	}

	return nil
}

// reason renders one constraint violation as a human-readable message.
func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "oneof":
		return "must be one of " + strings.Join(strings.Fields(fe.Param()), ", ")
	case "datetime":
		return "must be an ISO-8601 date-time"
	default:
		return "is invalid"
	}
}

// jsonName maps an exported struct field name to its JSON form. Every request
// field here follows the firstName/FirstName convention, so lowering the first
// rune is exact.
func jsonName(field string) string {
	if field == "" {
		return field
	}
	r := []rune(field)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}

func kindName(t reflect.Type) string {
	switch t.Kind() {
	case reflect.Bool:
		return "boolean"
	case reflect.String:
		return "string"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "number"
	default:
		return t.String()
	}
}
