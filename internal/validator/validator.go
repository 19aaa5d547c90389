package validator

import (
	"fmt"
	"reflect"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	ErrRequired    = "is required"
	ErrEmail       = "must be a valid email address"
	ErrUUID        = "must be a valid UUID"
	ErrMinValue    = "must be at least %s"
	ErrMaxValue    = "must be at most %s"
	ErrMaxLength   = "must be at most %s characters long"
	ErrGreaterThan = "must be greater than %s"
	ErrReleaseYear = "must not be later than the current year"
	ErrInvalid     = "is invalid"
)

func NewValidator() *validator.Validate {
	validator := validator.New(validator.WithRequiredStructEnabled())

	validator.RegisterValidation("release_year", validateReleaseYear)

	return validator
}

// validateReleaseYear rejects release years later than the current year. The
// lower bound is a plain min tag; only the upper bound is dynamic.
func validateReleaseYear(fl validator.FieldLevel) bool {
	year := fl.Field().Int()

	return int(year) <= time.Now().Year()
}

// ValidationMessage converts validator errors into readable messages
func ValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return ErrRequired
	case "email":
		return ErrEmail
	case "uuid4":
		return ErrUUID
	case "min":
		return fmt.Sprintf(ErrMinValue, err.Param())
	case "max":
		if err.Kind() == reflect.String {
			return fmt.Sprintf(ErrMaxLength, err.Param())
		}
		return fmt.Sprintf(ErrMaxValue, err.Param())
	case "gt":
		return fmt.Sprintf(ErrGreaterThan, err.Param())
	case "gtfield":
		return fmt.Sprintf("must be after %s", err.Param())
	case "release_year":
		return ErrReleaseYear
	default:
		return ErrInvalid
	}
}
