// Package validation wraps go-playground/validator with the service's custom rules.
// Error messages name fields by their json tag.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/YusovID/review-assigner/internal/apperrors"
	"github.com/go-playground/validator/v10"
)

const entityIDTag = "entity_id"

var (
	entityIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)
	validate        = newValidator()
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" || name == "" {
			return fld.Name
		}

		return name
	})

	// user, team and pull request ids; emptiness is left to "required"
	err := v.RegisterValidation(entityIDTag, func(fl validator.FieldLevel) bool {
		s := fl.Field().String()

		return s == "" || entityIDPattern.MatchString(s)
	})
	if err != nil {
		panic(fmt.Sprintf("failed to register %s validation: %v", entityIDTag, err))
	}

	return v
}

// ValidationError holds one message per failed field.
type ValidationError struct {
	Errors []string
}

func (v *ValidationError) Error() string {
	return strings.Join(v.Errors, ", ")
}

func (v *ValidationError) Unwrap() error {
	return apperrors.ErrValidation
}

// IsEntityID reports whether s is a well-formed id.
func IsEntityID(s string) bool {
	return entityIDPattern.MatchString(s)
}

// ValidateStruct validates s by its tags and returns a *ValidationError on failure.
func ValidateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
	}

	messages := make([]string, 0, len(fieldErrs))

	for _, fe := range fieldErrs {
		var message string

		switch fe.Tag() {
		case entityIDTag:
			message = fmt.Sprintf(
				"field '%s' must be 1-64 letters, digits, hyphens or underscores",
				fe.Field(),
			)
		case "required":
			message = fmt.Sprintf("field '%s' is required", fe.Field())
		default:
			message = fmt.Sprintf("field '%s' failed on the '%s' tag", fe.Field(), fe.Tag())
		}

		messages = append(messages, message)
	}

	return &ValidationError{Errors: messages}
}
