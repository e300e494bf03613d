package generation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// invalidOptionsError maps validator errors on Options to a single
// human-readable error.
func invalidOptionsError(err error) error {
	var valErrs validator.ValidationErrors
	if !errors.As(err, &valErrs) {
		return err
	}

	messages := make([]string, 0, len(valErrs))
	for _, ve := range valErrs {
		messages = append(messages, ve.Field()+": "+formatValidationError(ve))
	}
	return fmt.Errorf("invalid options: %s", strings.Join(messages, "; "))
}

// formatValidationError converts a validator.FieldError to a human-readable message.
func formatValidationError(ve validator.FieldError) string {
	switch ve.Tag() {
	case "required":
		return "required"
	case "min":
		return fmt.Sprintf("must have at least %s entries", ve.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", ve.Param())
	default:
		if ve.Param() != "" {
			return fmt.Sprintf("failed %s=%s validation", ve.Tag(), ve.Param())
		}
		return fmt.Sprintf("failed %s validation", ve.Tag())
	}
}
