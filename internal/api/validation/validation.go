package validation

import (
	"fmt"
	"strings"
)

// FieldError represents a validation error on a specific field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func oneOf(value string, allowed []string) bool {
	for _, a := range allowed {
		if value == a {
			return true
		}
	}
	return false
}

func enumError(field string, allowed []string) FieldError {
	return FieldError{
		Field:   field,
		Message: fmt.Sprintf("%s must be one of: %s", field, strings.Join(allowed, ", ")),
	}
}

func progressError(field string) FieldError {
	return FieldError{Field: field, Message: field + " must be between 0 and 100"}
}

func requiredError(field string) FieldError {
	return FieldError{Field: field, Message: field + " is required"}
}
