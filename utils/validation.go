package utils

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// FormatValidationErrors turns binding failures into a field -> message map.
// Errors that are not validator errors (malformed JSON, bad time format)
// are reported under "body".
func FormatValidationErrors(err error) map[string]string {
	out := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		out["body"] = err.Error()
		return out
	}
	for _, e := range validationErrors {
		field := e.Field()
		switch e.Tag() {
		case "required":
			out[field] = field + " is required"
		case "email":
			out[field] = field + " must be a valid email address"
		case "min":
			out[field] = field + " must be at least " + e.Param()
		case "max":
			out[field] = field + " must be at most " + e.Param()
		default:
			out[field] = field + " is invalid"
		}
	}
	return out
}
