package middleware

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validate is the shared validator instance used by request validators
var Validate = validator.New()

// ValidationErrors converts validator errors into a field -> message map
// suitable for ValidationErrorResponse.
func ValidationErrors(err error) map[string]string {
	errors := make(map[string]string)

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		errors["request"] = "Invalid request body!"
		return errors
	}

	for _, fieldError := range validationErrors {
		field := strings.ToLower(fieldError.Field())
		switch fieldError.Tag() {
		case "required":
			errors[field] = fmt.Sprintf("%s is required!", fieldError.Field())
		case "email":
			errors[field] = "Invalid email!"
		case "min":
			errors[field] = fmt.Sprintf("%s must be at least %s characters long!", fieldError.Field(), fieldError.Param())
		case "max":
			errors[field] = fmt.Sprintf("%s must be at most %s characters long!", fieldError.Field(), fieldError.Param())
		case "oneof":
			errors[field] = fmt.Sprintf("%s must be one of: %s!", fieldError.Field(), fieldError.Param())
		case "gt":
			errors[field] = fmt.Sprintf("%s must be greater than %s!", fieldError.Field(), fieldError.Param())
		default:
			errors[field] = fmt.Sprintf("%s is invalid!", fieldError.Field())
		}
	}

	return errors
}
