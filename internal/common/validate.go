package common

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateStruct runs validator tags on a request payload and folds any
// failures into a single ErrValidation with a readable message.
func ValidateStruct(payload interface{}) error {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return fmt.Errorf("invalid payload: %w", ErrValidation)
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fieldError := range validationErrors {
		var message string
		switch fieldError.Tag() {
		case "required":
			message = fieldError.Field() + " is required"
		case "email":
			message = "invalid email format"
		case "min":
			message = fieldError.Field() + " must be at least " + fieldError.Param()
		case "max":
			message = fieldError.Field() + " must be at most " + fieldError.Param()
		case "datetime":
			message = fieldError.Field() + " must be a date in " + fieldError.Param() + " format"
		case "gt":
			message = fieldError.Field() + " must be greater than " + fieldError.Param()
		default:
			message = fieldError.Field() + " is invalid"
		}
		messages = append(messages, message)
	}

	return fmt.Errorf("%s: %w", strings.Join(messages, "; "), ErrValidation)
}
