package exceptions

import (
	"fmt"
	"praxismatch-service/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

func FormatFirstValidationError(err error) string {
	if err == nil {
		return constvars.ErrClientCannotProcessRequest
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return constvars.ErrClientCannotProcessRequest
	}

	first := validationErrors[0]
	switch first.Tag() {
	case "required":
		return fmt.Sprintf("Field '%s' is required", first.Field())
	case "oneof":
		return fmt.Sprintf("Field '%s' must be one of: %s", first.Field(), first.Param())
	default:
		return fmt.Sprintf("Field '%s' is invalid", first.Field())
	}
}
