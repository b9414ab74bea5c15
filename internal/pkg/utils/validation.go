package utils

import (
	"net/http"
	"praxismatch-service/internal/pkg/exceptions"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
)

var validate = validator.New()

func ParseAndValidateRequestBody(r *http.Request, dest interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		return exceptions.ErrCannotParseJSON(err)
	}
	if err := validate.Struct(dest); err != nil {
		return exceptions.ErrInputValidation(err)
	}
	return nil
}
