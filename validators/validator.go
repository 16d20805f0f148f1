package validators

import (
	"strings"

	"github.com/chabeb/social-network/backend/internal/apperrors"
	"github.com/go-playground/validator/v10"
)

// CustomValidator adapts go-playground/validator to echo's Validator interface
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a CustomValidator with the application's custom rules
func NewValidator() *CustomValidator {
	v := validator.New()

	// usernames must not contain any whitespace
	_ = v.RegisterValidation("nowhitespace", func(fl validator.FieldLevel) bool {
		return !strings.ContainsAny(fl.Field().String(), " \t\r\n")
	})

	return &CustomValidator{validator: v}
}

// Validate validates a request struct and classifies failures as validation errors
func (cv *CustomValidator) Validate(i interface{}) error {
	if err := cv.validator.Struct(i); err != nil {
		return apperrors.Wrap(apperrors.KindValidation, "invalid request", err)
	}
	return nil
}
