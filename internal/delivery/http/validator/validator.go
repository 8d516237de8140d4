// Package validator adapts go-playground/validator to echo's Validator
// interface so handlers can rely on struct tags for input checking.
package validator

import (
	domainerrors "calshare/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps a validator.Validate instance for echo.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates the validator echo uses for c.Validate calls.
func New() *CustomValidator {
	return &CustomValidator{validate: validator.New()}
}

// Validate implements echo.Validator. Failures surface as the standard
// validation AppError so the error handler maps them to 400.
func (v *CustomValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
