// Package validator adapts go-playground/validator to Echo's Validator
// interface.
package validator

import (
	"vehiclee/internal/errors"

	validatorlib "github.com/go-playground/validator/v10"
)

// CustomValidator wraps the validator library for Echo.
type CustomValidator struct {
	validator *validatorlib.Validate
}

// New creates a validator with struct tag validation enabled.
func New() *CustomValidator {
	return &CustomValidator{
		validator: validatorlib.New(validatorlib.WithRequiredStructEnabled()),
	}
}

// Validate implements echo.Validator.
func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validator.Struct(i); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
