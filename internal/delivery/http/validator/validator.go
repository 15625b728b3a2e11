// Package validator adapts the shared struct validator to echo.
package validator

import (
	domainerrors "clientes/internal/domain/errors"
	"clientes/internal/domain/validation"

	"github.com/labstack/echo/v4"
)

type requestValidator struct{}

// New returns the echo.Validator used by c.Validate.
func New() echo.Validator {
	return &requestValidator{}
}

// Validate returns a *domainerrors.ValidationError listing every invalid field.
func (v *requestValidator) Validate(i any) error {
	if fields := validation.Struct(i); len(fields) > 0 {
		return domainerrors.NewValidationError(fields)
	}

	return nil
}
