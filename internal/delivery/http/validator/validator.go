// Package validator adapts go-playground/validator to Echo's Validator
// interface so handlers can call c.Validate on bound payloads.
package validator

import (
	domainerrors "railbook/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

type requestValidator struct {
	validate *validator.Validate
}

// New builds the validator used by the Echo server.
func New() *requestValidator {
	return &requestValidator{validate: validator.New()}
}

// Validate checks struct tags and maps failures to the shared validation error
// so the error handler renders a 400 with a stable message.
func (v *requestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}

	return nil
}
