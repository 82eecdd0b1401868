package apiv1

import (
	"github.com/go-playground/validator/v10"

	"github.com/aetherium/battle-api/internal/errors"
)

// Validator adapts go-playground/validator to echo's Validator interface and
// reports failures as invalid-argument errors so they render as 400s.
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates the request validator used by the echo server.
func NewValidator() *Validator {
	return &Validator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate implements echo.Validator.
func (v *Validator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "request validation failed")
	}
	return nil
}
