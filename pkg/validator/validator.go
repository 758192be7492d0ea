package validator

import (
	"github.com/go-playground/validator/v10"
)

// CustomValidator adapts go-playground/validator to the echo.Validator
// interface so request DTOs are checked on bind.
type CustomValidator struct {
	v *validator.Validate
}

// New returns a validator backed by the struct-tag rules on the DTOs.
func New() *CustomValidator {
	return &CustomValidator{v: validator.New()}
}

// Validate checks i against its validate tags.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.v.Struct(i)
}
