// Package validator adapts go-playground/validator to echo's Validator hook.
package validator

import (
	playgroundvalidator "github.com/go-playground/validator/v10"
)

// Validator wraps the playground validator for echo.
type Validator struct {
	validate *playgroundvalidator.Validate
}

// New creates the request validator.
func New() *Validator {
	return &Validator{validate: playgroundvalidator.New()}
}

// Validate implements echo.Validator.
func (v *Validator) Validate(i any) error {
	return v.validate.Struct(i)
}
