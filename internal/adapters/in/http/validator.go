package http

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// RequestValidator adapts go-playground/validator to echo's Validator
// interface.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator creates a validator for request payloads.
func NewRequestValidator() *RequestValidator {
	return &RequestValidator{validate: validator.New()}
}

// Validate implements echo.Validator.
func (v *RequestValidator) Validate(i any) error {
	return v.validate.Struct(i)
}

// bindAndValidate decodes the request body and runs struct validation,
// replying 400 on any failure. A non-nil return means the response was
// already written.
func bindAndValidate(ctx echo.Context, req any) error {
	if err := ctx.Bind(req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	if err := ctx.Validate(req); err != nil {
		return badRequest(ctx, err.Error())
	}
	return nil
}
