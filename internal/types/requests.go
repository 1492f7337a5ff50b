// Package types provides request, response and error types shared across the spell checker service.
package types

import (
	"errors"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func requestValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		_ = validate.RegisterValidation("notblank", validators.NotBlank)
	})
	return validate
}

// TextRequest is the body accepted by /check, the AI routes and the export routes.
type TextRequest struct {
	Text string `json:"text" validate:"notblank"`
}

// WordRequest is the body accepted by /add-word.
type WordRequest struct {
	Word string `json:"word" validate:"notblank"`
}

// Validate validates the TextRequest using the validator.
func (r *TextRequest) Validate() error {
	return toValidationError(requestValidator().Struct(r), "text", "Text is required")
}

// Validate validates the WordRequest using the validator.
func (r *WordRequest) Validate() error {
	return toValidationError(requestValidator().Struct(r), "word", "Word is required")
}

// toValidationError collapses validator field errors into the single message the API reports.
func toValidationError(err error, field, message string) error {
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		return &ValidationError{Field: field, Message: message}
	}
	return err
}
