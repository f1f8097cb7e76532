// Package server provides the HTTP REST API over resume analysis and job matching.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/resume-insights/internal/fetch"
	"github.com/jonathan/resume-insights/internal/ingestion"
	"github.com/jonathan/resume-insights/internal/llm"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrAdvisoryDisabled indicates an advisory-only endpoint was called while
// the advisory model is switched off or has no API key
type ErrAdvisoryDisabled struct {
	Provider llm.Provider
}

func (e *ErrAdvisoryDisabled) Error() string {
	key := "OPENAI_API_KEY"
	if e.Provider == llm.ProviderGemini {
		key = "GEMINI_API_KEY"
	}
	return fmt.Sprintf("AI service is not enabled. Please configure %s in environment variables.", key)
}

// ErrAdvisoryUnavailable indicates the advisory model produced no usable result
type ErrAdvisoryUnavailable struct {
	Operation string
}

func (e *ErrAdvisoryUnavailable) Error() string {
	return fmt.Sprintf("Failed to generate %s. Please try again.", e.Operation)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		validationErr  *ErrValidation
		disabledErr    *ErrAdvisoryDisabled
		unavailableErr *ErrAdvisoryUnavailable
		unsupportedErr *ingestion.UnsupportedTypeError
		decodeErr      *ingestion.DecodeError
		fetchErr       *fetch.Error
	)

	switch {
	case errors.As(err, &validationErr), errors.As(err, &disabledErr):
		return http.StatusBadRequest
	case errors.As(err, &unsupportedErr):
		return http.StatusUnsupportedMediaType
	case errors.As(err, &decodeErr):
		return http.StatusUnprocessableEntity
	case errors.As(err, &fetchErr):
		return http.StatusBadGateway
	case errors.As(err, &unavailableErr):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// validationError converts validator errors into an ErrValidation for the first failing field.
func validationError(err error) error {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		ve := validationErrors[0]
		return &ErrValidation{Field: ve.Field(), Message: ve.Tag()}
	}
	return &ErrValidation{Field: "request", Message: "invalid request"}
}
