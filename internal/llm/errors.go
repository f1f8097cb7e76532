package llm

import (
	"errors"
	"fmt"
)

// ErrDisabled is returned by a disabled client for every generation request
var ErrDisabled = errors.New("advisory service is disabled")

// ErrEmptyResponse is returned when the provider answers without any text
var ErrEmptyResponse = errors.New("no text in advisory response")

// APICallError represents a failed request to an LLM provider
type APICallError struct {
	Provider Provider
	Model    string
	Cause    error
}

func (e *APICallError) Error() string {
	return fmt.Sprintf("%s API call failed (model %s): %v", e.Provider, e.Model, e.Cause)
}

func (e *APICallError) Unwrap() error {
	return e.Cause
}
