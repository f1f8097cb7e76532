package schemas

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownSchema is wrapped when a name has no embedded schema
var ErrUnknownSchema = errors.New("unknown schema")

// FieldError is one schema violation. Field is a dotted path, "(root)" for the document itself.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError lists every violation found in one document
type ValidationError struct {
	Schema string // embedded schema name; empty for schema files
	Errors []FieldError
}

func (ve *ValidationError) Error() string {
	label := ve.Schema
	if label == "" {
		label = "document"
	}
	parts := make([]string, len(ve.Errors))
	for i, fe := range ve.Errors {
		parts[i] = fmt.Sprintf("%d. %s: %s", i+1, fe.Field, fe.Message)
	}
	return fmt.Sprintf("%s validation failed: %s", label, strings.Join(parts, "; "))
}

// SchemaLoadError means the schema itself could not be read or compiled
type SchemaLoadError struct {
	Ref   string // embedded name or file path
	Cause error
}

func (e *SchemaLoadError) Error() string {
	return fmt.Sprintf("failed to load schema %s: %v", e.Ref, e.Cause)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}
