package ingestion

import (
	"errors"
	"fmt"
)

// ErrEmptyDocument is returned when a document decodes to no readable text.
var ErrEmptyDocument = errors.New("document contains no readable text")

// UnsupportedTypeError is returned when neither the content type nor the
// file name identify a supported format.
type UnsupportedTypeError struct {
	Name        string
	ContentType string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported document type (name %q, content type %q): use txt, pdf, docx or html", e.Name, e.ContentType)
}

// DecodeError wraps a failure to read a document of a known format.
type DecodeError struct {
	Name   string
	Format Format
	Cause  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode %s document %q: %v", e.Format, e.Name, e.Cause)
}

func (e *DecodeError) Unwrap() error {
	return e.Cause
}
