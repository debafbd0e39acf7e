package pdfwriter

import "fmt"

// Error codes reported by the renderer.
const (
	CodeRenderFailed     = "RENDER_FAILED"
	CodeOutputUnwritable = "OUTPUT_UNWRITABLE"
	CodeImageFailed      = "IMAGE_FAILED"
)

// RenderError describes why a document could not be turned into a PDF.
type RenderError struct {
	// Code is one of the Code* constants.
	Code string

	// Message is a human-readable description.
	Message string

	// Cause is the underlying error, if any.
	Cause error
}

// Error implements the error interface.
func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause.
func (e *RenderError) Unwrap() error {
	return e.Cause
}

func renderError(code, message string, cause error) *RenderError {
	return &RenderError{Code: code, Message: message, Cause: cause}
}
