package ingestion

import (
	"errors"
	"fmt"
)

// ErrNoText reports a document that decoded cleanly but holds no text,
// typically a scanned or image-only file.
var ErrNoText = errors.New("document contains no text")

// ExtractionError represents a document that could not be turned into text
type ExtractionError struct {
	Format  string
	Message string
	Cause   error
}

func (e *ExtractionError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "extraction failed"
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s extraction error: %s: %v", e.Format, msg, e.Cause)
	}
	return fmt.Sprintf("%s extraction error: %s", e.Format, msg)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}

// UnsupportedFormatError represents an unknown document format
type UnsupportedFormatError struct {
	Format string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported file type: %s", e.Format)
}
