package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-scorer/internal/analysis"
	"github.com/jonathan/resume-scorer/internal/ingestion"
	"github.com/jonathan/resume-scorer/internal/ranking"
	"github.com/jonathan/resume-scorer/internal/schemas"
)

// ErrBadRequest indicates a body that could not be decoded
type ErrBadRequest struct {
	Message string
	Cause   error
}

func (e *ErrBadRequest) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("bad request: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("bad request: %s", e.Message)
}

func (e *ErrBadRequest) Unwrap() error {
	return e.Cause
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		badRequest  *ErrBadRequest
		inputErr    *analysis.InputError
		rankErr     *ranking.Error
		schemaErr   *schemas.ValidationError
		fieldErrs   validator.ValidationErrors
		unsupported *ingestion.UnsupportedFormatError
		extraction  *ingestion.ExtractionError
	)
	switch {
	case errors.As(err, &badRequest),
		errors.As(err, &inputErr),
		errors.As(err, &rankErr),
		errors.As(err, &schemaErr),
		errors.As(err, &fieldErrs):
		return http.StatusBadRequest
	case errors.As(err, &unsupported):
		return http.StatusUnsupportedMediaType
	case errors.As(err, &extraction):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
