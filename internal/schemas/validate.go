// Package schemas validates delivered payloads against embedded JSON Schemas.
package schemas

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed analysis_result.schema.json
var analysisResultSchema string

// compiledAnalysisResult is parsed on first use.
//
//nolint:gochecknoglobals // lazily compiled read-only schema
var compiledAnalysisResult = sync.OnceValues(func() (*gojsonschema.Schema, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(analysisResultSchema))
	if err != nil {
		return nil, &SchemaLoadError{Path: "analysis_result.schema.json", Message: "invalid embedded schema", Cause: err}
	}
	return schema, nil
})

// AnalysisResultSchema returns the schema every delivered analysis must satisfy.
func AnalysisResultSchema() string {
	return analysisResultSchema
}

// FieldError is one violation at a JSON field path.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError lists every violation found in a document.
type ValidationError struct {
	Errors []FieldError
}

func (ve *ValidationError) Error() string {
	parts := make([]string, len(ve.Errors))
	for i, fe := range ve.Errors {
		parts[i] = fe.Field + ": " + fe.Message
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// SchemaLoadError reports a schema that could not be parsed.
type SchemaLoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema %s: %s", e.Path, e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

// ValidateAnalysisResult marshals v and checks it against the analysis result schema.
func ValidateAnalysisResult(v any) error {
	schema, err := compiledAnalysisResult()
	if err != nil {
		return err
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal analysis result: %w", err)
	}
	result, err := schema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("failed to read analysis result: %w", err)
	}
	return fieldErrors(result)
}

// fieldErrors converts a failed result into a *ValidationError.
func fieldErrors(result *gojsonschema.Result) error {
	if result.Valid() {
		return nil
	}
	ve := &ValidationError{Errors: make([]FieldError, 0, len(result.Errors()))}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		ve.Errors = append(ve.Errors, FieldError{Field: field, Message: desc.Description()})
	}
	return ve
}
