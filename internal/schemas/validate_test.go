package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-scorer/internal/types"
)

func validResult() types.AnalysisResult {
	return types.AnalysisResult{
		ResumeID:         "r-1",
		ATSScore:         72.5,
		QualityScore:     64,
		Strength:         types.StrengthAverage,
		ExtractedSkills:  []string{"Go", "Docker"},
		GrammarIssues:    []types.GrammarIssue{},
		SectionsDetected: []types.Section{types.SectionExperience},
		WordCount:        420,
		Insights:         []string{},
		RolePrediction: types.RolePrediction{
			Role:         "Backend Engineer",
			Confidence:   0.6,
			Alternatives: []string{},
			Scores:       map[string]int{"Backend Engineer": 3},
		},
		Anomalies: []string{},
		RawResult: types.RawResult{
			TextLength: 2400,
			Sections:   map[types.Section]bool{types.SectionExperience: true},
		},
	}
}

func TestValidateAnalysisResult_Valid(t *testing.T) {
	assert.NoError(t, ValidateAnalysisResult(validResult()))
}

func TestValidateAnalysisResult_NilSlices(t *testing.T) {
	result := validResult()
	result.Anomalies = nil

	err := ValidateAnalysisResult(result)
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "anomalies", validationErr.Errors[0].Field)
}

func TestValidateAnalysisResult_OutOfRange(t *testing.T) {
	result := validResult()
	result.ATSScore = 140
	result.RolePrediction.Confidence = 1.5

	err := ValidateAnalysisResult(result)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Len(t, validationErr.Errors, 2)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestAnalysisResultSchema_Embedded(t *testing.T) {
	assert.Contains(t, AnalysisResultSchema(), `"AnalysisResult"`)
}

func TestValidationError_Message(t *testing.T) {
	err := &ValidationError{Errors: []FieldError{
		{Field: "ats_score", Message: "Must be less than or equal to 100"},
		{Field: "strength", Message: "must be one of the enum values"},
	}}
	assert.Equal(t,
		"validation failed: ats_score: Must be less than or equal to 100; strength: must be one of the enum values",
		err.Error())
}

func TestValidateAnalysisResult_BadEnum(t *testing.T) {
	result := validResult()
	result.Strength = "legendary"

	err := ValidateAnalysisResult(result)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "strength", validationErr.Errors[0].Field)
}
