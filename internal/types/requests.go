package types

import (
	"github.com/go-playground/validator/v10"
)

//nolint:gochecknoglobals // validator caches struct metadata and is safe for concurrent use
var validate = validator.New()

// AnalyzeRequest starts an analysis. Either Text or S3Key must be supplied.
type AnalyzeRequest struct {
	ResumeID    string `json:"resume_id" validate:"required"`
	S3Key       string `json:"s3_key,omitempty" validate:"required_without=Text"`
	FileType    string `json:"file_type,omitempty" validate:"omitempty,oneof=pdf docx html txt text"`
	Text        string `json:"text,omitempty" validate:"required_without=S3Key"`
	CallbackURL string `json:"callback_url,omitempty" validate:"omitempty,url"`
}

// Validate validates the AnalyzeRequest using the validator.
func (r *AnalyzeRequest) Validate() error {
	return validate.Struct(r)
}

// AnalyzeResponse acknowledges an asynchronous analysis.
type AnalyzeResponse struct {
	ResumeID string `json:"resume_id"`
	Status   string `json:"status"`
	Message  string `json:"message"`
}

// MatchRequest compares one résumé against one job description.
// Compliance and Quality are computed from ResumeText when omitted.
type MatchRequest struct {
	ResumeText string   `json:"resume_text" validate:"required"`
	JDText     string   `json:"jd_text" validate:"required"`
	Skills     []string `json:"skills,omitempty"`
	Compliance *float64 `json:"ats_score,omitempty" validate:"omitempty,gte=0,lte=100"`
	Quality    *float64 `json:"quality_score,omitempty" validate:"omitempty,gte=0,lte=100"`
}

// Validate validates the MatchRequest using the validator.
func (r *MatchRequest) Validate() error {
	return validate.Struct(r)
}

// RankRequest ranks a batch of candidates against one job description.
type RankRequest struct {
	JDText     string      `json:"jd_text" validate:"required"`
	Candidates []Candidate `json:"candidates" validate:"required,min=1,max=200,dive"`
}

// Validate validates the RankRequest using the validator.
func (r *RankRequest) Validate() error {
	return validate.Struct(r)
}

// RankResponse carries a ranked batch.
type RankResponse struct {
	BatchID string        `json:"batch_id"`
	Results []RankedMatch `json:"results"`
}
