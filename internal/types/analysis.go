package types

// Strength is the discrete tier derived from the quality score.
type Strength string

// Strength tiers, lowest first.
const (
	StrengthWeak      Strength = "weak"
	StrengthAverage   Strength = "average"
	StrengthStrong    Strength = "strong"
	StrengthExcellent Strength = "excellent"
)

// Severity tags a grammar issue.
type Severity string

// Grammar issue severities.
const (
	SeverityError      Severity = "error"
	SeverityWarning    Severity = "warning"
	SeveritySuggestion Severity = "suggestion"
)

// GrammarIssue is a single finding from the grammar-check collaborator.
type GrammarIssue struct {
	RuleID      string   `json:"rule_id"`
	Message     string   `json:"message"`
	Context     string   `json:"context"`
	Offset      int      `json:"offset"`
	Length      int      `json:"length"`
	Suggestions []string `json:"suggestions"`
	Severity    Severity `json:"severity"`
}

// CountBySeverity returns how many issues carry the given severity.
func CountBySeverity(issues []GrammarIssue, sev Severity) int {
	n := 0
	for _, issue := range issues {
		if issue.Severity == sev {
			n++
		}
	}
	return n
}

// ScoreRecord holds the scores derived from one document.
type ScoreRecord struct {
	Compliance float64  `json:"ats_score"`
	Quality    float64  `json:"quality_score"`
	Strength   Strength `json:"strength"`
}

// RawResult carries auxiliary document statistics.
type RawResult struct {
	TextLength int              `json:"text_length"`
	Sections   map[Section]bool `json:"sections"`
}

// AnalysisResult is the record delivered for one analysed résumé.
type AnalysisResult struct {
	ResumeID         string         `json:"resume_id,omitempty"`
	ATSScore         float64        `json:"ats_score"`
	QualityScore     float64        `json:"quality_score"`
	Strength         Strength       `json:"strength"`
	ExtractedSkills  []string       `json:"extracted_skills"`
	GrammarIssues    []GrammarIssue `json:"grammar_issues"`
	SectionsDetected []Section      `json:"sections_detected"`
	WordCount        int            `json:"word_count"`
	Insights         []string       `json:"insights"`
	RolePrediction   RolePrediction `json:"role_prediction"`
	Anomalies        []string       `json:"anomalies"`
	RawResult        RawResult      `json:"raw_result"`
}
