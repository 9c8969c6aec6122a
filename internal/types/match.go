package types

// MatchResult compares one résumé against one job description.
type MatchResult struct {
	Similarity      float64  `json:"similarity_score"`
	MatchedKeywords []string `json:"matched_keywords"`
	SkillGaps       []string `json:"skill_gaps"`
	JDKeywords      []string `json:"jd_keywords"`
}

// EmptyMatch returns the all-zero result used for degenerate input.
func EmptyMatch() MatchResult {
	return MatchResult{
		Similarity:      0,
		MatchedKeywords: []string{},
		SkillGaps:       []string{},
		JDKeywords:      []string{},
	}
}

// Hiring factor names used in explanations.
const (
	FactorSimilarity = "jd_similarity"
	FactorATS        = "ats_score"
	FactorQuality    = "quality_score"
	FactorKeywords   = "keyword_match"
)

// HiringEstimate is a bounded hiring probability with per-factor contributions.
// Explanation values are computed before clamping, so they need not sum to Probability.
type HiringEstimate struct {
	Probability float64            `json:"probability"`
	Explanation map[string]float64 `json:"explanation"`
}

// RolePrediction is the best-matching role for a candidate.
type RolePrediction struct {
	Role         string         `json:"role"`
	Confidence   float64        `json:"confidence"`
	Alternatives []string       `json:"alternatives"`
	Scores       map[string]int `json:"scores"`
}

// Candidate is one résumé submitted for batch ranking.
type Candidate struct {
	ID         string   `json:"id" validate:"required"`
	Skills     []string `json:"skills"`
	Compliance float64  `json:"ats_score" validate:"gte=0,lte=100"`
	Quality    float64  `json:"quality_score" validate:"gte=0,lte=100"`
	Text       string   `json:"text" validate:"required"`
}

// RankedMatch is the scored result for one candidate in a batch.
type RankedMatch struct {
	CandidateID string         `json:"candidate_id"`
	Rank        int            `json:"rank"`
	Match       MatchResult    `json:"match"`
	Hiring      HiringEstimate `json:"hiring"`
	Role        RolePrediction `json:"role_prediction"`
	Anomalies   []string       `json:"anomalies"`
}

// MatchReport is the response for a single résumé/job-description comparison.
type MatchReport struct {
	MatchResult
	HiringProbability float64            `json:"hiring_probability"`
	Explanation       map[string]float64 `json:"explanation"`
	RankExplanation   string             `json:"rank_explanation"`
}
