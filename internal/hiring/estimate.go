// Package hiring estimates a bounded hiring probability from match and score signals.
package hiring

import (
	"math"

	"github.com/jonathan/resume-scorer/internal/scoring"
	"github.com/jonathan/resume-scorer/internal/types"
)

// Factor weights; they sum to 1.
const (
	WeightSimilarity = 0.35
	WeightATS        = 0.25
	WeightQuality    = 0.25
	WeightKeywords   = 0.15
)

// Probability bounds. The estimate never asserts certainty either way.
const (
	MinProbability = 0.02
	MaxProbability = 0.98
)

// Estimate combines similarity (0-1), compliance and quality (0-100) and the
// matched keyword ratio into a weighted probability clamped to
// [MinProbability, MaxProbability]. Explanation values are each factor's
// weighted contribution before clamping.
func Estimate(similarity, compliance, quality float64, matchedCount, totalJDKeywords int) types.HiringEstimate {
	atsNorm := compliance / 100
	qualityNorm := quality / 100
	keywordRatio := math.Min(float64(matchedCount)/float64(max(totalJDKeywords, 1)), 1)

	contributions := map[string]float64{
		types.FactorSimilarity: WeightSimilarity * similarity,
		types.FactorATS:        WeightATS * atsNorm,
		types.FactorQuality:    WeightQuality * qualityNorm,
		types.FactorKeywords:   WeightKeywords * keywordRatio,
	}

	raw := contributions[types.FactorSimilarity] + contributions[types.FactorATS] +
		contributions[types.FactorQuality] + contributions[types.FactorKeywords]

	explanation := make(map[string]float64, len(contributions))
	for k, v := range contributions {
		explanation[k] = scoring.Round(v, 4)
	}

	return types.HiringEstimate{
		Probability: scoring.Round(scoring.Clamp(raw, MinProbability, MaxProbability), 4),
		Explanation: explanation,
	}
}
