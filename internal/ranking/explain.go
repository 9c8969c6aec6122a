package ranking

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/resume-scorer/internal/types"
)

//nolint:gochecknoglobals // read-only table
var factorLabels = map[string]string{
	types.FactorSimilarity: "job description similarity",
	types.FactorATS:        "ATS compatibility",
	types.FactorQuality:    "resume quality",
	types.FactorKeywords:   "keyword coverage",
}

// Explain summarises a hiring estimate: the factor that contributed most,
// the weakest factor and how many job keywords were matched.
func Explain(estimate types.HiringEstimate, match types.MatchResult) string {
	factors := make([]string, 0, len(estimate.Explanation))
	for name := range estimate.Explanation {
		factors = append(factors, name)
	}
	if len(factors) == 0 {
		return "No factors available"
	}
	sort.Strings(factors)
	sort.SliceStable(factors, func(i, j int) bool {
		return estimate.Explanation[factors[i]] > estimate.Explanation[factors[j]]
	})

	var parts []string
	top := factors[0]
	parts = append(parts, fmt.Sprintf("Strongest factor: %s (+%.4f)", label(top), estimate.Explanation[top]))
	if len(factors) > 1 {
		weakest := factors[len(factors)-1]
		parts = append(parts, fmt.Sprintf("Weakest factor: %s (+%.4f)", label(weakest), estimate.Explanation[weakest]))
	}

	switch {
	case len(match.JDKeywords) == 0:
		parts = append(parts, "No job keywords extracted")
	case len(match.SkillGaps) == 0:
		parts = append(parts, fmt.Sprintf("All %d job keywords matched", len(match.JDKeywords)))
	default:
		parts = append(parts, fmt.Sprintf("%d of %d job keywords matched, top gap: %s",
			len(match.MatchedKeywords), len(match.JDKeywords), match.SkillGaps[0]))
	}

	return strings.Join(parts, ". ")
}

func label(factor string) string {
	if l, ok := factorLabels[factor]; ok {
		return l
	}
	return factor
}
