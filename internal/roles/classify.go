// Package roles predicts the role category a résumé best fits.
package roles

import (
	"sort"
	"strings"

	"github.com/jonathan/resume-scorer/internal/scoring"
	"github.com/jonathan/resume-scorer/internal/types"
)

const (
	// DefaultRole is reported when no fingerprint keyword appears at all.
	DefaultRole       = "Software Engineer (General)"
	defaultConfidence = 0.30
	maxAlternatives   = 3
)

// Classify counts, per role, the fingerprint keywords found in the skills
// (case-insensitive) or anywhere in the text (substring), and picks the role
// with the highest count.
func Classify(skills []string, text string) types.RolePrediction {
	lowerSkills := make(map[string]bool, len(skills))
	for _, s := range skills {
		lowerSkills[strings.ToLower(s)] = true
	}
	lowerText := strings.ToLower(text)

	type roleScore struct {
		role  string
		count int
		size  int
	}
	ranked := make([]roleScore, len(fingerprints))
	scores := make(map[string]int, len(fingerprints))
	for i, fp := range fingerprints {
		n := 0
		for _, kw := range fp.keywords {
			if lowerSkills[kw] || strings.Contains(lowerText, kw) {
				n++
			}
		}
		ranked[i] = roleScore{role: fp.role, count: n, size: len(fp.keywords)}
		scores[fp.role] = n
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].count > ranked[j].count
	})

	if ranked[0].count == 0 {
		return types.RolePrediction{
			Role:         DefaultRole,
			Confidence:   defaultConfidence,
			Alternatives: []string{},
			Scores:       scores,
		}
	}

	best := ranked[0]
	confidence := scoring.Round(min(float64(best.count)/float64(max(best.size, 1)), 1), 4)

	alternatives := []string{}
	for _, rs := range ranked[1:min(1+maxAlternatives, len(ranked))] {
		if rs.count > 0 {
			alternatives = append(alternatives, rs.role)
		}
	}

	return types.RolePrediction{
		Role:         best.role,
		Confidence:   confidence,
		Alternatives: alternatives,
		Scores:       scores,
	}
}
