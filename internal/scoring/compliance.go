package scoring

import (
	"math"
	"regexp"
	"strings"

	"github.com/jonathan/resume-scorer/internal/sections"
	"github.com/jonathan/resume-scorer/internal/types"
)

// Sub-score caps of the compliance score.
const (
	sectionCap = 35.0
	bulletCap  = 20.0
	verbCap    = 20.0
	metricCap  = 15.0
	lengthCap  = 10.0
)

const (
	requiredSectionPoints = 30.0
	bonusSectionPoints    = 2.5
	maxBonusSections      = 2

	wordsPerBullet = 20.0
	targetVerbs    = 8.0
	targetMetrics  = 5.0

	// OptimalMinWords and OptimalMaxWords bound the full-credit length range.
	OptimalMinWords = 350
	OptimalMaxWords = 900
)

//nolint:gochecknoglobals // read-only tables
var (
	// RequiredSections must be present for full section credit.
	RequiredSections = []types.Section{
		types.SectionContact,
		types.SectionSummary,
		types.SectionExperience,
		types.SectionEducation,
		types.SectionSkills,
	}

	bonusSections = []types.Section{
		types.SectionProjects,
		types.SectionCertifications,
		types.SectionAwards,
	}

	bulletGlyphs = []string{"•", "-", "*", "·", "▪", "–", "○", "►"}

	actionVerbs = map[string]bool{
		"achieved": true, "built": true, "created": true, "delivered": true, "designed": true,
		"developed": true, "drove": true, "engineered": true, "established": true, "executed": true,
		"generated": true, "implemented": true, "improved": true, "increased": true, "launched": true,
		"led": true, "managed": true, "optimized": true, "oversaw": true, "planned": true,
		"produced": true, "reduced": true, "resolved": true, "shipped": true, "streamlined": true,
		"transformed": true, "utilized": true, "validated": true, "architected": true, "automated": true,
		"collaborated": true, "coordinated": true, "contributed": true, "deployed": true, "enhanced": true,
		"facilitated": true, "handled": true, "identified": true, "integrated": true, "maintained": true,
		"mentored": true, "migrated": true, "monitored": true, "negotiated": true, "operated": true,
		"owned": true, "partnered": true, "prioritized": true, "refactored": true, "scaled": true,
	}

	metricPattern = regexp.MustCompile(
		`(?i)\b(\d+[.,]?\d*\s*(%|percent|x|times|million|billion|k\b|hrs?|hours?|\$)|\$\s*\d+)`,
	)
)

// ComplianceComponents is the per-criterion breakdown of the compliance score.
type ComplianceComponents struct {
	Sections    float64 `json:"sections"`
	Bullets     float64 `json:"bullets"`
	ActionVerbs float64 `json:"action_verbs"`
	Metrics     float64 `json:"metrics"`
	Length      float64 `json:"length"`
}

// Total sums the components, rounds to two decimals and clamps to [0,100].
func (c ComplianceComponents) Total() float64 {
	sum := c.Sections + c.Bullets + c.ActionVerbs + c.Metrics + c.Length
	return Round(Clamp(sum, 0, 100), 2)
}

// ComplianceScore estimates how well the text would pass automated screening (0-100).
func ComplianceScore(text string, sectionMap types.SectionMap) float64 {
	return ComplianceBreakdown(text, sectionMap).Total()
}

// ComplianceBreakdown computes each compliance criterion separately.
func ComplianceBreakdown(text string, sectionMap types.SectionMap) ComplianceComponents {
	words := strings.Fields(text)
	wordCount := len(words)

	return ComplianceComponents{
		Sections:    sectionPresenceScore(sectionMap),
		Bullets:     bulletScore(text, wordCount),
		ActionVerbs: actionVerbScore(words),
		Metrics:     metricScore(text),
		Length:      LengthScore(wordCount),
	}
}

func sectionPresenceScore(m types.SectionMap) float64 {
	required := 0
	for _, s := range RequiredSections {
		if m.Has(s) {
			required++
		}
	}
	bonus := 0
	for _, s := range bonusSections {
		if m.Has(s) {
			bonus++
		}
	}

	score := float64(required) / float64(len(RequiredSections)) * requiredSectionPoints
	score += float64(min(bonus, maxBonusSections)) * bonusSectionPoints
	return math.Min(score, sectionCap)
}

func bulletScore(text string, wordCount int) float64 {
	lines := 0
	for _, line := range sections.SplitLines(text) {
		if isBulletLine(line) {
			lines++
		}
	}
	expected := math.Max(float64(wordCount)/wordsPerBullet, 1)
	return math.Min(float64(lines)/expected*bulletCap, bulletCap)
}

// isBulletLine checks if a line starts with a bullet glyph
func isBulletLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	for _, g := range bulletGlyphs {
		if strings.HasPrefix(trimmed, g) {
			return true
		}
	}
	return false
}

func actionVerbScore(words []string) float64 {
	seen := make(map[string]bool)
	for _, w := range words {
		lw := strings.Trim(strings.ToLower(w), ".,;:")
		if actionVerbs[lw] {
			seen[lw] = true
		}
	}
	return math.Min(float64(len(seen))/targetVerbs*verbCap, verbCap)
}

func metricScore(text string) float64 {
	count := len(metricPattern.FindAllStringIndex(text, -1))
	return math.Min(float64(count)/targetMetrics*metricCap, metricCap)
}

// LengthScore rewards word counts inside [OptimalMinWords, OptimalMaxWords].
// Shorter documents scale up linearly from zero; longer ones decay to zero at
// twice the upper bound.
func LengthScore(wordCount int) float64 {
	switch {
	case wordCount >= OptimalMinWords && wordCount <= OptimalMaxWords:
		return lengthCap
	case wordCount < OptimalMinWords:
		return math.Max(0, float64(wordCount)/OptimalMinWords*lengthCap)
	default:
		overage := float64(wordCount-OptimalMaxWords) / OptimalMaxWords
		return math.Max(0, lengthCap-overage*lengthCap)
	}
}
