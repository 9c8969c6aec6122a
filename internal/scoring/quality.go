package scoring

import (
	"math"
	"strings"

	"github.com/jonathan/resume-scorer/internal/types"
)

const (
	qualityComponentCap = 25.0
	fullSkillCount      = 15.0
	errorPenalty        = 4
	warningPenalty      = 2
)

// Strength thresholds, evaluated highest first.
const (
	ExcellentThreshold = 80.0
	StrongThreshold    = 60.0
	AverageThreshold   = 40.0
)

// coverageSections are the sections counted for quality coverage.
//
//nolint:gochecknoglobals // read-only table
var coverageSections = []types.Section{
	types.SectionContact,
	types.SectionSummary,
	types.SectionExperience,
	types.SectionEducation,
	types.SectionSkills,
	types.SectionProjects,
	types.SectionCertifications,
}

// QualityScore blends skill richness, grammar, section coverage and the compliance score (0-100).
// A document with no words scores 0.
func QualityScore(
	text string,
	sectionMap types.SectionMap,
	grammarIssues []types.GrammarIssue,
	skills []string,
	complianceScore float64,
) float64 {
	if strings.TrimSpace(text) == "" {
		return 0
	}

	skillScore := math.Min(float64(len(skills))/fullSkillCount*qualityComponentCap, qualityComponentCap)

	errors := types.CountBySeverity(grammarIssues, types.SeverityError)
	warnings := types.CountBySeverity(grammarIssues, types.SeverityWarning)
	grammarScore := math.Max(0, qualityComponentCap-float64(errors*errorPenalty+warnings*warningPenalty))

	covered := 0
	for _, s := range coverageSections {
		if sectionMap.Has(s) {
			covered++
		}
	}
	sectionScore := float64(covered) / float64(len(coverageSections)) * qualityComponentCap

	complianceContribution := complianceScore / 100 * qualityComponentCap

	total := skillScore + grammarScore + sectionScore + complianceContribution
	return Round(Clamp(total, 0, 100), 2)
}

// ClassifyStrength maps a quality score to its tier.
func ClassifyStrength(quality float64) types.Strength {
	switch {
	case quality >= ExcellentThreshold:
		return types.StrengthExcellent
	case quality >= StrongThreshold:
		return types.StrengthStrong
	case quality >= AverageThreshold:
		return types.StrengthAverage
	default:
		return types.StrengthWeak
	}
}
