package scoring

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-scorer/internal/types"
)

// InsightInput gathers what the insight rules look at.
type InsightInput struct {
	Compliance    float64
	Quality       float64
	Sections      types.SectionMap
	GrammarIssues []types.GrammarIssue
	Skills        []string
}

// insightRule appends at most one message.
type insightRule func(in InsightInput) (string, bool)

//nolint:gochecknoglobals // fixed rule order
var insightRules = []insightRule{
	complianceInsight,
	missingSectionsInsight,
	skillCountInsight,
	grammarInsight,
	overallInsight,
}

// BuildInsights runs every insight rule in order and collects the messages that fire.
func BuildInsights(in InsightInput) []string {
	insights := make([]string, 0, len(insightRules))
	for _, rule := range insightRules {
		if msg, ok := rule(in); ok {
			insights = append(insights, msg)
		}
	}
	return insights
}

func complianceInsight(in InsightInput) (string, bool) {
	switch {
	case in.Compliance >= 80:
		return "✅ Excellent ATS compatibility — your resume is highly machine-readable.", true
	case in.Compliance >= 60:
		return "🟡 Good ATS score. Add more quantified achievements to push higher.", true
	default:
		return "🔴 Low ATS score. Ensure key sections are present and use bullet points with action verbs.", true
	}
}

func missingSectionsInsight(in InsightInput) (string, bool) {
	var missing []string
	for _, s := range RequiredSections {
		if !in.Sections.Has(s) {
			missing = append(missing, s.Title())
		}
	}
	if len(missing) == 0 {
		return "", false
	}
	return "⚠️ Missing sections: " + strings.Join(missing, ", "), true
}

func skillCountInsight(in InsightInput) (string, bool) {
	switch n := len(in.Skills); {
	case n < 5:
		return "📌 Very few skills detected. Expand your Skills section with specific technologies.", true
	case n >= 15:
		return fmt.Sprintf("🌟 Strong skills profile — %d skills identified.", n), true
	}
	return "", false
}

func grammarInsight(in InsightInput) (string, bool) {
	switch n := types.CountBySeverity(in.GrammarIssues, types.SeverityError); {
	case n > 5:
		return fmt.Sprintf("✏️ %d grammar/spelling errors found. Proofread carefully before submitting.", n), true
	case n == 0:
		return "✅ No major grammar errors detected.", true
	}
	return "", false
}

func overallInsight(in InsightInput) (string, bool) {
	switch {
	case in.Quality >= 80:
		return "🏆 Your resume is in the top tier. Well done!", true
	case in.Quality < 40:
		return "📈 Significant improvements needed. Focus on completeness and quantifying impact.", true
	}
	return "", false
}
