// Package matching scores how closely a résumé matches a job description.
package matching

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-scorer/internal/scoring"
	"github.com/jonathan/resume-scorer/internal/types"
)

const (
	jdKeywordLimit = 30
	matchedLimit   = 20
	gapLimit       = 15
)

//nolint:gochecknoglobals // compiled once
var nonWord = regexp.MustCompile(`[^\p{L}\p{N}_\s]`)

// Preprocess lowercases text, replaces punctuation with spaces and collapses whitespace.
func Preprocess(text string) string {
	text = nonWord.ReplaceAllString(strings.ToLower(text), " ")
	return strings.Join(strings.Fields(text), " ")
}

// Match compares a résumé against a job description using TF-IDF cosine
// similarity over unigrams and bigrams fitted on the two texts.
// Degenerate input yields an empty result rather than an error.
func Match(resumeText, jdText string) types.MatchResult {
	resume := Preprocess(resumeText)
	jd := Preprocess(jdText)
	if resume == "" || jd == "" {
		return types.EmptyMatch()
	}

	space, ok := fit([]string{resume, jd})
	if !ok {
		return types.EmptyMatch()
	}

	similarity := scoring.Round(scoring.Clamp(space.cosine(0, 1), 0, 1), 4)
	keywords := space.topTerms(1, jdKeywordLimit)

	resumeWords := make(map[string]bool)
	for _, w := range strings.Fields(resume) {
		resumeWords[w] = true
	}

	matched := make([]string, 0, len(keywords))
	gaps := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		if containsAllWords(resumeWords, kw) {
			matched = append(matched, kw)
		} else {
			gaps = append(gaps, kw)
		}
	}

	return types.MatchResult{
		Similarity:      similarity,
		MatchedKeywords: truncate(matched, matchedLimit),
		SkillGaps:       truncate(gaps, gapLimit),
		JDKeywords:      keywords,
	}
}

// containsAllWords reports whether every word of a keyword appears in the set.
// Bigram words need not be adjacent.
func containsAllWords(words map[string]bool, keyword string) bool {
	for _, w := range strings.Fields(keyword) {
		if !words[w] {
			return false
		}
	}
	return true
}

func truncate(items []string, limit int) []string {
	if len(items) > limit {
		return items[:limit]
	}
	return items
}
