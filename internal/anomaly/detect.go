// Package anomaly flags suspicious résumé patterns.
package anomaly

import (
	"strings"

	"github.com/jonathan/resume-scorer/internal/types"
)

// Detect runs every rule and returns the warnings that fired, in rule order.
// A nil section map is treated as having no sections.
func Detect(text string, sectionMap types.SectionMap, wordCount int) []string {
	if sectionMap == nil {
		sectionMap = types.NewSectionMap()
	}
	in := Input{
		Text:      text,
		Lower:     strings.ToLower(text),
		Sections:  sectionMap,
		WordCount: wordCount,
	}

	warnings := []string{}
	for _, rule := range Rules() {
		if msg, ok := rule(in); ok {
			warnings = append(warnings, msg)
		}
	}
	return warnings
}
