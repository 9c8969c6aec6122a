package sections

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-scorer/internal/types"
)

// headingPhrasings lists the heading variants recognised for each section.
//
//nolint:gochecknoglobals // read-only table
var headingPhrasings = map[types.Section][]string{
	types.SectionContact: {
		`contact(\s+information)?`,
		`personal(\s+details)?`,
		`(phone|email|linkedin|github)`,
	},
	types.SectionSummary: {
		`(professional\s+)?summary`,
		`objective`,
		`profile`,
		`about(\s+me)?`,
		`career\s+objective`,
	},
	types.SectionExperience: {
		`(work|professional|employment)(\s+history|\s+experience)?`,
		`experience`,
		`positions?(\s+held)?`,
		`career(\s+history)?`,
	},
	types.SectionEducation: {
		`education(al\s+background)?`,
		`academic(\s+background|\s+qualifications)?`,
		`qualifications?`,
		`degrees?`,
	},
	types.SectionSkills: {
		`(technical\s+)?skills?`,
		`core\s+competencies`,
		`competencies`,
		`technologies`,
		`expertise`,
		`proficiencies`,
	},
	types.SectionProjects: {
		`projects?`,
		`personal\s+projects?`,
		`side\s+projects?`,
		`portfolio`,
	},
	types.SectionCertifications: {
		`certifications?`,
		`licenses?(\s+&\s+certifications?)?`,
		`credentials?`,
		`courses?(\s+&\s+certifications?)?`,
	},
	types.SectionAwards: {
		`awards?`,
		`honors?`,
		`achievements?`,
		`accomplishments?`,
	},
	types.SectionLanguages: {
		`languages?`,
		`spoken\s+languages?`,
	},
	types.SectionPublications: {
		`publications?`,
		`research`,
		`papers?`,
	},
}

// headingPattern holds the compiled whole-line and anywhere forms of one section's phrasings.
type headingPattern struct {
	section  types.Section
	full     *regexp.Regexp
	anywhere *regexp.Regexp
}

// compiledHeadings is ordered like types.AllSections.
//
//nolint:gochecknoglobals // compiled once, read-only afterwards
var compiledHeadings = compileHeadings()

func compileHeadings() []headingPattern {
	out := make([]headingPattern, 0, len(types.AllSections))
	for _, section := range types.AllSections {
		alts := make([]string, 0, len(headingPhrasings[section]))
		for _, p := range headingPhrasings[section] {
			alts = append(alts, "(?:"+p+")")
		}
		combined := strings.Join(alts, "|")
		out = append(out, headingPattern{
			section:  section,
			full:     regexp.MustCompile(`(?i)^(?:` + combined + `)$`),
			anywhere: regexp.MustCompile(`(?i)` + combined),
		})
	}
	return out
}
