// Package types provides type definitions for structured data used throughout the resume-scorer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Section names a résumé section recognised by the segmenter.
type Section string

// Known sections, in declared order. The order matters: heading patterns are
// tested in this order and detected names are reported in it.
const (
	SectionContact        Section = "contact"
	SectionSummary        Section = "summary"
	SectionExperience     Section = "experience"
	SectionEducation      Section = "education"
	SectionSkills         Section = "skills"
	SectionProjects       Section = "projects"
	SectionCertifications Section = "certifications"
	SectionAwards         Section = "awards"
	SectionLanguages      Section = "languages"
	SectionPublications   Section = "publications"
)

// AllSections lists every known section in declared order.
//
//nolint:gochecknoglobals // read-only table
var AllSections = []Section{
	SectionContact,
	SectionSummary,
	SectionExperience,
	SectionEducation,
	SectionSkills,
	SectionProjects,
	SectionCertifications,
	SectionAwards,
	SectionLanguages,
	SectionPublications,
}

// Title returns the section name with its first letter upper-cased.
func (s Section) Title() string {
	if s == "" {
		return ""
	}
	b := []byte(s)
	if b[0] >= 'a' && b[0] <= 'z' {
		b[0] -= 'a' - 'A'
	}
	return string(b)
}

// SectionMap maps every known section to its accumulated text.
// A nil value means the heading was never seen.
type SectionMap map[Section]*string

// NewSectionMap returns a map with every known section set to nil.
func NewSectionMap() SectionMap {
	m := make(SectionMap, len(AllSections))
	for _, s := range AllSections {
		m[s] = nil
	}
	return m
}

// Text returns the section text, or "" when the section is absent.
func (m SectionMap) Text(s Section) string {
	if v := m[s]; v != nil {
		return *v
	}
	return ""
}

// Has reports whether the section was found with non-empty text.
func (m SectionMap) Has(s Section) bool {
	return m.Text(s) != ""
}

// Presence returns a flag per known section.
func (m SectionMap) Presence() map[Section]bool {
	out := make(map[Section]bool, len(AllSections))
	for _, s := range AllSections {
		out[s] = m.Has(s)
	}
	return out
}
