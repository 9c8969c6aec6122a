package skills

import "strings"

// skillNormalizations maps common skill name variants to canonical names
//
//nolint:gochecknoglobals // read-only table
var skillNormalizations = map[string]string{
	"golang":     "Go",
	"go lang":    "Go",
	"javascript": "JavaScript",
	"js":         "JavaScript",
	"typescript": "TypeScript",
	"ts":         "TypeScript",
	"k8s":        "Kubernetes",
	"kubernetes": "Kubernetes",
	"react.js":   "React",
	"reactjs":    "React",
	"vue.js":     "Vue.js",
	"vuejs":      "Vue.js",
	"node.js":    "Node.js",
	"nodejs":     "Node.js",
	"postgres":   "PostgreSQL",
	"postgresql": "PostgreSQL",
	"sklearn":    "scikit-learn",
}

// NormalizeSkillName normalizes a skill name to its canonical form
func NormalizeSkillName(skillName string) string {
	normalized := strings.TrimSpace(skillName)
	if normalized == "" {
		return ""
	}

	lower := strings.ToLower(normalized)
	if canonical, ok := skillNormalizations[lower]; ok {
		return canonical
	}

	// Mixed case is assumed deliberate (e.g. "PyTorch")
	if normalized != strings.ToUpper(normalized) && normalized != lower {
		return normalized
	}

	// All lowercase single word: capitalize first letter
	if normalized == lower && !strings.Contains(normalized, " ") {
		return strings.ToUpper(normalized[:1]) + normalized[1:]
	}

	return normalized
}

// Dedupe removes case-insensitive duplicates, keeping the first spelling.
func Dedupe(skills []string) []string {
	out := make([]string, 0, len(skills))
	seen := make(map[string]bool, len(skills))
	for _, s := range skills {
		s = strings.TrimSpace(s)
		key := strings.ToLower(s)
		if s == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, s)
	}
	return out
}

// Canonicalize normalizes every skill name and deduplicates the result.
func Canonicalize(skills []string) []string {
	normalized := make([]string, 0, len(skills))
	for _, s := range skills {
		normalized = append(normalized, NormalizeSkillName(s))
	}
	return Dedupe(normalized)
}
