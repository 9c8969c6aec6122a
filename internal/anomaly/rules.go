package anomaly

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-scorer/internal/types"
)

const (
	maxWords          = 1200
	minWords          = 150
	stuffingMinCount  = 10
	stuffingMinLength = 5
	stuffingReported  = 3
)

//nolint:gochecknoglobals // compiled once
var (
	emailPattern    = regexp.MustCompile(`[\w.+-]+@[\w-]+\.\w+`)
	phonePattern    = regexp.MustCompile(`\+?\d[\d\s\-().]{7,}\d`)
	longWordPattern = regexp.MustCompile(`[\p{L}\p{N}_]{4,}`)
	yearPattern     = regexp.MustCompile(`\b(19|20)\d{2}\b`)

	stuffingIgnored = map[string]bool{
		"with": true, "that": true, "this": true, "from": true, "your": true,
		"have": true, "been": true, "will": true, "more": true, "also": true,
		"were": true, "they": true, "their": true, "about": true,
	}

	genericPhrases = []string{
		"seeking a challenging position",
		"looking for an opportunity",
		"hardworking and dedicated",
		"team player",
		"fast learner",
		"go-getter",
	}
)

// Input is what the anomaly rules inspect.
type Input struct {
	Text      string
	Lower     string
	Sections  types.SectionMap
	WordCount int
}

// Rule inspects a document and returns a warning when it fires.
type Rule func(in Input) (string, bool)

// Rules returns the anomaly checks in evaluation order.
func Rules() []Rule {
	return []Rule{
		MissingContact,
		TooLong,
		TooShort,
		KeywordStuffing,
		UndatedExperience,
		GenericPhrase,
		MissingProfiles,
	}
}

// MissingContact fires when neither an email address nor a phone number appears.
func MissingContact(in Input) (string, bool) {
	if emailPattern.MatchString(in.Text) || phonePattern.MatchString(in.Text) {
		return "", false
	}
	return "⚠️ No contact information (email or phone) detected.", true
}

// TooLong fires above the recruiter-friendly word count.
func TooLong(in Input) (string, bool) {
	if in.WordCount <= maxWords {
		return "", false
	}
	return fmt.Sprintf("📄 Resume is very long (%d words). Most recruiters prefer 400–800 words.", in.WordCount), true
}

// TooShort fires below the minimum useful word count.
func TooShort(in Input) (string, bool) {
	if in.WordCount >= minWords {
		return "", false
	}
	return fmt.Sprintf("📄 Resume seems very short (%d words). Consider adding more detail.", in.WordCount), true
}

// KeywordStuffing fires when at least three long words are heavily repeated.
// The first three such words in order of first appearance are reported.
func KeywordStuffing(in Input) (string, bool) {
	freq := make(map[string]int)
	var order []string
	for _, w := range longWordPattern.FindAllString(in.Lower, -1) {
		if stuffingIgnored[w] {
			continue
		}
		if freq[w] == 0 {
			order = append(order, w)
		}
		freq[w]++
	}

	var overused []string
	for _, w := range order {
		if freq[w] > stuffingMinCount && utf8.RuneCountInString(w) > stuffingMinLength {
			overused = append(overused, w)
		}
	}
	if len(overused) < stuffingReported {
		return "", false
	}
	return fmt.Sprintf("🔁 Possible keyword stuffing: '%s' appear excessively.",
		strings.Join(overused[:stuffingReported], ", ")), true
}

// UndatedExperience fires when the experience section has text but no year.
func UndatedExperience(in Input) (string, bool) {
	exp := in.Sections.Text(types.SectionExperience)
	if exp == "" || yearPattern.MatchString(exp) {
		return "", false
	}
	return "📅 No dates found in Experience section. Employment gaps may be hidden.", true
}

// GenericPhrase reports the first boilerplate phrase found.
func GenericPhrase(in Input) (string, bool) {
	for _, phrase := range genericPhrases {
		if strings.Contains(in.Lower, phrase) {
			return fmt.Sprintf("💬 Generic phrase detected: %q. Personalise your summary.", phrase), true
		}
	}
	return "", false
}

// MissingProfiles fires when neither LinkedIn nor GitHub is mentioned.
func MissingProfiles(in Input) (string, bool) {
	if strings.Contains(in.Lower, "linkedin") || strings.Contains(in.Lower, "github") {
		return "", false
	}
	return "🔗 No LinkedIn or GitHub profile URL detected.", true
}
