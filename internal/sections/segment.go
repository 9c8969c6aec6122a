// Package sections splits résumé text into named sections by recognising heading lines.
package sections

import (
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-scorer/internal/types"
)

const (
	// maxHeadingLen is the longest line still considered a heading.
	maxHeadingLen = 60
	// looseHeadingLen bounds lines accepted on a partial pattern match.
	looseHeadingLen = 40
)

// Segment classifies the lines of text into sections.
// Text before the first heading is discarded. When a heading recurs only the
// text following its last occurrence is kept.
func Segment(text string) types.SectionMap {
	result := types.NewSectionMap()

	var current types.Section
	var buf []string

	flush := func() {
		if current == "" {
			return
		}
		joined := strings.TrimSpace(strings.Join(buf, "\n"))
		result[current] = &joined
	}

	for _, line := range SplitLines(text) {
		if heading, ok := classifyHeading(line); ok {
			flush()
			current = heading
			buf = buf[:0]
			continue
		}
		if current != "" {
			buf = append(buf, line)
		}
	}
	flush()

	return result
}

// DetectedNames returns the sections holding non-blank text, in declared order.
func DetectedNames(m types.SectionMap) []types.Section {
	out := make([]types.Section, 0, len(types.AllSections))
	for _, s := range types.AllSections {
		if strings.TrimSpace(m.Text(s)) != "" {
			out = append(out, s)
		}
	}
	return out
}

// classifyHeading reports which section, if any, the line is a heading for.
func classifyHeading(line string) (types.Section, bool) {
	stripped := strings.TrimSpace(line)
	n := utf8.RuneCountInString(stripped)
	if n == 0 || n > maxHeadingLen {
		return "", false
	}
	bare := strings.TrimSpace(strings.TrimRight(stripped, ":"))

	for _, p := range compiledHeadings {
		if p.full.MatchString(bare) {
			return p.section, true
		}
		if n < looseHeadingLen && p.anywhere.MatchString(stripped) {
			return p.section, true
		}
	}
	return "", false
}

// SplitLines splits text on every line boundary, including \r\n, lone \r and
// the Unicode separators. A trailing line break does not yield an empty line.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	var lines []string
	start := 0
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if isLineBreak(r) {
			lines = append(lines, text[start:i])
			next := i + size
			if r == '\r' && next < len(text) && text[next] == '\n' {
				next++
			}
			start = next
			i = next
			continue
		}
		i += size
	}
	if start < len(text) {
		lines = append(lines, text[start:])
	}
	return lines
}

func isLineBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', 0x1c, 0x1d, 0x1e, 0x85, 0x2028, 0x2029:
		return true
	}
	return false
}
