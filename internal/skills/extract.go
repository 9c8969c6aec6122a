// Package skills extracts skill mentions from résumé text.
package skills

import (
	"context"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Extractor finds skills in plain text. Results are deduplicated
// case-insensitively and keep the casing of their first occurrence.
type Extractor interface {
	Extract(ctx context.Context, text string) ([]string, error)
}

// VocabularyExtractor matches a fixed phrase vocabulary against text,
// case-insensitively and on word boundaries.
type VocabularyExtractor struct {
	phrases []string // lowercased
}

// NewVocabularyExtractor builds an extractor over vocab.
// A nil vocab uses the embedded default.
func NewVocabularyExtractor(vocab []string) *VocabularyExtractor {
	if vocab == nil {
		vocab = DefaultVocabulary()
	}
	phrases := make([]string, 0, len(vocab))
	for _, v := range cleanVocabulary(vocab) {
		phrases = append(phrases, strings.ToLower(v))
	}
	return &VocabularyExtractor{phrases: phrases}
}

// Extract implements Extractor. The result is sorted case-insensitively.
func (e *VocabularyExtractor) Extract(ctx context.Context, text string) ([]string, error) {
	if strings.TrimSpace(text) == "" {
		return []string{}, nil
	}

	lower := strings.ToLower(text)
	// Surface casing is only recoverable when lowering kept byte offsets.
	sameOffsets := lowerKeepsOffsets(text)

	var found []string
	for _, phrase := range e.phrases {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		idx := indexOnBoundary(lower, phrase)
		if idx < 0 {
			continue
		}
		if sameOffsets {
			found = append(found, text[idx:idx+len(phrase)])
		} else {
			found = append(found, phrase)
		}
	}

	found = Dedupe(found)
	sort.SliceStable(found, func(i, j int) bool {
		return strings.ToLower(found[i]) < strings.ToLower(found[j])
	})
	return found, nil
}

// indexOnBoundary returns the first index of phrase in s that is not
// glued to a neighbouring letter or digit, or -1.
func indexOnBoundary(s, phrase string) int {
	offset := 0
	for {
		i := strings.Index(s[offset:], phrase)
		if i < 0 {
			return -1
		}
		start := offset + i
		end := start + len(phrase)
		if boundaryBefore(s, start) && boundaryAfter(s, end) {
			return start
		}
		_, size := utf8.DecodeRuneInString(s[start:])
		offset = start + size
	}
}

// lowerKeepsOffsets reports whether lowering s leaves every rune at the same
// byte width, so offsets into strings.ToLower(s) are offsets into s.
func lowerKeepsOffsets(s string) bool {
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if utf8.RuneLen(unicode.ToLower(r)) != size {
			return false
		}
		i += size
	}
	return true
}

func boundaryBefore(s string, i int) bool {
	if i == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(s[:i])
	return !isWordRune(r)
}

func boundaryAfter(s string, i int) bool {
	if i >= len(s) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(s[i:])
	return !isWordRune(r)
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}
