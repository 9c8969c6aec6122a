// Package ingestion turns uploaded documents into clean plain text.
package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode"
)

//nolint:gochecknoglobals // compiled once
var (
	inlineSpace  = regexp.MustCompile(`[ \t]+`)
	blankLineRun = regexp.MustCompile(`\n{3,}`)
)

// invisible runes are dropped; extractors leave them behind around ligatures
// and hyphenation points.
//
//nolint:gochecknoglobals // read-only table
var invisible = strings.NewReplacer(
	"\u00ad", "", // soft hyphen
	"\u200b", "", // zero-width space
	"\u200c", "",
	"\u200d", "",
	"\ufeff", "", // byte order mark
)

// CleanText normalises extracted document text while keeping its line
// structure: line endings become LF, page breaks become blank lines,
// invisible and control characters are dropped, runs of spaces collapse
// and at most one blank line separates blocks. Leading indentation is kept.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.NewReplacer("\r", "\n", "\f", "\n\n", "\u00a0", " ", "\u2028", "\n").Replace(content)
	content = invisible.Replace(content)

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = cleanLine(line)
	}

	result := blankLineRun.ReplaceAllString(strings.Join(lines, "\n"), "\n\n")
	return strings.TrimSpace(result)
}

// cleanLine drops control characters and collapses inner whitespace,
// keeping the line's indentation.
func cleanLine(line string) string {
	line = strings.Map(func(r rune) rune {
		if r == '\t' || !unicode.IsControl(r) {
			return r
		}
		return -1
	}, line)

	body := strings.TrimLeft(line, " \t")
	if strings.TrimSpace(body) == "" {
		return ""
	}
	indent := strings.Repeat(" ", len(line)-len(body))
	return indent + inlineSpace.ReplaceAllString(strings.TrimRight(body, " \t"), " ")
}

// Fingerprint returns the SHA256 hex digest of content.
func Fingerprint(content string) string {
	hash := sha256.Sum256([]byte(content))
	return hex.EncodeToString(hash[:])
}

// FormatFromPath derives the extraction format from a file extension.
func FormatFromPath(path string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	switch ext {
	case "htm":
		return FormatHTML
	case "md", "":
		return FormatText
	}
	return ext
}

// ReadFile reads a document from disk and returns its cleaned text.
// An empty format is derived from the file extension.
func ReadFile(path, format string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("file not found: %w", err)
		}
		return "", fmt.Errorf("failed to read file: %w", err)
	}

	if format == "" {
		format = FormatFromPath(path)
	}
	return Extract(content, format)
}
