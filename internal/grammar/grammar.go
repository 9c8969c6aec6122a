// Package grammar checks résumé text for spelling, grammar and style issues.
package grammar

import (
	"context"
	"strings"

	"github.com/jonathan/resume-scorer/internal/types"
)

const (
	// DefaultMaxIssues caps the issues returned for one document.
	DefaultMaxIssues = 50
	// MaxSuggestions caps the replacements kept per issue.
	MaxSuggestions = 3
	// DefaultLanguage is the checking locale.
	DefaultLanguage = "en-US"
)

// Checker finds grammar issues in plain text.
type Checker interface {
	Check(ctx context.Context, text string) ([]types.GrammarIssue, error)
}

// ignoredRules are cosmetic checks that do not indicate real errors.
//
//nolint:gochecknoglobals // read-only table
var ignoredRules = map[string]bool{
	"WHITESPACE_RULE":          true,
	"EN_QUOTES":                true,
	"SENTENCE_WHITESPACE":      true,
	"UPPERCASE_SENTENCE_START": true,
	"MORFOLOGIK_RULE_EN_US":    true,
}

// ClassifySeverity maps a rule identifier to a severity.
func ClassifySeverity(ruleID string) types.Severity {
	id := strings.ToUpper(ruleID)
	switch {
	case strings.Contains(id, "SPELL"), strings.Contains(id, "TYPO"):
		return types.SeverityError
	case strings.Contains(id, "GRAMMAR"), strings.Contains(id, "AGREEMENT"), strings.Contains(id, "TENSE"):
		return types.SeverityWarning
	default:
		return types.SeveritySuggestion
	}
}

// finalize drops ignored rules, fills severities, trims suggestions and caps the list.
func finalize(issues []types.GrammarIssue, maxIssues int) []types.GrammarIssue {
	if maxIssues <= 0 {
		maxIssues = DefaultMaxIssues
	}

	out := make([]types.GrammarIssue, 0, min(len(issues), maxIssues))
	for _, issue := range issues {
		if ignoredRules[issue.RuleID] {
			continue
		}
		issue.Severity = ClassifySeverity(issue.RuleID)
		if issue.Suggestions == nil {
			issue.Suggestions = []string{}
		}
		if len(issue.Suggestions) > MaxSuggestions {
			issue.Suggestions = issue.Suggestions[:MaxSuggestions]
		}
		out = append(out, issue)
		if len(out) == maxIssues {
			break
		}
	}
	return out
}

// Noop is a Checker that never reports issues.
type Noop struct{}

// Check implements Checker.
func (Noop) Check(context.Context, string) ([]types.GrammarIssue, error) {
	return []types.GrammarIssue{}, nil
}
