package grammar

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jonathan/resume-scorer/internal/types"
)

const (
	providerLanguageTool = "languagetool"
	defaultLTTimeout     = 30 * time.Second
)

// LanguageTool checks text against a LanguageTool HTTP server (/v2/check).
type LanguageTool struct {
	BaseURL    string
	Language   string
	MaxIssues  int
	HTTPClient *http.Client
}

// NewLanguageTool creates a checker for the server at baseURL.
func NewLanguageTool(baseURL, language string, maxIssues int) *LanguageTool {
	if language == "" {
		language = DefaultLanguage
	}
	return &LanguageTool{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		Language:   language,
		MaxIssues:  maxIssues,
		HTTPClient: &http.Client{Timeout: defaultLTTimeout},
	}
}

type ltResponse struct {
	Matches []ltMatch `json:"matches"`
}

type ltMatch struct {
	Message      string `json:"message"`
	Offset       int    `json:"offset"`
	Length       int    `json:"length"`
	Replacements []struct {
		Value string `json:"value"`
	} `json:"replacements"`
	Context struct {
		Text string `json:"text"`
	} `json:"context"`
	Rule struct {
		ID string `json:"id"`
	} `json:"rule"`
}

// Check implements Checker.
func (lt *LanguageTool) Check(ctx context.Context, text string) ([]types.GrammarIssue, error) {
	if strings.TrimSpace(text) == "" {
		return []types.GrammarIssue{}, nil
	}

	form := url.Values{}
	form.Set("text", text)
	form.Set("language", lt.Language)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, lt.BaseURL+"/v2/check", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, &CheckError{Provider: providerLanguageTool, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	client := lt.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, &CheckError{Provider: providerLanguageTool, Message: "request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &CheckError{
			Provider: providerLanguageTool,
			Message:  fmt.Sprintf("HTTP status %d: %s", resp.StatusCode, strings.TrimSpace(string(body))),
		}
	}

	var parsed ltResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, &CheckError{Provider: providerLanguageTool, Message: "failed to decode response", Cause: err}
	}

	issues := make([]types.GrammarIssue, 0, len(parsed.Matches))
	for _, m := range parsed.Matches {
		suggestions := make([]string, 0, len(m.Replacements))
		for _, r := range m.Replacements {
			suggestions = append(suggestions, r.Value)
		}
		issues = append(issues, types.GrammarIssue{
			RuleID:      m.Rule.ID,
			Message:     m.Message,
			Context:     m.Context.Text,
			Offset:      m.Offset,
			Length:      m.Length,
			Suggestions: suggestions,
		})
	}
	return finalize(issues, lt.MaxIssues), nil
}
