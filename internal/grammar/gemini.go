package grammar

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/jonathan/resume-scorer/internal/llm"
	"github.com/jonathan/resume-scorer/internal/logger"
	"github.com/jonathan/resume-scorer/internal/prompts"
	"github.com/jonathan/resume-scorer/internal/types"
)

const providerGemini = "gemini"

// Gemini proofreads text with a Gemini model.
type Gemini struct {
	Client    llm.Client
	Tier      llm.ModelTier
	Language  string
	MaxIssues int
}

type geminiIssue struct {
	RuleID       string   `json:"rule_id"`
	Category     string   `json:"category"`
	Message      string   `json:"message"`
	Offset       int      `json:"offset"`
	Length       int      `json:"length"`
	Context      string   `json:"context"`
	Replacements []string `json:"replacements"`
}

// Check implements Checker.
func (g *Gemini) Check(ctx context.Context, text string) ([]types.GrammarIssue, error) {
	if strings.TrimSpace(text) == "" {
		return []types.GrammarIssue{}, nil
	}

	language := g.Language
	if language == "" {
		language = DefaultLanguage
	}
	maxIssues := g.MaxIssues
	if maxIssues <= 0 {
		maxIssues = DefaultMaxIssues
	}

	prompt, err := prompts.Render("grammar.json", "proofread", map[string]string{
		"Language":  language,
		"MaxIssues": strconv.Itoa(maxIssues),
		"Text":      text,
	})
	if err != nil {
		return nil, &CheckError{Provider: providerGemini, Message: "failed to build prompt", Cause: err}
	}

	raw, err := g.Client.GenerateJSON(ctx, prompt, g.Tier)
	if err != nil {
		return nil, &CheckError{Provider: providerGemini, Message: "generation failed", Cause: err}
	}

	var parsed []geminiIssue
	if err := json.Unmarshal([]byte(llm.CleanJSONBlock(raw)), &parsed); err != nil {
		return nil, &CheckError{
			Provider: providerGemini,
			Message:  fmt.Sprintf("failed to parse response %q", logger.TruncateForLog(raw, 120)),
			Cause:    err,
		}
	}

	issues := make([]types.GrammarIssue, 0, len(parsed))
	for _, p := range parsed {
		ruleID := strings.ToUpper(strings.TrimSpace(p.RuleID))
		// Fold the category in so severity classification sees it
		if cat := strings.ToUpper(strings.TrimSpace(p.Category)); cat != "" && !strings.Contains(ruleID, cat) {
			ruleID = cat + "_" + ruleID
		}
		issues = append(issues, types.GrammarIssue{
			RuleID:      strings.Trim(ruleID, "_"),
			Message:     p.Message,
			Context:     p.Context,
			Offset:      p.Offset,
			Length:      p.Length,
			Suggestions: p.Replacements,
		})
	}
	return finalize(issues, maxIssues), nil
}
