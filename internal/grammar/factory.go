package grammar

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jonathan/resume-scorer/internal/llm"
	"github.com/jonathan/resume-scorer/internal/logger"
)

// Provider names accepted in configuration.
const (
	ProviderNone         = "none"
	ProviderLanguageTool = providerLanguageTool
	ProviderGemini       = providerGemini
)

// Options selects and configures a grammar provider.
type Options struct {
	Provider        string
	LanguageToolURL string
	Language        string
	MaxIssues       int
	GeminiAPIKey    string
	GeminiTier      string
}

// New builds the configured checker wrapped with Safe. The returned close
// function releases provider resources and is never nil.
func New(ctx context.Context, opts Options, log *zap.Logger) (Checker, func() error, error) {
	noClose := func() error { return nil }

	switch opts.Provider {
	case "", ProviderNone:
		return Noop{}, noClose, nil

	case ProviderLanguageTool:
		if opts.LanguageToolURL == "" {
			return nil, noClose, fmt.Errorf("languagetool provider requires a server URL")
		}
		lt := NewLanguageTool(opts.LanguageToolURL, opts.Language, opts.MaxIssues)
		return Safe(lt, ProviderLanguageTool, log), noClose, nil

	case ProviderGemini:
		tier, err := llm.ParseTier(opts.GeminiTier)
		if err != nil {
			return nil, noClose, err
		}
		cfg := llm.DefaultConfig()
		client, err := llm.NewGeminiClient(ctx, cfg, opts.GeminiAPIKey)
		if err != nil {
			return nil, noClose, fmt.Errorf("failed to create gemini grammar checker: %w", err)
		}
		g := &Gemini{Client: client, Tier: tier, Language: opts.Language, MaxIssues: opts.MaxIssues}
		logger.OrNop(log).Info("grammar checker ready",
			zap.String(logger.FieldGrammarProvider, ProviderGemini),
			zap.String(logger.FieldModel, cfg.ModelFor(tier)),
		)
		return Safe(g, ProviderGemini, log), client.Close, nil
	}

	return nil, noClose, fmt.Errorf("unknown grammar provider %q", opts.Provider)
}
