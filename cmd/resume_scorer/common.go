package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/jonathan/resume-scorer/internal/analysis"
	"github.com/jonathan/resume-scorer/internal/config"
	"github.com/jonathan/resume-scorer/internal/grammar"
	"github.com/jonathan/resume-scorer/internal/logger"
	"github.com/jonathan/resume-scorer/internal/skills"
)

// loadConfig reads configuration and applies the global logging flags.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	cfg.Log.JSON = cfg.Log.JSON || logJSON
	cfg.Log.Debug = cfg.Log.Debug || logDebug
	return cfg, nil
}

// newLogger builds the logger for cfg. CLI commands log to stderr so that
// stdout carries only results.
func newLogger(cfg *config.Config, output string) (*zap.Logger, error) {
	log, err := logger.NewTo(output, cfg.Log.JSON, cfg.Log.Debug)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return log, nil
}

// newAnalyzer wires the configured grammar provider into an Analyzer. The
// returned close function is never nil.
func newAnalyzer(ctx context.Context, cfg *config.Config, log *zap.Logger) (*analysis.Analyzer, func() error, error) {
	checker, closeFn, err := grammar.New(ctx, grammar.Options{
		Provider:        cfg.Grammar.Provider,
		LanguageToolURL: cfg.Grammar.LanguageToolURL,
		Language:        cfg.Grammar.Language,
		MaxIssues:       cfg.Grammar.MaxIssues,
		GeminiAPIKey:    cfg.Gemini.APIKey,
		GeminiTier:      cfg.Gemini.ModelTier,
	}, log)
	if err != nil {
		return nil, closeFn, fmt.Errorf("failed to configure grammar provider: %w", err)
	}
	log.Debug("grammar provider configured", zap.String(logger.FieldGrammarProvider, cfg.Grammar.Provider))

	extractor, err := newSkillExtractor(cfg.Skills.VocabularyFile)
	if err != nil {
		return nil, closeFn, err
	}

	a := analysis.New(extractor, checker, log)
	a.Workers = cfg.Rank.Workers
	return a, closeFn, nil
}

// newSkillExtractor loads the vocabulary file when one is configured and
// otherwise uses the embedded vocabulary.
func newSkillExtractor(path string) (*skills.VocabularyExtractor, error) {
	if path == "" {
		return skills.NewVocabularyExtractor(nil), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read skills vocabulary: %w", err)
	}
	vocab, err := skills.LoadVocabulary(data)
	if err != nil {
		return nil, err
	}
	return skills.NewVocabularyExtractor(vocab), nil
}

// writeJSON writes v as indented JSON to path, or to w when path is empty.
func writeJSON(w io.Writer, path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	data = append(data, '\n')

	if path == "" {
		_, err = w.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
