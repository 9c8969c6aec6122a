package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-scorer/internal/analysis"
	"github.com/jonathan/resume-scorer/internal/ingestion"
	"github.com/jonathan/resume-scorer/internal/schemas"
)

var (
	analyzeInputFile  string
	analyzeFormat     string
	analyzeOutputFile string
	analyzeResumeID   string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Score a résumé file",
	Long:  "Extract text from a résumé file, run the full analysis and print the result as JSON.",
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeInputFile, "in", "i", "", "Path to the résumé file")
	analyzeCmd.Flags().StringVarP(&analyzeFormat, "format", "f", "", "Document format: pdf, docx, html or txt (default: from extension)")
	analyzeCmd.Flags().StringVarP(&analyzeOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	analyzeCmd.Flags().StringVar(&analyzeResumeID, "id", "", "Résumé ID to include in the result")
	_ = analyzeCmd.MarkFlagRequired("in")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log, err := newLogger(cfg, "stderr")
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	text, err := ingestion.ReadFile(analyzeInputFile, analyzeFormat)
	if errors.Is(err, ingestion.ErrNoText) {
		return fmt.Errorf("%s contains no extractable text; the file may be scanned or image-based", analyzeInputFile)
	}
	if err != nil {
		return err
	}

	analyzer, closeGrammar, err := newAnalyzer(cmd.Context(), cfg, log)
	defer func() { _ = closeGrammar() }()
	if err != nil {
		return err
	}

	result, err := analyzer.Analyze(cmd.Context(), analysis.Input{ResumeID: analyzeResumeID, Text: text})
	if err != nil {
		return err
	}
	if err := schemas.ValidateAnalysisResult(result); err != nil {
		return fmt.Errorf("analysis result failed schema validation: %w", err)
	}
	return writeJSON(cmd.OutOrStdout(), analyzeOutputFile, result)
}
