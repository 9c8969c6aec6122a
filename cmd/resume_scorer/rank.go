package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-scorer/internal/ingestion"
	"github.com/jonathan/resume-scorer/internal/types"
)

var (
	rankJDFile         string
	rankCandidatesFile string
	rankOutputFile     string
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank a batch of candidates against a job description",
	Long:  "Rank the candidates in a JSON file (an array of {id, text, skills, ats_score, quality_score}) by estimated hiring probability.",
	RunE:  runRank,
}

func init() {
	rankCmd.Flags().StringVar(&rankJDFile, "jd", "", "Path to the job description file")
	rankCmd.Flags().StringVar(&rankCandidatesFile, "candidates", "", "Path to the candidates JSON file")
	rankCmd.Flags().StringVarP(&rankOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	_ = rankCmd.MarkFlagRequired("jd")
	_ = rankCmd.MarkFlagRequired("candidates")
	rootCmd.AddCommand(rankCmd)
}

func runRank(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log, err := newLogger(cfg, "stderr")
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	jdText, err := ingestion.ReadFile(rankJDFile, "")
	if err != nil {
		return err
	}
	data, err := os.ReadFile(rankCandidatesFile)
	if err != nil {
		return fmt.Errorf("failed to read candidates file: %w", err)
	}

	req := types.RankRequest{JDText: jdText}
	if err := json.Unmarshal(data, &req.Candidates); err != nil {
		return fmt.Errorf("failed to parse candidates: %w", err)
	}
	if err := req.Validate(); err != nil {
		return fmt.Errorf("invalid candidates: %w", err)
	}

	analyzer, closeGrammar, err := newAnalyzer(cmd.Context(), cfg, log)
	defer func() { _ = closeGrammar() }()
	if err != nil {
		return err
	}

	results, err := analyzer.Rank(cmd.Context(), req.JDText, req.Candidates)
	if err != nil {
		return err
	}
	return writeJSON(cmd.OutOrStdout(), rankOutputFile, types.RankResponse{
		BatchID: uuid.NewString(),
		Results: results,
	})
}
