package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-scorer/internal/analysis"
	"github.com/jonathan/resume-scorer/internal/ingestion"
)

var (
	matchResumeFile string
	matchJDFile     string
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Compare a résumé with a job description",
	Long:  "Compute keyword similarity, skill gaps and a hiring probability estimate for one résumé against one job description.",
	RunE:  runMatch,
}

func init() {
	matchCmd.Flags().StringVar(&matchResumeFile, "resume", "", "Path to the résumé file")
	matchCmd.Flags().StringVar(&matchJDFile, "jd", "", "Path to the job description file")
	_ = matchCmd.MarkFlagRequired("resume")
	_ = matchCmd.MarkFlagRequired("jd")
	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log, err := newLogger(cfg, "stderr")
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	resumeText, err := ingestion.ReadFile(matchResumeFile, "")
	if err != nil {
		return err
	}
	jdText, err := ingestion.ReadFile(matchJDFile, "")
	if err != nil {
		return err
	}

	report, err := analysis.New(nil, nil, log).Match(cmd.Context(), analysis.MatchInput{
		ResumeText: resumeText,
		JDText:     jdText,
	})
	if err != nil {
		return err
	}
	return writeJSON(cmd.OutOrStdout(), "", report)
}
