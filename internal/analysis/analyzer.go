// Package analysis runs the résumé pipeline: segmentation, skill and grammar
// collaborators, scoring, insights, role prediction and anomaly detection.
package analysis

import (
	"context"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/jonathan/resume-scorer/internal/anomaly"
	"github.com/jonathan/resume-scorer/internal/grammar"
	"github.com/jonathan/resume-scorer/internal/hiring"
	"github.com/jonathan/resume-scorer/internal/logger"
	"github.com/jonathan/resume-scorer/internal/matching"
	"github.com/jonathan/resume-scorer/internal/ranking"
	"github.com/jonathan/resume-scorer/internal/roles"
	"github.com/jonathan/resume-scorer/internal/scoring"
	"github.com/jonathan/resume-scorer/internal/sections"
	"github.com/jonathan/resume-scorer/internal/skills"
	"github.com/jonathan/resume-scorer/internal/types"
)

// Analyzer wires the collaborators used by the pipeline. Nil collaborators
// fall back to the built-in vocabulary extractor and no grammar checking.
type Analyzer struct {
	Skills  skills.Extractor
	Grammar grammar.Checker
	Logger  *zap.Logger
	Workers int
}

// New creates an Analyzer with the given collaborators.
func New(extractor skills.Extractor, checker grammar.Checker, log *zap.Logger) *Analyzer {
	return &Analyzer{Skills: extractor, Grammar: checker, Logger: log}
}

// Input is one document to analyse.
type Input struct {
	ResumeID string
	Text     string
}

// MatchInput compares a résumé with a job description. Compliance and
// Quality are computed from ResumeText when nil. Caller-supplied Skills are
// canonicalized before scoring.
type MatchInput struct {
	ResumeText string
	JDText     string
	Skills     []string
	Compliance *float64
	Quality    *float64
}

// Analyze scores one résumé. Skill and grammar failures degrade to empty
// lists; only blank input is an error.
func (a *Analyzer) Analyze(ctx context.Context, in Input) (*types.AnalysisResult, error) {
	if strings.TrimSpace(in.Text) == "" {
		return nil, &InputError{Field: "text", Message: "text is empty"}
	}
	log := logger.WithResume(logger.OrNop(a.Logger), in.ResumeID)
	text := in.Text

	sectionMap := sections.Segment(text)
	detected := sections.DetectedNames(sectionMap)
	log.Debug("sections detected", zap.Int("count", len(detected)))

	extracted := a.extractSkills(ctx, log, text)
	log.Debug("skills extracted", zap.Int("count", len(extracted)))

	issues, err := a.checkGrammar(ctx, text)
	if err != nil {
		return nil, err
	}
	log.Debug("grammar checked", zap.Int("issues", len(issues)))

	compliance := scoring.ComplianceScore(text, sectionMap)
	quality := scoring.QualityScore(text, sectionMap, issues, extracted, compliance)
	wordCount := len(strings.Fields(text))

	result := &types.AnalysisResult{
		ResumeID:         in.ResumeID,
		ATSScore:         compliance,
		QualityScore:     quality,
		Strength:         scoring.ClassifyStrength(quality),
		ExtractedSkills:  extracted,
		GrammarIssues:    issues,
		SectionsDetected: detected,
		WordCount:        wordCount,
		Insights: scoring.BuildInsights(scoring.InsightInput{
			Compliance:    compliance,
			Quality:       quality,
			Sections:      sectionMap,
			GrammarIssues: issues,
			Skills:        extracted,
		}),
		RolePrediction: roles.Classify(extracted, text),
		Anomalies:      anomaly.Detect(text, sectionMap, wordCount),
		RawResult: types.RawResult{
			TextLength: utf8.RuneCountInString(text),
			Sections:   sectionMap.Presence(),
		},
	}

	log.Info("analysis complete",
		zap.Float64("ats_score", result.ATSScore),
		zap.Float64("quality_score", result.QualityScore),
		zap.String("strength", string(result.Strength)),
	)
	return result, nil
}

// Match compares one résumé against one job description and estimates the
// hiring probability.
func (a *Analyzer) Match(ctx context.Context, in MatchInput) (*types.MatchReport, error) {
	if strings.TrimSpace(in.JDText) == "" {
		return nil, &InputError{Field: "jd_text", Message: "job description is empty"}
	}

	match := matching.Match(in.ResumeText, in.JDText)

	var compliance, quality float64
	if in.Compliance != nil && in.Quality != nil {
		compliance, quality = *in.Compliance, *in.Quality
	} else {
		sectionMap := sections.Segment(in.ResumeText)
		compliance = scoring.ComplianceScore(in.ResumeText, sectionMap)
		if in.Compliance != nil {
			compliance = *in.Compliance
		}
		var extracted []string
		if in.Skills != nil {
			extracted = skills.Canonicalize(in.Skills)
		} else {
			extracted = a.extractSkills(ctx, logger.OrNop(a.Logger), in.ResumeText)
		}
		quality = scoring.QualityScore(in.ResumeText, sectionMap, nil, extracted, compliance)
		if in.Quality != nil {
			quality = *in.Quality
		}
	}

	estimate := hiring.Estimate(match.Similarity, compliance, quality,
		len(match.MatchedKeywords), max(len(match.JDKeywords), 1))

	return &types.MatchReport{
		MatchResult:       match,
		HiringProbability: estimate.Probability,
		Explanation:       estimate.Explanation,
		RankExplanation:   ranking.Explain(estimate, match),
	}, nil
}

// Rank orders candidates against one job description.
func (a *Analyzer) Rank(ctx context.Context, jdText string, candidates []types.Candidate) ([]types.RankedMatch, error) {
	logger.OrNop(a.Logger).Debug("ranking candidates", zap.Int("candidates", len(candidates)))
	return ranking.Rank(ctx, jdText, candidates, ranking.Options{Workers: a.Workers})
}

func (a *Analyzer) extractSkills(ctx context.Context, log *zap.Logger, text string) []string {
	extractor := a.Skills
	if extractor == nil {
		extractor = skills.NewVocabularyExtractor(skills.DefaultVocabulary())
	}
	found, err := extractor.Extract(ctx, text)
	if err != nil {
		log.Warn("skill extraction unavailable, continuing without skills", zap.Error(err))
		return []string{}
	}
	if found == nil {
		return []string{}
	}
	return found
}

// checkGrammar returns only cancellation errors; checker failures degrade to
// an empty list.
func (a *Analyzer) checkGrammar(ctx context.Context, text string) ([]types.GrammarIssue, error) {
	checker := a.Grammar
	if checker == nil {
		checker = grammar.Noop{}
	}
	issues, err := grammar.Safe(checker, "grammar", a.Logger).Check(ctx, text)
	if err != nil {
		return nil, err
	}
	if issues == nil {
		return []types.GrammarIssue{}, nil
	}
	return issues, nil
}
