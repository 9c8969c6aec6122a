package analysis

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/jonathan/resume-scorer/internal/types"
)

const sampleResume = `Jane Doe
jane.doe@example.com | +1 555 123 4567 | linkedin.com/in/janedoe

Summary
Backend engineer with eight years of experience building payment platforms.

Experience
Acme Corp 2019 - 2024
- Led migration of 40 services to Kubernetes, cutting costs by 30%
- Built Python and Go APIs serving 2 million requests per day

Education
BSc Computer Science, 2015

Skills
Python, Go, PostgreSQL, Docker, Kubernetes
`

type stubChecker struct {
	issues []types.GrammarIssue
	err    error
}

func (s stubChecker) Check(context.Context, string) ([]types.GrammarIssue, error) {
	return s.issues, s.err
}

type failingExtractor struct{}

func (failingExtractor) Extract(context.Context, string) ([]string, error) {
	return nil, errors.New("vocabulary service down")
}

func TestAnalyze_FullPipeline(t *testing.T) {
	checker := stubChecker{issues: []types.GrammarIssue{
		{RuleID: "SPELL", Severity: types.SeverityError, Suggestions: []string{}},
	}}
	a := New(nil, checker, nil)

	result, err := a.Analyze(context.Background(), Input{ResumeID: "r-42", Text: sampleResume})
	require.NoError(t, err)

	assert.Equal(t, "r-42", result.ResumeID)
	assert.Equal(t, []types.Section{
		types.SectionSummary,
		types.SectionExperience,
		types.SectionEducation,
		types.SectionSkills,
	}, result.SectionsDetected)
	assert.Subset(t, result.ExtractedSkills, []string{"Docker", "Kubernetes", "PostgreSQL", "Python"})
	assert.Len(t, result.GrammarIssues, 1)

	assert.Greater(t, result.ATSScore, 0.0)
	assert.LessOrEqual(t, result.ATSScore, 100.0)
	assert.Greater(t, result.QualityScore, 0.0)
	assert.NotEmpty(t, result.Strength)
	assert.NotEmpty(t, result.Insights)
	assert.NotEmpty(t, result.RolePrediction.Role)
	assert.NotNil(t, result.Anomalies)

	assert.Equal(t, len([]rune(sampleResume)), result.RawResult.TextLength)
	assert.True(t, result.RawResult.Sections[types.SectionExperience])
	assert.False(t, result.RawResult.Sections[types.SectionProjects])
	assert.Len(t, result.RawResult.Sections, len(types.AllSections))
}

func TestAnalyze_Deterministic(t *testing.T) {
	a := New(nil, nil, nil)
	first, err := a.Analyze(context.Background(), Input{Text: sampleResume})
	require.NoError(t, err)
	second, err := a.Analyze(context.Background(), Input{Text: sampleResume})
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestAnalyze_BlankText(t *testing.T) {
	a := New(nil, nil, nil)
	_, err := a.Analyze(context.Background(), Input{ResumeID: "r-1", Text: " \n\t "})

	var inputErr *InputError
	require.ErrorAs(t, err, &inputErr)
	assert.Equal(t, "text", inputErr.Field)
}

func TestAnalyze_CollaboratorFailuresDegrade(t *testing.T) {
	core, observed := observer.New(zapcore.WarnLevel)
	a := New(failingExtractor{}, stubChecker{err: errors.New("languagetool unreachable")}, zap.New(core))

	result, err := a.Analyze(context.Background(), Input{ResumeID: "r-7", Text: sampleResume})
	require.NoError(t, err)
	assert.Empty(t, result.ExtractedSkills)
	assert.NotNil(t, result.ExtractedSkills)
	assert.Empty(t, result.GrammarIssues)
	assert.NotNil(t, result.GrammarIssues)
	assert.Equal(t, 2, observed.Len())
}

func TestAnalyze_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	a := New(nil, stubChecker{err: context.Canceled}, nil)
	_, err := a.Analyze(ctx, Input{Text: sampleResume})
	require.ErrorIs(t, err, context.Canceled)
}

const backendJD = "Backend engineer with Python, PostgreSQL, Docker and Kubernetes experience."

func TestMatch_ComputesScoresWhenAbsent(t *testing.T) {
	a := New(nil, nil, nil)
	report, err := a.Match(context.Background(), MatchInput{ResumeText: sampleResume, JDText: backendJD})
	require.NoError(t, err)

	assert.Greater(t, report.Similarity, 0.0)
	assert.Greater(t, report.HiringProbability, 0.02)
	assert.LessOrEqual(t, report.HiringProbability, 0.98)
	assert.NotEmpty(t, report.MatchedKeywords)
	assert.Contains(t, report.RankExplanation, "Strongest factor")
	assert.Len(t, report.Explanation, 4)
}

func TestMatch_UsesSuppliedScores(t *testing.T) {
	a := New(nil, nil, nil)
	low, high := 0.0, 100.0

	weak, err := a.Match(context.Background(), MatchInput{
		ResumeText: sampleResume, JDText: backendJD, Compliance: &low, Quality: &low,
	})
	require.NoError(t, err)
	strong, err := a.Match(context.Background(), MatchInput{
		ResumeText: sampleResume, JDText: backendJD, Compliance: &high, Quality: &high,
	})
	require.NoError(t, err)

	assert.InDelta(t, 0, weak.Explanation[types.FactorATS], 1e-9)
	assert.InDelta(t, 0.25, strong.Explanation[types.FactorATS], 1e-9)
	assert.Greater(t, strong.HiringProbability, weak.HiringProbability)
}

func TestMatch_SuppliedSkillsSkipExtractor(t *testing.T) {
	core, observed := observer.New(zapcore.WarnLevel)
	a := New(failingExtractor{}, nil, zap.New(core))

	_, err := a.Match(context.Background(), MatchInput{
		ResumeText: sampleResume, JDText: backendJD, Skills: []string{"golang", "k8s", "Go"},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, observed.Len())

	_, err = a.Match(context.Background(), MatchInput{ResumeText: sampleResume, JDText: backendJD})
	require.NoError(t, err)
	assert.Equal(t, 1, observed.FilterMessageSnippet("skill extraction unavailable").Len())
}

func TestMatch_BlankJobDescription(t *testing.T) {
	a := New(nil, nil, nil)
	_, err := a.Match(context.Background(), MatchInput{ResumeText: sampleResume, JDText: ""})

	var inputErr *InputError
	require.ErrorAs(t, err, &inputErr)
	assert.Equal(t, "jd_text", inputErr.Field)
}

func TestRank_Delegates(t *testing.T) {
	a := &Analyzer{Workers: 2}
	ranked, err := a.Rank(context.Background(), backendJD, []types.Candidate{
		{ID: "a", Text: "Graphic designer", Compliance: 20, Quality: 20},
		{ID: "b", Text: sampleResume, Compliance: 80, Quality: 80},
	})
	require.NoError(t, err)
	require.Len(t, ranked, 2)
	assert.Equal(t, "b", ranked[0].CandidateID)
	assert.Equal(t, 1, ranked[0].Rank)
}
