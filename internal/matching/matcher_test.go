package matching

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreprocess(t *testing.T) {
	assert.Equal(t, "node js react senior", Preprocess("  Node.js, React!\n\tSENIOR "))
	assert.Equal(t, "", Preprocess("!!! ..."))
}

func TestMatch_EmptyInputs(t *testing.T) {
	for _, tc := range [][2]string{{"", "abc"}, {"abc", ""}, {"!!!", "python"}} {
		got := Match(tc[0], tc[1])
		assert.Zero(t, got.Similarity)
		assert.Empty(t, got.MatchedKeywords)
		assert.Empty(t, got.SkillGaps)
		assert.Empty(t, got.JDKeywords)
	}
}

func TestMatch_OnlyStopWords(t *testing.T) {
	got := Match("the and of", "with from into")
	assert.Zero(t, got.Similarity)
	assert.Empty(t, got.JDKeywords)
}

func TestMatch_IdenticalTexts(t *testing.T) {
	text := "Senior Python developer building Kubernetes operators"
	got := Match(text, text)
	assert.InDelta(t, 1.0, got.Similarity, 1e-9)
	assert.Empty(t, got.SkillGaps)
}

func TestMatch_DisjointTexts(t *testing.T) {
	got := Match("python django", "kubernetes terraform")
	assert.Zero(t, got.Similarity)
	assert.Empty(t, got.MatchedKeywords)
	assert.Equal(t, []string{"kubernetes", "kubernetes terraform", "terraform"}, got.JDKeywords)
}

func TestMatch_KeywordsAndGaps(t *testing.T) {
	got := Match("Python developer with Django experience", "Python developer, Kubernetes")

	assert.Equal(t, []string{
		"developer kubernetes", "kubernetes", "developer", "python", "python developer",
	}, got.JDKeywords)
	assert.Equal(t, []string{"developer", "python", "python developer"}, got.MatchedKeywords)
	assert.Equal(t, []string{"developer kubernetes", "kubernetes"}, got.SkillGaps)
	assert.InDelta(t, 0.3446, got.Similarity, 0.0005)
}

func TestMatch_BigramWordsNeedNotBeAdjacent(t *testing.T) {
	got := Match("kafka streaming and later some python", "python kafka")
	assert.Contains(t, got.MatchedKeywords, "python kafka")
}

func TestMatch_Limits(t *testing.T) {
	var jd []string
	for i := 0; i < 40; i++ {
		jd = append(jd, fmt.Sprintf("skill%02d", i))
	}
	got := Match("unrelated words only", strings.Join(jd, " "))

	assert.Len(t, got.JDKeywords, 30)
	assert.Len(t, got.SkillGaps, 15)
	assert.Empty(t, got.MatchedKeywords)
}

func TestMatch_RangeAndIdempotence(t *testing.T) {
	resume := "Built data pipelines in Spark and Kafka; reduced latency 40%."
	jd := "Data engineer: Spark, Kafka, Airflow, dbt."
	first := Match(resume, jd)
	second := Match(resume, jd)

	assert.Equal(t, first, second)
	assert.GreaterOrEqual(t, first.Similarity, 0.0)
	assert.LessOrEqual(t, first.Similarity, 1.0)
}

func TestAnalyze(t *testing.T) {
	assert.Equal(t,
		[]string{"senior", "golang", "engineer", "senior golang", "golang engineer"},
		analyze("a senior golang engineer x"),
	)
}

func TestLimitFeatures(t *testing.T) {
	totals := map[string]int{"delta": 1, "alpha": 3, "charlie": 1, "bravo": 2}
	assert.Equal(t, []string{"alpha", "bravo", "charlie"}, limitFeatures(totals, 3))
	assert.Equal(t, []string{"alpha", "bravo", "charlie", "delta"}, limitFeatures(totals, 10))
}

func TestFit_VocabularyCapped(t *testing.T) {
	var words []string
	for i := 0; i < 600; i++ {
		words = append(words, fmt.Sprintf("term%03d", i))
	}
	space, ok := fit([]string{strings.Join(words, " "), "term001"})
	require.True(t, ok)
	assert.Len(t, space.vocabulary, maxFeatures)
	assert.Contains(t, space.vocabulary, "term001")
}
