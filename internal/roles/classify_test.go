package roles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify_DefaultWhenNothingMatches(t *testing.T) {
	got := Classify(nil, "")

	assert.Equal(t, DefaultRole, got.Role)
	assert.Equal(t, 0.30, got.Confidence)
	assert.Empty(t, got.Alternatives)
	assert.Len(t, got.Scores, len(fingerprints))
}

func TestClassify_SkillsAndTextBothCount(t *testing.T) {
	got := Classify(
		[]string{"Solidity", "Ethereum"},
		"Wrote smart contracts with Hardhat and Truffle for a DeFi protocol",
	)

	assert.Equal(t, "Blockchain / Web3", got.Role)
	// solidity ethereum smart contracts hardhat truffle defi
	assert.Equal(t, 6, got.Scores["Blockchain / Web3"])
	assert.Equal(t, 0.75, got.Confidence)
}

func TestClassify_AlternativesAreNonZeroRunnersUp(t *testing.T) {
	got := Classify([]string{"swift", "kotlin", "ios", "android", "flutter", "jest"}, "")

	assert.Equal(t, "Mobile Developer (iOS/Android)", got.Role)
	assert.Equal(t, []string{"QA / Test Engineer"}, got.Alternatives)
}

func TestClassify_TiesKeepDeclaredOrder(t *testing.T) {
	// "kafka" belongs to Data Engineer and System Design / Architect.
	got := Classify([]string{"kafka"}, "")

	assert.Equal(t, "Data Engineer", got.Role)
	assert.Equal(t, []string{"System Design / Architect"}, got.Alternatives)
}

func TestClassify_AtMostThreeAlternatives(t *testing.T) {
	got := Classify([]string{"docker", "kubernetes", "terraform", "aws", "prometheus", "grafana"}, "")

	assert.Equal(t, "DevOps / SRE", got.Role)
	assert.LessOrEqual(t, len(got.Alternatives), 3)
	assert.NotContains(t, got.Alternatives, got.Role)
}

func TestClassify_ConfidenceCappedAtOne(t *testing.T) {
	got := Classify(nil, "docker kubernetes terraform ansible helm ci/cd jenkins github actions aws gcp azure linux nginx prometheus grafana argocd")
	require.Equal(t, "DevOps / SRE", got.Role)
	assert.Equal(t, 1.0, got.Confidence)
}

func TestClassify_ScoresEveryRole(t *testing.T) {
	got := Classify(nil, "pytorch")
	assert.Len(t, got.Scores, 20)
	assert.Contains(t, got.Scores, "ML/AI Engineer")
	assert.Contains(t, got.Scores, DefaultRole)
}
