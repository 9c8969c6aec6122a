// Package ranking scores a batch of candidates against one job description.
package ranking

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-scorer/internal/anomaly"
	"github.com/jonathan/resume-scorer/internal/hiring"
	"github.com/jonathan/resume-scorer/internal/matching"
	"github.com/jonathan/resume-scorer/internal/roles"
	"github.com/jonathan/resume-scorer/internal/types"
)

// DefaultWorkers bounds parallel candidate scoring when Options.Workers is unset.
const DefaultWorkers = 4

// Options tunes a ranking run.
type Options struct {
	Workers int
}

// Rank scores every candidate against jdText and orders the results by hiring
// probability, highest first. Candidates with equal probability keep their
// input order. Rank is 1-based.
func Rank(ctx context.Context, jdText string, candidates []types.Candidate, opts Options) ([]types.RankedMatch, error) {
	if strings.TrimSpace(jdText) == "" {
		return nil, &Error{Message: "job description text is empty"}
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}

	results := make([]types.RankedMatch, len(candidates))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range candidates {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = ScoreCandidate(jdText, candidates[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to rank candidates: %w", err)
	}

	order(results)
	return results, nil
}

// order stable-sorts results by probability descending and assigns ranks.
func order(results []types.RankedMatch) {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Hiring.Probability > results[j].Hiring.Probability
	})
	for i := range results {
		results[i].Rank = i + 1
	}
}

// ScoreCandidate computes the unranked match for a single candidate.
func ScoreCandidate(jdText string, c types.Candidate) types.RankedMatch {
	match := matching.Match(c.Text, jdText)
	estimate := hiring.Estimate(
		match.Similarity,
		c.Compliance,
		c.Quality,
		len(match.MatchedKeywords),
		max(len(match.JDKeywords), 1),
	)

	return types.RankedMatch{
		CandidateID: c.ID,
		Match:       match,
		Hiring:      estimate,
		Role:        roles.Classify(c.Skills, c.Text),
		Anomalies:   anomaly.Detect(c.Text, types.NewSectionMap(), len(strings.Fields(c.Text))),
	}
}
