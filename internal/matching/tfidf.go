package matching

import (
	"math"
	"sort"
	"strings"
	"unicode/utf8"
)

// maxFeatures caps the shared vocabulary.
const maxFeatures = 500

// vectorSpace is a TF-IDF model fitted on a fixed set of documents.
type vectorSpace struct {
	vocabulary []string    // sorted alphabetically
	rows       [][]float64 // one L2-normalised row per document
}

// analyze turns preprocessed text into unigrams and bigrams.
// Tokens shorter than two characters and stop words are dropped before
// bigrams are formed.
func analyze(text string) []string {
	var tokens []string
	for _, tok := range strings.Fields(text) {
		if utf8.RuneCountInString(tok) < 2 || englishStopWords[tok] {
			continue
		}
		tokens = append(tokens, tok)
	}

	terms := make([]string, 0, 2*len(tokens))
	terms = append(terms, tokens...)
	for i := 0; i+1 < len(tokens); i++ {
		terms = append(terms, tokens[i]+" "+tokens[i+1])
	}
	return terms
}

// fit builds the vector space for docs. ok is false when no document
// contributes a single term.
func fit(docs []string) (*vectorSpace, bool) {
	counts := make([]map[string]int, len(docs))
	totals := make(map[string]int)
	df := make(map[string]int)

	for i, doc := range docs {
		counts[i] = make(map[string]int)
		for _, term := range analyze(doc) {
			counts[i][term]++
			totals[term]++
		}
		for term := range counts[i] {
			df[term]++
		}
	}
	if len(totals) == 0 {
		return nil, false
	}

	vocab := limitFeatures(totals, maxFeatures)
	n := float64(len(docs))

	space := &vectorSpace{vocabulary: vocab, rows: make([][]float64, len(docs))}
	for i := range docs {
		row := make([]float64, len(vocab))
		var norm float64
		for j, term := range vocab {
			tf := counts[i][term]
			if tf == 0 {
				continue
			}
			idf := math.Log((1+n)/(1+float64(df[term]))) + 1
			row[j] = float64(tf) * idf
			norm += row[j] * row[j]
		}
		if norm > 0 {
			norm = math.Sqrt(norm)
			for j := range row {
				row[j] /= norm
			}
		}
		space.rows[i] = row
	}
	return space, true
}

// limitFeatures keeps the limit most frequent terms across the corpus,
// breaking frequency ties alphabetically, and returns them sorted.
func limitFeatures(totals map[string]int, limit int) []string {
	terms := make([]string, 0, len(totals))
	for term := range totals {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	if len(terms) > limit {
		sort.SliceStable(terms, func(i, j int) bool {
			return totals[terms[i]] > totals[terms[j]]
		})
		terms = terms[:limit]
		sort.Strings(terms)
	}
	return terms
}

// cosine returns the cosine similarity of two fitted rows.
func (s *vectorSpace) cosine(a, b int) float64 {
	var dot float64
	for j := range s.vocabulary {
		dot += s.rows[a][j] * s.rows[b][j]
	}
	return dot
}

// topTerms returns up to n terms of one row with positive weight, highest
// weight first and vocabulary order among equal weights.
func (s *vectorSpace) topTerms(row, n int) []string {
	idx := make([]int, 0, len(s.vocabulary))
	for j, w := range s.rows[row] {
		if w > 0 {
			idx = append(idx, j)
		}
	}
	weights := s.rows[row]
	sort.SliceStable(idx, func(i, j int) bool {
		return weights[idx[i]] > weights[idx[j]]
	})
	if len(idx) > n {
		idx = idx[:n]
	}

	terms := make([]string, len(idx))
	for i, j := range idx {
		terms[i] = s.vocabulary[j]
	}
	return terms
}
