// Package textdist computes approximate string similarity. It provides two
// metric families, Levenshtein edit distance and Jaro-Winkler, and a ranking
// routine that scores a query against a candidate collection.
//
// This package is the flat convenience surface; the subpackages carry the
// full APIs (configurable Winkler parameters, grapheme-cluster comparison,
// score bands, result caching, parallel ranking).
package textdist

import (
	"github.com/dshills/textdist/jarowinkler"
	"github.com/dshills/textdist/levenshtein"
	"github.com/dshills/textdist/match"
)

// LevenshteinDistance returns the minimum number of single-character
// insertions, deletions, and substitutions transforming a into b.
func LevenshteinDistance(a, b string) int {
	return levenshtein.Distance(a, b)
}

// LevenshteinSimilarity returns the edit distance normalized into [0, 1],
// where 1.0 means identical strings.
func LevenshteinSimilarity(a, b string) float64 {
	return levenshtein.Similarity(a, b)
}

// JaroWinklerSimilarity returns the Jaro-Winkler similarity of a and b in
// [0, 1] under the standard parameters.
func JaroWinklerSimilarity(a, b string) float64 {
	return jarowinkler.Similarity(a, b)
}

// JaroWinklerDistance returns 1 - JaroWinklerSimilarity(a, b).
func JaroWinklerDistance(a, b string) float64 {
	return jarowinkler.Distance(a, b)
}

// Match ranks candidates by similarity to query under metric, keeping those
// scoring at least threshold and returning them ordered by score descending
// (ties by original candidate position). A nil metric means Levenshtein;
// limit 0 means no limit. A threshold outside [0, 1] or a negative limit is
// an error.
func Match(query string, candidates []string, metric match.Metric, threshold float64, limit int) ([]match.Match, error) {
	m, err := match.New(candidates, match.Options{
		Metric:    metric,
		Threshold: threshold,
		Limit:     limit,
	})
	if err != nil {
		return nil, err
	}
	return m.Find(query), nil
}
