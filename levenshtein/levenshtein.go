// Package levenshtein implements edit distance and a normalized similarity
// derived from it. The distance between two sequences is the minimum number
// of single-unit insertions, deletions, and substitutions that transform one
// into the other, each costing 1.
package levenshtein

import "github.com/dshills/textdist/sequence"

// Distance returns the edit distance between a and b, comparing Unicode code
// points rather than bytes.
func Distance(a, b string) int {
	return DistanceOf(sequence.Runes(a), sequence.Runes(b))
}

// Similarity normalizes the edit distance between a and b into [0, 1], where
// 1.0 means identical and 0.0 means nothing in common. Two empty strings are
// identical and score 1.0.
func Similarity(a, b string) float64 {
	return SimilarityOf(sequence.Runes(a), sequence.Runes(b))
}

// DistanceOf returns the edit distance between two unit sequences. It keeps
// two rolling rows of the classic dynamic-programming cost matrix, so memory
// is O(len(b)) while results are identical to the full-matrix form.
func DistanceOf[T comparable](a, b []T) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i, ua := range a {
		curr[0] = i + 1
		for j, ub := range b {
			cost := 1
			if ua == ub {
				cost = 0
			}
			curr[j+1] = min(curr[j]+1, prev[j+1]+1, prev[j]+cost)
		}
		prev, curr = curr, prev
	}

	return prev[len(b)]
}

// SimilarityOf returns the normalized similarity of two unit sequences.
func SimilarityOf[T comparable](a, b []T) float64 {
	longest := max(len(a), len(b))
	if longest == 0 {
		return 1.0
	}
	return 1.0 - float64(DistanceOf(a, b))/float64(longest)
}
