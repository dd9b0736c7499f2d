// Package jarowinkler implements the Jaro similarity measure and the Winkler
// common-prefix adjustment. Scores are in [0, 1], with 1.0 meaning identical
// sequences. Unlike edit distance, the measure is built from matching units
// within a position window and a transposition count; the Winkler adjustment
// then boosts pairs that agree on a short prefix, reflecting that prefix
// agreement is a strong signal of a spelling variation.
package jarowinkler

import "github.com/dshills/textdist/sequence"

// BoostThreshold is the Jaro score a pair must exceed before the Winkler
// prefix boost applies. Zero means the boost applies to every pair with at
// least one matching unit. Some implementations gate the boost at 0.7; this
// one does not, so that single-transposition pairs of short strings (for
// example "abc" and "acb") still receive prefix credit.
const BoostThreshold = 0.0

// Default Winkler parameters.
const (
	// DefaultPrefixWeight is the standard scaling factor for the prefix
	// boost.
	DefaultPrefixWeight = 0.1

	// DefaultMaxPrefix is the standard cap on the common-prefix length the
	// boost considers.
	DefaultMaxPrefix = 4

	// maxPrefixWeight bounds PrefixWeight: above 0.25, four prefix units
	// could push a score past 1.0 before clamping.
	maxPrefixWeight = 0.25
)

// Params configures the Winkler prefix adjustment.
type Params struct {
	// PrefixWeight scales the prefix boost. Valid range is [0, 0.25];
	// values outside it are a programmer error and panic.
	PrefixWeight float64

	// MaxPrefix caps the common-prefix length the boost considers.
	MaxPrefix int
}

// DefaultParams returns the standard Winkler parameters (weight 0.1, prefix
// cap 4).
func DefaultParams() Params {
	return Params{
		PrefixWeight: DefaultPrefixWeight,
		MaxPrefix:    DefaultMaxPrefix,
	}
}

// Similarity returns the Jaro-Winkler similarity of a and b under the
// default parameters, comparing Unicode code points.
func Similarity(a, b string) float64 {
	return DefaultParams().Similarity(a, b)
}

// Distance returns 1 - Similarity(a, b). It exists for symmetry with the
// edit-distance API; lower values mean more similar strings.
func Distance(a, b string) float64 {
	return 1.0 - Similarity(a, b)
}

// Jaro returns the unadjusted Jaro similarity of a and b.
func Jaro(a, b string) float64 {
	return JaroOf(sequence.Runes(a), sequence.Runes(b))
}

// Similarity returns the Jaro-Winkler similarity of a and b under p.
func (p Params) Similarity(a, b string) float64 {
	return SimilarityOf(sequence.Runes(a), sequence.Runes(b), p)
}

// Distance returns 1 - p.Similarity(a, b).
func (p Params) Distance(a, b string) float64 {
	return 1.0 - p.Similarity(a, b)
}

// JaroOf returns the Jaro similarity of two unit sequences.
//
// A unit of a at position i matches a unit of b at position j when the units
// are equal and |i-j| is within the match window, floor(max(|a|,|b|)/2)-1
// (never negative; a zero window admits only same-position matches). Each
// unit may be consumed by at most one match, found scanning a left to right
// against the window in b. Transpositions are half the count of positionally
// mismatched pairs when the matched units of each side are taken in original
// order.
func JaroOf[T comparable](a, b []T) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1.0
	}
	if len(a) == 0 || len(b) == 0 {
		return 0.0
	}

	window := max(len(a), len(b))/2 - 1
	if window < 0 {
		window = 0
	}

	aMatched := make([]bool, len(a))
	bMatched := make([]bool, len(b))
	m := 0
	for i, ua := range a {
		lo := max(i-window, 0)
		hi := min(i+window, len(b)-1)
		for j := lo; j <= hi; j++ {
			if !bMatched[j] && b[j] == ua {
				aMatched[i] = true
				bMatched[j] = true
				m++
				break
			}
		}
	}
	if m == 0 {
		return 0.0
	}

	// Walk the matched units of both sides in original order and count
	// positions where they disagree.
	mismatches := 0
	j := 0
	for i, ok := range aMatched {
		if !ok {
			continue
		}
		for !bMatched[j] {
			j++
		}
		if a[i] != b[j] {
			mismatches++
		}
		j++
	}
	t := float64(mismatches) / 2.0

	fm := float64(m)
	return (fm/float64(len(a)) + fm/float64(len(b)) + (fm-t)/fm) / 3.0
}

// SimilarityOf returns the Jaro-Winkler similarity of two unit sequences
// under p. Panics if p.PrefixWeight is outside [0, 0.25].
func SimilarityOf[T comparable](a, b []T, p Params) float64 {
	if p.PrefixWeight < 0 || p.PrefixWeight > maxPrefixWeight {
		panic("jarowinkler: prefix weight must be between 0.0 and 0.25")
	}

	j := JaroOf(a, b)
	if j <= BoostThreshold {
		return j
	}

	l := 0
	for l < p.MaxPrefix && l < len(a) && l < len(b) && a[l] == b[l] {
		l++
	}

	s := j + float64(l)*p.PrefixWeight*(1.0-j)
	if s > 1.0 {
		s = 1.0
	}
	return s
}
