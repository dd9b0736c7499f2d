package match

import (
	"github.com/dshills/textdist/jarowinkler"
	"github.com/dshills/textdist/levenshtein"
	"github.com/dshills/textdist/sequence"
)

// Metric scores the similarity of two text values.
type Metric interface {
	// Name identifies the metric, e.g. for CLI selection.
	Name() string

	// Similarity returns a score in [0, 1], where 1.0 means identical.
	// Implementations must be pure: the score depends only on the two
	// inputs.
	Similarity(query, candidate string) float64
}

// Levenshtein scores candidates by normalized edit distance.
type Levenshtein struct {
	// Graphemes compares extended grapheme clusters instead of code
	// points, so combining sequences count as single units.
	Graphemes bool
}

// Name implements Metric.
func (m Levenshtein) Name() string {
	if m.Graphemes {
		return "levenshtein-graphemes"
	}
	return "levenshtein"
}

// Similarity implements Metric.
func (m Levenshtein) Similarity(query, candidate string) float64 {
	if m.Graphemes {
		return levenshtein.SimilarityOf(sequence.Graphemes(query), sequence.Graphemes(candidate))
	}
	return levenshtein.Similarity(query, candidate)
}

// JaroWinkler scores candidates by Jaro-Winkler similarity.
type JaroWinkler struct {
	// Params configures the Winkler prefix boost. The zero value means
	// jarowinkler.DefaultParams(); pass an explicit weight with a zero
	// MaxPrefix to disable the boost entirely.
	Params jarowinkler.Params

	// Graphemes compares extended grapheme clusters instead of code
	// points.
	Graphemes bool
}

// Name implements Metric.
func (m JaroWinkler) Name() string {
	if m.Graphemes {
		return "jaro-winkler-graphemes"
	}
	return "jaro-winkler"
}

// Similarity implements Metric.
func (m JaroWinkler) Similarity(query, candidate string) float64 {
	p := m.Params
	if p == (jarowinkler.Params{}) {
		p = jarowinkler.DefaultParams()
	}
	if m.Graphemes {
		return jarowinkler.SimilarityOf(sequence.Graphemes(query), sequence.Graphemes(candidate), p)
	}
	return p.Similarity(query, candidate)
}

var (
	_ Metric = Levenshtein{}
	_ Metric = JaroWinkler{}
)
