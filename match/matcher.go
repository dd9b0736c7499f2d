package match

import (
	"fmt"
	"sort"
)

// Match is one ranked candidate.
type Match struct {
	// Candidate is the original candidate text, unmodified.
	Candidate string `json:"candidate"`

	// Index is the candidate's position in the collection the Matcher was
	// built over.
	Index int `json:"index"`

	// Score is the similarity to the query under the matcher's metric.
	Score float64 `json:"score"`
}

// Options configures a Matcher. The zero value is valid: every candidate is
// kept, ordered by score, under the Levenshtein metric.
type Options struct {
	// Metric scores candidates. Nil means Levenshtein{}.
	Metric Metric

	// Threshold is the minimum score a candidate must reach to be
	// returned. Must be in [0, 1]. The default 0 keeps everything;
	// callers wanting fuzzy-match behavior pass an explicit cutoff.
	Threshold float64

	// MaxScore is the highest score kept, so near-duplicates can be
	// ranked while exact matches are excluded. Must be in [0, 1] and at
	// least Threshold. Zero means 1.0.
	MaxScore float64

	// Limit caps the number of results after sorting. Zero means no
	// limit; negative is an error.
	Limit int

	// CacheSize is the maximum number of cached query results. Zero
	// disables caching.
	CacheSize int
}

// DefaultOptions returns permissive defaults: Levenshtein metric, no score
// band, no limit, caching disabled.
func DefaultOptions() Options {
	return Options{
		Metric:   Levenshtein{},
		MaxScore: 1.0,
	}
}

// Matcher ranks a fixed candidate collection against queries. Binding the
// candidates at construction keeps the query-keyed result cache sound.
type Matcher struct {
	candidates []string
	opts       Options
	cache      *Cache
}

// New creates a Matcher over candidates. Option violations are reported as
// errors rather than clamped, so misuse surfaces immediately.
func New(candidates []string, opts Options) (*Matcher, error) {
	if opts.Metric == nil {
		opts.Metric = Levenshtein{}
	}
	if opts.MaxScore == 0 {
		opts.MaxScore = 1.0
	}
	if opts.Threshold < 0 || opts.Threshold > 1 {
		return nil, fmt.Errorf("match: threshold %v outside [0, 1]", opts.Threshold)
	}
	if opts.MaxScore < 0 || opts.MaxScore > 1 {
		return nil, fmt.Errorf("match: max score %v outside [0, 1]", opts.MaxScore)
	}
	if opts.Threshold > opts.MaxScore {
		return nil, fmt.Errorf("match: threshold %v above max score %v", opts.Threshold, opts.MaxScore)
	}
	if opts.Limit < 0 {
		return nil, fmt.Errorf("match: negative limit %d", opts.Limit)
	}

	m := &Matcher{
		candidates: append([]string(nil), candidates...),
		opts:       opts,
	}
	if opts.CacheSize > 0 {
		m.cache = NewCache(opts.CacheSize)
	}
	return m, nil
}

// Len returns the number of candidates the matcher was built over.
func (m *Matcher) Len() int {
	return len(m.candidates)
}

// Metric returns the metric scoring this matcher's candidates.
func (m *Matcher) Metric() Metric {
	return m.opts.Metric
}

// Find scores every candidate against query, keeps scores within the
// configured band, and returns matches sorted by score descending with ties
// broken by candidate position. The result is never nil.
func (m *Matcher) Find(query string) []Match {
	if m.cache != nil {
		if cached := m.cache.Get(query); cached != nil {
			return cached
		}
	}

	results := m.scoreRange(query, 0, len(m.candidates))
	sortMatches(results)
	results = m.applyLimit(results)

	if m.cache != nil {
		m.cache.Set(query, results)
	}
	return results
}

// ClearCache drops all cached query results.
func (m *Matcher) ClearCache() {
	if m.cache != nil {
		m.cache.Clear()
	}
}

// scoreRange scores candidates[lo:hi], keeping those inside the score band.
func (m *Matcher) scoreRange(query string, lo, hi int) []Match {
	results := make([]Match, 0, hi-lo)
	for i := lo; i < hi; i++ {
		score := m.opts.Metric.Similarity(query, m.candidates[i])
		if score < m.opts.Threshold || score > m.opts.MaxScore {
			continue
		}
		results = append(results, Match{
			Candidate: m.candidates[i],
			Index:     i,
			Score:     score,
		})
	}
	return results
}

// applyLimit returns at most Limit results.
func (m *Matcher) applyLimit(results []Match) []Match {
	if m.opts.Limit <= 0 || m.opts.Limit >= len(results) {
		return results
	}
	return results[:m.opts.Limit]
}

// ranksBefore is the one ordering used everywhere: score descending, then
// candidate position ascending, so scheduling can never alter results.
func ranksBefore(a, b Match) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	return a.Index < b.Index
}

func sortMatches(results []Match) {
	sort.Slice(results, func(i, j int) bool {
		return ranksBefore(results[i], results[j])
	})
}
