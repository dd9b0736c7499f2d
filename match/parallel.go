package match

import (
	"container/heap"
	"context"
	"runtime"
	"sync"
)

// Parallel fans a matcher's scoring across worker goroutines. Each
// comparison reads only the query and one candidate, so the work distributes
// with no synchronization beyond collecting results; the merge sorts by
// (score descending, candidate position ascending), so output is
// bit-identical to the sequential Matcher.Find.
type Parallel struct {
	matcher    *Matcher
	numWorkers int
}

// NewParallel wraps matcher for parallel scoring. If numWorkers is 0, it
// defaults to runtime.NumCPU(). Panics if matcher is nil.
func NewParallel(matcher *Matcher, numWorkers int) *Parallel {
	if matcher == nil {
		panic("match: NewParallel called with nil matcher")
	}
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &Parallel{
		matcher:    matcher,
		numWorkers: numWorkers,
	}
}

// Find ranks the candidates for query, scoring chunks of the candidate
// collection concurrently. If ctx is canceled the call is abandoned and the
// context error returned; partial results are never reported as complete.
func (p *Parallel) Find(ctx context.Context, query string) ([]Match, error) {
	n := len(p.matcher.candidates)

	// Adaptive chunk size: large enough that goroutine overhead does not
	// dominate small collections.
	chunkSize := (n + p.numWorkers - 1) / p.numWorkers
	minChunkSize := 50
	if n < 1000 {
		minChunkSize = 10
	}
	if chunkSize < minChunkSize {
		chunkSize = minChunkSize
	}

	// With a result limit, each worker only needs to retain the chunk's
	// best entries. Keeping 2x the limit leaves slack for the merge.
	workerLimit := p.matcher.opts.Limit
	if workerLimit > 0 {
		workerLimit *= 2
	}

	var wg sync.WaitGroup
	chunkResults := make(chan []Match, p.numWorkers)

	for lo := 0; lo < n; lo += chunkSize {
		hi := min(lo+chunkSize, n)

		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()

			select {
			case <-ctx.Done():
				return
			default:
			}

			var results []Match
			if workerLimit > 0 {
				results = p.scoreChunkTopK(ctx, query, lo, hi, workerLimit)
			} else {
				results = p.scoreChunk(ctx, query, lo, hi)
			}

			select {
			case chunkResults <- results:
			case <-ctx.Done():
			}
		}(lo, hi)
	}

	go func() {
		wg.Wait()
		close(chunkResults)
	}()

	merged := make([]Match, 0, n)
	for chunk := range chunkResults {
		merged = append(merged, chunk...)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sortMatches(merged)
	return p.matcher.applyLimit(merged), nil
}

// scoreChunk scores candidates[lo:hi], checking for cancellation between
// candidates.
func (p *Parallel) scoreChunk(ctx context.Context, query string, lo, hi int) []Match {
	m := p.matcher
	results := make([]Match, 0, (hi-lo)/4)

	for i := lo; i < hi; i++ {
		select {
		case <-ctx.Done():
			return results
		default:
		}

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

// scoreChunkTopK scores candidates[lo:hi] keeping only the chunk's best k
// matches. Candidates are visited in index order and the heap's ordering
// matches the final sort, so the retained set is deterministic.
func (p *Parallel) scoreChunkTopK(ctx context.Context, query string, lo, hi, k int) []Match {
	m := p.matcher
	h := &matchHeap{}
	heap.Init(h)

	for i := lo; i < hi; i++ {
		select {
		case <-ctx.Done():
			return h.toSlice()
		default:
		}

		score := m.opts.Metric.Similarity(query, m.candidates[i])
		if score < m.opts.Threshold || score > m.opts.MaxScore {
			continue
		}
		candidate := Match{
			Candidate: m.candidates[i],
			Index:     i,
			Score:     score,
		}
		if h.Len() < k {
			heap.Push(h, candidate)
		} else if ranksBefore(candidate, (*h)[0]) {
			// Replace the worst retained match.
			(*h)[0] = candidate
			heap.Fix(h, 0)
		}
	}
	return h.toSlice()
}

// matchHeap keeps a chunk's worst retained match at the root so top-k
// replacement is O(log k).
type matchHeap []Match

func (h matchHeap) Len() int           { return len(h) }
func (h matchHeap) Less(i, j int) bool { return ranksBefore(h[j], h[i]) }
func (h matchHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *matchHeap) Push(x any) {
	*h = append(*h, x.(Match)) //nolint:errcheck // heap.Interface requires any; we only push Match
}

func (h *matchHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[0 : n-1]
	return x
}

func (h *matchHeap) toSlice() []Match {
	results := make([]Match, len(*h))
	copy(results, *h)
	return results
}
