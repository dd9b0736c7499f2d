// Package match ranks candidate strings by their similarity to a query.
//
// A Matcher is bound at construction to a fixed candidate collection and a
// validated set of options; each Find call scores every candidate under the
// configured metric, keeps scores within the configured band, and returns
// matches in a deterministic order.
//
// # Ordering
//
// Results are sorted by score descending; ties are broken by original
// candidate position, so repeated calls and parallel scheduling always
// produce identical output.
//
// # Usage
//
// Basic usage:
//
//	m, err := match.New(candidates, match.Options{
//	    Metric:    match.JaroWinkler{},
//	    Threshold: 0.8,
//	    Limit:     10,
//	})
//	if err != nil {
//	    return err
//	}
//	for _, r := range m.Find("aple") {
//	    fmt.Printf("%s (%.3f)\n", r.Candidate, r.Score)
//	}
//
// For large candidate sets, wrap the matcher in a Parallel to fan the
// scoring across worker goroutines:
//
//	p := match.NewParallel(m, 0)
//	results, err := p.Find(ctx, "aple")
//
// # Thread Safety
//
// A Matcher is safe for concurrent Find calls; the result cache is
// internally synchronized.
package match
