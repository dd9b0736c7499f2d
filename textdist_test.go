package textdist

import (
	"math"
	"testing"

	"github.com/dshills/textdist/match"
)

func TestLevenshtein(t *testing.T) {
	if got := LevenshteinDistance("", ""); got != 0 {
		t.Errorf("LevenshteinDistance(\"\", \"\") = %d, want 0", got)
	}
	if got := LevenshteinDistance("", "abc"); got != 3 {
		t.Errorf("LevenshteinDistance(\"\", \"abc\") = %d, want 3", got)
	}
	if got := LevenshteinDistance("hello", "helo"); got != 1 {
		t.Errorf("LevenshteinDistance(hello, helo) = %d, want 1", got)
	}
	if got := LevenshteinSimilarity("hello", "helo"); got != 0.8 {
		t.Errorf("LevenshteinSimilarity(hello, helo) = %v, want 0.8", got)
	}
}

func TestJaroWinkler(t *testing.T) {
	if got := JaroWinklerSimilarity("martha", "marhta"); math.Abs(got-0.961) > 1e-3 {
		t.Errorf("JaroWinklerSimilarity(martha, marhta) = %v, want ~0.961", got)
	}
	if got := JaroWinklerSimilarity("anything", "anything"); got != 1.0 {
		t.Errorf("self similarity = %v, want 1.0", got)
	}
	if got := JaroWinklerSimilarity("", "x"); got != 0.0 {
		t.Errorf("empty vs nonempty = %v, want 0.0", got)
	}
	if got := JaroWinklerDistance("martha", "marhta"); math.Abs(got-0.039) > 1e-3 {
		t.Errorf("JaroWinklerDistance(martha, marhta) = %v, want ~0.039", got)
	}
}

func TestMatch(t *testing.T) {
	results, err := Match("aple", []string{"apple", "banana", "orange", "pear"}, nil, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 4 {
		t.Fatalf("got %d results, want 4", len(results))
	}
	if results[0].Candidate != "apple" || results[0].Score != 0.8 {
		t.Errorf("first result = %+v, want apple at 0.8", results[0])
	}

	results, err = Match("aple", []string{"apple", "banana", "orange", "pear"}, match.JaroWinkler{}, 0.5, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	if results[0].Candidate != "apple" || results[1].Candidate != "orange" {
		t.Errorf("got %q/%q, want apple/orange", results[0].Candidate, results[1].Candidate)
	}
}

func TestMatchValidation(t *testing.T) {
	if _, err := Match("q", []string{"a"}, nil, 1.5, 0); err == nil {
		t.Error("expected error for threshold above 1")
	}
	if _, err := Match("q", []string{"a"}, nil, 0, -1); err == nil {
		t.Error("expected error for negative limit")
	}
}
