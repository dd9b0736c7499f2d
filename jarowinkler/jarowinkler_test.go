package jarowinkler

import (
	"math"
	"strings"
	"testing"

	"github.com/dshills/textdist/sequence"
)

const epsilon = 1e-3

func approx(got, want float64) bool {
	return math.Abs(got-want) <= epsilon
}

func TestSimilarity(t *testing.T) {
	tests := []struct {
		a, b string
		want float64
	}{
		{"MARTHA", "MARHTA", 0.961},
		{"DWAYNE", "DUANE", 0.840},
		{"ABCD", "EFGH", 0.0},
		{"kitten", "sitting", 0.746},
		{"saturday", "sunday", 0.7475},
		{"", "", 1.0},
		{"abc", "", 0.0},
		{"", "xyz", 0.0},
		{"abc", "abc", 1.0},
		{"abc", "acb", 0.600},
		{"abc", "bca", 0.0},
		{"café", "cafe", 0.883},
		{"こんにちは", "konnichiwa", 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.a+"/"+tt.b, func(t *testing.T) {
			if got := Similarity(tt.a, tt.b); !approx(got, tt.want) {
				t.Errorf("Similarity(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestSimilaritySymmetry(t *testing.T) {
	pairs := [][2]string{
		{"MARTHA", "MARHTA"},
		{"DWAYNE", "DUANE"},
		{"kitten", "sitting"},
		{"", "abc"},
	}

	for _, p := range pairs {
		ab := Similarity(p[0], p[1])
		ba := Similarity(p[1], p[0])
		if ab != ba {
			t.Errorf("Similarity(%q, %q) = %v but Similarity(%q, %q) = %v", p[0], p[1], ab, p[1], p[0], ba)
		}
	}
}

func TestBoostPolicy(t *testing.T) {
	if BoostThreshold != 0.0 {
		t.Fatalf("BoostThreshold = %v, want 0.0", BoostThreshold)
	}

	// "abc"/"acb" has a Jaro score of 5/9, below the 0.7 gate some
	// implementations use. The prefix boost still applies here.
	jaro := Jaro("abc", "acb")
	if !approx(jaro, 5.0/9.0) {
		t.Fatalf("Jaro(abc, acb) = %v, want %v", jaro, 5.0/9.0)
	}
	if got := Similarity("abc", "acb"); !approx(got, 0.600) {
		t.Errorf("Similarity(abc, acb) = %v, want 0.600 (boost below 0.7)", got)
	}
}

func TestPrefixWeights(t *testing.T) {
	tests := []struct {
		weight float64
		want   float64
	}{
		{0.0, 0.944},
		{0.1, 0.961},
		{0.2, 0.977},
	}

	for _, tt := range tests {
		p := Params{PrefixWeight: tt.weight, MaxPrefix: DefaultMaxPrefix}
		if got := p.Similarity("MARTHA", "MARHTA"); !approx(got, tt.want) {
			t.Errorf("weight %v: got %v, want %v", tt.weight, got, tt.want)
		}
	}
}

func TestMaxPrefix(t *testing.T) {
	capped := Params{PrefixWeight: 0.1, MaxPrefix: 4}
	if got := capped.Similarity("prefix", "prefixx"); !approx(got, 0.971) {
		t.Errorf("cap 4: got %v, want 0.971", got)
	}

	extended := Params{PrefixWeight: 0.1, MaxPrefix: 6}
	if got := extended.Similarity("prefix", "prefixx"); !approx(got, 0.981) {
		t.Errorf("cap 6: got %v, want 0.981", got)
	}
}

func TestParamsPrefixWeightPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for prefix weight 0.3")
		}
	}()
	Params{PrefixWeight: 0.3, MaxPrefix: 4}.Similarity("a", "b")
}

func TestDistance(t *testing.T) {
	pairs := [][2]string{
		{"MARTHA", "MARHTA"},
		{"abc", "abc"},
		{"", "x"},
	}

	for _, p := range pairs {
		s := Similarity(p[0], p[1])
		d := Distance(p[0], p[1])
		if math.Abs((1.0-s)-d) > 1e-12 {
			t.Errorf("Distance(%q, %q) = %v, want %v", p[0], p[1], d, 1.0-s)
		}
	}
}

func TestSelfIdentity(t *testing.T) {
	for _, s := range []string{"a", "martha", "日本語", "a longer sentence"} {
		if got := Similarity(s, s); got != 1.0 {
			t.Errorf("Similarity(%q, %q) = %v, want 1.0", s, s, got)
		}
	}
}

func TestLongDisjointStrings(t *testing.T) {
	a := strings.Repeat("a", 1000)
	b := strings.Repeat("b", 1000)
	if got := Similarity(a, b); got != 0.0 {
		t.Errorf("Similarity = %v, want 0.0", got)
	}
}

func TestNearDuplicateFloor(t *testing.T) {
	pairs := [][2]string{
		{"word", "ward"},
		{"hello", "hell"},
		{"matching", "matchings"},
		{"abcd", "abed"},
	}

	for _, p := range pairs {
		if got := Similarity(p[0], p[1]); got < 0.5 {
			t.Errorf("Similarity(%q, %q) = %v, want >= 0.5", p[0], p[1], got)
		}
	}
}

func TestSimilarityOfGraphemes(t *testing.T) {
	// The decomposed cluster e+U+0301 and precomposed U+00E9 are distinct
	// units, so this behaves like café/cafe.
	a := sequence.Graphemes("café")
	b := sequence.Graphemes("café")
	if got := SimilarityOf(a, b, DefaultParams()); !approx(got, 0.883) {
		t.Errorf("grapheme similarity = %v, want 0.883", got)
	}
}

func BenchmarkSimilarity(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Similarity("MARTHA", "MARHTA")
	}
}

func BenchmarkSimilarityLong(b *testing.B) {
	x := strings.Repeat("abcdefgh", 16)
	y := strings.Repeat("abcdefgi", 16)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Similarity(x, y)
	}
}
