package sequence

import (
	"reflect"
	"testing"
)

func TestRunes(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"abc", 3},
		{"café", 4},
		{"日本語ファイル", 7},
		{"🇺🇸", 2}, // two regional indicator code points
	}

	for _, tt := range tests {
		if got := Runes(tt.in); len(got) != tt.want {
			t.Errorf("Runes(%q) has %d units, want %d", tt.in, len(got), tt.want)
		}
	}
}

func TestRunesInvalidUTF8(t *testing.T) {
	got := Runes("a\xffb")
	if len(got) != 3 {
		t.Fatalf("got %d units, want 3", len(got))
	}
	if got[1] != '�' {
		t.Errorf("bad byte decoded to %q, want U+FFFD", got[1])
	}
}

func TestGraphemes(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"abc", []string{"a", "b", "c"}},
		{"é", []string{"é"}},
		{"café", []string{"c", "a", "f", "é"}},
		{"🇺🇸x", []string{"🇺🇸", "x"}},
	}

	for _, tt := range tests {
		if got := Graphemes(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Graphemes(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGraphemesRoundTrip(t *testing.T) {
	in := "héllo wörld 🇺🇸 é"
	joined := ""
	for _, g := range Graphemes(in) {
		joined += g
	}
	if joined != in {
		t.Errorf("clusters do not reassemble input: %q != %q", joined, in)
	}
}
