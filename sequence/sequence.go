// Package sequence decodes text into the ordered comparison units the
// distance engines index. Engines never index raw bytes: a string is decoded
// once, up front, into a slice of units, so multi-byte characters are never
// split mid-comparison.
//
// Two unit choices are available. Runes splits text into Unicode code points,
// the default unit for every metric in this module. Graphemes splits text
// into extended grapheme clusters, so a user-perceived character built from
// several code points (a base letter plus combining marks, a flag emoji)
// counts as one unit. Neither performs normalization: a precomposed character
// and its decomposed form are different units.
package sequence

import "github.com/rivo/uniseg"

// Runes returns the Unicode code points of s in order. Invalid UTF-8 bytes
// decode to U+FFFD, one per bad byte, the same way ranging over the string
// would. The result is empty for an empty string.
func Runes(s string) []rune {
	return []rune(s)
}

// Graphemes returns the extended grapheme clusters of s in order. Each
// cluster is the raw substring of s covering one user-perceived character.
func Graphemes(s string) []string {
	if s == "" {
		return nil
	}
	clusters := make([]string, 0, len(s))
	state := -1
	var cluster string
	for s != "" {
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		clusters = append(clusters, cluster)
	}
	return clusters
}
