// Package search implements approximate substring search. A window the
// length of the query slides across the text and every start offset whose
// Damerau-Levenshtein distance to the query is within a threshold matches.
package search

import (
	"strings"
	"unicode"
)

// MaxBackoff is the highest threshold FindWithBackoff will try. Anything
// looser produces more false positives than useful hits.
const MaxBackoff = 1

// Find returns the rune offsets in text where a window of len(query) runes
// is within maxDist edits of query. Matching is case-insensitive unless the
// query contains an uppercase letter.
func Find(query, text string, maxDist int) []int {
	if query == "" {
		return nil
	}
	needle := []rune(query)
	haystack := []rune(text)
	if !hasUpper(query) {
		// Lower rune by rune so offsets keep pointing into the original text.
		lowerRunes(needle)
		lowerRunes(haystack)
	}
	size := len(needle)
	if size > len(haystack) {
		return nil
	}

	var offsets []int
	for start := 0; start+size <= len(haystack); start++ {
		if Distance(haystack[start:start+size], needle) <= maxDist {
			offsets = append(offsets, start)
		}
	}
	return offsets
}

// FindWithBackoff tries an exact match first and only retries with a
// threshold of one edit when nothing matched.
func FindWithBackoff(query, text string) []int {
	for threshold := 0; threshold <= MaxBackoff; threshold++ {
		if offsets := Find(query, text, threshold); len(offsets) > 0 {
			return offsets
		}
	}
	return nil
}

// Contains reports whether query matches text exactly under the case rule.
func Contains(query, text string) bool {
	return len(Find(query, text, 0)) > 0
}

// WindowSize returns how many tokens a match of query may cover: its words
// plus the separators between them. It is zero for a blank query.
func WindowSize(query string) int {
	words := len(strings.Fields(query))
	if words == 0 {
		return 0
	}
	return words*2 - 1
}

// Distance returns the optimal-string-alignment Damerau-Levenshtein distance
// between a and b: insertions, deletions, substitutions and transpositions
// of adjacent runes each cost one.
func Distance(a, b []rune) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	// Three rolling rows: two back (for transpositions), previous, current.
	prevPrev := make([]int, len(b)+1)
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
			if i > 1 && j > 1 && a[i-1] == b[j-2] && a[i-2] == b[j-1] {
				curr[j] = min(curr[j], prevPrev[j-2]+1)
			}
		}
		prevPrev, prev, curr = prev, curr, prevPrev
	}
	return prev[len(b)]
}

func lowerRunes(runes []rune) {
	for i, r := range runes {
		runes[i] = unicode.ToLower(r)
	}
}

func hasUpper(s string) bool {
	for _, r := range s {
		if unicode.IsUpper(r) {
			return true
		}
	}
	return false
}
