package match

import (
	"strings"
	"unicode"
)

// unitTokens are trailing name tokens that only carry a unit of measure.
var unitTokens = map[string]bool{
	"cm": true, "mm": true, "m": true,
	"kg": true, "g": true, "lb": true,
	"pct": true, "percent": true,
}

// Tokens splits a path segment into lowercase words. A trailing list index
// ("people[2]") is dropped, camelCase and separators both split words.
func Tokens(segment string) []string {
	if i := strings.IndexByte(segment, '['); i >= 0 {
		segment = segment[:i]
	}

	var (
		tokens []string
		word   []rune
	)

	flush := func() {
		if len(word) > 0 {
			tokens = append(tokens, strings.ToLower(string(word)))
			word = word[:0]
		}
	}

	runes := []rune(segment)
	for i, r := range runes {
		switch {
		case r == '_' || r == '-' || r == '.' || unicode.IsSpace(r):
			flush()

			continue
		case i > 0 && unicode.IsUpper(r) && unicode.IsLower(runes[i-1]):
			flush()
		case i > 0 && unicode.IsDigit(r) != unicode.IsDigit(runes[i-1]):
			flush()
		}

		word = append(word, r)
	}

	flush()

	return tokens
}

// Fold reduces a segment to the form names are compared in, so "shoe_size",
// "ShoeSize" and "shoeSize" all fold to "shoesize".
func Fold(segment string) string {
	return strings.Join(Tokens(segment), "")
}

// FoldBare is Fold without a trailing unit token: "massKg" folds to "mass".
func FoldBare(segment string) string {
	tokens := Tokens(segment)
	if n := len(tokens); n > 1 && unitTokens[tokens[n-1]] {
		tokens = tokens[:n-1]
	}

	return strings.Join(tokens, "")
}

// Distance is the optimal string alignment distance between a and b, counted
// in runes. Swapping two neighbouring letters costs one edit.
func Distance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}

	if len(rb) == 0 {
		return len(ra)
	}

	// three rolling rows: two back, previous and current
	back := make([]int, len(rb)+1)
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)

	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i

		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}

			d := min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
			if i > 1 && j > 1 && ra[i-1] == rb[j-2] && ra[i-2] == rb[j-1] {
				d = min(d, back[j-2]+1)
			}

			curr[j] = d
		}

		back, prev, curr = prev, curr, back
	}

	return prev[len(rb)]
}

// Similarity maps Distance onto [0, 1], where 1 means equal.
func Similarity(a, b string) float64 {
	longest := max(len([]rune(a)), len([]rune(b)))
	if longest == 0 {
		return 1
	}

	return 1 - float64(Distance(a, b))/float64(longest)
}
