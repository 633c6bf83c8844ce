package textutil

import (
	"math"
	"unicode"
	"unicode/utf8"

	"github.com/antzucaro/matchr"
)

// Score returns the similarity of a and b under alg, in the range [0, 1].
// Unknown algorithms fall back to Levenshtein.
func Score(a, b string, alg Algorithm) float64 {
	if a == b {
		return 1
	}
	if a == "" || b == "" {
		return 0
	}

	var score float64
	switch alg {
	case DamerauLevenshtein:
		score = normalizedDistance(matchr.DamerauLevenshtein(a, b), a, b)
	case Jaro:
		score = matchr.Jaro(a, b)
	case JaroWinkler:
		score = matchr.JaroWinkler(a, b, false)
	case SorensenDice:
		score = sorensenDice(a, b)
	case Cosine:
		score = cosine(newTermVector(a), newTermVector(b))
	default:
		score = normalizedDistance(matchr.Levenshtein(a, b), a, b)
	}
	return clamp(score)
}

func normalizedDistance(distance int, a, b string) float64 {
	longest := max(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
	if longest == 0 {
		return 1
	}
	return 1 - float64(distance)/float64(longest)
}

// sorensenDice compares the bigram multisets of a and b after removing
// whitespace.
func sorensenDice(a, b string) float64 {
	ra := stripSpace(a)
	rb := stripSpace(b)
	if string(ra) == string(rb) {
		return 1
	}
	if len(ra) < 2 || len(rb) < 2 {
		return 0
	}

	bigrams := make(map[[2]rune]int, len(ra)-1)
	for i := 0; i < len(ra)-1; i++ {
		bigrams[[2]rune{ra[i], ra[i+1]}]++
	}
	var intersection int
	for i := 0; i < len(rb)-1; i++ {
		key := [2]rune{rb[i], rb[i+1]}
		if n := bigrams[key]; n > 0 {
			bigrams[key] = n - 1
			intersection++
		}
	}
	return 2 * float64(intersection) / float64(len(ra)+len(rb)-2)
}

func stripSpace(s string) []rune {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func clamp(v float64) float64 {
	switch {
	case math.IsNaN(v) || v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
