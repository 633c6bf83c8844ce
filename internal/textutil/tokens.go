package textutil

import (
	"math"
	"regexp"
	"strings"
	"unicode/utf8"
)

// tokenSplitPattern matches runs of characters that are neither letters nor digits.
var tokenSplitPattern = regexp.MustCompile(`[^\p{L}\p{N}]+`)

// termVector is a term-frequency vector over the tokens of a title.
type termVector struct {
	counts map[string]float64
	norm   float64
}

// newTermVector builds a vector from text. It returns nil when text yields no tokens.
func newTermVector(text string) *termVector {
	tokens := Tokenize(text)
	if len(tokens) == 0 {
		return nil
	}
	counts := make(map[string]float64, len(tokens))
	for _, token := range tokens {
		counts[token]++
	}
	var norm float64
	for _, count := range counts {
		norm += count * count
	}
	return &termVector{counts: counts, norm: math.Sqrt(norm)}
}

// Tokenize splits text into lowercase word tokens, dropping single characters.
func Tokenize(text string) []string {
	raw := tokenSplitPattern.Split(strings.ToLower(text), -1)
	terms := make([]string, 0, len(raw))
	for _, token := range raw {
		if utf8.RuneCountInString(token) < 2 {
			continue
		}
		terms = append(terms, token)
	}
	return terms
}

// cosine returns the cosine similarity of two term vectors; nil vectors score 0.
func cosine(a, b *termVector) float64 {
	if a == nil || b == nil || a.norm == 0 || b.norm == 0 {
		return 0
	}
	small, large := a, b
	if len(small.counts) > len(large.counts) {
		small, large = large, small
	}
	var dot float64
	for token, count := range small.counts {
		dot += count * large.counts[token]
	}
	return dot / (a.norm * b.norm)
}
