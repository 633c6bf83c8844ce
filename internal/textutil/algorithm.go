package textutil

import (
	"fmt"
	"strings"
)

// Algorithm selects the string-similarity measure used by Score.
type Algorithm int

const (
	Levenshtein Algorithm = iota
	DamerauLevenshtein
	Jaro
	JaroWinkler
	SorensenDice
	Cosine
)

var algorithmNames = [...]string{
	Levenshtein:        "levenshtein",
	DamerauLevenshtein: "damerau-levenshtein",
	Jaro:               "jaro",
	JaroWinkler:        "jaro-winkler",
	SorensenDice:       "sorensen-dice",
	Cosine:             "cosine",
}

// String returns the canonical configuration name of the algorithm.
func (a Algorithm) String() string {
	if a < 0 || int(a) >= len(algorithmNames) {
		return fmt.Sprintf("algorithm(%d)", int(a))
	}
	return algorithmNames[a]
}

// Algorithms lists every supported algorithm in a stable order.
func Algorithms() []Algorithm {
	return []Algorithm{Levenshtein, DamerauLevenshtein, Jaro, JaroWinkler, SorensenDice, Cosine}
}

// ParseAlgorithm resolves a configuration or flag value to an Algorithm.
// Matching ignores case and treats '_' and ' ' like '-'; "dice" and
// "sorensen" are accepted as shorthands.
func ParseAlgorithm(value string) (Algorithm, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	normalized = strings.NewReplacer("_", "-", " ", "-", "ø", "o").Replace(normalized)
	switch normalized {
	case "levenshtein":
		return Levenshtein, nil
	case "damerau-levenshtein", "dameraulevenshtein", "damerau":
		return DamerauLevenshtein, nil
	case "jaro":
		return Jaro, nil
	case "jaro-winkler", "jarowinkler":
		return JaroWinkler, nil
	case "sorensen-dice", "sorensendice", "sorensen", "dice":
		return SorensenDice, nil
	case "cosine":
		return Cosine, nil
	}
	return 0, fmt.Errorf("unsupported similarity algorithm %q (want one of %s)", value, strings.Join(algorithmNames[:], ", "))
}
