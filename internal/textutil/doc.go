// Package textutil provides the string-similarity scoring used to compare
// entry titles.
//
// Score normalizes six classic algorithms into a single similarity in the
// range [0, 1]:
//   - Levenshtein and Damerau-Levenshtein: one minus the edit distance divided
//     by the longer string's rune count
//   - Jaro and Jaro-Winkler: affix-weighted match fraction
//   - Sørensen-Dice: bigram overlap with whitespace ignored
//   - Cosine: term-frequency vectors over lowercase word tokens, so word
//     order and case do not matter
//
// Every algorithm scores identical strings (including two empty strings) as
// 1 and a non-empty string against an empty one as 0.
package textutil
