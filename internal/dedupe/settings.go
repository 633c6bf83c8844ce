package dedupe

import (
	"bibmerge/internal/render"
	"bibmerge/internal/textutil"
)

// Settings controls one merge run.
type Settings struct {
	// Threshold is the minimum title similarity for a fuzzy match. 1 disables
	// fuzzy matching.
	Threshold float64
	Algorithm textutil.Algorithm
	// Silent keeps the incumbent of every duplicate pair without prompting.
	Silent bool
	// Format is the dialect used to display records during resolution.
	Format render.Format
}

// DefaultSettings mirrors the command-line defaults.
func DefaultSettings() Settings {
	return Settings{
		Threshold: 1,
		Algorithm: textutil.Levenshtein,
		Format:    render.BibTeX,
	}
}

func (s Settings) fuzzy() bool {
	return s.Threshold < 1
}
