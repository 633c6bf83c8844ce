package render

import (
	"fmt"
	"strings"
)

// Format selects the output dialect.
type Format int

const (
	BibTeX Format = iota
	BibLaTeX
)

// String returns the configuration name of the format.
func (f Format) String() string {
	switch f {
	case BibLaTeX:
		return "biblatex"
	default:
		return "bibtex"
	}
}

// ParseFormat resolves a configuration value. An empty value means BibTeX.
func ParseFormat(value string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "bibtex":
		return BibTeX, nil
	case "biblatex":
		return BibLaTeX, nil
	}
	return 0, fmt.Errorf("unsupported output format %q (want bibtex or biblatex)", value)
}
