// Package bibfile moves bibliographies between disk and the in-memory model.
//
// Discover lists the input files of a directory, Parse and ReadFile turn
// BibTeX text into bib.Collection values, and Write renders a merged
// collection back to disk with an optional backup, atomic replacement, and an
// advisory lock so concurrent runs cannot interleave output.
package bibfile
