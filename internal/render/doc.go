// Package render serializes records and collections as BibTeX or BibLaTeX
// text. The same rendering is used for the final output file and for the
// side-by-side display shown when the user resolves a duplicate.
package render
