// Package bib defines the bibliographic data model shared by the parser,
// the merge core, and the renderers.
//
// A Record is one citation entry: a key, an entry type, and an ordered set of
// named fields. A Collection is an ordered, key-unique set of records whose
// iteration order always equals insertion order, which the merge core relies
// on for its first-match-wins scan.
package bib
