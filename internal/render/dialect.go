package render

import (
	"bibmerge/internal/bib"
)

// biblatexFieldNames maps BibTeX field names to their BibLaTeX equivalents.
var biblatexFieldNames = map[string]string{
	"journal": "journaltitle",
	"address": "location",
	"school":  "institution",
}

// bibtexFieldNames is the inverse of biblatexFieldNames.
var bibtexFieldNames = map[string]string{
	"journaltitle": "journal",
	"location":     "address",
	"institution":  "school",
}

// thesisTypes maps BibTeX thesis entry types to the BibLaTeX type field.
var thesisTypes = map[string]string{
	"phdthesis":     "phdthesis",
	"mastersthesis": "mathesis",
}

// translate returns the entry type and fields of r expressed in format.
func translate(r *bib.Record, format Format) (string, []bib.Field) {
	fields := r.Fields()
	entryType := r.Type
	if entryType == "" {
		entryType = "misc"
	}

	switch format {
	case BibLaTeX:
		if thesisType, ok := thesisTypes[entryType]; ok {
			entryType = "thesis"
			if _, present := r.Field("type"); !present {
				fields = append(fields, bib.Field{Name: "type", Value: thesisType})
			}
		}
		return entryType, renameFields(fields, biblatexFieldNames)
	default:
		if entryType == "thesis" {
			entryType = "phdthesis"
			for i, f := range fields {
				if f.Name != "type" {
					continue
				}
				switch f.Value {
				case "mathesis", "mastersthesis":
					entryType = "mastersthesis"
				case "phdthesis":
				default:
					continue
				}
				fields = append(fields[:i], fields[i+1:]...)
				break
			}
		}
		return entryType, renameFields(fields, bibtexFieldNames)
	}
}

// renameFields renames fields per mapping unless the target name is already
// present, in which case the original field is left untouched.
func renameFields(fields []bib.Field, mapping map[string]string) []bib.Field {
	present := make(map[string]bool, len(fields))
	for _, f := range fields {
		present[f.Name] = true
	}
	out := make([]bib.Field, 0, len(fields))
	for _, f := range fields {
		if target, ok := mapping[f.Name]; ok && !present[target] {
			f.Name = target
		}
		out = append(out, f)
	}
	return out
}
