package bib

import (
	"strings"
)

// Field is a single named value of a record.
type Field struct {
	Name  string
	Value string
}

// Record is one bibliographic entry.
//
// Key is the citation key and must be non-empty once the record enters a
// Collection. Field names are stored lowercase.
type Record struct {
	Key    string
	Type   string
	fields []Field
}

// NewRecord constructs a record with the given key and entry type.
func NewRecord(key, entryType string) *Record {
	return &Record{
		Key:  key,
		Type: strings.ToLower(strings.TrimSpace(entryType)),
	}
}

// Set assigns a field value, replacing an existing field of the same name
// while keeping its position.
func (r *Record) Set(name, value string) {
	name = normalizeName(name)
	if name == "" {
		return
	}
	for i := range r.fields {
		if r.fields[i].Name == name {
			r.fields[i].Value = value
			return
		}
	}
	r.fields = append(r.fields, Field{Name: name, Value: value})
}

// Delete removes a field and reports whether it was present.
func (r *Record) Delete(name string) bool {
	name = normalizeName(name)
	for i := range r.fields {
		if r.fields[i].Name == name {
			r.fields = append(r.fields[:i], r.fields[i+1:]...)
			return true
		}
	}
	return false
}

// Field returns the raw value of the named field.
func (r *Record) Field(name string) (string, bool) {
	name = normalizeName(name)
	for _, f := range r.fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return "", false
}

// Fields returns a copy of the record's fields in insertion order.
func (r *Record) Fields() []Field {
	out := make([]Field, len(r.fields))
	copy(out, r.fields)
	return out
}

// Len returns the number of fields.
func (r *Record) Len() int {
	return len(r.fields)
}

// Title returns the verbatim-formatted title. TeX grouping braces are
// dropped and whitespace runs collapse to a single space. ok is false when
// the record has no title or the title is blank.
func (r *Record) Title() (string, bool) {
	raw, ok := r.Field("title")
	if !ok {
		return "", false
	}
	title := Verbatim(raw)
	if title == "" {
		return "", false
	}
	return title, true
}

// DOI returns the trimmed doi field. ok is false when absent or blank.
func (r *Record) DOI() (string, bool) {
	raw, ok := r.Field("doi")
	if !ok {
		return "", false
	}
	doi := strings.TrimSpace(raw)
	if doi == "" {
		return "", false
	}
	return doi, true
}

// Equal reports field-set equality: same key, same entry type, and the same
// set of field name/value pairs regardless of order.
func (r *Record) Equal(other *Record) bool {
	if r == nil || other == nil {
		return r == other
	}
	if r.Key != other.Key || r.Type != other.Type || len(r.fields) != len(other.fields) {
		return false
	}
	for _, f := range r.fields {
		value, ok := other.Field(f.Name)
		if !ok || value != f.Value {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the record.
func (r *Record) Clone() *Record {
	if r == nil {
		return nil
	}
	clone := &Record{Key: r.Key, Type: r.Type}
	clone.fields = r.Fields()
	return clone
}

// Verbatim strips TeX grouping braces from a field value and collapses
// whitespace. Escaped braces (\{ and \}) are kept as literal characters.
func Verbatim(value string) string {
	var b strings.Builder
	b.Grow(len(value))
	escaped := false
	for _, r := range value {
		switch {
		case escaped:
			b.WriteRune(r)
			escaped = false
		case r == '\\':
			b.WriteRune(r)
			escaped = true
		case r == '{' || r == '}':
		default:
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
