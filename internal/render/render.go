package render

import (
	"strings"

	"bibmerge/internal/bib"
)

// Renderer turns a record into its textual form.
type Renderer interface {
	Render(r *bib.Record) string
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(r *bib.Record) string

// Render calls f(r).
func (f RendererFunc) Render(r *bib.Record) string { return f(r) }

// ForFormat returns the renderer for the given dialect.
func ForFormat(format Format) Renderer {
	return RendererFunc(func(r *bib.Record) string {
		return Entry(r, format)
	})
}

// leadingFields are written first, in this order, when present.
var leadingFields = []string{"author", "editor", "title"}

// Entry renders a single record. The record itself is not modified.
func Entry(r *bib.Record, format Format) string {
	entryType, fields := translate(r, format)

	var b strings.Builder
	b.WriteByte('@')
	b.WriteString(entryType)
	b.WriteByte('{')
	b.WriteString(r.Key)
	b.WriteString(",\n")
	for _, f := range order(fields) {
		b.WriteString("  ")
		b.WriteString(f.Name)
		b.WriteString(" = {")
		b.WriteString(strings.TrimSpace(f.Value))
		b.WriteString("},\n")
	}
	b.WriteByte('}')
	return b.String()
}

// Collection renders every record separated by a blank line and terminated
// by a newline. An empty collection renders as the empty string.
func Collection(c *bib.Collection, format Format) string {
	records := c.Records()
	if len(records) == 0 {
		return ""
	}
	parts := make([]string, 0, len(records))
	for _, r := range records {
		parts = append(parts, Entry(r, format))
	}
	return strings.Join(parts, "\n\n") + "\n"
}

func order(fields []bib.Field) []bib.Field {
	out := make([]bib.Field, 0, len(fields))
	used := make(map[string]bool, len(leadingFields))
	for _, name := range leadingFields {
		for _, f := range fields {
			if f.Name == name {
				out = append(out, f)
				used[name] = true
				break
			}
		}
	}
	for _, f := range fields {
		if used[f.Name] {
			continue
		}
		out = append(out, f)
	}
	return out
}
