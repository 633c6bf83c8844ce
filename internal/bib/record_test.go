package bib

import "testing"

func TestRecordSetReplacesInPlace(t *testing.T) {
	r := NewRecord("Frege1884", "Book")
	r.Set("Title", "Grundlagen")
	r.Set("year", "1884")
	r.Set("TITLE", "Die Grundlagen der Arithmetik")

	fields := r.Fields()
	if len(fields) != 2 {
		t.Fatalf("expected 2 fields, got %d", len(fields))
	}
	if fields[0].Name != "title" || fields[0].Value != "Die Grundlagen der Arithmetik" {
		t.Fatalf("unexpected first field: %+v", fields[0])
	}
	if r.Type != "book" {
		t.Fatalf("expected lowercase type, got %q", r.Type)
	}
}

func TestRecordTitleVerbatim(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		want  string
		found bool
	}{
		{"plain", "The Runabout Inference-Ticket", "The Runabout Inference-Ticket", true},
		{"braces", "The {R}unabout {Inference-Ticket}", "The Runabout Inference-Ticket", true},
		{"whitespace", "  The   Runabout\n  Inference-Ticket ", "The Runabout Inference-Ticket", true},
		{"escaped brace", `Sets \{a\}`, `Sets \{a\}`, true},
		{"blank", " {} ", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRecord("k", "article")
			r.Set("title", tt.raw)
			got, ok := r.Title()
			if ok != tt.found || got != tt.want {
				t.Fatalf("Title() = %q, %v; want %q, %v", got, ok, tt.want, tt.found)
			}
		})
	}
}

func TestRecordTitleMissing(t *testing.T) {
	r := NewRecord("k", "misc")
	if _, ok := r.Title(); ok {
		t.Fatal("expected no title")
	}
	if _, ok := r.DOI(); ok {
		t.Fatal("expected no doi")
	}
	r.Set("doi", "   ")
	if _, ok := r.DOI(); ok {
		t.Fatal("expected blank doi to be treated as missing")
	}
}

func TestRecordEqualIgnoresFieldOrder(t *testing.T) {
	a := NewRecord("Carnap1942", "book")
	a.Set("title", "Introduction to Semantics")
	a.Set("year", "1942")

	b := NewRecord("Carnap1942", "book")
	b.Set("year", "1942")
	b.Set("title", "Introduction to Semantics")

	if !a.Equal(b) {
		t.Fatal("expected records with same field set to be equal")
	}

	b.Set("publisher", "Harvard University Press")
	if a.Equal(b) {
		t.Fatal("expected extra field to break equality")
	}

	c := a.Clone()
	c.Key = "Carnap1942a"
	if a.Equal(c) {
		t.Fatal("expected different keys to break equality")
	}
}

func TestRecordCloneIsDeep(t *testing.T) {
	a := NewRecord("k", "article")
	a.Set("title", "One")
	b := a.Clone()
	b.Set("title", "Two")
	if got, _ := a.Field("title"); got != "One" {
		t.Fatalf("clone mutated original: %q", got)
	}
}

func TestRecordDelete(t *testing.T) {
	r := NewRecord("k", "article")
	r.Set("journal", "Mind")
	if !r.Delete("JOURNAL") {
		t.Fatal("expected delete to report the field")
	}
	if r.Delete("journal") {
		t.Fatal("expected second delete to miss")
	}
	if r.Len() != 0 {
		t.Fatalf("expected no fields, got %d", r.Len())
	}
}
