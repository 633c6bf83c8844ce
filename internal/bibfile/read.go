package bibfile

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/nickng/bibtex"
	"golang.org/x/text/cases"

	"bibmerge/internal/bib"
	"bibmerge/internal/logging"
)

// ParseReport describes entries that could not be loaded as-is.
type ParseReport struct {
	Source string
	// Entries is the number of bibliography entries found, keyed or not.
	Entries int
	// SkippedKeys lists keys repeated within the file; the first entry wins.
	SkippedKeys []string
	// Unkeyed counts entries without a citation key.
	Unkeyed int
	// UndefinedMacros lists identifiers kept verbatim because no @string
	// entry defines them.
	UndefinedMacros []MacroRef
}

// Parse reads BibTeX text from r into a collection labelled source. Field
// values are stored as written, including case-protecting braces, with
// @string macros, month abbreviations and # concatenation expanded.
func Parse(r io.Reader, source string) (*bib.Collection, ParseReport, error) {
	report := ParseReport{Source: source}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, report, fmt.Errorf("read %s: %w", source, err)
	}
	expanded, err := expandValues(string(data), &report)
	if err != nil {
		return nil, report, fmt.Errorf("parse %s: %w", source, err)
	}
	parsed, err := bibtex.Parse(strings.NewReader(expanded))
	if err != nil {
		return nil, report, fmt.Errorf("parse %s: %w", source, err)
	}

	collection := bib.NewCollection(source)
	report.Entries = len(parsed.Entries) + report.Unkeyed
	for _, entry := range parsed.Entries {
		key := strings.TrimSpace(entry.CiteName)
		if collection.Has(key) {
			report.SkippedKeys = append(report.SkippedKeys, key)
			continue
		}
		if err := collection.Insert(toRecord(key, entry)); err != nil {
			return nil, report, fmt.Errorf("parse %s: %w", source, err)
		}
	}
	return collection, report, nil
}

// toRecord copies a parsed entry into a record. Fields are stored in name
// order because the parser does not preserve source order.
func toRecord(key string, entry *bibtex.BibEntry) *bib.Record {
	fold := cases.Fold()
	record := bib.NewRecord(key, fold.String(strings.TrimSpace(entry.Type)))
	names := make([]string, 0, len(entry.Fields))
	for name := range entry.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		value := entry.Fields[name]
		if value == nil {
			continue
		}
		field := fold.String(name)
		for original, alias := range fieldAliases {
			if field == alias {
				field = original
			}
		}
		record.Set(field, value.String())
	}
	return record
}

// ReadFile parses the bibliography at path. The collection is labelled with
// the file's base name.
func ReadFile(path string) (*bib.Collection, ParseReport, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ParseReport{Source: filepath.Base(path)}, fmt.Errorf("open bibliography: %w", err)
	}
	defer f.Close()
	return Parse(f, filepath.Base(path))
}

// ReadAll reads every path in order, logging a warning for each dropped entry.
func ReadAll(paths []string, logger *slog.Logger) ([]*bib.Collection, error) {
	logger = logging.NewComponentLogger(logger, "bibfile")
	collections := make([]*bib.Collection, 0, len(paths))
	for _, path := range paths {
		collection, report, err := ReadFile(path)
		if err != nil {
			return nil, err
		}
		for _, key := range report.SkippedKeys {
			logging.WarnWithContext(logger, "duplicate key within file; keeping first entry",
				"bibfile_duplicate_key",
				logging.String(logging.FieldSource, report.Source),
				logging.String("key", key),
				logging.String(logging.FieldImpact, "later entry dropped"),
			)
		}
		for _, ref := range report.UndefinedMacros {
			logging.WarnWithContext(logger, "undefined string macro kept as text",
				"bibfile_undefined_macro",
				logging.String(logging.FieldSource, report.Source),
				logging.String("key", ref.Key),
				logging.String("field", ref.Field),
				logging.String("macro", ref.Name),
				logging.String(logging.FieldImpact, "field holds the macro name"),
			)
		}
		if report.Unkeyed > 0 {
			logging.WarnWithContext(logger, "entries without citation key skipped",
				"bibfile_unkeyed_entry",
				logging.String(logging.FieldSource, report.Source),
				logging.Int("count", report.Unkeyed),
				logging.String(logging.FieldImpact, "entries dropped"),
			)
		}
		logger.Debug("bibliography loaded",
			logging.String(logging.FieldSource, report.Source),
			logging.Int("entries", collection.Len()),
		)
		collections = append(collections, collection)
	}
	return collections, nil
}
