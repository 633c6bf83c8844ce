package testsupport

import (
	"testing"

	"bibmerge/internal/bib"
)

// Record builds a record from alternating field name/value pairs. The entry
// type defaults to "article".
func Record(key string, kv ...string) *bib.Record {
	r := bib.NewRecord(key, "article")
	for i := 0; i+1 < len(kv); i += 2 {
		r.Set(kv[i], kv[i+1])
	}
	return r
}

// Collection builds a collection from records, failing the test on a key
// collision.
func Collection(t testing.TB, source string, records ...*bib.Record) *bib.Collection {
	t.Helper()

	c := bib.NewCollection(source)
	for _, r := range records {
		if err := c.Insert(r); err != nil {
			t.Fatalf("build collection %s: %v", source, err)
		}
	}
	return c
}

// AssertUniqueKeys fails the test if any two records in c share a key.
func AssertUniqueKeys(t testing.TB, c *bib.Collection) {
	t.Helper()

	seen := make(map[string]struct{}, c.Len())
	for _, r := range c.Records() {
		if _, ok := seen[r.Key]; ok {
			t.Fatalf("duplicate key %q in collection", r.Key)
		}
		seen[r.Key] = struct{}{}
	}
}
