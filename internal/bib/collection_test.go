package bib

import (
	"errors"
	"reflect"
	"testing"
)

func TestCollectionPreservesInsertionOrder(t *testing.T) {
	c := NewCollection("test.bib")
	for _, key := range []string{"c", "a", "b"} {
		if err := c.Insert(NewRecord(key, "misc")); err != nil {
			t.Fatalf("insert %s: %v", key, err)
		}
	}
	if got := c.Keys(); !reflect.DeepEqual(got, []string{"c", "a", "b"}) {
		t.Fatalf("unexpected order: %v", got)
	}
}

func TestCollectionRejectsDuplicateKey(t *testing.T) {
	c := NewCollection("")
	if err := c.Insert(NewRecord("a", "misc")); err != nil {
		t.Fatal(err)
	}
	err := c.Insert(NewRecord("a", "book"))
	if !errors.Is(err, ErrDuplicateKey) {
		t.Fatalf("expected ErrDuplicateKey, got %v", err)
	}
	if c.Len() != 1 {
		t.Fatalf("expected 1 record, got %d", c.Len())
	}
}

func TestCollectionRemoveReindexes(t *testing.T) {
	c := NewCollection("")
	for _, key := range []string{"a", "b", "c", "d"} {
		_ = c.Insert(NewRecord(key, "misc"))
	}
	if !c.Remove("b") {
		t.Fatal("expected b to be removed")
	}
	if c.Remove("b") {
		t.Fatal("expected second removal to miss")
	}
	if got := c.Keys(); !reflect.DeepEqual(got, []string{"a", "c", "d"}) {
		t.Fatalf("unexpected keys: %v", got)
	}
	r, ok := c.Get("d")
	if !ok || r.Key != "d" {
		t.Fatalf("lookup after removal failed: %v %v", r, ok)
	}
	if err := c.Insert(NewRecord("b", "misc")); err != nil {
		t.Fatalf("reinsert b: %v", err)
	}
	if got := c.Keys(); !reflect.DeepEqual(got, []string{"a", "c", "d", "b"}) {
		t.Fatalf("unexpected keys after reinsert: %v", got)
	}
}

func TestCollectionInsertWithoutKeyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for empty key")
		}
	}()
	_ = NewCollection("x.bib").Insert(NewRecord("", "misc"))
}

func TestCollectionClone(t *testing.T) {
	c := NewCollection("src")
	r := NewRecord("a", "misc")
	r.Set("title", "T")
	_ = c.Insert(r)

	clone := c.Clone()
	got, _ := clone.Get("a")
	got.Set("title", "changed")
	if v, _ := r.Field("title"); v != "T" {
		t.Fatalf("clone shares records: %q", v)
	}
	if clone.Source != "src" {
		t.Fatalf("unexpected source %q", clone.Source)
	}
}
