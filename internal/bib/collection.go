package bib

import (
	"errors"
	"fmt"
)

// ErrDuplicateKey is returned when inserting a record whose key is already
// present in the collection.
var ErrDuplicateKey = errors.New("duplicate citation key")

// Collection is an ordered, key-unique set of records.
type Collection struct {
	// Source labels where the records came from (usually a file path).
	Source string

	records []*Record
	index   map[string]int
}

// NewCollection returns an empty collection labelled with source.
func NewCollection(source string) *Collection {
	return &Collection{
		Source: source,
		index:  make(map[string]int),
	}
}

// Len returns the number of records.
func (c *Collection) Len() int {
	if c == nil {
		return 0
	}
	return len(c.records)
}

// Has reports whether a record with key is present.
func (c *Collection) Has(key string) bool {
	if c == nil {
		return false
	}
	_, ok := c.index[key]
	return ok
}

// Get returns the record stored under key.
func (c *Collection) Get(key string) (*Record, bool) {
	if c == nil {
		return nil, false
	}
	i, ok := c.index[key]
	if !ok {
		return nil, false
	}
	return c.records[i], true
}

// Insert appends a record. Inserting a record without a key is a programming
// error and panics.
func (c *Collection) Insert(r *Record) error {
	if r == nil {
		panic("bib: insert nil record")
	}
	if r.Key == "" {
		panic(fmt.Sprintf("bib: insert record without key into %q", c.Source))
	}
	if c.index == nil {
		c.index = make(map[string]int)
	}
	if _, ok := c.index[r.Key]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateKey, r.Key)
	}
	c.index[r.Key] = len(c.records)
	c.records = append(c.records, r)
	return nil
}

// Remove deletes the record stored under key, preserving the order of the
// remaining records.
func (c *Collection) Remove(key string) bool {
	if c == nil {
		return false
	}
	i, ok := c.index[key]
	if !ok {
		return false
	}
	c.records = append(c.records[:i], c.records[i+1:]...)
	delete(c.index, key)
	for j := i; j < len(c.records); j++ {
		c.index[c.records[j].Key] = j
	}
	return true
}

// Records returns the records in insertion order. The slice is a copy; the
// records are shared.
func (c *Collection) Records() []*Record {
	if c == nil {
		return nil
	}
	out := make([]*Record, len(c.records))
	copy(out, c.records)
	return out
}

// Keys returns the record keys in insertion order.
func (c *Collection) Keys() []string {
	if c == nil {
		return nil
	}
	keys := make([]string, len(c.records))
	for i, r := range c.records {
		keys[i] = r.Key
	}
	return keys
}

// Clone deep-copies the collection and its records.
func (c *Collection) Clone() *Collection {
	clone := NewCollection(c.Source)
	for _, r := range c.records {
		_ = clone.Insert(r.Clone())
	}
	return clone
}
