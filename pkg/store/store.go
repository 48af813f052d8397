// Package store implements an in-memory document store keyed by content ID,
// shared by the covenant and identity packages.
package store

import (
	"github.com/google/uuid"

	"github.com/covenantlabs/covenant-core/pkg/covenanterr"
)

// Store is a generic key/value document store. It is not thread-safe:
// callers sharing a Store across goroutines must provide their own
// mutual-exclusion.
type Store[T any] struct {
	documents map[string]T
}

// New returns an empty Store.
func New[T any]() *Store[T] {
	return &Store[T]{documents: make(map[string]T)}
}

// Put stores doc under id, overwriting any existing entry. id must not be
// empty.
func (s *Store[T]) Put(id string, doc T) error {
	if id == "" {
		return covenanterr.New(covenanterr.StorageError, "document ID cannot be empty")
	}
	s.documents[id] = doc
	return nil
}

// Get retrieves the document stored under id.
func (s *Store[T]) Get(id string) (T, bool) {
	doc, ok := s.documents[id]
	return doc, ok
}

// Delete removes the document stored under id, reporting whether one was
// present.
func (s *Store[T]) Delete(id string) bool {
	if _, ok := s.documents[id]; !ok {
		return false
	}
	delete(s.documents, id)
	return true
}

// List returns every stored document in unspecified order.
func (s *Store[T]) List() []T {
	out := make([]T, 0, len(s.documents))
	for _, doc := range s.documents {
		out = append(out, doc)
	}
	return out
}

// Has reports whether a document is stored under id.
func (s *Store[T]) Has(id string) bool {
	_, ok := s.documents[id]
	return ok
}

// Count returns the number of stored documents.
func (s *Store[T]) Count() int {
	return len(s.documents)
}

// NewHandle generates a random key for a caller that needs to reserve a slot
// before a document's content-addressed ID is known, e.g. provisional
// registration of an in-flight build.
func NewHandle() string {
	return uuid.NewString()
}
