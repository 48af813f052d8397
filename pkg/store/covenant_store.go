package store

import "github.com/covenantlabs/covenant-core/pkg/covenant"

// CovenantStore is a document store instantiated for covenant documents.
type CovenantStore = Store[covenant.Document]

// NewCovenantStore returns an empty CovenantStore.
func NewCovenantStore() *CovenantStore {
	return New[covenant.Document]()
}
