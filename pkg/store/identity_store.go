package store

import "github.com/covenantlabs/covenant-core/pkg/identity"

// IdentityStore is a document store instantiated for identity documents.
type IdentityStore = Store[identity.Document]

// NewIdentityStore returns an empty IdentityStore.
func NewIdentityStore() *IdentityStore {
	return New[identity.Document]()
}
