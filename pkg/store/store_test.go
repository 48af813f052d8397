package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/covenantlabs/covenant-core/pkg/config"
	"github.com/covenantlabs/covenant-core/pkg/covenant"
	"github.com/covenantlabs/covenant-core/pkg/crypto"
)

func makeTestCovenant(t *testing.T) covenant.Document {
	t.Helper()
	issuerKP, err := crypto.GenerateKeyPair()
	require.NoError(t, err)
	beneficiaryKP, err := crypto.GenerateKeyPair()
	require.NoError(t, err)

	doc, err := covenant.BuildCovenant(covenant.BuildOptions{
		Issuer:      covenant.Party{ID: "issuer-1", PublicKey: issuerKP.PublicKeyHex(), Role: "issuer"},
		Beneficiary: covenant.Party{ID: "beneficiary-1", PublicKey: beneficiaryKP.PublicKeyHex(), Role: "beneficiary"},
		Constraints: "permit read on '/data/**'",
		SigningKey:  issuerKP.PrivateKey,
	}, config.DefaultLimits())
	require.NoError(t, err)
	return doc
}

func TestStore_PutAndGet(t *testing.T) {
	s := NewCovenantStore()
	doc := makeTestCovenant(t)

	require.NoError(t, s.Put(doc.ID, doc))
	assert.True(t, s.Has(doc.ID))

	retrieved, ok := s.Get(doc.ID)
	require.True(t, ok)
	assert.Equal(t, doc.ID, retrieved.ID)
}

func TestStore_PutRejectsEmptyID(t *testing.T) {
	s := NewCovenantStore()
	doc := makeTestCovenant(t)

	err := s.Put("", doc)
	require.Error(t, err)
}

func TestStore_PutOverwrites(t *testing.T) {
	s := NewCovenantStore()
	doc := makeTestCovenant(t)

	require.NoError(t, s.Put("key-1", doc))
	other := doc
	other.Metadata = map[string]any{"updated": true}
	require.NoError(t, s.Put("key-1", other))

	retrieved, ok := s.Get("key-1")
	require.True(t, ok)
	assert.Equal(t, other.Metadata, retrieved.Metadata)
	assert.Equal(t, 1, s.Count())
}

func TestStore_Delete(t *testing.T) {
	s := NewCovenantStore()
	doc := makeTestCovenant(t)

	require.NoError(t, s.Put(doc.ID, doc))
	assert.Equal(t, 1, s.Count())

	assert.True(t, s.Delete(doc.ID))
	assert.Equal(t, 0, s.Count())
	assert.False(t, s.Delete(doc.ID))
}

func TestStore_List(t *testing.T) {
	s := NewCovenantStore()
	doc1 := makeTestCovenant(t)
	doc2 := makeTestCovenant(t)

	require.NoError(t, s.Put(doc1.ID, doc1))
	require.NoError(t, s.Put(doc2.ID, doc2))

	assert.Len(t, s.List(), 2)
	assert.Equal(t, 2, s.Count())
}

func TestStore_HasNonexistent(t *testing.T) {
	s := NewCovenantStore()
	assert.False(t, s.Has("nonexistent"))
}

func TestNewHandle_ProducesDistinctValues(t *testing.T) {
	a := NewHandle()
	b := NewHandle()
	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}

func TestStore_ProvisionalHandleThenOverwriteWithContentID(t *testing.T) {
	s := NewCovenantStore()
	handle := NewHandle()
	doc := makeTestCovenant(t)

	require.NoError(t, s.Put(handle, doc))
	require.NoError(t, s.Put(doc.ID, doc))
	require.True(t, s.Delete(handle))

	retrieved, ok := s.Get(doc.ID)
	require.True(t, ok)
	assert.Equal(t, doc.ID, retrieved.ID)
}
