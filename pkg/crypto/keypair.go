// Package crypto provides the Ed25519 signing, SHA-256 hashing, and
// canonicalization primitives the covenant and identity lifecycles are built
// on. Every function here is deterministic given its inputs and, where
// relevant, a CSPRNG or the wall clock; none of them hold state.
package crypto

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/hex"

	"github.com/covenantlabs/covenant-core/pkg/covenanterr"
)

// KeyPair holds an Ed25519 signing key and its derived verifying key.
type KeyPair struct {
	PrivateKey ed25519.PrivateKey
	PublicKey  ed25519.PublicKey
}

// PublicKeyHex returns the verifying key as lowercase hex.
func (k KeyPair) PublicKeyHex() string {
	return hex.EncodeToString(k.PublicKey)
}

// GenerateKeyPair creates a new random Ed25519 key pair.
func GenerateKeyPair() (KeyPair, error) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return KeyPair{}, covenanterr.Wrap(covenanterr.CryptoError, err, "key generation failed")
	}
	return KeyPair{PrivateKey: priv, PublicKey: pub}, nil
}

// KeyPairFromPrivateKey derives a key pair from a 32-byte seed. It fails if
// the seed is not exactly ed25519.SeedSize bytes.
func KeyPairFromPrivateKey(seed []byte) (KeyPair, error) {
	if len(seed) != ed25519.SeedSize {
		return KeyPair{}, covenanterr.New(covenanterr.CryptoError, "private key must be %d bytes, got %d", ed25519.SeedSize, len(seed))
	}
	priv := ed25519.NewKeyFromSeed(seed)
	pub := priv.Public().(ed25519.PublicKey)
	return KeyPair{PrivateKey: priv, PublicKey: pub}, nil
}
