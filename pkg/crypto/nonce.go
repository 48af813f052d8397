package crypto

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/covenantlabs/covenant-core/pkg/covenanterr"
)

// GenerateNonce returns 32 cryptographically random bytes.
func GenerateNonce() ([]byte, error) {
	nonce := make([]byte, 32)
	if _, err := rand.Read(nonce); err != nil {
		return nil, covenanterr.Wrap(covenanterr.CryptoError, err, "nonce generation failed")
	}
	return nonce, nil
}

// GenerateNonceHex returns GenerateNonce encoded as 64 lowercase hex characters.
func GenerateNonceHex() (string, error) {
	nonce, err := GenerateNonce()
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(nonce), nil
}
