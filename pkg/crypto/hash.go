package crypto

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/covenantlabs/covenant-core/pkg/canonicalize"
)

func decodeHex(s string) ([]byte, error) {
	return hex.DecodeString(s)
}

// SHA256Hex returns the lowercase hex SHA-256 digest of data.
func SHA256Hex(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// SHA256String returns the lowercase hex SHA-256 digest of s.
func SHA256String(s string) string {
	return SHA256Hex([]byte(s))
}

// CanonicalizeJSON returns the JCS canonical-form bytes of v.
func CanonicalizeJSON(v any) ([]byte, error) {
	return canonicalize.JCS(v)
}

// SHA256Object canonicalizes v (JCS) and returns the hex SHA-256 digest of
// the canonical bytes.
func SHA256Object(v any) (string, error) {
	canonical, err := CanonicalizeJSON(v)
	if err != nil {
		return "", err
	}
	return SHA256Hex(canonical), nil
}
