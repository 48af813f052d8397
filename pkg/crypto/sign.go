package crypto

import "crypto/ed25519"

// Sign produces a 64-byte Ed25519 signature over message.
func Sign(message []byte, key ed25519.PrivateKey) []byte {
	return ed25519.Sign(key, message)
}

// Verify reports whether signature is a valid Ed25519 signature over message
// under key. It never errors: any malformed input (wrong-length key, wrong-
// length signature) simply returns false. A verifier must never be a
// denial-of-service surface.
func Verify(message, signature []byte, key ed25519.PublicKey) bool {
	if len(key) != ed25519.PublicKeySize {
		return false
	}
	if len(signature) != ed25519.SignatureSize {
		return false
	}
	return ed25519.Verify(key, message, signature)
}

// VerifyHex is Verify for hex-encoded keys and signatures, as they appear on
// the wire. Invalid hex is treated the same as any other malformed input:
// it returns false, never an error.
func VerifyHex(message []byte, signatureHex, publicKeyHex string) bool {
	sig, err := decodeHex(signatureHex)
	if err != nil {
		return false
	}
	key, err := decodeHex(publicKeyHex)
	if err != nil {
		return false
	}
	return Verify(message, sig, key)
}
