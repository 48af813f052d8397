package crypto

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSHA256String_KnownAnswer(t *testing.T) {
	got := SHA256String("hello")
	assert.Equal(t, "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824", got)
}

func TestSHA256Object_StableAcrossKeyOrder(t *testing.T) {
	m1 := map[string]int{"a": 1, "b": 2}
	m2 := map[string]int{"b": 2, "a": 1}

	h1, err := SHA256Object(m1)
	require.NoError(t, err)
	h2, err := SHA256Object(m2)
	require.NoError(t, err)
	assert.Equal(t, h1, h2)
}

func TestSignVerify_RoundTrip(t *testing.T) {
	kp, err := GenerateKeyPair()
	require.NoError(t, err)

	data := []byte("hello world")
	sig := Sign(data, kp.PrivateKey)

	assert.True(t, Verify(data, sig, kp.PublicKey))
	assert.False(t, Verify([]byte("hello world!"), sig, kp.PublicKey))
}

func TestVerify_NeverErrorsOnMalformedInput(t *testing.T) {
	kp, err := GenerateKeyPair()
	require.NoError(t, err)

	assert.False(t, Verify([]byte("x"), []byte("too short"), kp.PublicKey))
	assert.False(t, Verify([]byte("x"), make([]byte, 64), []byte("too short key")))
	assert.False(t, VerifyHex([]byte("x"), "not-hex", kp.PublicKeyHex()))
}

func TestKeyPairFromPrivateKey_WrongLength(t *testing.T) {
	_, err := KeyPairFromPrivateKey([]byte{1, 2, 3})
	require.Error(t, err)
}

func TestConstantTimeEqual(t *testing.T) {
	assert.True(t, ConstantTimeEqual([]byte("abc"), []byte("abc")))
	assert.False(t, ConstantTimeEqual([]byte("abc"), []byte("abd")))
	assert.False(t, ConstantTimeEqual([]byte("abc"), []byte("ab")))
}

func TestTimestampRoundTrip(t *testing.T) {
	ts := Now()
	parsed, err := ParseTimestamp(ts)
	require.NoError(t, err)
	assert.Equal(t, ts, Timestamp(parsed))
}

// TestSignVerifyProperty checks the two universal properties from the
// testable-properties section: valid signatures always verify, and flipping
// the bits of the first byte of the signed message always fails verification.
func TestSignVerifyProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	kp, err := GenerateKeyPair()
	require.NoError(t, err)

	properties.Property("sign then verify succeeds", prop.ForAll(
		func(msg string) bool {
			data := []byte(msg)
			sig := Sign(data, kp.PrivateKey)
			return Verify(data, sig, kp.PublicKey)
		},
		gen.AnyString(),
	))

	properties.Property("tampering with the message fails verification", prop.ForAll(
		func(msg string) bool {
			if msg == "" {
				return true
			}
			data := []byte(msg)
			sig := Sign(data, kp.PrivateKey)
			tampered := append([]byte{}, data...)
			tampered[0] ^= 0xFF
			return !Verify(tampered, sig, kp.PublicKey)
		},
		gen.AnyString(),
	))

	properties.TestingRun(t)
}
