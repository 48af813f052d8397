package covenant

import (
	"crypto/ed25519"
	"encoding/hex"

	"github.com/covenantlabs/covenant-core/pkg/covenanterr"
	"github.com/covenantlabs/covenant-core/pkg/crypto"
)

// CountersignCovenant signs doc's canonical form with signingKey and
// appends the resulting countersignature to a copy of doc; the original is
// left untouched. Because the canonical form excludes countersignatures,
// every countersigner signs the same bytes the issuer did, independent of
// signing order.
func CountersignCovenant(doc Document, signingKey ed25519.PrivateKey, role string) (Document, error) {
	canonical, err := CanonicalForm(&doc)
	if err != nil {
		return Document{}, covenanterr.Wrap(covenanterr.SerializationError, err, "canonicalize for countersign")
	}

	signature := crypto.Sign(canonical, signingKey)
	publicKey, ok := signingKey.Public().(ed25519.PublicKey)
	if !ok {
		return Document{}, covenanterr.New(covenanterr.CryptoError, "could not derive public key from signing key")
	}

	countersig := Countersignature{
		SignerPublicKey: hex.EncodeToString(publicKey),
		SignerRole:      role,
		Signature:       hex.EncodeToString(signature),
		Timestamp:       crypto.Now(),
	}

	existing := make([]Countersignature, len(doc.Countersignatures))
	copy(existing, doc.Countersignatures)
	doc.Countersignatures = append(existing, countersig)

	return doc, nil
}
