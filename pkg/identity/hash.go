package identity

import (
	"encoding/json"

	"github.com/covenantlabs/covenant-core/pkg/covenanterr"
	"github.com/covenantlabs/covenant-core/pkg/crypto"
)

// computeIdentityHash returns the SHA-256 hex digest of the JCS canonical
// form of body.
func computeIdentityHash(body map[string]any) (string, error) {
	canonical, err := crypto.CanonicalizeJSON(body)
	if err != nil {
		return "", covenanterr.Wrap(covenanterr.SerializationError, err, "canonicalize identity body")
	}
	return crypto.SHA256Hex(canonical), nil
}

// identityBody builds the JSON object used for hashing and signing: the
// full document with id and signature stripped.
func identityBody(doc *Document) (map[string]any, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, covenanterr.Wrap(covenanterr.SerializationError, err, "marshal identity")
	}

	var obj map[string]any
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, covenanterr.Wrap(covenanterr.SerializationError, err, "unmarshal identity")
	}

	delete(obj, "id")
	delete(obj, "signature")
	return obj, nil
}
