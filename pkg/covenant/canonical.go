package covenant

import (
	"encoding/json"

	"github.com/covenantlabs/covenant-core/pkg/crypto"
)

// CanonicalForm produces the JCS canonical bytes of doc with id, signature,
// and countersignatures stripped — the payload every signature (issuer and
// countersigner alike) is computed over.
func CanonicalForm(doc *Document) ([]byte, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}

	var obj map[string]any
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, err
	}

	delete(obj, "id")
	delete(obj, "signature")
	delete(obj, "countersignatures")

	return crypto.CanonicalizeJSON(obj)
}

// computeID returns the SHA-256 hex digest of doc's canonical form.
func computeID(doc *Document) (string, error) {
	canonical, err := CanonicalForm(doc)
	if err != nil {
		return "", err
	}
	return crypto.SHA256Hex(canonical), nil
}
