package identity

import (
	"encoding/hex"
	"log/slog"
	"sort"

	"github.com/covenantlabs/covenant-core/pkg/covenanterr"
	"github.com/covenantlabs/covenant-core/pkg/crypto"
)

// CreateIdentity builds a brand-new agent identity: computes the composite
// identity hash, initializes a single "created" lineage entry, and signs
// the whole document with the operator key.
func CreateIdentity(opts CreateOptions) (Document, error) {
	if opts.PublicKeyHex == "" {
		return Document{}, covenanterr.New(covenanterr.InvalidInput, "operatorPublicKey is required")
	}
	if opts.Model.Provider == "" || opts.Model.ModelID == "" {
		return Document{}, covenanterr.New(covenanterr.InvalidInput, "model.provider and model.modelId are required")
	}
	if len(opts.Capabilities) == 0 {
		return Document{}, covenanterr.New(covenanterr.InvalidInput, "capabilities array must not be empty")
	}
	if opts.Deployment.Runtime == "" {
		return Document{}, covenanterr.New(covenanterr.InvalidInput, "deployment.runtime is required")
	}

	now := crypto.Now()
	capabilities := append([]string(nil), opts.Capabilities...)
	sort.Strings(capabilities)

	doc := Document{
		OperatorPublicKey: opts.PublicKeyHex,
		Model:             opts.Model,
		Capabilities:      capabilities,
		Deployment:        opts.Deployment,
		Version:           1,
		CreatedAt:         now,
	}

	body, err := identityBody(&doc)
	if err != nil {
		return Document{}, err
	}
	identityHash, err := computeIdentityHash(body)
	if err != nil {
		return Document{}, err
	}

	doc.Lineage = []LineageEntry{{
		IdentityHash: identityHash,
		ChangeType:   "created",
		Description:  "Identity created",
		Timestamp:    now,
	}}

	bodyWithLineage, err := identityBody(&doc)
	if err != nil {
		return Document{}, err
	}
	finalHash, err := computeIdentityHash(bodyWithLineage)
	if err != nil {
		return Document{}, err
	}
	doc.ID = finalHash

	signingPayload, err := crypto.CanonicalizeJSON(bodyWithLineage)
	if err != nil {
		return Document{}, covenanterr.Wrap(covenanterr.SerializationError, err, "canonicalize identity for signing")
	}
	doc.Signature = hex.EncodeToString(crypto.Sign(signingPayload, opts.SigningKey))

	slog.Debug("identity created", "id", doc.ID, "provider", doc.Model.Provider)
	return doc, nil
}
