package identity

import (
	"encoding/hex"
	"log/slog"
	"sort"

	"github.com/covenantlabs/covenant-core/pkg/covenanterr"
	"github.com/covenantlabs/covenant-core/pkg/crypto"
)

// EvolveIdentity applies opts to prev, producing a new identity version:
// appends a lineage entry describing the change, and re-signs everything.
// prev is not mutated.
func EvolveIdentity(prev Document, opts EvolveOptions) (Document, error) {
	if opts.ChangeType == "" {
		return Document{}, covenanterr.New(covenanterr.InvalidInput, "changeType is required for evolution")
	}
	if opts.Description == "" {
		return Document{}, covenanterr.New(covenanterr.InvalidInput, "description is required for evolution")
	}

	now := crypto.Now()

	model := prev.Model
	if opts.Model != nil {
		model = *opts.Model
	}
	capabilities := prev.Capabilities
	if opts.Capabilities != nil {
		capabilities = append([]string(nil), opts.Capabilities...)
	} else {
		capabilities = append([]string(nil), capabilities...)
	}
	sort.Strings(capabilities)
	deployment := prev.Deployment
	if opts.Deployment != nil {
		deployment = *opts.Deployment
	}

	evolved := Document{
		OperatorPublicKey: prev.OperatorPublicKey,
		Model:             model,
		Capabilities:      capabilities,
		Deployment:        deployment,
		Version:           prev.Version + 1,
		Lineage:           append([]LineageEntry(nil), prev.Lineage...),
		CreatedAt:         prev.CreatedAt,
	}

	body, err := identityBody(&evolved)
	if err != nil {
		return Document{}, err
	}
	newHash, err := computeIdentityHash(body)
	if err != nil {
		return Document{}, err
	}

	var parentHash string
	if len(prev.Lineage) > 0 {
		parentHash = prev.Lineage[len(prev.Lineage)-1].IdentityHash
	}

	evolved.Lineage = append(evolved.Lineage, LineageEntry{
		IdentityHash: newHash,
		ParentHash:   parentHash,
		ChangeType:   opts.ChangeType,
		Description:  opts.Description,
		Timestamp:    now,
	})

	bodyWithLineage, err := identityBody(&evolved)
	if err != nil {
		return Document{}, err
	}
	finalHash, err := computeIdentityHash(bodyWithLineage)
	if err != nil {
		return Document{}, err
	}
	evolved.ID = finalHash

	signingPayload, err := crypto.CanonicalizeJSON(bodyWithLineage)
	if err != nil {
		return Document{}, covenanterr.Wrap(covenanterr.SerializationError, err, "canonicalize identity for signing")
	}
	evolved.Signature = hex.EncodeToString(crypto.Sign(signingPayload, opts.SigningKey))

	slog.Debug("identity evolved", "id", evolved.ID, "version", evolved.Version, "change_type", opts.ChangeType)
	return evolved, nil
}
