package covenant

import (
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/covenantlabs/covenant-core/pkg/ccl"
	"github.com/covenantlabs/covenant-core/pkg/config"
	"github.com/covenantlabs/covenant-core/pkg/covenanterr"
	"github.com/covenantlabs/covenant-core/pkg/crypto"
)

// BuildCovenant validates opts, parses and bounds-checks the CCL
// constraints, signs the canonical form with the issuer's key, and computes
// the document ID. limits is consulted for the constraint-count and
// document-size ceilings; pass config.DefaultLimits() for protocol defaults.
func BuildCovenant(opts BuildOptions, limits config.Limits) (Document, error) {
	if err := validateBuildOptions(opts, limits); err != nil {
		return Document{}, err
	}

	nonce, err := crypto.GenerateNonceHex()
	if err != nil {
		return Document{}, err
	}

	doc := Document{
		Version:     ProtocolVersion,
		Issuer:      opts.Issuer,
		Beneficiary: opts.Beneficiary,
		Constraints: opts.Constraints,
		Nonce:       nonce,
		CreatedAt:   crypto.Now(),
		Chain:       opts.Chain,
		ExpiresAt:   opts.ExpiresAt,
		ActivatesAt: opts.ActivatesAt,
		Metadata:    opts.Metadata,
	}

	canonical, err := CanonicalForm(&doc)
	if err != nil {
		return Document{}, covenanterr.Wrap(covenanterr.SerializationError, err, "canonicalize covenant")
	}

	signature := crypto.Sign(canonical, opts.SigningKey)
	doc.Signature = hex.EncodeToString(signature)
	doc.ID = crypto.SHA256Hex(canonical)

	serialized, err := json.Marshal(doc)
	if err != nil {
		return Document{}, covenanterr.Wrap(covenanterr.SerializationError, err, "serialize covenant")
	}
	if len(serialized) > limits.MaxDocumentSize {
		return Document{}, covenanterr.New(covenanterr.InvalidInput,
			"serialized document exceeds maximum size of %d bytes (got %d)", limits.MaxDocumentSize, len(serialized))
	}

	slog.Debug("covenant built", "id", doc.ID, "issuer", doc.Issuer.ID, "beneficiary", doc.Beneficiary.ID)
	return doc, nil
}

func validateBuildOptions(opts BuildOptions, limits config.Limits) error {
	if opts.Issuer.ID == "" {
		return covenanterr.New(covenanterr.InvalidInput, "issuer.id is required")
	}
	if opts.Issuer.PublicKey == "" {
		return covenanterr.New(covenanterr.InvalidInput, "issuer.publicKey is required")
	}
	if opts.Issuer.Role != "issuer" {
		return covenanterr.New(covenanterr.InvalidInput, "issuer.role must be \"issuer\"")
	}
	if opts.Beneficiary.ID == "" {
		return covenanterr.New(covenanterr.InvalidInput, "beneficiary.id is required")
	}
	if opts.Beneficiary.PublicKey == "" {
		return covenanterr.New(covenanterr.InvalidInput, "beneficiary.publicKey is required")
	}
	if opts.Beneficiary.Role != "beneficiary" {
		return covenanterr.New(covenanterr.InvalidInput, "beneficiary.role must be \"beneficiary\"")
	}
	if strings.TrimSpace(opts.Constraints) == "" {
		return covenanterr.New(covenanterr.InvalidInput, "constraints is required")
	}

	parsed, err := ccl.Parse(opts.Constraints)
	if err != nil {
		return err
	}
	if len(parsed.Statements) > limits.MaxConstraints {
		return covenanterr.New(covenanterr.InvalidInput,
			"constraints exceed maximum of %d statements (got %d)", limits.MaxConstraints, len(parsed.Statements))
	}

	if opts.Chain != nil {
		if opts.Chain.ParentID == "" {
			return covenanterr.New(covenanterr.InvalidInput, "chain.parentId is required")
		}
		if opts.Chain.Relation == "" {
			return covenanterr.New(covenanterr.InvalidInput, "chain.relation is required")
		}
		if opts.Chain.Depth < 1 {
			return covenanterr.New(covenanterr.InvalidInput, "chain.depth must be a positive integer")
		}
		if opts.Chain.Depth > limits.MaxChainDepth {
			return covenanterr.New(covenanterr.InvalidInput,
				"chain.depth exceeds maximum of %d (got %d)", limits.MaxChainDepth, opts.Chain.Depth)
		}
	}

	return nil
}
