// Package covenant implements the build/verify/countersign/chain lifecycle
// of a covenant document: a signed agreement binding an issuer to a
// beneficiary under a CCL constraint policy.
package covenant

import (
	"crypto/ed25519"

	"github.com/covenantlabs/covenant-core/pkg/ccl"
)

// ProtocolVersion is the current covenant protocol version string.
const ProtocolVersion = "1.0"

// Party is a participant in a covenant: either the issuer or beneficiary.
type Party struct {
	ID        string `json:"id"`
	PublicKey string `json:"publicKey"`
	Role      string `json:"role"`
}

// ChainReference links a covenant to its parent in a delegation chain.
type ChainReference struct {
	ParentID string `json:"parentId"`
	Relation string `json:"relation"`
	Depth    int    `json:"depth"`
}

// Countersignature is a third-party signature over the same canonical form
// the issuer signed.
type Countersignature struct {
	SignerPublicKey string `json:"signerPublicKey"`
	SignerRole      string `json:"signerRole"`
	Signature       string `json:"signature"`
	Timestamp       string `json:"timestamp"`
}

// Document is a complete, signed covenant.
type Document struct {
	ID                string              `json:"id"`
	Version           string              `json:"version"`
	Issuer            Party               `json:"issuer"`
	Beneficiary       Party               `json:"beneficiary"`
	Constraints       string              `json:"constraints"`
	Nonce             string              `json:"nonce"`
	CreatedAt         string              `json:"createdAt"`
	Signature         string              `json:"signature"`
	Chain             *ChainReference     `json:"chain,omitempty"`
	ExpiresAt         string              `json:"expiresAt,omitempty"`
	ActivatesAt       string              `json:"activatesAt,omitempty"`
	Countersignatures []Countersignature  `json:"countersignatures,omitempty"`
	Metadata          map[string]any      `json:"metadata,omitempty"`
}

// Check is a single named verification result.
type Check struct {
	Name    string
	Passed  bool
	Message string
}

// VerificationResult is the outcome of VerifyCovenant: eleven named checks
// and their logical conjunction.
type VerificationResult struct {
	Valid  bool
	Checks []Check
}

// FirstFailed returns the name of the first failing check, or "" if valid.
func (r VerificationResult) FirstFailed() string {
	for _, c := range r.Checks {
		if !c.Passed {
			return c.Name
		}
	}
	return ""
}

// BuildOptions holds the inputs to BuildCovenant.
type BuildOptions struct {
	Issuer      Party
	Beneficiary Party
	Constraints string
	SigningKey  ed25519.PrivateKey
	Chain       *ChainReference
	ExpiresAt   string
	ActivatesAt string
	Metadata    map[string]any
}

// parsedConstraints is an alias for ccl.Document. Build and verify each call
// ccl.Parse on the constraints themselves; neither uses this alias.
type parsedConstraints = ccl.Document
