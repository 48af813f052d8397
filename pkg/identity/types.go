// Package identity implements agent identity creation, evolution, and
// verification: a content-addressed, signed document describing an AI
// agent's operator, model, capabilities, and deployment context, evolving
// through a hash-linked lineage chain.
package identity

import "crypto/ed25519"

// ModelInfo attests to the AI model powering an agent.
type ModelInfo struct {
	Provider string `json:"provider"`
	ModelID  string `json:"modelId"`
}

// DeploymentInfo describes where and how an agent is deployed.
type DeploymentInfo struct {
	Runtime string `json:"runtime"`
}

// LineageEntry is a single entry in an agent's lineage chain.
type LineageEntry struct {
	IdentityHash string `json:"identityHash"`
	ParentHash   string `json:"parentHash,omitempty"`
	ChangeType   string `json:"changeType"`
	Description  string `json:"description"`
	Timestamp    string `json:"timestamp"`
}

// Document is a complete, signed AI agent identity.
type Document struct {
	ID                string         `json:"id"`
	OperatorPublicKey string         `json:"operatorPublicKey"`
	Model             ModelInfo      `json:"model"`
	Capabilities      []string       `json:"capabilities"`
	Deployment        DeploymentInfo `json:"deployment"`
	Version           int            `json:"version"`
	Lineage           []LineageEntry `json:"lineage"`
	Signature         string         `json:"signature"`
	CreatedAt         string         `json:"createdAt"`
}

// CreateOptions holds the inputs to CreateIdentity.
type CreateOptions struct {
	SigningKey   ed25519.PrivateKey
	PublicKeyHex string
	Model        ModelInfo
	Capabilities []string
	Deployment   DeploymentInfo
}

// EvolveOptions holds the inputs to EvolveIdentity. Fields left at their
// zero value keep the previous identity's value.
type EvolveOptions struct {
	SigningKey   ed25519.PrivateKey
	ChangeType   string
	Description  string
	Model        *ModelInfo
	Capabilities []string
	Deployment   *DeploymentInfo
}

// Check is a single named verification result.
type Check struct {
	Name    string
	Passed  bool
	Message string
}

// VerificationResult is the outcome of VerifyIdentity.
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
