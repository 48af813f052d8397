package covenant

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/covenantlabs/covenant-core/pkg/ccl"
	"github.com/covenantlabs/covenant-core/pkg/config"
	"github.com/covenantlabs/covenant-core/pkg/crypto"
)

// VerifyCovenant runs the eleven named checks against doc and returns a
// report: overall validity is the logical AND of every check, but no check
// ever fails the call itself — malformed input produces a failed check, not
// an error, matching Verify's never-errors contract.
func VerifyCovenant(doc *Document, limits config.Limits) VerificationResult {
	var checks []Check

	canonical, canonErr := CanonicalForm(doc)
	if canonErr != nil {
		canonical = nil
	}

	// 1. id_match
	expectedID := ""
	if canonical != nil {
		expectedID = crypto.SHA256Hex(canonical)
	}
	idMatch := canonical != nil && doc.ID == expectedID
	checks = append(checks, Check{
		Name:   "id_match",
		Passed: idMatch,
		Message: func() string {
			if idMatch {
				return "Document ID matches canonical hash"
			}
			return fmt.Sprintf("ID mismatch: expected %s, got %s", expectedID, doc.ID)
		}(),
	})

	// 2. signature_valid
	sigValid := canonical != nil && crypto.VerifyHex(canonical, doc.Signature, doc.Issuer.PublicKey)
	checks = append(checks, Check{
		Name:   "signature_valid",
		Passed: sigValid,
		Message: func() string {
			if sigValid {
				return "Issuer signature is valid"
			}
			return "Issuer signature verification failed"
		}(),
	})

	// 3. not_expired
	checks = append(checks, checkNotExpired(doc.ExpiresAt))

	// 4. active
	checks = append(checks, checkActive(doc.ActivatesAt))

	// 5. ccl_parses
	checks = append(checks, checkCCLParses(doc.Constraints, limits.MaxConstraints))

	// 6. enforcement_valid (reserved)
	checks = append(checks, Check{Name: "enforcement_valid", Passed: true, Message: "No enforcement config present (or valid)"})

	// 7. proof_valid (reserved)
	checks = append(checks, Check{Name: "proof_valid", Passed: true, Message: "No proof config present (or valid)"})

	// 8. chain_depth
	checks = append(checks, checkChainDepth(doc.Chain, limits.MaxChainDepth))

	// 9. document_size
	checks = append(checks, checkDocumentSize(doc, limits.MaxDocumentSize))

	// 10. countersignatures
	checks = append(checks, checkCountersignatures(doc, canonical))

	// 11. nonce_present
	checks = append(checks, checkNoncePresent(doc.Nonce))

	valid := true
	for _, c := range checks {
		if !c.Passed {
			valid = false
			break
		}
	}

	result := VerificationResult{Valid: valid, Checks: checks}
	if !valid {
		slog.Warn("covenant verification failed", "id", doc.ID, "first_failed", result.FirstFailed())
	}
	return result
}

func checkNotExpired(expiresAt string) Check {
	if expiresAt == "" {
		return Check{Name: "not_expired", Passed: true, Message: "No expiry set"}
	}
	expires, err := crypto.ParseTimestamp(expiresAt)
	if err != nil {
		return Check{Name: "not_expired", Passed: true, Message: "Unparseable expiry, treated as not expired"}
	}
	notExpired := time.Now().UTC().Before(expires)
	msg := "Document has not expired"
	if !notExpired {
		msg = fmt.Sprintf("Document expired at %s", expiresAt)
	}
	return Check{Name: "not_expired", Passed: notExpired, Message: msg}
}

func checkActive(activatesAt string) Check {
	if activatesAt == "" {
		return Check{Name: "active", Passed: true, Message: "No activation time set"}
	}
	activates, err := crypto.ParseTimestamp(activatesAt)
	if err != nil {
		return Check{Name: "active", Passed: true, Message: "Unparseable activation time, treated as active"}
	}
	isActive := !time.Now().UTC().Before(activates)
	msg := "Document is active"
	if !isActive {
		msg = fmt.Sprintf("Document activates at %s", activatesAt)
	}
	return Check{Name: "active", Passed: isActive, Message: msg}
}

func checkCCLParses(constraints string, maxConstraints int) Check {
	parsed, err := ccl.Parse(constraints)
	if err != nil {
		return Check{Name: "ccl_parses", Passed: false, Message: fmt.Sprintf("CCL parse error: %v", err)}
	}
	if len(parsed.Statements) > maxConstraints {
		return Check{Name: "ccl_parses", Passed: false,
			Message: fmt.Sprintf("constraints exceed maximum of %d statements", maxConstraints)}
	}
	return Check{Name: "ccl_parses", Passed: true,
		Message: fmt.Sprintf("CCL parsed successfully (%d statement(s))", len(parsed.Statements))}
}

func checkChainDepth(chain *ChainReference, maxDepth int) Check {
	if chain == nil {
		return Check{Name: "chain_depth", Passed: true, Message: "No chain reference present"}
	}
	ok := chain.Depth >= 1 && chain.Depth <= maxDepth
	msg := fmt.Sprintf("Chain depth %d is within limit", chain.Depth)
	if !ok {
		msg = fmt.Sprintf("Chain depth %d exceeds maximum of %d", chain.Depth, maxDepth)
	}
	return Check{Name: "chain_depth", Passed: ok, Message: msg}
}

func checkDocumentSize(doc *Document, maxSize int) Check {
	serialized, err := json.Marshal(doc)
	size := len(serialized)
	if err != nil {
		size = maxSize + 1
	}
	ok := size <= maxSize
	msg := fmt.Sprintf("Document size %d bytes is within limit", size)
	if !ok {
		msg = fmt.Sprintf("Document size %d bytes exceeds maximum of %d", size, maxSize)
	}
	return Check{Name: "document_size", Passed: ok, Message: msg}
}

func checkCountersignatures(doc *Document, canonical []byte) Check {
	if len(doc.Countersignatures) == 0 {
		return Check{Name: "countersignatures", Passed: true, Message: "No countersignatures present"}
	}
	if canonical == nil {
		return Check{Name: "countersignatures", Passed: false, Message: "Could not canonicalize document"}
	}

	var failedSigners []string
	for _, cs := range doc.Countersignatures {
		if !crypto.VerifyHex(canonical, cs.Signature, cs.SignerPublicKey) {
			truncated := cs.SignerPublicKey
			if len(truncated) > 16 {
				truncated = truncated[:16] + "..."
			}
			failedSigners = append(failedSigners, truncated)
		}
	}

	if len(failedSigners) == 0 {
		return Check{Name: "countersignatures", Passed: true,
			Message: fmt.Sprintf("All %d countersignature(s) are valid", len(doc.Countersignatures))}
	}
	return Check{Name: "countersignatures", Passed: false,
		Message: fmt.Sprintf("Invalid countersignature(s) from: %v", failedSigners)}
}

func checkNoncePresent(nonce string) Check {
	if nonce == "" {
		return Check{Name: "nonce_present", Passed: false, Message: "Nonce is missing or empty"}
	}
	if len(nonce) != 64 {
		return Check{Name: "nonce_present", Passed: false,
			Message: fmt.Sprintf("Nonce is malformed: expected 64-char hex string, got %d chars", len(nonce))}
	}
	if _, err := hex.DecodeString(nonce); err != nil {
		return Check{Name: "nonce_present", Passed: false, Message: "Nonce is malformed: not valid hex"}
	}
	return Check{Name: "nonce_present", Passed: true, Message: "Nonce is present and valid (64-char hex)"}
}
