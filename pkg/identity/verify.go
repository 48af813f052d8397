package identity

import (
	"fmt"
	"log/slog"

	"github.com/covenantlabs/covenant-core/pkg/crypto"
)

// VerifyIdentity checks id_match, signature_valid, lineage_chain, and
// version_match. Like covenant verification, this never errors on
// malformed input — it reports a failed check instead.
func VerifyIdentity(doc *Document) VerificationResult {
	var checks []Check

	body, bodyErr := identityBody(doc)

	// 1. id_match
	expectedID := ""
	if bodyErr == nil {
		expectedID, _ = computeIdentityHash(body)
	}
	idMatch := bodyErr == nil && doc.ID == expectedID
	checks = append(checks, Check{
		Name:   "id_match",
		Passed: idMatch,
		Message: func() string {
			if idMatch {
				return "Identity ID matches hash"
			}
			return fmt.Sprintf("ID mismatch: expected %s, got %s", expectedID, doc.ID)
		}(),
	})

	// 2. signature_valid
	sigValid := false
	if bodyErr == nil {
		if signingPayload, err := crypto.CanonicalizeJSON(body); err == nil {
			sigValid = crypto.VerifyHex(signingPayload, doc.Signature, doc.OperatorPublicKey)
		}
	}
	checks = append(checks, Check{
		Name:   "signature_valid",
		Passed: sigValid,
		Message: func() string {
			if sigValid {
				return "Operator signature is valid"
			}
			return "Operator signature verification failed"
		}(),
	})

	// 3. lineage_chain
	checks = append(checks, checkLineageChain(doc.Lineage))

	// 4. version_match
	versionMatch := doc.Version == len(doc.Lineage)
	checks = append(checks, Check{
		Name:   "version_match",
		Passed: versionMatch,
		Message: func() string {
			if versionMatch {
				return fmt.Sprintf("Version %d matches lineage length", doc.Version)
			}
			return fmt.Sprintf("Version %d does not match lineage length %d", doc.Version, len(doc.Lineage))
		}(),
	})

	valid := true
	for _, c := range checks {
		if !c.Passed {
			valid = false
			break
		}
	}

	result := VerificationResult{Valid: valid, Checks: checks}
	if !valid {
		slog.Warn("identity verification failed", "id", doc.ID, "first_failed", result.FirstFailed())
	}
	return result
}

func checkLineageChain(lineage []LineageEntry) Check {
	for i := 1; i < len(lineage); i++ {
		expectedParent := lineage[i-1].IdentityHash
		if lineage[i].ParentHash == "" {
			return Check{Name: "lineage_chain", Passed: false,
				Message: fmt.Sprintf("Lineage entry %d has no parent hash", i)}
		}
		if lineage[i].ParentHash != expectedParent {
			return Check{Name: "lineage_chain", Passed: false,
				Message: fmt.Sprintf("Lineage break at entry %d: expected parent %s, got %s", i, expectedParent, lineage[i].ParentHash)}
		}
	}
	return Check{Name: "lineage_chain", Passed: true, Message: "Lineage chain is valid"}
}
