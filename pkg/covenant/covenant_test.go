package covenant

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/covenantlabs/covenant-core/pkg/config"
	"github.com/covenantlabs/covenant-core/pkg/crypto"
)

func testParties(t *testing.T) (Party, Party, crypto.KeyPair, crypto.KeyPair) {
	t.Helper()
	issuerKP, err := crypto.GenerateKeyPair()
	require.NoError(t, err)
	beneficiaryKP, err := crypto.GenerateKeyPair()
	require.NoError(t, err)

	issuer := Party{ID: "issuer-1", PublicKey: issuerKP.PublicKeyHex(), Role: "issuer"}
	beneficiary := Party{ID: "beneficiary-1", PublicKey: beneficiaryKP.PublicKeyHex(), Role: "beneficiary"}
	return issuer, beneficiary, issuerKP, beneficiaryKP
}

func buildTestCovenant(t *testing.T) (Document, crypto.KeyPair) {
	t.Helper()
	issuer, beneficiary, issuerKP, _ := testParties(t)
	doc, err := BuildCovenant(BuildOptions{
		Issuer:      issuer,
		Beneficiary: beneficiary,
		Constraints: "permit read on '/data/**'",
		SigningKey:  issuerKP.PrivateKey,
	}, config.DefaultLimits())
	require.NoError(t, err)
	return doc, issuerKP
}

func TestBuildAndVerifyCovenant(t *testing.T) {
	doc, _ := buildTestCovenant(t)

	assert.NotEmpty(t, doc.ID)
	assert.Equal(t, ProtocolVersion, doc.Version)

	result := VerifyCovenant(&doc, config.DefaultLimits())
	assert.True(t, result.Valid, "checks: %+v", result.Checks)
}

func TestBuildCovenant_RejectsEmptyIssuerID(t *testing.T) {
	_, beneficiary, issuerKP, _ := testParties(t)
	_, err := BuildCovenant(BuildOptions{
		Issuer:      Party{PublicKey: issuerKP.PublicKeyHex(), Role: "issuer"},
		Beneficiary: beneficiary,
		Constraints: "permit read on '/data'",
		SigningKey:  issuerKP.PrivateKey,
	}, config.DefaultLimits())
	require.Error(t, err)
}

func TestBuildCovenant_RejectsBadRole(t *testing.T) {
	issuer, beneficiary, issuerKP, _ := testParties(t)
	issuer.Role = "admin"
	_, err := BuildCovenant(BuildOptions{
		Issuer:      issuer,
		Beneficiary: beneficiary,
		Constraints: "permit read on '/data'",
		SigningKey:  issuerKP.PrivateKey,
	}, config.DefaultLimits())
	require.Error(t, err)
}

func TestBuildCovenant_RejectsInvalidCCL(t *testing.T) {
	issuer, beneficiary, issuerKP, _ := testParties(t)
	_, err := BuildCovenant(BuildOptions{
		Issuer:      issuer,
		Beneficiary: beneficiary,
		Constraints: "permit read '/data'", // missing "on"
		SigningKey:  issuerKP.PrivateKey,
	}, config.DefaultLimits())
	require.Error(t, err)
}

func TestBuildCovenant_RejectsTooManyConstraints(t *testing.T) {
	issuer, beneficiary, issuerKP, _ := testParties(t)
	var lines []string
	for i := 0; i < 5; i++ {
		lines = append(lines, "permit read on '/data'")
	}
	limits := config.DefaultLimits()
	limits.MaxConstraints = 2

	_, err := BuildCovenant(BuildOptions{
		Issuer:      issuer,
		Beneficiary: beneficiary,
		Constraints: strings.Join(lines, "\n"),
		SigningKey:  issuerKP.PrivateKey,
	}, limits)
	require.Error(t, err)
}

func TestBuildCovenant_ValidChain(t *testing.T) {
	issuer, beneficiary, issuerKP, _ := testParties(t)
	doc, err := BuildCovenant(BuildOptions{
		Issuer:      issuer,
		Beneficiary: beneficiary,
		Constraints: "permit read on '/data'",
		SigningKey:  issuerKP.PrivateKey,
		Chain:       &ChainReference{ParentID: "parent-1", Relation: "delegates", Depth: 1},
	}, config.DefaultLimits())
	require.NoError(t, err)

	result := VerifyCovenant(&doc, config.DefaultLimits())
	assert.True(t, result.Valid, "checks: %+v", result.Checks)
}

// Scenario 9: Tamper detection.
func TestVerifyCovenant_TamperedSignatureFails(t *testing.T) {
	doc, _ := buildTestCovenant(t)
	doc.Signature = strings.Repeat("0", 128)

	result := VerifyCovenant(&doc, config.DefaultLimits())
	assert.False(t, result.Valid)

	var sigCheck *Check
	for i := range result.Checks {
		if result.Checks[i].Name == "signature_valid" {
			sigCheck = &result.Checks[i]
		}
	}
	require.NotNil(t, sigCheck)
	assert.False(t, sigCheck.Passed)
}

func TestCountersignCovenant(t *testing.T) {
	doc, _ := buildTestCovenant(t)

	auditorKP, err := crypto.GenerateKeyPair()
	require.NoError(t, err)

	signed, err := CountersignCovenant(doc, auditorKP.PrivateKey, "auditor")
	require.NoError(t, err)
	require.Len(t, signed.Countersignatures, 1)
	assert.Empty(t, doc.Countersignatures, "original document must not be mutated")

	result := VerifyCovenant(&signed, config.DefaultLimits())
	assert.True(t, result.Valid, "checks: %+v", result.Checks)
}

func TestSerializeDeserializeCovenant(t *testing.T) {
	doc, _ := buildTestCovenant(t)

	serialized, err := SerializeCovenant(&doc)
	require.NoError(t, err)

	restored, err := DeserializeCovenant(serialized)
	require.NoError(t, err)
	assert.Equal(t, doc.ID, restored.ID)
	assert.Equal(t, doc.Signature, restored.Signature)
}

func TestIngestCovenant_RejectsMalformedPayload(t *testing.T) {
	_, err := IngestCovenant([]byte(`{"version": "1.0"}`))
	require.Error(t, err)
}

func TestIngestCovenant_AcceptsValidPayload(t *testing.T) {
	doc, _ := buildTestCovenant(t)
	serialized, err := SerializeCovenant(&doc)
	require.NoError(t, err)

	ingested, err := IngestCovenant([]byte(serialized))
	require.NoError(t, err)
	assert.Equal(t, doc.ID, ingested.ID)
}

func TestValidateChainNarrowing(t *testing.T) {
	issuer, beneficiary, issuerKP, _ := testParties(t)

	parent, err := BuildCovenant(BuildOptions{
		Issuer:      issuer,
		Beneficiary: beneficiary,
		Constraints: "permit read on '/data/**'",
		SigningKey:  issuerKP.PrivateKey,
	}, config.DefaultLimits())
	require.NoError(t, err)

	child, err := BuildCovenant(BuildOptions{
		Issuer:      issuer,
		Beneficiary: beneficiary,
		Constraints: "permit write on '/data/**'",
		SigningKey:  issuerKP.PrivateKey,
	}, config.DefaultLimits())
	require.NoError(t, err)

	result, err := ValidateChainNarrowing(&child, &parent)
	require.NoError(t, err)
	assert.False(t, result.Valid)
}
