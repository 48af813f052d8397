package covenant

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateProtocolVersion_AcceptsCurrent(t *testing.T) {
	assert.NoError(t, ValidateProtocolVersion(ProtocolVersion))
}

func TestValidateProtocolVersion_AcceptsSameMajorLine(t *testing.T) {
	assert.NoError(t, ValidateProtocolVersion("1.3.0"))
}

func TestValidateProtocolVersion_RejectsDifferentMajor(t *testing.T) {
	assert.Error(t, ValidateProtocolVersion("2.0.0"))
}

func TestValidateProtocolVersion_RejectsGarbage(t *testing.T) {
	assert.Error(t, ValidateProtocolVersion("not-a-version"))
}

func TestIngestCovenant_RejectsIncompatibleProtocolVersion(t *testing.T) {
	doc, _ := buildTestCovenant(t)
	doc.Version = "2.0.0"
	serialized, err := SerializeCovenant(&doc)
	assert.NoError(t, err)

	_, err = IngestCovenant([]byte(serialized))
	assert.Error(t, err)
}
