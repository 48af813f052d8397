package covenant

import (
	"github.com/Masterminds/semver/v3"

	"github.com/covenantlabs/covenant-core/pkg/covenanterr"
)

// supportedProtocolVersion pins the major protocol line this implementation
// understands; ProtocolVersion documents are always accepted, ingested
// documents from other producers are range-checked against it.
var supportedProtocolVersion = semver.MustParse(ProtocolVersion)

// ValidateProtocolVersion parses version as a semantic version and checks it
// shares supportedProtocolVersion's major line. Used at the wire-ingest
// boundary (IngestCovenant) rather than as an eleventh verification check,
// since version compatibility is a precondition for verifying at all, not a
// property of an already-typed document.
func ValidateProtocolVersion(version string) error {
	v, err := semver.NewVersion(version)
	if err != nil {
		return covenanterr.Wrap(covenanterr.InvalidInput, err, "protocol version %q is not a valid semantic version", version)
	}
	if v.Major() != supportedProtocolVersion.Major() {
		return covenanterr.New(covenanterr.InvalidInput,
			"protocol version %s is incompatible with supported major version %d", version, supportedProtocolVersion.Major())
	}
	return nil
}
