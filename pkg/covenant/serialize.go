package covenant

import (
	"encoding/json"

	"github.com/covenantlabs/covenant-core/pkg/covenanterr"
)

// SerializeCovenant renders doc as a pretty-printed JSON string, matching
// the wire format callers persist and transmit.
func SerializeCovenant(doc *Document) (string, error) {
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", covenanterr.Wrap(covenanterr.SerializationError, err, "serialize covenant")
	}
	return string(out), nil
}

// DeserializeCovenant parses a JSON string into a Document without schema
// validation. Callers taking input from an untrusted wire boundary should
// use IngestCovenant instead, which validates shape before unmarshaling.
func DeserializeCovenant(data string) (Document, error) {
	var doc Document
	if err := json.Unmarshal([]byte(data), &doc); err != nil {
		return Document{}, covenanterr.Wrap(covenanterr.SerializationError, err, "deserialize covenant")
	}
	return doc, nil
}
