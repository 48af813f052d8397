package identity

import (
	"encoding/json"

	"github.com/covenantlabs/covenant-core/pkg/covenanterr"
)

// SerializeIdentity renders doc as a pretty-printed JSON string.
func SerializeIdentity(doc *Document) (string, error) {
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", covenanterr.Wrap(covenanterr.SerializationError, err, "serialize identity")
	}
	return string(out), nil
}

// DeserializeIdentity parses a JSON string into a Document without schema
// validation. Callers taking input from an untrusted wire boundary should
// use IngestIdentity instead.
func DeserializeIdentity(data string) (Document, error) {
	var doc Document
	if err := json.Unmarshal([]byte(data), &doc); err != nil {
		return Document{}, covenanterr.Wrap(covenanterr.SerializationError, err, "deserialize identity")
	}
	return doc, nil
}
