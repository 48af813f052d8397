package covenant

import (
	"encoding/json"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/covenantlabs/covenant-core/pkg/covenanterr"
)

// covenantSchemaSource describes the wire shape of a covenant document: the
// required camelCase fields and their string formats. It gates malformed
// payloads before they reach VerifyCovenant, ahead of dispatch.
const covenantSchemaSource = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"required": ["id", "version", "issuer", "beneficiary", "constraints", "nonce", "createdAt", "signature"],
	"properties": {
		"id": {"type": "string", "minLength": 1},
		"version": {"type": "string", "minLength": 1},
		"issuer": {
			"type": "object",
			"required": ["id", "publicKey", "role"],
			"properties": {
				"id": {"type": "string", "minLength": 1},
				"publicKey": {"type": "string", "minLength": 1},
				"role": {"const": "issuer"}
			}
		},
		"beneficiary": {
			"type": "object",
			"required": ["id", "publicKey", "role"],
			"properties": {
				"id": {"type": "string", "minLength": 1},
				"publicKey": {"type": "string", "minLength": 1},
				"role": {"const": "beneficiary"}
			}
		},
		"constraints": {"type": "string"},
		"nonce": {"type": "string", "minLength": 1},
		"createdAt": {"type": "string", "minLength": 1},
		"signature": {"type": "string", "minLength": 1},
		"chain": {
			"type": "object",
			"required": ["parentId", "relation", "depth"],
			"properties": {
				"parentId": {"type": "string", "minLength": 1},
				"relation": {"type": "string", "minLength": 1},
				"depth": {"type": "integer", "minimum": 1}
			}
		},
		"expiresAt": {"type": "string"},
		"activatesAt": {"type": "string"},
		"countersignatures": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["signerPublicKey", "signerRole", "signature", "timestamp"],
				"properties": {
					"signerPublicKey": {"type": "string", "minLength": 1},
					"signerRole": {"type": "string", "minLength": 1},
					"signature": {"type": "string", "minLength": 1},
					"timestamp": {"type": "string", "minLength": 1}
				}
			}
		}
	}
}`

const covenantSchemaURL = "https://covenantlabs.dev/schemas/covenant.schema.json"

var (
	compileSchemaOnce sync.Once
	compiledSchema    *jsonschema.Schema
	compileSchemaErr  error
)

func covenantSchema() (*jsonschema.Schema, error) {
	compileSchemaOnce.Do(func() {
		c := jsonschema.NewCompiler()
		c.Draft = jsonschema.Draft2020
		if err := c.AddResource(covenantSchemaURL, strings.NewReader(covenantSchemaSource)); err != nil {
			compileSchemaErr = covenanterr.Wrap(covenanterr.InvalidInput, err, "load covenant schema")
			return
		}
		compiled, err := c.Compile(covenantSchemaURL)
		if err != nil {
			compileSchemaErr = covenanterr.Wrap(covenanterr.InvalidInput, err, "compile covenant schema")
			return
		}
		compiledSchema = compiled
	})
	return compiledSchema, compileSchemaErr
}

// IngestCovenant validates raw JSON against the covenant wire schema before
// unmarshaling it into a Document. Use this instead of DeserializeCovenant
// whenever the JSON arrives from an external or untrusted boundary (a store
// entry of unknown provenance, an inbound message) rather than being
// produced in-process by BuildCovenant.
func IngestCovenant(raw []byte) (Document, error) {
	schema, err := covenantSchema()
	if err != nil {
		return Document{}, err
	}

	var instance any
	if err := json.Unmarshal(raw, &instance); err != nil {
		return Document{}, covenanterr.Wrap(covenanterr.SerializationError, err, "parse covenant JSON")
	}

	if err := schema.Validate(instance); err != nil {
		return Document{}, covenanterr.Wrap(covenanterr.InvalidInput, err, "covenant failed schema validation")
	}

	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return Document{}, covenanterr.Wrap(covenanterr.SerializationError, err, "unmarshal covenant")
	}
	if err := ValidateProtocolVersion(doc.Version); err != nil {
		return Document{}, err
	}
	return doc, nil
}
