package identity

import (
	"encoding/json"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/covenantlabs/covenant-core/pkg/covenanterr"
)

const identitySchemaSource = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"required": ["id", "operatorPublicKey", "model", "capabilities", "deployment", "version", "lineage", "signature", "createdAt"],
	"properties": {
		"id": {"type": "string", "minLength": 1},
		"operatorPublicKey": {"type": "string", "minLength": 1},
		"model": {
			"type": "object",
			"required": ["provider", "modelId"],
			"properties": {
				"provider": {"type": "string", "minLength": 1},
				"modelId": {"type": "string", "minLength": 1}
			}
		},
		"capabilities": {"type": "array", "minItems": 1, "items": {"type": "string"}},
		"deployment": {
			"type": "object",
			"required": ["runtime"],
			"properties": {
				"runtime": {"type": "string", "minLength": 1}
			}
		},
		"version": {"type": "integer", "minimum": 1},
		"lineage": {
			"type": "array",
			"minItems": 1,
			"items": {
				"type": "object",
				"required": ["identityHash", "changeType", "description", "timestamp"],
				"properties": {
					"identityHash": {"type": "string", "minLength": 1},
					"parentHash": {"type": "string"},
					"changeType": {"type": "string", "minLength": 1},
					"description": {"type": "string"},
					"timestamp": {"type": "string", "minLength": 1}
				}
			}
		},
		"signature": {"type": "string", "minLength": 1},
		"createdAt": {"type": "string", "minLength": 1}
	}
}`

const identitySchemaURL = "https://covenantlabs.dev/schemas/identity.schema.json"

var (
	compileIdentitySchemaOnce sync.Once
	compiledIdentitySchema    *jsonschema.Schema
	compileIdentitySchemaErr  error
)

func identitySchema() (*jsonschema.Schema, error) {
	compileIdentitySchemaOnce.Do(func() {
		c := jsonschema.NewCompiler()
		c.Draft = jsonschema.Draft2020
		if err := c.AddResource(identitySchemaURL, strings.NewReader(identitySchemaSource)); err != nil {
			compileIdentitySchemaErr = covenanterr.Wrap(covenanterr.InvalidInput, err, "load identity schema")
			return
		}
		compiled, err := c.Compile(identitySchemaURL)
		if err != nil {
			compileIdentitySchemaErr = covenanterr.Wrap(covenanterr.InvalidInput, err, "compile identity schema")
			return
		}
		compiledIdentitySchema = compiled
	})
	return compiledIdentitySchema, compileIdentitySchemaErr
}

// IngestIdentity validates raw JSON against the identity wire schema before
// unmarshaling it into a Document.
func IngestIdentity(raw []byte) (Document, error) {
	schema, err := identitySchema()
	if err != nil {
		return Document{}, err
	}

	var instance any
	if err := json.Unmarshal(raw, &instance); err != nil {
		return Document{}, covenanterr.Wrap(covenanterr.SerializationError, err, "parse identity JSON")
	}

	if err := schema.Validate(instance); err != nil {
		return Document{}, covenanterr.Wrap(covenanterr.InvalidInput, err, "identity failed schema validation")
	}

	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return Document{}, covenanterr.Wrap(covenanterr.SerializationError, err, "unmarshal identity")
	}
	return doc, nil
}
