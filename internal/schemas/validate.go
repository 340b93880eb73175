// Package schemas provides advisory JSON Schema checks for content
// documents. Storage is schemaless and the projection layer tolerates any
// shape, so these checks never block a write; they only surface suspicious
// field types to the operator during seeding.
package schemas

import (
	"embed"
	"encoding/json"
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed *.schema.json
var schemaFS embed.FS

// Warning is one advisory finding for a document field.
type Warning struct {
	Field   string
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Field, w.Message)
}

// schemaFile maps a document key to its schema file. Project documents share
// one schema regardless of id; public documents get a schema per id.
func schemaFile(collection, id string) string {
	if collection == "projects" {
		return "project.schema.json"
	}
	return id + ".schema.json"
}

// Check validates a document against its advisory schema. Documents without
// a schema, and documents that conform, yield no warnings. A schema that
// fails to load is a real error; shape mismatches come back as warnings.
func Check(collection, id string, data map[string]any) ([]Warning, error) {
	raw, err := schemaFS.ReadFile(schemaFile(collection, id))
	if err != nil {
		// No schema registered for this document.
		return nil, nil
	}

	doc, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal document %s/%s: %w", collection, id, err)
	}

	result, err := gojsonschema.Validate(gojsonschema.NewBytesLoader(raw), gojsonschema.NewBytesLoader(doc))
	if err != nil {
		return nil, fmt.Errorf("failed to load schema for %s/%s: %w", collection, id, err)
	}
	if result.Valid() {
		return nil, nil
	}

	warnings := make([]Warning, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		warnings = append(warnings, Warning{Field: field, Message: desc.Description()})
	}
	return warnings, nil
}
