package synonyms

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// tableSchema is the JSON Schema every synonym table document must satisfy:
// an object keyed first by category, then by canonical skill name, each
// mapping to a non-empty list of synonym strings.
const tableSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "title": "SynonymTable",
  "type": "object",
  "additionalProperties": {
    "type": "object",
    "additionalProperties": {
      "type": "array",
      "items": {"type": "string", "minLength": 1},
      "minItems": 1
    }
  }
}`

// ValidationError reports synonym table documents that fail schema validation.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("synonym table validation failed:\n")
	for i, msg := range e.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, msg))
	}
	return sb.String()
}

// validateTableDocument validates a raw JSON document against the table schema.
func validateTableDocument(data []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(tableSchema)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("failed to validate synonym table: %w", err)
	}

	if !result.Valid() {
		ve := &ValidationError{}
		for _, desc := range result.Errors() {
			ve.Errors = append(ve.Errors, fmt.Sprintf("%s: %s", desc.Field(), desc.Description()))
		}
		return ve
	}

	return nil
}
