package validate

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// documentSchema is the wire contract for documents arriving as raw JSON from
// a remote provider. It is intentionally looser than Document(): layout and
// component type are free strings because unknown values there degrade safely
// at composition time, while reasoning enums, id/priority shapes, and the
// confidence range are structural and must hold.
const documentSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["layout", "components", "confidence", "explanation", "reasoning"],
  "properties": {
    "layout": {"type": "string", "minLength": 1},
    "confidence": {"type": "number", "minimum": 0, "maximum": 1},
    "explanation": {"type": "string"},
    "components": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "type", "priority", "visibility"],
        "properties": {
          "id": {"type": "string", "minLength": 1},
          "type": {"type": "string", "minLength": 1},
          "priority": {"type": "integer", "minimum": 1},
          "visibility": {"type": "string", "enum": ["visible", "hidden", "conditional"]},
          "visibilityCondition": {"type": "string"},
          "props": {"type": "object"}
        }
      }
    },
    "reasoning": {
      "type": "object",
      "required": ["intent", "urgency"],
      "properties": {
        "intent": {"type": "string", "enum": ["overview", "investigation", "incident", "escalation", "exploration"]},
        "urgency": {"type": "string", "enum": ["low", "medium", "high", "critical"]},
        "uncertaintyAreas": {"type": "array", "items": {"type": "string"}},
        "hiddenComponents": {
          "type": "array",
          "items": {
            "type": "object",
            "required": ["type", "reason"],
            "properties": {
              "type": {"type": "string"},
              "reason": {"type": "string"}
            }
          }
        }
      }
    }
  }
}`

var schemaLoader = gojsonschema.NewStringLoader(documentSchema)

// DocumentJSON validates raw document JSON against the wire schema before it
// is decoded into model types.
func DocumentJSON(raw []byte) error {
	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return fmt.Errorf("schema validation: %w", err)
	}

	if !result.Valid() {
		violations := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			violations[i] = desc.String()
		}
		return &DocumentError{Violations: violations}
	}
	return nil
}
