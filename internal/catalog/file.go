package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/abhisek/mathgenius/internal/tutor"
)

// catalogSchema is the JSON Schema a user-supplied catalog file must satisfy.
// Structural validation happens here; semantic checks (duplicate names,
// trait ranges, template presence) happen in Validate afterwards.
var catalogSchema = map[string]any{
	"type":     "array",
	"minItems": 1,
	"items": map[string]any{
		"type":     "object",
		"required": []any{"name", "responses"},
		"properties": map[string]any{
			"name": map[string]any{"type": "string", "minLength": 1},
			"traits": map[string]any{
				"type":                 "object",
				"additionalProperties": map[string]any{"type": "number"},
			},
			"preferredStyle": map[string]any{
				"type": "string",
				"enum": []any{"visual", "auditory", "kinesthetic", "readingWriting", "multimodal"},
			},
			"strategies": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
					"enum": []any{
						"directInstruction", "scaffolding", "socraticMethod",
						"storytelling", "realWorldApplication", "gamification",
						"guidedDiscovery",
					},
				},
			},
			"responses": map[string]any{
				"type":                 "object",
				"minProperties":        1,
				"additionalProperties": map[string]any{"type": "string"},
			},
		},
	},
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

func compiled() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value, not raw
		// bytes. Marshal then unmarshal to get a clean representation.
		b, err := json.Marshal(catalogSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal catalog schema: %w", err)
			return
		}
		var parsed any
		if err := json.Unmarshal(b, &parsed); err != nil {
			compileErr = fmt.Errorf("parse catalog schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const url = "schema://personality-catalog.json"
		if err := c.AddResource(url, parsed); err != nil {
			compileErr = fmt.Errorf("add schema resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(url)
	})
	return compiledSchema, compileErr
}

// LoadFile reads a personality catalog from a JSON file, validating it
// against the catalog schema and the catalog invariants before returning.
// Load-time validation keeps the loosely-typed responses map from producing
// surprises at response time.
func LoadFile(path string) ([]tutor.Personality, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("catalog file is not valid JSON: %w", err)
	}

	schema, err := compiled()
	if err != nil {
		return nil, err
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("catalog file failed schema validation: %w", err)
	}

	var list []tutor.Personality
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("decode catalog file: %w", err)
	}
	if err := Validate(list); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}
	return list, nil
}
