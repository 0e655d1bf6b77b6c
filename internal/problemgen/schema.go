package problemgen

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Schema is a named JSON Schema definition.
type Schema struct {
	// Name identifies this schema, e.g. "math-problem".
	Name string

	// Description is a human-readable description of what this schema
	// represents.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

var answerValue = map[string]any{"type": []any{"number", "string"}}

var intField = map[string]any{"type": "integer"}

// ProblemSchema is the wire contract between the generator and every
// consumer that renders, stores or re-checks a problem.
var ProblemSchema = &Schema{
	Name:        "math-problem",
	Description: "A generated math problem with its canonical and acceptable answers",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"id":         map[string]any{"type": "string", "minLength": 1},
			"topic":      map[string]any{"type": "string", "enum": topicEnum()},
			"yearLevel":  map[string]any{"type": "integer", "minimum": int(MinYearLevel), "maximum": int(MaxYearLevel)},
			"difficulty": map[string]any{"type": "string", "enum": []any{"easy", "medium", "hard", "challenge"}},
			"question":   map[string]any{"type": "string", "minLength": 1},
			"answer":     answerValue,
			"acceptableAnswers": map[string]any{
				"type":  "array",
				"items": answerValue,
			},
			"hint":        map[string]any{"type": "string"},
			"explanation": map[string]any{"type": "string"},
			"steps": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"description": map[string]any{"type": "string"},
						"formula":     map[string]any{"type": "string"},
						"result":      map[string]any{"type": "string"},
					},
					"required":             []any{"description"},
					"additionalProperties": false,
				},
			},
			"numbers": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"num1":     intField,
					"num2":     intField,
					"operator": map[string]any{"type": "string"},
				},
				"required": []any{"num1", "num2", "operator"},
			},
			"dimensions": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"length": intField,
					"width":  intField,
				},
				"required": []any{"length", "width"},
			},
			"clockTime": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"hours":   map[string]any{"type": "integer", "minimum": 1, "maximum": 12},
					"minutes": map[string]any{"type": "integer", "minimum": 0, "maximum": 59},
				},
				"required": []any{"hours", "minutes"},
			},
			"visualContent":   map[string]any{"type": "string"},
			"visualType":      map[string]any{"type": "string"},
			"interactiveType": map[string]any{"type": "string"},
			"display": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"num1":   intField,
					"num2":   intField,
					"groups": intField,
					"factor": map[string]any{"type": "number"},
				},
			},
		},
		"required":             []any{"id", "topic", "yearLevel", "difficulty", "question", "answer"},
		"additionalProperties": false,
	},
}

func topicEnum() []any {
	out := make([]any, 0, len(AllTopics()))
	for _, t := range AllTopics() {
		out = append(out, string(t))
	}
	return out
}

// SchemaError indicates a document that does not conform to a Schema.
type SchemaError struct {
	Schema string
	Err    error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("invalid %s document: %v", e.Schema, e.Err)
}

func (e *SchemaError) Unwrap() error { return e.Err }

// DecodeProblem validates raw JSON against ProblemSchema and decodes it.
func DecodeProblem(raw []byte) (*Problem, error) {
	if err := validateDocument(ProblemSchema, raw); err != nil {
		return nil, err
	}
	var p Problem
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decode problem: %w", err)
	}
	return &p, nil
}

// schemaCache caches compiled JSON schemas by name.
var schemaCache sync.Map // map[string]*jsonschema.Schema

// validateDocument validates raw JSON against the given Schema.
// Returns *SchemaError on failure.
func validateDocument(schema *Schema, raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return &SchemaError{Schema: schema.Name, Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	compiled, err := getCompiledSchema(schema)
	if err != nil {
		return &SchemaError{Schema: schema.Name, Err: fmt.Errorf("compile schema: %w", err)}
	}

	if err := compiled.Validate(parsed); err != nil {
		return &SchemaError{Schema: schema.Name, Err: err}
	}
	return nil
}

// getCompiledSchema returns a cached compiled schema or compiles and caches it.
func getCompiledSchema(schema *Schema) (*jsonschema.Schema, error) {
	if cached, ok := schemaCache.Load(schema.Name); ok {
		return cached.(*jsonschema.Schema), nil
	}

	// The jsonschema library expects a parsed JSON value (any), not Go maps
	// with typed slices. Marshal then unmarshal to get a clean representation.
	defBytes, err := json.Marshal(schema.Definition)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	schemaURL := fmt.Sprintf("schema://%s.json", schema.Name)
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}

	compiled, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}

	schemaCache.Store(schema.Name, compiled)
	return compiled, nil
}
