package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func testSchema() *Schema {
	return &Schema{
		Name:        "test-object",
		Description: "A test object",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"company": map[string]any{"type": "string"},
				"score":   map[string]any{"type": "integer", "minimum": 0},
				"tier":    map[string]any{"type": "string", "enum": []any{"Leader", "Adopter", "Emerging"}},
			},
			"required": []any{"company", "score"},
		},
	}
}

func TestValidateJSON_ValidJSON(t *testing.T) {
	raw := json.RawMessage(`{"company":"Acme","score":72,"tier":"Adopter"}`)
	err := validateJSON(testSchema(), raw)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateJSON_ValidWithoutOptional(t *testing.T) {
	raw := json.RawMessage(`{"company":"Acme","score":55}`)
	err := validateJSON(testSchema(), raw)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateJSON_MissingRequired(t *testing.T) {
	raw := json.RawMessage(`{"company":"Acme"}`)
	err := validateJSON(testSchema(), raw)
	if err == nil {
		t.Fatal("expected error for missing required field")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateJSON_WrongType(t *testing.T) {
	raw := json.RawMessage(`{"company":"Acme","score":"high"}`)
	err := validateJSON(testSchema(), raw)
	if err == nil {
		t.Fatal("expected error for wrong type")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateJSON_InvalidEnum(t *testing.T) {
	raw := json.RawMessage(`{"company":"Acme","score":72,"tier":"Laggard"}`)
	err := validateJSON(testSchema(), raw)
	if err == nil {
		t.Fatal("expected error for invalid enum value")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateJSON_MalformedJSON(t *testing.T) {
	raw := json.RawMessage(`{not json}`)
	err := validateJSON(testSchema(), raw)
	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateJSON_EmptyResponse(t *testing.T) {
	raw := json.RawMessage(``)
	err := validateJSON(testSchema(), raw)
	if err == nil {
		t.Fatal("expected error for empty response")
	}
}

func TestValidateJSON_NilSchema(t *testing.T) {
	raw := json.RawMessage(`{"anything":"goes"}`)
	err := validateJSON(nil, raw)
	if err != nil {
		t.Fatalf("expected no error with nil schema, got: %v", err)
	}
}

func TestValidateJSON_NestedObjects(t *testing.T) {
	schema := &Schema{
		Name:        "test-nested",
		Description: "Nested test",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"profile": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"company": map[string]any{"type": "string"},
					},
					"required": []any{"company"},
				},
				"scores": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "integer"},
				},
			},
			"required": []any{"profile", "scores"},
		},
	}

	valid := json.RawMessage(`{"profile":{"company":"Acme"},"scores":[20,15,18]}`)
	if err := validateJSON(schema, valid); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	invalid := json.RawMessage(`{"profile":{"company":"Acme"},"scores":["not","ints"]}`)
	if err := validateJSON(schema, invalid); err == nil {
		t.Fatal("expected error for wrong array item type")
	}
}
