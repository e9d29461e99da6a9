package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

// questionSchema mirrors the shape the interview generator requests: a
// question text, its theme, and a bounded complexity label.
func questionSchema() *Schema {
	return &Schema{
		Name:        "interview-question",
		Description: "One interview question",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"texte":      map[string]any{"type": "string"},
				"theme":      map[string]any{"type": "string"},
				"complexite": map[string]any{"type": "string", "enum": []any{"simple", "moyenne", "approfondie"}},
			},
			"required": []any{"texte", "theme"},
		},
	}
}

func TestValidateResponse_ValidJSON(t *testing.T) {
	raw := json.RawMessage(`{"texte":"Parlez-moi de votre parcours.","theme":"parcours","complexite":"simple"}`)
	err := validateResponse(questionSchema(), raw)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_ValidWithoutOptional(t *testing.T) {
	raw := json.RawMessage(`{"texte":"Quelles competences utilisez-vous le plus ?","theme":"competences"}`)
	err := validateResponse(questionSchema(), raw)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_MissingRequired(t *testing.T) {
	raw := json.RawMessage(`{"texte":"Une question sans theme"}`)
	err := validateResponse(questionSchema(), raw)
	if err == nil {
		t.Fatal("expected error for missing required field")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_WrongType(t *testing.T) {
	raw := json.RawMessage(`{"texte":42,"theme":"parcours"}`)
	err := validateResponse(questionSchema(), raw)
	if err == nil {
		t.Fatal("expected error for wrong type")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_InvalidEnum(t *testing.T) {
	raw := json.RawMessage(`{"texte":"Question","theme":"parcours","complexite":"impossible"}`)
	err := validateResponse(questionSchema(), raw)
	if err == nil {
		t.Fatal("expected error for invalid enum value")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_MalformedJSON(t *testing.T) {
	raw := json.RawMessage(`{not json}`)
	err := validateResponse(questionSchema(), raw)
	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_EmptyResponse(t *testing.T) {
	raw := json.RawMessage(``)
	err := validateResponse(questionSchema(), raw)
	if err == nil {
		t.Fatal("expected error for empty response")
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	raw := json.RawMessage(`{"anything":"goes"}`)
	err := validateResponse(nil, raw)
	if err != nil {
		t.Fatalf("expected no error with nil schema, got: %v", err)
	}
}

func TestValidateResponse_NestedObjects(t *testing.T) {
	// The synthesis shape: summary text nested in an object, strengths
	// as a string array.
	schema := &Schema{
		Name:        "assessment-summary-nested",
		Description: "Nested synthesis shape",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"synthese": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"texte": map[string]any{"type": "string"},
					},
					"required": []any{"texte"},
				},
				"points_forts": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
			},
			"required": []any{"synthese", "points_forts"},
		},
	}

	valid := json.RawMessage(`{"synthese":{"texte":"Un parcours solide en logistique."},"points_forts":["rigueur","organisation"]}`)
	if err := validateResponse(schema, valid); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	invalid := json.RawMessage(`{"synthese":{"texte":"Un parcours solide."},"points_forts":[1,2]}`)
	if err := validateResponse(schema, invalid); err == nil {
		t.Fatal("expected error for wrong array item type")
	}
}
