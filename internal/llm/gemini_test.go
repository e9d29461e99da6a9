package llm

import (
	"testing"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.0-flash"},
		{"gemini-pro", "gemini-2.0-pro"},
		{"gemini-2.0-flash", "gemini-2.0-flash"}, // Pass-through
	}
	for _, tt := range tests {
		got := resolveModel(tt.input, geminiModels)
		if got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestBuildGeminiSchema(t *testing.T) {
	// The interview-question shape, which is what this conversion
	// exists for: Gemini takes a genai.Schema, not raw JSON Schema.
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"texte":      map[string]any{"type": "string"},
			"duree":      map[string]any{"type": "integer"},
			"complexite": map[string]any{"type": "string", "enum": []any{"simple", "moyenne", "approfondie"}},
			"points_forts": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required": []any{"texte", "complexite"},
	}

	schema := buildGeminiSchema(def)

	if schema.Type != "OBJECT" {
		t.Fatalf("expected OBJECT type, got %s", schema.Type)
	}
	if len(schema.Properties) != 4 {
		t.Fatalf("expected 4 properties, got %d", len(schema.Properties))
	}
	if schema.Properties["texte"].Type != "STRING" {
		t.Fatalf("expected STRING for texte, got %s", schema.Properties["texte"].Type)
	}
	if schema.Properties["duree"].Type != "INTEGER" {
		t.Fatalf("expected INTEGER for duree, got %s", schema.Properties["duree"].Type)
	}
	if len(schema.Properties["complexite"].Enum) != 3 {
		t.Fatalf("expected 3 enum values, got %d", len(schema.Properties["complexite"].Enum))
	}
	if schema.Properties["points_forts"].Type != "ARRAY" {
		t.Fatalf("expected ARRAY for points_forts, got %s", schema.Properties["points_forts"].Type)
	}
	if schema.Properties["points_forts"].Items.Type != "STRING" {
		t.Fatalf("expected STRING for points_forts items, got %s", schema.Properties["points_forts"].Items.Type)
	}
	if len(schema.Required) != 2 {
		t.Fatalf("expected 2 required fields, got %d", len(schema.Required))
	}
}
