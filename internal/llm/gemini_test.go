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
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"isCorrect": map[string]any{"type": "boolean"},
			"message":   map[string]any{"type": "string"},
			"mood":      map[string]any{"type": "string", "enum": []any{"happy", "calm"}},
			"stickers": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required": []any{"isCorrect", "message"},
	}

	schema := buildGeminiSchema(def)

	if schema.Type != "OBJECT" {
		t.Fatalf("expected OBJECT type, got %s", schema.Type)
	}
	if len(schema.Properties) != 4 {
		t.Fatalf("expected 4 properties, got %d", len(schema.Properties))
	}
	if schema.Properties["isCorrect"].Type != "BOOLEAN" {
		t.Fatalf("expected BOOLEAN for isCorrect, got %s", schema.Properties["isCorrect"].Type)
	}
	if schema.Properties["message"].Type != "STRING" {
		t.Fatalf("expected STRING for message, got %s", schema.Properties["message"].Type)
	}
	if len(schema.Properties["mood"].Enum) != 2 {
		t.Fatalf("expected 2 enum values, got %d", len(schema.Properties["mood"].Enum))
	}
	if schema.Properties["stickers"].Items.Type != "STRING" {
		t.Fatalf("expected STRING for stickers items, got %s", schema.Properties["stickers"].Items.Type)
	}
	if len(schema.Required) != 2 {
		t.Fatalf("expected 2 required fields, got %d", len(schema.Required))
	}
}
