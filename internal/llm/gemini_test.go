package llm

import (
	"testing"

	"google.golang.org/genai"
)

func TestToGeminiSchema(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question": map[string]any{"type": "string", "description": "prompt text"},
			"type":     map[string]any{"type": "string", "enum": []string{"BASIC_CLOZE", "VOCAB_CHOICE"}},
			"options": map[string]any{
				"type":     "array",
				"items":    map[string]any{"type": "string"},
				"minItems": 2,
			},
		},
		"required": []string{"question", "type"},
	}

	s := toGeminiSchema(def)
	if s.Type != genai.TypeObject {
		t.Fatalf("Type = %s, want OBJECT", s.Type)
	}
	if len(s.Properties) != 3 {
		t.Fatalf("properties = %d, want 3", len(s.Properties))
	}
	if got := s.Properties["question"].Description; got != "prompt text" {
		t.Errorf("description = %q", got)
	}
	if got := len(s.Properties["type"].Enum); got != 2 {
		t.Errorf("enum values = %d, want 2", got)
	}
	opts := s.Properties["options"]
	if opts.Type != genai.TypeArray || opts.Items.Type != genai.TypeString {
		t.Errorf("options = %s of %s, want ARRAY of STRING", opts.Type, opts.Items.Type)
	}
	if opts.MinItems == nil || *opts.MinItems != 2 {
		t.Errorf("MinItems = %v, want 2", opts.MinItems)
	}
	if len(s.Required) != 2 {
		t.Errorf("required = %d, want 2", len(s.Required))
	}
}

func TestToGeminiSchema_UnknownTypeDefaultsToString(t *testing.T) {
	s := toGeminiSchema(map[string]any{"type": "null"})
	if s.Type != genai.TypeString {
		t.Errorf("Type = %s, want STRING", s.Type)
	}
}
