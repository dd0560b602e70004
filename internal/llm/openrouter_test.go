package llm

import "testing"

func TestNewOpenRouterProvider(t *testing.T) {
	p, err := NewOpenRouterProvider(ProviderConfig{APIKey: "sk-or-test", Model: "google/gemini-2.0-flash-001"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ModelID() != "google/gemini-2.0-flash-001" {
		t.Errorf("ModelID() = %q", p.ModelID())
	}

	if _, err := NewOpenRouterProvider(ProviderConfig{Model: "x"}); err == nil {
		t.Error("expected error without API key")
	}
}
