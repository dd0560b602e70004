package llm

import (
	"math"
	"testing"
)

func TestLookupCost(t *testing.T) {
	tests := []struct {
		model string
		known bool
		input float64
	}{
		{"claude-haiku-4-5", true, 1},
		{"claude-haiku", true, 1},
		{"gemini-flash", true, 0.3},
		{"google/gemini-2.0-flash-001", true, 0.1},
		{"openai/gpt-4o-mini", true, 0.15},
		{"mock", false, 0},
	}
	for _, tt := range tests {
		c := LookupCost(tt.model)
		if (c != nil) != tt.known {
			t.Errorf("LookupCost(%q) known = %v, want %v", tt.model, c != nil, tt.known)
			continue
		}
		if c != nil && c.InputPerMTok != tt.input {
			t.Errorf("LookupCost(%q).InputPerMTok = %v, want %v", tt.model, c.InputPerMTok, tt.input)
		}
	}
}

func TestModelCost(t *testing.T) {
	c := ModelCost{InputPerMTok: 3, OutputPerMTok: 15}
	got := c.Cost(1_000_000, 100_000)
	if math.Abs(got-4.5) > 1e-9 {
		t.Errorf("Cost = %v, want 4.5", got)
	}
}
