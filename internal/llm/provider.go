package llm

import (
	"context"
	"encoding/json"
)

// Provider sends a prompt to a language model and returns structured output.
type Provider interface {
	// Generate runs one completion. When req.Schema is set the provider
	// asks the model for JSON matching it and validates the result before
	// returning; Response.Content is then the validated JSON document.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model this provider is configured for.
	ModelID() string
}

// Request is a single completion request.
type Request struct {
	System   string
	Messages []Message

	// Schema, when non-nil, switches the provider to structured JSON output.
	Schema *Schema

	MaxTokens   int
	Temperature float64 // 0 leaves the provider default in place
}

// Message is one conversation turn.
type Message struct {
	Role    Role
	Content string
}

// Role is the sender of a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// UserPrompt builds a single-turn request.
func UserPrompt(system, user string) Request {
	return Request{
		System:   system,
		Messages: []Message{{Role: RoleUser, Content: user}},
	}
}

// Schema is a named JSON Schema for structured output.
type Schema struct {
	// Name is a kebab-case identifier, used as the OpenAI schema name and
	// as the key of the compiled-schema cache.
	Name        string
	Description string
	Definition  map[string]any
}

// Response is the output of a completion.
type Response struct {
	Content    json.RawMessage
	Usage      Usage
	Model      string
	StopReason string // StopEnd or StopMaxTokens
}

// Normalized stop reasons.
const (
	StopEnd       = "end"
	StopMaxTokens = "max_tokens"
)

// Usage is the token accounting of one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

func usage(in, out int) Usage {
	return Usage{InputTokens: in, OutputTokens: out, TotalTokens: in + out}
}
