package llm

import (
	"context"
	"encoding/json"
)

// Provider abstracts the LLM behind the interview generator and the
// synthesis writer. Both consumers do single-turn structured generation:
// one request, one schema-validated JSON object back.
type Provider interface {
	// Generate sends a prompt and returns the response. When the
	// request carries a Schema the provider uses its native structured
	// output mechanism and the returned Content is the validated JSON.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the configured model identifier.
	ModelID() string
}

// Request describes what to send to the LLM.
type Request struct {
	// System sets the LLM's role and constraints. The interviewer and
	// the synthesis writer each bring their own.
	System string

	// Messages is the conversation. Generation here is single-turn, so
	// in practice this holds one user message carrying the transcript.
	Messages []Message

	// Schema, when set, is the JSON Schema the response must conform
	// to. When nil, Content comes back as raw text.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature in 0.0-1.0; zero means deterministic.
	Temperature float64
}

// Message is a single conversation turn.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema defines the JSON structure expected from the LLM.
type Schema struct {
	// Name identifies the schema (tool name for Anthropic, schema name
	// for OpenAI). Kebab-case: "interview-question",
	// "assessment-summary".
	Name string

	// Description is sent to the LLM to guide generation.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Response holds the LLM's output.
type Response struct {
	// Content is the generated output: validated JSON when the request
	// carried a Schema, raw text otherwise.
	Content json.RawMessage

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// StopReason is normalized to "end" or "max_tokens".
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
