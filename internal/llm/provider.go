package llm

import (
	"context"
	"encoding/json"
)

// Provider is the core abstraction for text-generation interaction.
// The generation pipeline only ever talks to this interface; concrete
// providers (Gemini, OpenAI, Anthropic, OpenRouter) are injected at
// construction time so nothing in the pipeline depends on process-wide
// client state.
type Provider interface {
	// Generate sends a prompt to the model and returns its reply.
	// When the request carries a Schema, the provider uses its native
	// structured-output mechanism and the response Content is the
	// validated JSON. Exactly one upstream call is made per invocation.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes what to send to the model.
type Request struct {
	// System is the system prompt. Sets the model's role and constraints.
	System string

	// Messages is the conversation history. For single-turn generation
	// (the only case in this pipeline) this contains one user message.
	Messages []Message

	// Schema is the JSON Schema the response must conform to.
	// When set, the provider uses its native structured output mechanism.
	// When nil, the response Content is the raw text reply.
	Schema *Schema

	// MaxTokens is the maximum number of tokens in the response.
	MaxTokens int

	// Temperature controls randomness. Range: 0.0 - 1.0.
	Temperature float64
}

// Message represents a single message in the conversation.
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

// Schema defines the JSON structure expected from the model.
type Schema struct {
	// Name identifies this schema (used as the schema name for OpenAI,
	// tool name for Anthropic). Kebab-case, e.g. "answer-feedback".
	Name string

	// Description is sent to the model to guide generation.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Response holds the model's output.
type Response struct {
	// Content is the generated output. With a Schema in the request this
	// is the validated JSON object; without one it is the raw text reply,
	// markdown fences and all.
	Content json.RawMessage

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// StopReason indicates why generation stopped.
	// Normalized to: "end", "max_tokens", "error"
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
