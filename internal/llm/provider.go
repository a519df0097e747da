// Package llm abstracts the text-generation providers used for action
// plan generation. Consumers depend on the Provider interface; concrete
// clients exist for Gemini, OpenAI, Anthropic and OpenRouter, plus a
// deterministic mock for tests.
package llm

import (
	"context"
	"encoding/json"
)

// Provider is the core abstraction for text generation.
type Provider interface {
	// Generate sends one request and returns structured output. When the
	// request carries a Schema, the returned Content is JSON that has been
	// validated against it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured for.
	ModelID() string
}

// Request describes a single-turn generation request. Plan generation
// never continues a conversation, so there is no message history: one
// system instruction, one user prompt.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Prompt is the user content, typically the rendered assessment
	// summary the plan is generated from.
	Prompt string

	// Schema, when set, makes the provider use its native structured
	// output mechanism and validate the result. When nil, Content is the
	// raw text wrapped as json.RawMessage.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature controls randomness, 0.0 - 1.0. Zero means
	// deterministic.
	Temperature float64
}

// Schema defines the JSON structure expected from the model.
type Schema struct {
	// Name identifies the schema (tool name for Anthropic, schema name
	// for OpenAI). Kebab-case, e.g. "action-plan".
	Name string

	// Description tells the model what the schema represents.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Response holds the model's output.
type Response struct {
	// Content is the generated output, schema-validated JSON when the
	// request carried a Schema.
	Content json.RawMessage

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end", "max_tokens" or "error".
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
