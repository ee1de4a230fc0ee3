// Package llm provides the chat-completion client used for habit suggestions
// and diary summaries. The provider is a black-box collaborator: callers are
// expected to degrade to built-in fallbacks on any error.
package llm

import (
	"context"
)

// Client defines the interface for text-generation providers.
type Client interface {
	// Complete sends one system/user prompt pair and returns the raw
	// completion text. Non-2xx responses and malformed bodies are errors.
	Complete(ctx context.Context, system, user string) (string, error)
}

// Config holds provider settings.
type Config struct {
	Provider    string // "openai" is the only supported provider
	APIKey      string
	Model       string
	BaseURL     string // overridable for tests and compatible gateways
	Temperature float64
	MaxTokens   int
}
