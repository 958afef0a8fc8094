// Package llm defines the provider-agnostic model client interface and the
// factory registry through which concrete providers (OpenAI-compatible,
// Gemini, Ollama) are created from configuration.
package llm

import (
	"context"

	jsoniter "github.com/json-iterator/go"
)

// json handles all JSON processing inside package llm via json-iterator.
var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Client is the common interface for a single completion-style model.
// Implementations must be safe for concurrent use.
type Client interface {
	// Complete sends the conversation and returns the model's full reply text.
	Complete(ctx context.Context, messages []Message) (string, error)

	// IsTransientError reports whether err is recoverable by retrying
	// (e.g. 429/5xx, network resets, empty completions).
	IsTransientError(err error) bool
}
