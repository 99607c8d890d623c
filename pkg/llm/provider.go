package llm

import (
	"context"
)

// Provider defines the interface for interacting with generative-text services.
// Responses are free-form text and must be validated by the caller.
type Provider interface {
	// GenerateText sends a prompt and returns the text response.
	// The name identifies the calling intent (e.g. "langid", "translit") for
	// tracking purposes.
	GenerateText(ctx context.Context, name, prompt string) (string, error)
}
