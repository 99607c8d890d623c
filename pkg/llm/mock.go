package llm

import "context"

// Mock is a canned Provider for local development without an API key.
type Mock struct {
	Response string
	Err      error
}

// GenerateText returns the canned response.
func (m *Mock) GenerateText(ctx context.Context, name, prompt string) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	return m.Response, nil
}
