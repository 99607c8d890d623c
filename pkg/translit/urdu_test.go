package translit

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type mockProvider struct {
	response string
	err      error
	prompt   string
}

func (m *mockProvider) GenerateText(ctx context.Context, name, prompt string) (string, error) {
	m.prompt = prompt
	if m.err != nil {
		return "", m.err
	}
	return m.response, nil
}

func TestNormalizeUrdu(t *testing.T) {
	mock := &mockProvider{response: "  बहुत ख़ूब  \n"}
	n := New(mock)

	got := n.NormalizeUrdu(context.Background(), "بہت خوب")
	assert.Equal(t, "बहुत ख़ूब", got, "response must be trimmed")
	assert.True(t, strings.Contains(mock.prompt, "بہت خوب"), "full input text must be sent")
	assert.True(t, strings.Contains(mock.prompt, "DO NOT translate meaning"))
}

func TestNormalizeUrduEmptyOutput(t *testing.T) {
	mock := &mockProvider{response: "   "}
	n := New(mock)

	got := n.NormalizeUrdu(context.Background(), "kya haal hai")
	assert.Equal(t, "kya haal hai", got)
}

func TestNormalizeUrduFailure(t *testing.T) {
	mock := &mockProvider{err: fmt.Errorf("quota exhausted")}
	n := New(mock)

	got := n.NormalizeUrdu(context.Background(), "بہت خوب")
	assert.Equal(t, "بہت خوب", got)
}
