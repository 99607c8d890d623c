// Package translit rewrites text from one script into a phonetically
// equivalent representation in another. Normalization is best-effort: any
// failure returns the original text unchanged.
package translit

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"vibevox/pkg/llm"
)

// Normalizer transliterates Urdu and Roman-Urdu text into phonetic
// Devanagari. The downstream Hindi voices speak Devanagari natively, while
// user input may arrive in Arabic script or Roman transliteration.
type Normalizer struct {
	provider llm.Provider
}

// New creates a Normalizer.
func New(p llm.Provider) *Normalizer {
	return &Normalizer{provider: p}
}

const urduPrompt = `Convert the following Urdu or Roman-Urdu text into Devanagari Hindi
while preserving Urdu phonetics.

Rules:
- Keep phonetic words like: ख़्वाब, क़, ग़, ज़
- DO NOT translate meaning
- DO NOT simplify to pure Hindi
- Output ONLY the converted text

Text:
%q`

// NormalizeUrdu returns the Devanagari phonetic form of the given Urdu text,
// or the original text on any failure or empty model output.
func (n *Normalizer) NormalizeUrdu(ctx context.Context, text string) string {
	raw, err := n.provider.GenerateText(ctx, "translit", fmt.Sprintf(urduPrompt, text))
	if err != nil {
		slog.Warn("Urdu normalization failed, keeping original text", "error", err)
		return text
	}

	out := strings.TrimSpace(raw)
	if out == "" {
		return text
	}
	return out
}
