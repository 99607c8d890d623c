// Package langid classifies input text into a 2-letter language code using a
// generative-text call. Detection is best-effort: every failure falls back to
// the default language and never propagates.
package langid

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"vibevox/pkg/llm"
)

// DefaultLanguage is returned when detection is skipped or fails.
const DefaultLanguage = "en"

// Detector wraps a generative-text provider for language classification.
type Detector struct {
	provider  llm.Provider
	minLen    int
	sampleLen int
}

// New creates a Detector. Inputs of minLen runes or fewer short-circuit to the
// default language without a remote call.
func New(p llm.Provider, minLen, sampleLen int) *Detector {
	if minLen <= 0 {
		minLen = 3
	}
	if sampleLen <= 0 {
		sampleLen = 50
	}
	return &Detector{provider: p, minLen: minLen, sampleLen: sampleLen}
}

// Detect returns the 2-letter ISO language code for the given text.
func (d *Detector) Detect(ctx context.Context, text string) string {
	runes := []rune(text)
	if len(runes) <= d.minLen {
		return DefaultLanguage
	}

	sample := runes
	if len(sample) > d.sampleLen {
		sample = sample[:d.sampleLen]
	}

	prompt := fmt.Sprintf("Detect language ISO code (e.g. en, ur, hi) for: %q", string(sample))
	raw, err := d.provider.GenerateText(ctx, "langid", prompt)
	if err != nil {
		slog.Warn("Language detection failed, assuming default", "error", err)
		return DefaultLanguage
	}

	return normalizeCode(raw)
}

// normalizeCode reduces the model's free-form answer to a 2-letter code.
// The model's detection of Urdu is unreliable and sometimes comes back as
// "urd", "ud" or a sentence mentioning Urdu, hence the substring safety net.
func normalizeCode(raw string) string {
	code := strings.ToLower(strings.TrimSpace(raw))
	if code == "" {
		return DefaultLanguage
	}

	if strings.Contains(code, "ur") || strings.Contains(code, "ud") {
		return "ur"
	}

	if len(code) < 2 {
		return DefaultLanguage
	}
	code = code[:2]
	for _, r := range code {
		if r < 'a' || r > 'z' {
			return DefaultLanguage
		}
	}
	return code
}
