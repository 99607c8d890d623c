package speech

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
)

const stylePrompt = `You are an expert at writing SSML for a text-to-speech engine.
Rewrite the text below as a single <speak> document that delivers it in this style: %q.

Rules:
- Use only <speak>, <prosody>, <break>, <emphasis> and <p> tags
- Do NOT change, add or remove any words
- Escape XML special characters
- Output ONLY the SSML document

Text:
%q`

var codeFence = regexp.MustCompile("(?s)^```[a-zA-Z]*\\s*(.*?)\\s*```$")

// styledMarkup asks the generative model for prosody markup matching the
// caller's style instruction. Best-effort: trivial or "neutral" instructions,
// model failures and malformed output all yield ok=false, sending the request
// down the plain path instead.
func (p *Pipeline) styledMarkup(ctx context.Context, text, prompt string, allowMarkup bool) (string, bool) {
	if !allowMarkup || p.styler == nil {
		return "", false
	}

	instruction := strings.TrimSpace(prompt)
	if len(instruction) <= 2 || strings.Contains(strings.ToLower(instruction), "neutral") {
		return "", false
	}

	sctx, cancel := p.remoteCtx(ctx)
	defer cancel()

	raw, err := p.styler.GenerateText(sctx, "ssml-styling", fmt.Sprintf(stylePrompt, instruction, text))
	if err != nil {
		slog.Warn("Styled markup generation failed, using plain delivery", "error", err)
		return "", false
	}

	out := strings.TrimSpace(raw)
	if m := codeFence.FindStringSubmatch(out); m != nil {
		out = m[1]
	}
	if !strings.HasPrefix(out, "<speak>") {
		slog.Warn("Styled markup output rejected", "prefix", truncate(out, 24))
		return "", false
	}
	return out, true
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
