// Package ssml builds the prosody markup sent to the synthesis vendor.
// Build is a pure function: no I/O, no hidden state.
package ssml

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"vibevox/pkg/model"
)

// Result is the builder output: either plain text or a markup document.
type Result struct {
	Text     string
	IsMarkup bool
}

var (
	escaper       = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;", "'", "&apos;")
	paragraphRuns = regexp.MustCompile(`\n{2,}`)
)

// Build merges text and prosody into a markup string, or returns plain text
// when the prosody requests no deviation from defaults or the target voice
// rejects markup. markupCapable must reflect the FINAL resolved voice, not the
// initially selected one.
func Build(text string, p model.ProsodyConfig, markupCapable bool) Result {
	if !markupCapable || p.IsDefault() {
		return Result{Text: text, IsMarkup: false}
	}

	body := escaper.Replace(text)

	// Paragraph breaks become timed pauses; without a configured pause the
	// run is removed so the vendor does not read stray whitespace.
	pauseTag := ""
	if p.PauseMs > 0 {
		pauseTag = fmt.Sprintf(`<break time="%dms"/>`, p.PauseMs)
	}
	body = paragraphRuns.ReplaceAllString(body, pauseTag)

	if p.Emphasis != "" && p.Emphasis != model.EmphasisNone {
		body = fmt.Sprintf(`<emphasis level="%s">%s</emphasis>`, p.Emphasis, body)
	}

	ratePercent := int(math.Round(p.SpeakingRate * 100))
	pitch := strconv.FormatFloat(p.PitchSemitones, 'f', -1, 64) + "st"

	markup := fmt.Sprintf(`<speak><prosody rate="%d%%" pitch="%s">%s</prosody></speak>`, ratePercent, pitch, body)
	return Result{Text: markup, IsMarkup: true}
}

// Escape exposes the XML escaping used by Build, for callers that validate
// externally produced markup fragments.
func Escape(text string) string {
	return escaper.Replace(text)
}
