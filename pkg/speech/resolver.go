package speech

import (
	"context"

	"vibevox/pkg/catalog"
	"vibevox/pkg/model"
)

// resolution is the outcome of voice and language resolution for one request.
// The fields describe the FINAL voice, after any registry override.
type resolution struct {
	Text          string
	Language      string
	VendorVoiceID string
	LanguageCode  string
	AllowMarkup   bool
	FallbackVoice string
}

// resolve decides the vendor voice and language for a request.
//
// Order: the UI voice (or the vibe's own voice when the caller did not pick
// one) is the baseline. Detection then takes over: Urdu is normalized to
// Devanagari and rerouted to the Hindi pair, other registry languages swap in
// the gender-matched voice with markup disabled, and anything the registry
// does not know falls back to the English resolution unchanged.
func (p *Pipeline) resolve(ctx context.Context, text string, req *Request) resolution {
	r := resolution{
		Text:          text,
		VendorVoiceID: req.UIVoice.VendorVoiceID,
		LanguageCode:  model.VoiceLanguageCode(req.UIVoice.VendorVoiceID),
		AllowMarkup:   req.UIVoice.SupportsMarkup,
	}

	// An active vibe contributes its fallback voice even when the caller's
	// explicit UI voice displaces the vibe's own vendor voice.
	if req.Vibe != nil {
		r.FallbackVoice = req.Vibe.Prosody.FallbackVoiceID
		if !req.ExplicitVoice && req.Vibe.Prosody.VendorVoiceID != "" {
			r.VendorVoiceID = req.Vibe.Prosody.VendorVoiceID
			r.LanguageCode = model.VoiceLanguageCode(r.VendorVoiceID)
			r.AllowMarkup = true
		}
	}

	dctx, cancel := p.remoteCtx(ctx)
	r.Language = p.detector.Detect(dctx, text)
	cancel()

	switch {
	case r.Language == "ur":
		nctx, cancel := p.remoteCtx(ctx)
		r.Text = p.normalizer.NormalizeUrdu(nctx, text)
		cancel()

		pair := catalog.HindiVoices()
		r.VendorVoiceID = pair.VoiceFor(req.UIVoice.GenderLean)
		r.LanguageCode = pair.LanguageCode
		r.AllowMarkup = false
		r.FallbackVoice = ""

	case r.Language != DefaultLanguage:
		if pair, ok := catalog.LookupLanguage(r.Language); ok {
			r.VendorVoiceID = pair.VoiceFor(req.UIVoice.GenderLean)
			r.LanguageCode = pair.LanguageCode
			r.AllowMarkup = false
			r.FallbackVoice = ""
		}
	}

	// The final voice may not come from the UI table, so the
	// markup-incompatibility check runs here, after resolution.
	if r.AllowMarkup && !catalog.MarkupCapable(r.VendorVoiceID) {
		r.AllowMarkup = false
	}
	return r
}
