// Package speech orchestrates the synthesis pipeline: language detection,
// script normalization, voice resolution, markup construction and the vendor
// call. One request flows through sequentially; there is no cross-request
// state here.
package speech

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"vibevox/pkg/catalog"
	"vibevox/pkg/config"
	"vibevox/pkg/llm"
	"vibevox/pkg/model"
	"vibevox/pkg/ssml"
)

// DefaultLanguage is the language assumed when detection is skipped, fails or
// returns something the registry does not know.
const DefaultLanguage = "en"

// ErrEmptyInput is returned when neither input text nor a vibe sample text is
// available.
var ErrEmptyInput = errors.New("input text is empty")

// LanguageDetector classifies text into a 2-letter language code.
type LanguageDetector interface {
	Detect(ctx context.Context, text string) string
}

// Normalizer rewrites Urdu or Roman-Urdu text into phonetic Devanagari.
type Normalizer interface {
	NormalizeUrdu(ctx context.Context, text string) string
}

// Synthesizer issues the vendor synthesis call, handling fallback retries.
type Synthesizer interface {
	Synthesize(ctx context.Context, req *model.SynthesisRequest, fallbackVoice string) ([]byte, error)
}

// Request carries one validated synthesis request through the pipeline.
// UIVoice must already be resolved against the catalog; ExplicitVoice records
// whether the caller picked it or it came from a default.
type Request struct {
	Input         string
	UIVoice       catalog.UIVoice
	ExplicitVoice bool
	Prompt        string
	Vibe          *model.VibeEntry
	Encoding      model.AudioEncoding
}

// Result is the pipeline output with the metadata callers log.
type Result struct {
	Audio         []byte
	Language      string
	VendorVoiceID string
	UsedMarkup    bool
}

// Pipeline wires the pipeline stages together.
type Pipeline struct {
	detector   LanguageDetector
	normalizer Normalizer
	styler     llm.Provider
	synth      Synthesizer
	timeout    config.Duration
}

// New creates a Pipeline. styler may be nil, disabling styled markup.
func New(d LanguageDetector, n Normalizer, styler llm.Provider, s Synthesizer, cfg config.SpeechConfig) *Pipeline {
	return &Pipeline{
		detector:   d,
		normalizer: n,
		styler:     styler,
		synth:      s,
		timeout:    cfg.RemoteTimeout,
	}
}

// Run executes the full pipeline for one request.
func (p *Pipeline) Run(ctx context.Context, req *Request) (*Result, error) {
	text := strings.TrimSpace(req.Input)
	if text == "" && req.Vibe != nil {
		text = strings.TrimSpace(req.Vibe.SampleText)
	}
	if text == "" {
		return nil, ErrEmptyInput
	}

	res := p.resolve(ctx, text, req)
	prosody := req.prosody()

	input := res.Text
	isMarkup := false

	// A style instruction drives markup generation only when no vibe prosody
	// applies; a vibe's delivery always wins.
	if req.Vibe == nil {
		input, isMarkup = p.styledMarkup(ctx, res.Text, req.Prompt, res.AllowMarkup)
	}
	if !isMarkup {
		built := ssml.Build(res.Text, prosody, res.AllowMarkup)
		input, isMarkup = built.Text, built.IsMarkup
	}

	synthReq := &model.SynthesisRequest{
		Input:         input,
		InputIsMarkup: isMarkup,
		VendorVoiceID: res.VendorVoiceID,
		LanguageCode:  res.LanguageCode,
		Encoding:      req.Encoding,
		VolumeGainDb:  prosody.VolumeGainDb,
	}

	audio, err := p.synth.Synthesize(ctx, synthReq, res.FallbackVoice)
	if err != nil {
		return nil, err
	}

	slog.Info("Synthesis complete",
		"language", res.Language, "voice", res.VendorVoiceID,
		"markup", isMarkup, "bytes", len(audio))

	return &Result{
		Audio:         audio,
		Language:      res.Language,
		VendorVoiceID: res.VendorVoiceID,
		UsedMarkup:    isMarkup,
	}, nil
}

// prosody returns the vibe's prosody, or vendor defaults without one.
func (req *Request) prosody() model.ProsodyConfig {
	if req.Vibe != nil {
		return req.Vibe.Prosody
	}
	return model.ProsodyConfig{SpeakingRate: 1.0, Emphasis: model.EmphasisNone}
}

// remoteCtx caps a remote call with the configured timeout.
func (p *Pipeline) remoteCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if p.timeout > 0 {
		return context.WithTimeout(ctx, time.Duration(p.timeout))
	}
	return ctx, func() {}
}
