package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"unicode/utf8"

	"vibevox/pkg/catalog"
	"vibevox/pkg/config"
	"vibevox/pkg/model"
	"vibevox/pkg/speech"
)

// SpeechRunner executes the synthesis pipeline.
type SpeechRunner interface {
	Run(ctx context.Context, req *speech.Request) (*speech.Result, error)
}

// QuotaStore gates and records per-client usage.
type QuotaStore interface {
	Allow(clientID string) (bool, error)
	RecordSuccess(clientID, input, prompt string) error
}

// ActivityRecorder logs accepted requests. May be nil-backed.
type ActivityRecorder interface {
	Record(clientID, voice, text string)
}

// SpeechHandler serves the synthesis endpoint.
type SpeechHandler struct {
	runner   SpeechRunner
	quota    QuotaStore
	activity ActivityRecorder
	cfg      config.SpeechConfig
}

// NewSpeechHandler creates a SpeechHandler.
func NewSpeechHandler(runner SpeechRunner, quota QuotaStore, activity ActivityRecorder, cfg config.SpeechConfig) *SpeechHandler {
	return &SpeechHandler{runner: runner, quota: quota, activity: activity, cfg: cfg}
}

// HandleSpeech validates the request, checks the quota, runs the pipeline and
// streams the audio back. The quota is consumed only after audio exists.
func (h *SpeechHandler) HandleSpeech(w http.ResponseWriter, r *http.Request) {
	input := r.FormValue("input")
	prompt := r.FormValue("prompt")

	if utf8.RuneCountInString(input) > h.cfg.MaxInputLength {
		http.Error(w, "input text too long", http.StatusBadRequest)
		return
	}
	if n := utf8.RuneCountInString(prompt); n > h.cfg.MaxPromptLength {
		prompt = string([]rune(prompt)[:h.cfg.MaxPromptLength])
	}

	var vibe *model.VibeEntry
	if name := r.FormValue("vibe"); name != "" {
		v, ok := catalog.LookupVibe(name)
		if !ok {
			http.Error(w, "unknown vibe", http.StatusNotFound)
			return
		}
		vibe = v
	}

	uiVoice := catalog.DefaultVoice()
	explicit := false
	if id := r.FormValue("voice"); id != "" {
		v, ok := catalog.LookupVoice(id)
		if !ok {
			http.Error(w, "unknown voice", http.StatusBadRequest)
			return
		}
		uiVoice = v
		explicit = true
	} else if vibe != nil && vibe.DefaultUIVoice != "" {
		if v, ok := catalog.LookupVoice(vibe.DefaultUIVoice); ok {
			uiVoice = v
		}
	}

	encoding := model.EncodingMP3
	if r.FormValue("format") == "wav" {
		encoding = model.EncodingLinear16
	}

	// Quota is checked before any remote work happens.
	clientID := ClientIP(r)
	allowed, err := h.quota.Allow(clientID)
	if err != nil {
		slog.Error("Quota check failed", "client", clientID, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if !allowed {
		http.Error(w, "daily limit reached", http.StatusTooManyRequests)
		return
	}

	if h.activity != nil {
		h.activity.Record(clientID, uiVoice.ID, input)
	}

	result, err := h.runner.Run(r.Context(), &speech.Request{
		Input:         input,
		UIVoice:       uiVoice,
		ExplicitVoice: explicit,
		Prompt:        prompt,
		Vibe:          vibe,
		Encoding:      encoding,
	})
	if err != nil {
		if errors.Is(err, speech.ErrEmptyInput) {
			http.Error(w, "input text is required", http.StatusBadRequest)
			return
		}
		slog.Error("Synthesis failed", "client", clientID, "error", err)
		http.Error(w, "speech synthesis failed", http.StatusInternalServerError)
		return
	}

	// Audio exists, so the request counts against the quota now.
	if err := h.quota.RecordSuccess(clientID, input, prompt); err != nil {
		slog.Error("Failed to record quota usage", "client", clientID, "error", err)
	}

	w.Header().Set("Content-Type", encoding.MIMEType())
	w.Header().Set("Cache-Control", "no-store")
	if _, err := w.Write(result.Audio); err != nil {
		slog.Error("Failed to write audio response", "error", err)
	}
}
