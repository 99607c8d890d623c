package tts

import (
	"context"
	"fmt"
	"log/slog"

	"vibevox/pkg/model"
	"vibevox/pkg/tracker"
)

// Invoker wraps a Provider with a single fallback-voice retry. This is a
// synchronous user-facing call path: no backoff, no second retry.
type Invoker struct {
	provider Provider
	tracker  *tracker.Tracker
}

// NewInvoker creates an Invoker.
func NewInvoker(p Provider, t *tracker.Tracker) *Invoker {
	return &Invoker{provider: p, tracker: t}
}

// Synthesize issues the vendor call. If it fails with a voice-unavailable
// class of error and fallbackVoice is configured, the call is retried exactly
// once with the fallback voice and its derived language code. Any other
// failure, or a second failure, is terminal.
func (i *Invoker) Synthesize(ctx context.Context, req *model.SynthesisRequest, fallbackVoice string) ([]byte, error) {
	audio, err := i.provider.Synthesize(ctx, req)
	if err != nil {
		if fallbackVoice == "" || !IsVoiceUnavailable(err) {
			i.trackFailure()
			return nil, &SynthesisError{Err: err}
		}

		slog.Warn("Primary voice failed, switching to fallback",
			"voice", req.VendorVoiceID, "fallback", fallbackVoice, "error", err)

		retry := *req
		retry.VendorVoiceID = fallbackVoice
		retry.LanguageCode = model.VoiceLanguageCode(fallbackVoice)

		audio, err = i.provider.Synthesize(ctx, &retry)
		if err != nil {
			i.trackFailure()
			return nil, &SynthesisError{Err: err}
		}
		if i.tracker != nil {
			i.tracker.TrackFallback("google-tts")
		}
	}

	if len(audio) < MinAudioSize {
		i.trackFailure()
		return nil, &SynthesisError{Err: fmt.Errorf("vendor returned %d bytes of audio", len(audio))}
	}

	if i.tracker != nil {
		i.tracker.TrackAPISuccess("google-tts")
	}
	return audio, nil
}

func (i *Invoker) trackFailure() {
	if i.tracker != nil {
		i.tracker.TrackAPIFailure("google-tts")
	}
}
