// Package tts defines the speech synthesis provider contract and the
// single-level fallback retry wrapped around it.
package tts

import (
	"context"

	"vibevox/pkg/model"
)

// MinAudioSize is the minimum size of a plausible synthesis result. Smaller
// payloads are treated as failed synthesis attempts: even a near-silent
// fraction of a second of MP3 or WAV (header included) exceeds 64 bytes, so
// anything under it cannot be playable audio.
const MinAudioSize = 64

// Provider defines the interface for speech synthesis vendors.
type Provider interface {
	// Synthesize generates audio for the given request and returns the raw
	// audio bytes.
	Synthesize(ctx context.Context, req *model.SynthesisRequest) ([]byte, error)
}
