// Package google implements tts.Provider against the Google Cloud
// Text-to-Speech REST API.
package google

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"time"

	texttospeech "google.golang.org/api/texttospeech/v1"
	"google.golang.org/api/option"

	"vibevox/pkg/config"
	"vibevox/pkg/model"
)

// Provider implements tts.Provider for Google Cloud Text-to-Speech.
type Provider struct {
	svc     *texttospeech.Service
	timeout config.Duration
}

// NewProvider creates a Provider authenticated with the configured API key.
func NewProvider(ctx context.Context, cfg config.TTSConfig) (*Provider, error) {
	if cfg.Key == "" {
		return nil, fmt.Errorf("google tts api key is required")
	}

	svc, err := texttospeech.NewService(ctx, option.WithAPIKey(cfg.Key))
	if err != nil {
		return nil, fmt.Errorf("failed to create texttospeech service: %w", err)
	}

	return &Provider{svc: svc, timeout: cfg.Timeout}, nil
}

// Synthesize issues the synthesis call and returns decoded audio bytes.
func (p *Provider) Synthesize(ctx context.Context, req *model.SynthesisRequest) ([]byte, error) {
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(p.timeout))
		defer cancel()
	}

	input := &texttospeech.SynthesisInput{}
	if req.InputIsMarkup {
		input.Ssml = req.Input
	} else {
		input.Text = req.Input
	}

	vendorReq := &texttospeech.SynthesizeSpeechRequest{
		Input: input,
		Voice: &texttospeech.VoiceSelectionParams{
			LanguageCode: req.LanguageCode,
			Name:         req.VendorVoiceID,
		},
		AudioConfig: &texttospeech.AudioConfig{
			AudioEncoding: string(req.Encoding),
			VolumeGainDb:  req.VolumeGainDb,
		},
	}

	slog.Debug("Google TTS request",
		"voice", req.VendorVoiceID, "language", req.LanguageCode,
		"markup", req.InputIsMarkup, "encoding", req.Encoding)

	resp, err := p.svc.Text.Synthesize(vendorReq).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("synthesize call failed: %w", err)
	}

	audio, err := base64.StdEncoding.DecodeString(resp.AudioContent)
	if err != nil {
		return nil, fmt.Errorf("failed to decode audio content: %w", err)
	}
	return audio, nil
}
