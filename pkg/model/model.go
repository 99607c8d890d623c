// Package model defines the domain types shared across the synthesis pipeline.
package model

import (
	"regexp"
	"strings"
)

// GenderLean indicates which registry voice a UI preset maps to when content
// resolves to a non-English language. Decided at catalog-authoring time.
type GenderLean string

// Gender leans.
const (
	GenderMale   GenderLean = "male"
	GenderFemale GenderLean = "female"
)

// EmphasisLevel controls the SSML emphasis envelope.
type EmphasisLevel string

// Emphasis levels.
const (
	EmphasisNone     EmphasisLevel = "none"
	EmphasisModerate EmphasisLevel = "moderate"
	EmphasisStrong   EmphasisLevel = "strong"
)

// AudioEncoding selects the vendor output codec.
type AudioEncoding string

// Supported encodings.
const (
	EncodingMP3      AudioEncoding = "MP3"
	EncodingLinear16 AudioEncoding = "LINEAR16"
)

// MIMEType returns the Content-Type for audio produced with this encoding.
func (e AudioEncoding) MIMEType() string {
	if e == EncodingLinear16 {
		return "audio/wav"
	}
	return "audio/mpeg"
}

// ProsodyConfig holds the synthesis physics for a vibe.
type ProsodyConfig struct {
	SpeakingRate    float64       `json:"speakingRate"`
	PitchSemitones  float64       `json:"pitchSemitones"`
	VolumeGainDb    float64       `json:"volumeGainDb"`
	VendorVoiceID   string        `json:"vendorVoiceId"`
	FallbackVoiceID string        `json:"fallbackVoiceId,omitempty"`
	PauseMs         int           `json:"pauseMs,omitempty"`
	Emphasis        EmphasisLevel `json:"emphasisLevel"`
}

// IsDefault reports whether the prosody requests no deviation from the
// vendor's defaults, in which case plain text is preferred over markup.
func (p ProsodyConfig) IsDefault() bool {
	return p.SpeakingRate == 1.0 && p.PitchSemitones == 0 && p.PauseMs == 0 &&
		(p.Emphasis == "" || p.Emphasis == EmphasisNone)
}

// VibeEntry is a named content+style preset.
type VibeEntry struct {
	Name           string        `json:"name"`
	SampleText     string        `json:"sampleText"`
	DefaultUIVoice string        `json:"defaultUiVoice"`
	Prosody        ProsodyConfig `json:"prosody"`
}

// LanguageVoiceEntry is a per-language vendor voice pair.
type LanguageVoiceEntry struct {
	LanguageCode  string `json:"languageCode"`
	MaleVoiceID   string `json:"maleVoiceId"`
	FemaleVoiceID string `json:"femaleVoiceId"`
}

// VoiceFor returns the gender-matched voice of the pair.
func (e LanguageVoiceEntry) VoiceFor(lean GenderLean) string {
	if lean == GenderMale {
		return e.MaleVoiceID
	}
	return e.FemaleVoiceID
}

// SynthesisRequest is the ephemeral per-call request handed to the vendor.
// Never persisted.
type SynthesisRequest struct {
	Input         string
	InputIsMarkup bool
	VendorVoiceID string
	LanguageCode  string
	Encoding      AudioEncoding
	VolumeGainDb  float64
}

var vendorVoiceRe = regexp.MustCompile(`^[a-z]{2,3}-[A-Z]{2}-[A-Za-z0-9]+-[A-Za-z0-9]+$`)

// ValidVendorVoiceID reports whether s is a syntactically valid vendor voice
// identifier ({lang}-{region}-{family}-{variant}).
func ValidVendorVoiceID(s string) bool {
	return vendorVoiceRe.MatchString(s)
}

// VoiceLanguageCode derives the language-region prefix from a vendor voice
// identifier (e.g. "hi-IN-Wavenet-B" -> "hi-IN"). This handles cross-lingual
// cases where a fallback voice belongs to a different locale.
func VoiceLanguageCode(voiceID string) string {
	parts := strings.SplitN(voiceID, "-", 3)
	if len(parts) < 2 {
		return voiceID
	}
	return parts[0] + "-" + parts[1]
}
