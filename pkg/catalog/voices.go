// Package catalog holds the static voice and vibe tables. All tables are
// immutable after process start and safe for concurrent reads.
package catalog

import (
	"vibevox/pkg/model"
)

// UIVoice maps a user-facing voice identifier to a vendor voice, with the
// attributes the resolver needs tagged explicitly at authoring time instead of
// being inferred from identifier substrings at request time.
type UIVoice struct {
	ID             string           `json:"id"`
	VendorVoiceID  string           `json:"vendorVoiceId"`
	GenderLean     model.GenderLean `json:"genderLean"`
	SupportsMarkup bool             `json:"supportsMarkup"`
}

// uiVoices is the UI voice table. Studio-class vendor voices reject prosody
// markup outright, so they are tagged SupportsMarkup: false.
var uiVoices = []UIVoice{
	{ID: "alloy", VendorVoiceID: "en-US-Neural2-F", GenderLean: model.GenderFemale, SupportsMarkup: true},
	{ID: "ash", VendorVoiceID: "en-US-Polyglot-1", GenderLean: model.GenderMale, SupportsMarkup: true},
	{ID: "ballad", VendorVoiceID: "en-US-Journey-D", GenderLean: model.GenderMale, SupportsMarkup: true},
	{ID: "coral", VendorVoiceID: "en-US-Studio-O", GenderLean: model.GenderFemale, SupportsMarkup: false},
	{ID: "echo", VendorVoiceID: "en-US-Studio-M", GenderLean: model.GenderMale, SupportsMarkup: false},
	{ID: "fable", VendorVoiceID: "en-GB-Neural2-D", GenderLean: model.GenderMale, SupportsMarkup: true},
	{ID: "nova", VendorVoiceID: "en-US-Neural2-H", GenderLean: model.GenderFemale, SupportsMarkup: true},
	{ID: "onyx", VendorVoiceID: "en-US-Neural2-J", GenderLean: model.GenderMale, SupportsMarkup: true},
	{ID: "sage", VendorVoiceID: "en-US-Neural2-C", GenderLean: model.GenderFemale, SupportsMarkup: true},
	{ID: "shimmer", VendorVoiceID: "en-US-Journey-O", GenderLean: model.GenderFemale, SupportsMarkup: true},
	{ID: "verse", VendorVoiceID: "en-US-Neural2-I", GenderLean: model.GenderMale, SupportsMarkup: true},
}

// markupIncompatible lists vendor voice ids that reject prosody markup.
// Consulted after voice resolution, when the final voice may not come from the
// UI table (vibe voices, fallback voices).
var markupIncompatible = map[string]bool{
	"en-US-Studio-O": true,
	"en-US-Studio-M": true,
	"en-US-Studio-Q": true,
}

// DefaultUIVoice is used when no voice is given.
const DefaultUIVoice = "alloy"

var voiceIndex = func() map[string]UIVoice {
	m := make(map[string]UIVoice, len(uiVoices))
	for _, v := range uiVoices {
		m[v.ID] = v
	}
	return m
}()

// LookupVoice returns the UI voice for the given identifier.
func LookupVoice(id string) (UIVoice, bool) {
	v, ok := voiceIndex[id]
	return v, ok
}

// DefaultVoice returns the baseline voice.
func DefaultVoice() UIVoice {
	return voiceIndex[DefaultUIVoice]
}

// Voices returns the full UI voice table.
func Voices() []UIVoice {
	out := make([]UIVoice, len(uiVoices))
	copy(out, uiVoices)
	return out
}

// MarkupCapable reports whether the given vendor voice accepts prosody markup.
func MarkupCapable(vendorVoiceID string) bool {
	return !markupIncompatible[vendorVoiceID]
}
