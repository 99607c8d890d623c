package catalog

import (
	"vibevox/pkg/model"
)

// languageRegistry maps detected ISO 639-1 codes to gender-specific vendor
// voices and the canonical language-region code sent to the vendor.
//
// Urdu is deliberately absent: Urdu content is rerouted to the Hindi pair
// after phonetic normalization (see the resolver), because the vendor's native
// Urdu voices are judged unreliable.
var languageRegistry = map[string]model.LanguageVoiceEntry{
	"en": {
		LanguageCode:  "en-US",
		MaleVoiceID:   "en-US-Neural2-J",
		FemaleVoiceID: "en-US-Neural2-F",
	},
	"hi": {
		LanguageCode:  "hi-IN",
		MaleVoiceID:   "hi-IN-Wavenet-B",
		FemaleVoiceID: "hi-IN-Wavenet-A",
	},
	"ar": {
		LanguageCode:  "ar-XA",
		MaleVoiceID:   "ar-XA-Wavenet-B",
		FemaleVoiceID: "ar-XA-Wavenet-A",
	},
}

// LookupLanguage returns the registry entry for a 2-letter language code.
func LookupLanguage(code string) (model.LanguageVoiceEntry, bool) {
	e, ok := languageRegistry[code]
	return e, ok
}

// HindiVoices returns the voice pair used for normalized Urdu content.
func HindiVoices() model.LanguageVoiceEntry {
	return languageRegistry["hi"]
}
