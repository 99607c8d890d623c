package catalog

import (
	"vibevox/pkg/model"
)

// vibeLibrary is the static vibe table: sample text plus the prosody physics
// that give each preset its delivery.
var vibeLibrary = []model.VibeEntry{
	{
		Name: "Calm",
		SampleText: "Thank you for contacting us. I completely understand your frustration with the canceled flight, and I'm here to help you get rebooked quickly.\n\n" +
			"I just need a few details from your original reservation, like your booking confirmation number or passenger info. Once I have those, I'll find the next available flight and make sure you reach your destination smoothly.",
		DefaultUIVoice: "sage",
		Prosody: model.ProsodyConfig{
			SpeakingRate:   0.88,
			PitchSemitones: -1.5,
			VolumeGainDb:   -1.0,
			VendorVoiceID:  "en-US-Neural2-D",
			PauseMs:        500,
			Emphasis:       model.EmphasisNone,
		},
	},
	{
		Name: "True Crime Buff",
		SampleText: "The night was heavy with secrets. The air, thick with the scent of rain, carried whispers that did not belong to the wind.\n\n" +
			"She stepped cautiously into the alley, her breath slow and measured. Footsteps echoed behind her. A shadow flickered, gone before she could turn.\n\n" +
			"The note in her pocket burned against her palm. Meet me at midnight. Alone.\n\n" +
			"She was not alone. Not anymore.",
		DefaultUIVoice: "ash",
		Prosody: model.ProsodyConfig{
			SpeakingRate:   0.82,
			PitchSemitones: -2.5,
			VolumeGainDb:   -1.0,
			VendorVoiceID:  "en-US-News-K",
			PauseMs:        420,
			Emphasis:       model.EmphasisModerate,
		},
	},
	{
		Name: "Santa",
		SampleText: "Ho ho ho! Merry Christmas! You've reached Santa's workshop.\n\n" +
			"For toy requests, press one.\n\n" +
			"If you're on the nice list, press two.\n\n" +
			"If you're on the naughty list, press three.\n\n" +
			"To speak to an elf, press four.\n\n" +
			"Don't worry, we're here to make sure every wish is granted. Ho ho ho!",
		DefaultUIVoice: "ash",
		Prosody: model.ProsodyConfig{
			SpeakingRate:    1.1,
			PitchSemitones:  -4.5,
			VolumeGainDb:    2.0,
			VendorVoiceID:   "en-US-Polyglot-1",
			FallbackVoiceID: "en-US-Neural2-D",
			PauseMs:         350,
			Emphasis:        model.EmphasisStrong,
		},
	},
	{
		Name: "Professional",
		SampleText: "Good afternoon, team. Here are the key takeaways from today's meeting.\n\n" +
			"Departmental budgets were reviewed, with adjustments proposed to support growth initiatives.\n\n" +
			"Cost-saving measures were identified, and action items have been assigned.\n\n" +
			"Thank you all for your contributions.",
		DefaultUIVoice: "coral",
		Prosody: model.ProsodyConfig{
			SpeakingRate:  1.0,
			VendorVoiceID: "en-US-News-N",
			Emphasis:      model.EmphasisNone,
		},
	},
	{
		Name: "Friendly",
		SampleText: "Hello! I'm happy to help you today.\n\n" +
			"Just let me know what you're looking for, and we'll take it step by step.\n\n" +
			"I'm right here if you need anything else!",
		DefaultUIVoice: "sage",
		Prosody: model.ProsodyConfig{
			SpeakingRate:   1.05,
			PitchSemitones: 1.0,
			VendorVoiceID:  "en-US-Neural2-F",
			Emphasis:       model.EmphasisNone,
		},
	},
}

var vibeIndex = func() map[string]*model.VibeEntry {
	m := make(map[string]*model.VibeEntry, len(vibeLibrary))
	for i := range vibeLibrary {
		m[vibeLibrary[i].Name] = &vibeLibrary[i]
	}
	return m
}()

// LookupVibe returns the vibe with the given name.
func LookupVibe(name string) (*model.VibeEntry, bool) {
	v, ok := vibeIndex[name]
	return v, ok
}

// Vibes returns the full vibe library.
func Vibes() []model.VibeEntry {
	out := make([]model.VibeEntry, len(vibeLibrary))
	copy(out, vibeLibrary)
	return out
}
