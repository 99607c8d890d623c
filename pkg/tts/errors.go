package tts

import (
	"errors"
	"strings"

	"google.golang.org/api/googleapi"
)

// SynthesisError is an unrecovered vendor failure. It terminates the request;
// the caller surfaces it as an internal error and must not retry further.
type SynthesisError struct {
	Err error
}

func (e *SynthesisError) Error() string {
	if e.Err == nil {
		return "synthesis failed"
	}
	return "synthesis failed: " + e.Err.Error()
}

func (e *SynthesisError) Unwrap() error { return e.Err }

// IsVoiceUnavailable reports whether the vendor failure indicates a rejected
// or unavailable voice, the only class recovered via the fallback voice.
func IsVoiceUnavailable(err error) bool {
	if err == nil {
		return false
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		if apiErr.Code == 400 || apiErr.Code == 404 {
			return true
		}
	}

	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "voice") || strings.Contains(msg, "invalid_argument")
}
