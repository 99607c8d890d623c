package api

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vibevox/pkg/tracker"
)

func TestStatsHandler(t *testing.T) {
	tr := tracker.New()
	tr.TrackAPISuccess("google-tts")
	tr.TrackAPISuccess("google-tts")
	tr.TrackAPIFailure("google-tts")
	tr.TrackFallback("google-tts")
	tr.TrackAPISuccess("gemini")

	h := NewStatsHandler(tr)
	r := httptest.NewRequest("GET", "/api/stats", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)

	require.Equal(t, 200, w.Code)
	var resp StatsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	tts := resp.Providers["google-tts"]
	assert.Equal(t, int64(2), tts.APISuccess)
	assert.Equal(t, int64(1), tts.APIFailures)
	assert.Equal(t, int64(1), tts.Fallbacks)
	assert.Equal(t, int64(1), resp.Providers["gemini"].APISuccess)
}
