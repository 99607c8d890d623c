package api

import (
	"encoding/json"
	"net/http"

	"vibevox/pkg/tracker"
)

// StatsHandler exposes per-provider usage counters.
type StatsHandler struct {
	tracker *tracker.Tracker
}

// NewStatsHandler creates a StatsHandler.
func NewStatsHandler(t *tracker.Tracker) *StatsHandler {
	return &StatsHandler{tracker: t}
}

// ProviderStatsDTO is the wire form of one provider's counters.
type ProviderStatsDTO struct {
	APISuccess  int64 `json:"api_success"`
	APIFailures int64 `json:"api_errors"`
	Fallbacks   int64 `json:"fallbacks"`
}

// StatsResponse is the stats endpoint payload.
type StatsResponse struct {
	Providers map[string]ProviderStatsDTO `json:"providers"`
}

func (h *StatsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	resp := StatsResponse{Providers: make(map[string]ProviderStatsDTO)}
	for provider, stats := range h.tracker.Snapshot() {
		resp.Providers[provider] = ProviderStatsDTO{
			APISuccess:  stats.APISuccess,
			APIFailures: stats.APIFailures,
			Fallbacks:   stats.Fallbacks,
		}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}
