package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"vibevox/pkg/version"
)

// NewServer creates and configures the HTTP server.
// It accepts handlers for all API endpoints and a shutdownFunc for graceful shutdown.
func NewServer(addr string, speechH *SpeechHandler, shareH *ShareHandler, catalogH *CatalogHandler, statsH *StatsHandler, shutdown func()) *http.Server {
	mux := http.NewServeMux()

	// 1. Health Endpoint
	mux.HandleFunc("GET /health", handleHealth)

	// 2. Version Endpoint
	mux.HandleFunc("GET /api/version", handleVersion)

	// 3. Synthesis Endpoint (GET for direct links, POST for forms)
	mux.HandleFunc("GET /api/speech", speechH.HandleSpeech)
	mux.HandleFunc("POST /api/speech", speechH.HandleSpeech)

	// 4. Share Endpoints
	mux.HandleFunc("POST /api/share", shareH.HandleCreate)
	mux.HandleFunc("GET /api/share", shareH.HandleGet)

	// 5. Catalog Endpoints
	mux.HandleFunc("GET /api/vibes", catalogH.HandleVibes)
	mux.HandleFunc("GET /api/voices", catalogH.HandleVoices)

	// 6. Stats Endpoint
	mux.Handle("GET /api/stats", statsH)

	// 7. Shutdown Endpoint
	mux.HandleFunc("POST /api/shutdown", func(w http.ResponseWriter, r *http.Request) {
		slog.Info("Graceful shutdown initiated via API")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("Shutting down...")); err != nil {
			slog.Error("Failed to write shutdown response", "error", err)
		}
		// Call shutdown in a goroutine to allow response to flush
		go func() {
			time.Sleep(100 * time.Millisecond)
			shutdown()
		}()
	})

	return &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("OK")); err != nil {
		slog.Error("Failed to write health response", "error", err)
	}
}

func handleVersion(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if _, err := fmt.Fprintf(w, `{"version": "%s"}`, version.Version); err != nil {
		slog.Error("Failed to write version response", "error", err)
	}
}
