package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"vibevox/pkg/share"
)

// ShareStore persists and retrieves share entries.
type ShareStore interface {
	Save(input, prompt, voice string) (string, error)
	Load(id string) (*share.Entry, error)
}

// ShareHandler serves the share link endpoints.
type ShareHandler struct {
	store ShareStore
}

// NewShareHandler creates a ShareHandler.
func NewShareHandler(store ShareStore) *ShareHandler {
	return &ShareHandler{store: store}
}

type createShareRequest struct {
	Input  string `json:"input"`
	Prompt string `json:"prompt"`
	Voice  string `json:"voice"`
}

// HandleCreate stores a share triple and returns its id.
func (h *ShareHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createShareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Input == "" {
		http.Error(w, "input is required", http.StatusBadRequest)
		return
	}

	id, err := h.store.Save(req.Input, req.Prompt, req.Voice)
	if err != nil {
		slog.Error("Failed to save share", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"id": id})
}

// HandleGet returns a stored share by id.
func (h *ShareHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "id is required", http.StatusBadRequest)
		return
	}

	entry, err := h.store.Load(id)
	if err != nil {
		if errors.Is(err, share.ErrNotFound) {
			http.Error(w, "share not found", http.StatusNotFound)
			return
		}
		slog.Error("Failed to load share", "id", id, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(entry)
}
