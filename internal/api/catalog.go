package api

import (
	"encoding/json"
	"net/http"

	"vibevox/pkg/catalog"
)

// CatalogHandler serves the static vibe and voice tables for the front end's
// selector and audition grid.
type CatalogHandler struct{}

// NewCatalogHandler creates a CatalogHandler.
func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// HandleVibes returns the vibe library.
func (h *CatalogHandler) HandleVibes(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(catalog.Vibes())
}

// HandleVoices returns the UI voice table.
func (h *CatalogHandler) HandleVoices(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(catalog.Voices())
}
