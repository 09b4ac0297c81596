package http

import (
	"encoding/hex"
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-threat-cache/internal/logger"
	"github.com/MKhiriev/go-threat-cache/models"
	"github.com/go-chi/chi/v5"
)

// check resolves a URL (?url=) or a hex-encoded full hash (?hash=) against
// the threat lists and returns the matched category names.
func (h *Handler) check(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	input := r.URL.Query().Get("url")
	isHash := false
	if input == "" {
		input = r.URL.Query().Get("hash")
		isHash = true
	}
	if input == "" {
		writeError(w, http.StatusBadRequest, "url or hash query parameter is required")
		return
	}

	categories, err := h.cache.Check(r.Context(), input, isHash)
	if err != nil {
		log.Warn().Err(err).Msg("check failed")
		writeError(w, statusFromError(err), err.Error())
		return
	}

	matches := make([]string, 0, len(categories))
	for _, cat := range categories {
		matches = append(matches, cat.String())
	}
	writeJSON(w, http.StatusOK, models.CheckResponse{Input: input, Matches: matches})
}

// findHash reports where a full hash currently resolves without triggering
// any remote call. Diagnostic endpoint.
func (h *Handler) findHash(w http.ResponseWriter, r *http.Request) {
	hash, err := hex.DecodeString(chi.URLParam(r, "hash"))
	if err != nil || len(hash) != models.FullHashSize {
		writeError(w, http.StatusBadRequest, "hash must be a hex-encoded 32-byte value")
		return
	}

	location, length := h.cache.FindHash(hash)
	writeJSON(w, http.StatusOK, models.FindHashResponse{Location: location, PrefixLength: length})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, models.ErrorResponse{Error: message})
}
