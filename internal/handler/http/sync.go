package http

import (
	"net/http"

	"github.com/MKhiriev/go-threat-cache/internal/logger"
	"github.com/MKhiriev/go-threat-cache/models"
	"github.com/go-chi/chi/v5"
)

// sync runs a caller-initiated diff episode for the selected category
// ("malware", "social", "unwanted" or "all"). ?reset=true forces a full
// resynchronization.
func (h *Handler) sync(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	selector := chi.URLParam(r, "category")
	reset := r.URL.Query().Get("reset") == "true"

	if err := h.cache.RequestDiff(r.Context(), selector, reset, models.SizeConstraints{}); err != nil {
		log.Warn().Err(err).Str("selector", selector).Msg("sync failed")
		writeError(w, statusFromError(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, models.SyncResponse{Category: selector})
}

type categoryStatus struct {
	Entries      int    `json:"entries"`
	VersionToken []byte `json:"version_token,omitempty"`
}

type statusResponse struct {
	Categories   map[string]categoryStatus `json:"categories"`
	PositiveHits int                       `json:"positive_hits"`
	NegativeHits int                       `json:"negative_hits"`
}

// status reports the per-category database sizes, version tokens and the hit
// cache occupancy.
func (h *Handler) status(w http.ResponseWriter, r *http.Request) {
	resp := statusResponse{Categories: make(map[string]categoryStatus)}
	for _, cat := range models.AllCategories() {
		resp.Categories[cat.String()] = categoryStatus{
			Entries:      h.cache.DatabaseLen(cat),
			VersionToken: h.cache.Token(cat),
		}
	}
	resp.PositiveHits, resp.NegativeHits = h.cache.HitCacheStats()

	writeJSON(w, http.StatusOK, resp)
}

// serveMetrics refreshes the database gauges before delegating to the
// prometheus handler.
func (h *Handler) serveMetrics(prom http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.cache.UpdateGauges()
		prom.ServeHTTP(w, r)
	}
}
