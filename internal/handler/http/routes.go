package http

import (
	"github.com/MKhiriev/go-threat-cache/internal/metrics"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	router.Get("/api/check", h.check)
	router.Get("/api/hash/{hash}", h.findHash)
	router.Post("/api/sync/{category}", h.sync)
	router.Get("/api/status", h.status)
	router.Get("/metrics", h.serveMetrics(metrics.Handler()))

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
