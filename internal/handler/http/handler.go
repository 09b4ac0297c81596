package http

import (
	"context"

	"github.com/MKhiriev/go-threat-cache/internal/logger"
	"github.com/MKhiriev/go-threat-cache/models"
)

//go:generate mockgen -source=handler.go -destination=../../mock/threat_cache_mock.go -package=mock

// ThreatCache is the slice of the cache surface the HTTP handlers need.
type ThreatCache interface {
	RequestDiff(ctx context.Context, selector string, reset bool, constraints models.SizeConstraints) error
	Check(ctx context.Context, uriOrHash string, isHash bool) ([]models.Category, error)
	FindHash(hash []byte) (location string, prefixLength int)
	Token(cat models.Category) []byte
	DatabaseLen(cat models.Category) int
	HitCacheStats() (positive, negative int)
	UpdateGauges()
}

type Handler struct {
	cache ThreatCache

	logger *logger.Logger
}

func NewHandler(cache ThreatCache, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		cache:  cache,
		logger: logger,
	}
}
