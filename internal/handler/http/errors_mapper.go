package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-threat-cache/internal/adapter"
	"github.com/MKhiriev/go-threat-cache/internal/service"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidArgument:  http.StatusBadRequest,
	service.ErrCacheClosed:      http.StatusServiceUnavailable,
	service.ErrSyncExhausted:    http.StatusBadGateway,
	service.ErrChecksumDiverged: http.StatusBadGateway,

	adapter.ErrUnauthorized:       http.StatusBadGateway,
	adapter.ErrBadRequest:         http.StatusBadGateway,
	adapter.ErrServiceUnavailable: http.StatusBadGateway,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
