package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-threat-cache/internal/logger"
	"github.com/MKhiriev/go-threat-cache/internal/service"
	"github.com/MKhiriev/go-threat-cache/internal/tui"
	"github.com/MKhiriev/go-threat-cache/models"
)

type App struct {
	cache *service.Cache
	tui   *tui.TUI

	logger *logger.Logger
}

func NewApp(cache *service.Cache, ui *tui.TUI, log *logger.Logger) (*App, error) {
	if cache == nil || ui == nil {
		return nil, fmt.Errorf("cache and ui are required")
	}
	return &App{cache: cache, tui: ui, logger: log}, nil
}

// Run seeds the local databases with an initial full synchronization and
// hands control to the prompt. The cache keeps resynchronizing in the
// background at the server-recommended cadence until the prompt exits.
func (a *App) Run() error {
	ctx := context.Background()
	defer a.cache.Close()

	if err := a.cache.RequestDiff(ctx, "all", true, models.SizeConstraints{}); err != nil {
		// lookups still work against whatever synced; the scheduled
		// retries will catch the rest up
		a.logger.Warn().Err(err).Msg("initial synchronization incomplete")
	}

	return a.tui.Run(ctx)
}
