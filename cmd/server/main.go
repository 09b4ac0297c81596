package main

import (
	"fmt"

	"github.com/MKhiriev/go-threat-cache/internal/adapter"
	"github.com/MKhiriev/go-threat-cache/internal/config"
	handler "github.com/MKhiriev/go-threat-cache/internal/handler/http"
	"github.com/MKhiriev/go-threat-cache/internal/logger"
	"github.com/MKhiriev/go-threat-cache/internal/metrics"
	"github.com/MKhiriev/go-threat-cache/internal/server"
	"github.com/MKhiriev/go-threat-cache/internal/service"
	"github.com/MKhiriev/go-threat-cache/internal/urlhash"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("threat-cache-daemon")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	metrics.Register()

	threatAPI, err := adapter.NewHTTPThreatAPI(cfg.Adapter, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create threat service adapter")
	}

	cache := service.NewCache(threatAPI, urlhash.NewDeriver(), service.RetryPolicyFromConfig(cfg.Retry), cfg.Sync.Constraints(), log)
	defer cache.Close()

	handlers := handler.NewHandler(cache, log)

	srv, err := server.NewServer(handlers.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
