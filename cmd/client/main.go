package main

import (
	"fmt"

	"github.com/MKhiriev/go-threat-cache/internal/adapter"
	"github.com/MKhiriev/go-threat-cache/internal/client"
	"github.com/MKhiriev/go-threat-cache/internal/config"
	"github.com/MKhiriev/go-threat-cache/internal/logger"
	"github.com/MKhiriev/go-threat-cache/internal/service"
	"github.com/MKhiriev/go-threat-cache/internal/tui"
	"github.com/MKhiriev/go-threat-cache/internal/urlhash"
	"github.com/MKhiriev/go-threat-cache/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("threat-cache-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	threatAPI, err := adapter.NewHTTPThreatAPI(cfg.Adapter, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create threat service adapter")
	}

	cache := service.NewCache(threatAPI, urlhash.NewDeriver(), service.RetryPolicyFromConfig(cfg.Retry), cfg.Sync.Constraints(), log)
	ui := tui.New(cache, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	app, err := client.NewApp(cache, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
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
