package main

import (
	"fmt"

	"github.com/MKhiriev/go-invoice/internal/adapter"
	"github.com/MKhiriev/go-invoice/internal/client"
	"github.com/MKhiriev/go-invoice/internal/config"
	"github.com/MKhiriev/go-invoice/internal/logger"
	"github.com/MKhiriev/go-invoice/internal/tui"
	"github.com/MKhiriev/go-invoice/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewClientLogger("go-invoice-client", "").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("go-invoice-client", cfg.App.LogLevel)

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	ui, err := tui.New(serverAdapter, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(serverAdapter, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}
