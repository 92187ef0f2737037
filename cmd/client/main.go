package main

import (
	"fmt"

	"github.com/MKhiriev/jncep-web/internal/adapter"
	"github.com/MKhiriev/jncep-web/internal/client"
	"github.com/MKhiriev/jncep-web/internal/config"
	"github.com/MKhiriev/jncep-web/internal/logger"
	"github.com/MKhiriev/jncep-web/internal/service"
	"github.com/MKhiriev/jncep-web/internal/tui"
	"github.com/MKhiriev/jncep-web/models"
	"github.com/joho/godotenv"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := printBuildInfo()

	log := logger.NewClientLogger("jncep-client")

	// .env is optional, a missing file is the normal case
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("no .env file loaded")
	}

	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = logger.SetLevel(cfg.Log.Level); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	webAdapter, err := adapter.NewWebAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server adapter")
	}

	services := service.NewClientServices(webAdapter, cfg.Files)

	ui, err := tui.New(services, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo() models.AppBuildInfo {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(buildInfo)

	return buildInfo
}
