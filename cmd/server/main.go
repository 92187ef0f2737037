package main

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/jncep-web/internal/adapter"
	"github.com/MKhiriev/jncep-web/internal/config"
	"github.com/MKhiriev/jncep-web/internal/handler"
	"github.com/MKhiriev/jncep-web/internal/jncep"
	"github.com/MKhiriev/jncep-web/internal/logger"
	"github.com/MKhiriev/jncep-web/internal/server"
	"github.com/MKhiriev/jncep-web/internal/service"
	"github.com/MKhiriev/jncep-web/internal/workers"
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

	log := logger.NewLogger("jncep-web-server")

	// .env is optional, a missing file is the normal case
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("no .env file loaded")
	}

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if cfg.Log.File != "" {
		log = logger.NewRotatingLogger("jncep-web-server", cfg.Log.File)
	}
	if err = logger.SetLevel(cfg.Log.Level); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	// credentials stay out of the logs, so no Any("config", cfg) here
	log.Debug().
		Str("address", cfg.Server.Address).
		Str("output_root", cfg.JNCEP.Output).
		Str("binary", cfg.JNCEP.Binary).
		Str("labs_api", cfg.API.BaseURL).
		Msg("received configs")

	generator, err := jncep.New(cfg.JNCEP.Binary, cfg.JNCEP.GenerationTimeout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating epub generator")
	}

	versionCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if version, verErr := generator.Version(versionCtx); verErr != nil {
		// a missing binary shows up on the first download anyway
		log.Warn().Err(verErr).Str("binary", cfg.JNCEP.Binary).Msg("could not read generator version")
	} else {
		log.Info().Str("version", version).Msg("generator found")
	}
	cancel()

	labs, err := adapter.NewLabsAdapter(cfg.API, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating labs adapter")
	}

	services, err := service.NewServices(generator, labs, *cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	janitor := workers.NewJanitor(cfg.JNCEP.Output, cfg.Workers, log)
	background := workers.NewWorkers(log, janitor)

	srv, err := server.NewServer(handlers, background, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() models.AppBuildInfo {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(buildInfo)

	return buildInfo
}
