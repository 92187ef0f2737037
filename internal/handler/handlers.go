package handler

import (
	"github.com/MKhiriev/jncep-web/internal/config"
	"github.com/MKhiriev/jncep-web/internal/handler/http"
	"github.com/MKhiriev/jncep-web/internal/logger"
	"github.com/MKhiriev/jncep-web/internal/service"
)

// Handlers aggregates the transport-layer handlers of the application.
// The download front-end speaks plain HTTP only.
type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Address == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, logger),
	}, nil
}
