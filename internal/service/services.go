package service

import (
	"github.com/MKhiriev/jncep-web/internal/adapter"
	"github.com/MKhiriev/jncep-web/internal/config"
	"github.com/MKhiriev/jncep-web/internal/jncep"
	"github.com/MKhiriev/jncep-web/internal/logger"
	"github.com/MKhiriev/jncep-web/models"
)

type Services struct {
	EpubService    EpubService
	AppInfoService AppInfoService
}

func NewServices(generator jncep.Generator, labs adapter.LabsAdapter, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(buildInfo, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		EpubService:    NewEpubService(generator, labs, cfg.JNCEP, logger),
		AppInfoService: appInfoService,
	}, nil
}
