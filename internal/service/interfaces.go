package service

import (
	"context"

	"github.com/MKhiriev/jncep-web/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/services_mock.go -package=mock

// EpubService runs one download request end to end: validation, credential
// resolution, generator invocation with the one-shot purchase retry, and
// packaging of the produced files into a single response payload.
type EpubService interface {
	// Download produces the EPUB or ZIP payload for the request. The
	// returned payload is fully buffered; the working directory is already
	// removed when Download returns. Errors carry the exact message texts
	// the HTTP layer writes into response bodies.
	Download(ctx context.Context, request models.EpubRequest) (models.EpubPayload, error)
}

// AppInfoService exposes build-time metadata for the /version endpoint and
// startup output.
type AppInfoService interface {
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
