package service

import (
	"context"

	"github.com/MKhiriev/jncep-web/models"
)

// ClientDownloadService defines the client-side contract for requesting an
// EPUB from a running jncep-web server and saving the result locally.
type ClientDownloadService interface {
	// Download submits req to the server, waits for generation to finish,
	// and writes the returned attachment into the current output directory.
	// The attachment name from the server is sanitised before it touches
	// the filesystem, and an existing file with the same name is never
	// overwritten: collisions get a numeric suffix. Returns the path of the
	// saved file.
	//
	// Server-side failures are translated back into the download sentinels
	// of this package (ErrInvalidNovelURL, ErrInvalidCredentials, ...) so
	// the caller can present them the same way regardless of which side of
	// the wire detected the problem.
	Download(ctx context.Context, req models.EpubRequest) (string, error)

	// SetOutputDir replaces the directory subsequent downloads are saved
	// into. An empty or blank dir means the current working directory.
	SetOutputDir(dir string)

	// OutputDir returns the directory downloads are currently saved into.
	OutputDir() string

	// CheckServer reports whether the configured server is reachable and
	// healthy. Returns nil when GET /health answers ok.
	CheckServer(ctx context.Context) error

	// ServerVersion fetches the running server's build metadata.
	ServerVersion(ctx context.Context) (models.VersionResponse, error)
}
