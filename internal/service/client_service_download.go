package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/jncep-web/internal/adapter"
	"github.com/MKhiriev/jncep-web/internal/config"
	"github.com/MKhiriev/jncep-web/models"
)

// fallbackFilename is used when the server's attachment name sanitises away
// to nothing.
const fallbackFilename = "download.epub"

// Collision suffixes are bounded; a directory holding a thousand copies of
// the same book is a configuration problem, not a naming problem.
const maxNameCollisions = 1000

type clientDownloadService struct {
	adapter   adapter.WebAdapter
	outputDir string
}

func NewClientDownloadService(webAdapter adapter.WebAdapter, filesCfg config.ClientFiles) ClientDownloadService {
	svc := &clientDownloadService{adapter: webAdapter}
	svc.SetOutputDir(filesCfg.OutputDir)

	return svc
}

func (c *clientDownloadService) SetOutputDir(dir string) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		dir = "."
	}
	c.outputDir = dir
}

func (c *clientDownloadService) OutputDir() string {
	return c.outputDir
}

func (c *clientDownloadService) Download(ctx context.Context, req models.EpubRequest) (string, error) {
	payload, err := c.adapter.DownloadEpub(ctx, req)
	if err != nil {
		return "", mapWebAdapterError(err)
	}

	if err = os.MkdirAll(c.outputDir, 0o755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}

	path, err := c.uniquePath(sanitizeFilename(payload.Filename))
	if err != nil {
		return "", err
	}

	if err = os.WriteFile(path, payload.Data, 0o644); err != nil {
		return "", fmt.Errorf("save downloaded file: %w", err)
	}

	return path, nil
}

func (c *clientDownloadService) CheckServer(ctx context.Context) error {
	if err := c.adapter.Health(ctx); err != nil {
		return mapWebAdapterError(err)
	}
	return nil
}

func (c *clientDownloadService) ServerVersion(ctx context.Context) (models.VersionResponse, error) {
	version, err := c.adapter.ServerVersion(ctx)
	if err != nil {
		return models.VersionResponse{}, mapWebAdapterError(err)
	}
	return version, nil
}

// sanitizeFilename reduces a server-supplied attachment name to a bare file
// name that is safe to create locally: path components are stripped, control
// and path-meaningful characters become underscores, leading and trailing
// dots and spaces are trimmed.
func sanitizeFilename(name string) string {
	name = filepath.Base(strings.TrimSpace(name))

	var b strings.Builder
	for _, r := range name {
		if r < 0x20 || strings.ContainsRune(`<>:"/\|?*`, r) {
			b.WriteRune('_')
		} else {
			b.WriteRune(r)
		}
	}

	name = strings.Trim(b.String(), " .")
	if name == "" {
		return fallbackFilename
	}
	return name
}

// uniquePath returns a path under the output directory no existing file
// occupies: "Book.epub", then "Book (1).epub", "Book (2).epub", and so on.
func (c *clientDownloadService) uniquePath(name string) (string, error) {
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)

	path := filepath.Join(c.outputDir, name)
	for n := 1; ; n++ {
		_, err := os.Stat(path)
		if errors.Is(err, os.ErrNotExist) {
			return path, nil
		}
		if err != nil {
			return "", fmt.Errorf("probe output path: %w", err)
		}
		if n > maxNameCollisions {
			return "", fmt.Errorf("no free name for %s in %s", name, c.outputDir)
		}

		path = filepath.Join(c.outputDir, fmt.Sprintf("%s (%d)%s", stem, n, ext))
	}
}
