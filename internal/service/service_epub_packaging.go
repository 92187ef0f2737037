package service

import (
	"archive/zip"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/MKhiriev/jncep-web/models"
)

// MIME types for the two payload shapes.
const (
	mimeEpub = "application/epub+zip"
	mimeZip  = "application/zip"
)

// collectEpubs returns the *.epub files in dir sorted by name.
func collectEpubs(dir string) ([]string, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.epub"))
	if err != nil {
		return nil, fmt.Errorf("scan working directory: %w", err)
	}

	sort.Strings(files)
	return files, nil
}

// packageEpubs buffers the generator's output into a single response payload:
// one file passes through untouched, several are bundled into a deflate ZIP
// named after the first file's stem cut at "_Volume_".
func packageEpubs(dir string) (models.EpubPayload, error) {
	files, err := collectEpubs(dir)
	if err != nil {
		return models.EpubPayload{}, err
	}
	if len(files) == 0 {
		return models.EpubPayload{}, ErrNoEpubsFound
	}

	if len(files) == 1 {
		data, err := os.ReadFile(files[0])
		if err != nil {
			return models.EpubPayload{}, fmt.Errorf("read epub: %w", err)
		}

		return models.EpubPayload{
			Filename: filepath.Base(files[0]),
			MIMEType: mimeEpub,
			Data:     data,
		}, nil
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return models.EpubPayload{}, fmt.Errorf("read epub: %w", err)
		}

		entry, err := zw.Create(filepath.Base(file))
		if err != nil {
			return models.EpubPayload{}, fmt.Errorf("create zip entry: %w", err)
		}
		if _, err = entry.Write(data); err != nil {
			return models.EpubPayload{}, fmt.Errorf("write zip entry: %w", err)
		}
	}
	if err = zw.Close(); err != nil {
		return models.EpubPayload{}, fmt.Errorf("finalize zip: %w", err)
	}

	return models.EpubPayload{
		Filename: zipFilename(files[0]),
		MIMEType: mimeZip,
		Data:     buf.Bytes(),
	}, nil
}

// zipFilename derives the bundle name from the first EPUB: the stem cut at
// "_Volume_" plus ".zip", so "Some_Series_Volume_1.epub" becomes
// "Some_Series.zip".
func zipFilename(first string) string {
	stem := strings.TrimSuffix(filepath.Base(first), filepath.Ext(first))
	base, _, _ := strings.Cut(stem, "_Volume_")
	return base + ".zip"
}
