package service

import (
	"github.com/MKhiriev/jncep-web/internal/adapter"
	"github.com/MKhiriev/jncep-web/internal/config"
)

// ClientServices bundles the services the terminal client runs on.
type ClientServices struct {
	DownloadService ClientDownloadService
}

func NewClientServices(webAdapter adapter.WebAdapter, filesCfg config.ClientFiles) *ClientServices {
	return &ClientServices{
		DownloadService: NewClientDownloadService(webAdapter, filesCfg),
	}
}
