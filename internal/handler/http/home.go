package http

import (
	_ "embed"
	"html/template"
	"net/http"

	"github.com/MKhiriev/jncep-web/internal/logger"
)

//go:embed templates/homepage.html
var homepageHTML string

var homepageTemplate = template.Must(template.New("homepage").Parse(homepageHTML))

// homepageData is the dynamic part of the rendered homepage.
type homepageData struct {
	Version string
}

func (h *Handler) homepage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	log.Info().Msg("homepage requested")

	data := homepageData{
		Version: h.services.AppInfoService.GetBuildInfo(r.Context()).BuildVersion(),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := homepageTemplate.Execute(w, data); err != nil {
		log.Err(err).Msg("error rendering homepage")
	}
}
