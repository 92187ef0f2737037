package http

import (
	"net/http"

	"github.com/MKhiriev/jncep-web/internal/metrics"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withClientIP)
	router.Use(h.withLogging)
	router.Use(metrics.InstrumentHandler)
	router.Use(withGZip)
	router.Use(withDigest)

	router.Get("/", h.homepage)
	router.Get("/health", h.health)
	router.Get("/version", h.getServerVersion)
	router.Method(http.MethodGet, "/metrics", metrics.Handler())

	// the homepage form posts, direct callers use the query string
	router.Get("/epub", h.downloadEpub)
	router.Post("/epub", h.downloadEpub)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
