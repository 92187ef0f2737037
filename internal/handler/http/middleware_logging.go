package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/jncep-web/internal/logger"
)

// withLogging emits one access log entry per request. The entry carries the
// trace and client fields that withTraceID and withClientIP already bound to
// the request logger, plus the observed status, wire size, and duration.
// EPUB generation can take minutes, so duration here is the first place to
// look when a client reports a hung download.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()

		uri := r.RequestURI
		method := r.Method

		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		duration := time.Since(start)

		log.Info().
			Str("uri", uri).
			Str("method", method).
			Int("status", lw.status).
			Dur("duration", duration).
			Int("size", lw.size).
			Send()
	})
}
