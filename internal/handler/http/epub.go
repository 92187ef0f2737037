package http

import (
	"net/http"

	"github.com/MKhiriev/jncep-web/internal/logger"
	"github.com/MKhiriev/jncep-web/internal/utils"
	"github.com/MKhiriev/jncep-web/models"
)

func (h *Handler) downloadEpub(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	request := epubRequestFrom(r)

	log.Info().
		Str("url", request.URL).
		Str("parts", request.Parts).
		Msg("epub download requested")

	payload, err := h.services.EpubService.Download(ctx, request)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Info().
		Str("filename", payload.Filename).
		Str("mime_type", payload.MIMEType).
		Int("size", len(payload.Data)).
		Msg("sending attachment")

	if _, err = utils.WriteAttachment(w, payload.Data, payload.Filename, payload.MIMEType); err != nil {
		log.Err(err).Msg("error writing attachment to response")
	}
}

// epubRequestFrom assembles the download request from the HTTP request. The
// client address comes from the context set by withClientIP; everything else
// comes from the request parameters.
func epubRequestFrom(r *http.Request) models.EpubRequest {
	clientIP, _ := utils.GetClientIPFromContext(r.Context())

	return models.EpubRequest{
		URL:      requestValue(r, "jnovelclub_url"),
		Parts:    requestValue(r, "prepub_parts"),
		Email:    requestValue(r, "JNCEP_EMAIL"),
		Password: requestValue(r, "JNCEP_PASSWORD"),
		ClientIP: clientIP,
	}
}

// requestValue reads one request parameter with query-string precedence: the
// homepage form posts its fields in the body, scripted callers put everything
// in the query string, and the query wins when both carry the key.
func requestValue(r *http.Request, key string) string {
	if value := r.URL.Query().Get(key); value != "" {
		return value
	}
	return r.PostFormValue(key)
}
