package adapter

import (
	"context"
	"fmt"
	"mime"
	"strings"

	"github.com/MKhiriev/jncep-web/internal/config"
	"github.com/MKhiriev/jncep-web/internal/logger"
	"github.com/MKhiriev/jncep-web/internal/utils"
	"github.com/MKhiriev/jncep-web/models"
	"github.com/go-resty/resty/v2"
)

// Header names shared with the server side of the wire.
const (
	webTraceHeader  = "X-Trace-ID"
	webDigestHeader = "Content-Digest"
)

type httpWebAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewWebAdapter constructs an HTTP implementation of [WebAdapter] pointed at
// a running jncep-web server. It normalises and validates the base URL from
// adapterCfg.ServerAddress (scheme-less addresses get http, the usual case
// for a local server) and applies adapterCfg.RequestTimeout to every call.
//
// Returns an error if adapterCfg.ServerAddress is empty or cannot be parsed
// as a valid URL.
func NewWebAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (WebAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.ServerAddress, "http")
	if err != nil {
		return nil, fmt.Errorf("invalid server address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpWebAdapter{client: client, logger: logger}, nil
}

// DownloadEpub implements [WebAdapter]. It GETs /epub with the request fields
// as query parameters (credentials travel only when both halves are present
// in req, otherwise the server falls back to its own environment) and returns
// the attachment payload. Generation runs synchronously on the server, so
// this call can take minutes; it is bounded by the configured request timeout
// and by ctx.
func (h *httpWebAdapter) DownloadEpub(ctx context.Context, req models.EpubRequest) (models.EpubPayload, error) {
	traceID := utils.NewTraceID()

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader(webTraceHeader, traceID).
		SetQueryParams(downloadQueryParams(req)).
		Get("/epub")
	if err != nil {
		return models.EpubPayload{}, fmt.Errorf("%w: %v", ErrServerUnavailable, err)
	}
	if err = mapWebError(resp); err != nil {
		return models.EpubPayload{}, err
	}

	payload, err := attachmentPayload(resp)
	if err != nil {
		return models.EpubPayload{}, err
	}

	h.logger.Debug().
		Str("trace_id", traceID).
		Str("filename", payload.Filename).
		Int("size", len(payload.Data)).
		Msg("epub downloaded from server")

	return payload, nil
}

// Health implements [WebAdapter]. It GETs /health and requires the reported
// status to be "ok".
func (h *httpWebAdapter) Health(ctx context.Context) error {
	var health models.HealthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetResult(&health).
		Get("/health")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrServerUnavailable, err)
	}
	if err = mapWebError(resp); err != nil {
		return err
	}

	if health.Status != "ok" {
		return fmt.Errorf("unexpected health status %q", health.Status)
	}
	return nil
}

// ServerVersion implements [WebAdapter]. It GETs /version and returns the
// decoded build metadata.
func (h *httpWebAdapter) ServerVersion(ctx context.Context) (models.VersionResponse, error) {
	var version models.VersionResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetResult(&version).
		Get("/version")
	if err != nil {
		return models.VersionResponse{}, fmt.Errorf("%w: %v", ErrServerUnavailable, err)
	}
	if err = mapWebError(resp); err != nil {
		return models.VersionResponse{}, err
	}

	return version, nil
}

// downloadQueryParams translates req into the /epub query surface. Empty
// fields stay out of the URL so the server's environment fallback applies.
func downloadQueryParams(req models.EpubRequest) map[string]string {
	params := map[string]string{"jnovelclub_url": req.URL}

	if req.Parts != "" {
		params["prepub_parts"] = req.Parts
	}
	if req.Email != "" {
		params["JNCEP_EMAIL"] = req.Email
	}
	if req.Password != "" {
		params["JNCEP_PASSWORD"] = req.Password
	}

	return params
}

// attachmentPayload peels the attachment out of a successful /epub response:
// the file name comes from Content-Disposition, the MIME type from
// Content-Type, and the bytes are verified against Content-Digest when the
// server sent one.
func attachmentPayload(resp *resty.Response) (models.EpubPayload, error) {
	disposition := resp.Header().Get("Content-Disposition")
	mediaType, params, err := mime.ParseMediaType(disposition)
	if err != nil || mediaType != "attachment" || params["filename"] == "" {
		return models.EpubPayload{}, fmt.Errorf("%w: Content-Disposition %q", ErrNoAttachment, disposition)
	}

	data := resp.Body()
	if len(data) == 0 {
		return models.EpubPayload{}, fmt.Errorf("%w: empty body", ErrNoAttachment)
	}

	if err := verifyDigest(resp.Header().Get(webDigestHeader), data); err != nil {
		return models.EpubPayload{}, err
	}

	return models.EpubPayload{
		Filename: params["filename"],
		MIMEType: resp.Header().Get("Content-Type"),
		Data:     data,
	}, nil
}

// verifyDigest checks data against a Content-Digest header value of the form
// "sha-256=:<base64>:". A missing header or an algorithm other than sha-256
// passes: the header is an integrity aid, not a requirement.
func verifyDigest(header string, data []byte) error {
	encoded, ok := strings.CutPrefix(header, "sha-256=:")
	if !ok {
		return nil
	}
	encoded, ok = strings.CutSuffix(encoded, ":")
	if !ok {
		return nil
	}

	if utils.DigestBase64(data) != encoded {
		return fmt.Errorf("%w: want %s", ErrDigestMismatch, encoded)
	}
	return nil
}
