package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/jncep-web/internal/config"
	"github.com/MKhiriev/jncep-web/internal/logger"
	"github.com/MKhiriev/jncep-web/internal/utils"
	"github.com/MKhiriev/jncep-web/models"
	"github.com/go-resty/resty/v2"
	"github.com/sethvargo/go-retry"
)

// URL path sections the labs API can resolve to a volume.
const (
	sectionSeries = "series"
	sectionRead   = "read"
)

// Transport-level failures (refused connections, resets) retry with fibonacci
// backoff before the call is reported as failed. Status codes never retry:
// the redeem table treats them as semantic answers, not transient faults.
const (
	labsRetryAttempts = 3
	labsRetryBase     = 500 * time.Millisecond
)

type httpLabsAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewLabsAdapter constructs an HTTP/REST implementation of [LabsAdapter].
// It normalises and validates the base URL from apiCfg.BaseURL and configures
// the underlying HTTP client with the resolved base URL and request timeout.
//
// Returns an error if apiCfg.BaseURL is empty or cannot be parsed as a valid
// URL.
func NewLabsAdapter(apiCfg config.API, logger *logger.Logger) (LabsAdapter, error) {
	baseURL, err := normalizeBaseURL(apiCfg.BaseURL, "https")
	if err != nil {
		return nil, fmt.Errorf("invalid labs api base url: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(apiCfg.RequestTimeout)

	return &httpLabsAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw, defaultScheme string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = defaultScheme + "://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Login implements [LabsAdapter]. It POSTs the credentials to
// POST /app/v2/auth/login and returns the session id from the response body.
// The id doubles as the bearer token for subsequent calls. Returns an error
// if the request fails, the server returns a non-2xx status, or the response
// carries no id.
func (h *httpLabsAdapter) Login(ctx context.Context, email, password string) (string, error) {
	var loginResp models.LabsLoginResponse

	resp, err := h.send(ctx, func(ctx context.Context) (*resty.Response, error) {
		return h.client.R().
			SetContext(ctx).
			SetHeader("Content-Type", "application/json").
			SetHeader("Accept", "application/json").
			SetQueryParam("format", "json").
			SetBody(models.LabsLoginRequest{Email: email, Password: password}).
			SetResult(&loginResp).
			Post("/app/v2/auth/login")
	})
	if err != nil {
		return "", fmt.Errorf("labs login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	if loginResp.ID == "" {
		return "", ErrEmptyToken
	}

	h.logger.Debug().
		Str("email", models.Credentials{Email: email}.MaskedEmail()).
		Msg("labs login succeeded")

	return loginResp.ID, nil
}

// ResolveVolumeID implements [LabsAdapter]. Series URLs list the series'
// volumes and select one by the leading integer of the part specification
// (first volume when the specification is empty); part URLs resolve through
// the part's owning volume. Returns the volume's legacy id, the identifier
// the coin-redeem endpoint accepts.
func (h *httpLabsAdapter) ResolveVolumeID(ctx context.Context, novelURL, parts string) (string, error) {
	section, slug, err := splitNovelURL(novelURL)
	if err != nil {
		return "", err
	}

	if section == sectionRead {
		return h.resolvePartVolume(ctx, slug)
	}
	return h.resolveSeriesVolume(ctx, slug, parts)
}

func (h *httpLabsAdapter) resolveSeriesVolume(ctx context.Context, slug, parts string) (string, error) {
	var listing models.LabsVolumesResponse

	resp, err := h.send(ctx, func(ctx context.Context) (*resty.Response, error) {
		return h.client.R().
			SetContext(ctx).
			SetHeader("Accept", "application/json").
			SetQueryParam("format", "json").
			SetResult(&listing).
			Get("/app/v2/series/" + slug + "/volumes")
	})
	if err != nil {
		return "", fmt.Errorf("labs series volumes request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	if len(listing.Volumes) == 0 {
		return "", fmt.Errorf("%w: series %s has no volumes", ErrVolumeNotFound, slug)
	}

	number := leadingVolumeNumber(parts)
	if number == 0 {
		// No explicit volume in the part specification, take the first one.
		return volumeID(listing.Volumes[0])
	}

	for _, v := range listing.Volumes {
		if v.Number == number {
			h.logger.Debug().
				Str("series", slug).
				Int("volume", number).
				Str("title", v.Title).
				Msg("resolved volume from series listing")
			return volumeID(v)
		}
	}
	// Some listings omit the number field; fall back to list position.
	if number <= len(listing.Volumes) {
		return volumeID(listing.Volumes[number-1])
	}

	return "", fmt.Errorf("%w: series %s has no volume %d", ErrVolumeNotFound, slug, number)
}

func (h *httpLabsAdapter) resolvePartVolume(ctx context.Context, slug string) (string, error) {
	var volume models.LabsVolume

	resp, err := h.send(ctx, func(ctx context.Context) (*resty.Response, error) {
		return h.client.R().
			SetContext(ctx).
			SetHeader("Accept", "application/json").
			SetQueryParam("format", "json").
			SetResult(&volume).
			Get("/app/v2/parts/" + slug + "/volume")
	})
	if err != nil {
		return "", fmt.Errorf("labs part volume request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	h.logger.Debug().
		Str("part", slug).
		Str("title", volume.Title).
		Msg("resolved volume from part")

	return volumeID(volume)
}

// RedeemCoins implements [LabsAdapter]. It POSTs to the coin-redeem endpoint
// with the bearer token and maps the response through the redeem status
// table. A nil return means the account now owns the volume.
func (h *httpLabsAdapter) RedeemCoins(ctx context.Context, token, volumeID string) error {
	resp, err := h.send(ctx, func(ctx context.Context) (*resty.Response, error) {
		return h.client.R().
			SetContext(ctx).
			SetHeader("Accept", "application/json").
			SetHeader("Authorization", "Bearer "+token).
			SetQueryParam("format", "json").
			Post("/app/v2/me/coins/redeem/" + volumeID)
	})
	if err != nil {
		return fmt.Errorf("labs redeem request: %w", err)
	}

	if err = mapRedeemError(resp); err != nil {
		return err
	}

	h.logger.Info().
		Str("volume_id", volumeID).
		Msg("volume redeemed successfully")

	return nil
}

// send executes one labs API call, retrying transport-level failures with
// capped fibonacci backoff. Responses with error status codes come back with
// a nil error here; the callers map them through the status tables.
func (h *httpLabsAdapter) send(ctx context.Context, call func(ctx context.Context) (*resty.Response, error)) (*resty.Response, error) {
	var resp *resty.Response

	backoff := retry.WithMaxRetries(labsRetryAttempts, retry.NewFibonacci(labsRetryBase))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		var callErr error
		resp, callErr = call(ctx)
		if callErr != nil {
			h.logger.Debug().Err(callErr).Msg("labs call failed, will retry")
			return retry.RetryableError(callErr)
		}
		return nil
	})

	return resp, err
}

// splitNovelURL extracts the section ("series" or "read") and the slug from a
// J-Novel Club URL. Query strings and extra path segments after the slug are
// ignored.
func splitNovelURL(raw string) (section, slug string, err error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", "", fmt.Errorf("parse novel url: %w", err)
	}

	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(segments) < 2 || segments[1] == "" {
		return "", "", fmt.Errorf("%w: %s", ErrUnsupportedNovelURL, raw)
	}

	section = strings.ToLower(segments[0])
	if section != sectionSeries && section != sectionRead {
		return "", "", fmt.Errorf("%w: %s", ErrUnsupportedNovelURL, raw)
	}

	return section, segments[1], nil
}

// leadingVolumeNumber parses the volume number that starts a part
// specification: "3.2" selects volume 3, "2:5" volume 2. Returns 0 when the
// specification is empty or does not start with a digit.
func leadingVolumeNumber(parts string) int {
	parts = strings.TrimSpace(parts)

	n := 0
	for _, r := range parts {
		if r < '0' || r > '9' {
			break
		}
		n = n*10 + int(r-'0')
	}
	return n
}

func volumeID(v models.LabsVolume) (string, error) {
	if v.LegacyID == "" {
		return "", fmt.Errorf("%w: volume %q carries no legacy id", ErrVolumeNotFound, v.Slug)
	}
	return v.LegacyID, nil
}
