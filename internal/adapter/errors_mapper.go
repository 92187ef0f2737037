package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/jncep-web/models"
	"github.com/go-resty/resty/v2"
)

// mapHTTPError converts a non-2xx labs response into a sentinel-wrapped error
// for the login and volume-resolution calls. The redeem endpoint has its own
// richer status table in mapRedeemError.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	switch resp.StatusCode() {
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrVolumeNotFound, body)
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("labs http %d: %s", resp.StatusCode(), body)
	}
}

// mapRedeemError converts a coin-redeem response into a sentinel-wrapped
// error. The status table follows the upstream endpoint:
//
//	204 success
//	401 unauthorized
//	402 not enough coins
//	404 volume not found
//	409 already own this volume
//	410 session token expired
//	501 cannot buy this volume at this time
//
// Anything else is reported as an unknown redeem error with the body text.
func mapRedeemError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	switch resp.StatusCode() {
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, body)
	case http.StatusPaymentRequired:
		return fmt.Errorf("%w: %s", ErrNoCoins, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrVolumeNotFound, body)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrAlreadyOwned, body)
	case http.StatusGone:
		return fmt.Errorf("%w: %s", ErrTokenExpired, body)
	case http.StatusNotImplemented:
		return fmt.Errorf("%w: %s", ErrPurchaseUnavailable, body)
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("redeem http %d: %s", resp.StatusCode(), body)
	}
}

// mapWebError converts a failed jncep-web response into a sentinel-wrapped
// error carrying the server's own message, so the terminal client can show
// the user exactly what the server said.
func mapWebError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	msg := webErrorMessage(resp)

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrServerBadRequest, msg)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrServerUnauthorized, msg)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrServerForbidden, msg)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrServerNotFound, msg)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrServerInternal, msg)
	default:
		return fmt.Errorf("server http %d: %s", resp.StatusCode(), msg)
	}
}

// webErrorMessage extracts the message field from the server's JSON error
// body. Falls back to the raw body text (or the status text for an empty
// body) when the body is not the expected JSON shape.
func webErrorMessage(resp *resty.Response) string {
	var er models.ErrorResponse
	if err := json.Unmarshal(resp.Body(), &er); err == nil && er.Message != "" {
		return er.Message
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}
	return body
}
