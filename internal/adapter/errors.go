package adapter

import "errors"

// Sentinels mirror the labs API status codes the purchase flow cares about.
// mapHTTPError and mapRedeemError wrap them with the response body so callers
// can match with errors.Is and still see what the server said.
var (
	ErrUnauthorized        = errors.New("labs credentials rejected")            // 401
	ErrNoCoins             = errors.New("not enough coins to redeem")           // 402
	ErrVolumeNotFound      = errors.New("volume not found")                     // 404
	ErrAlreadyOwned        = errors.New("volume already owned")                 // 409
	ErrTokenExpired        = errors.New("labs session token expired")           // 410
	ErrPurchaseUnavailable = errors.New("volume cannot be purchased right now") // 501

	// ErrEmptyToken reports a login that succeeded at the HTTP level but
	// returned no session id to use as a bearer token.
	ErrEmptyToken = errors.New("labs login returned no session id")

	// ErrUnsupportedNovelURL reports a URL whose path is not a series or
	// part reference the labs API can resolve.
	ErrUnsupportedNovelURL = errors.New("unsupported novel url")
)

// Web server sentinels mirror the jncep-web status codes the terminal client
// cares about. mapWebError wraps them with the message field of the JSON
// error body so callers can match with errors.Is and still show the user
// what the server said.
var (
	ErrServerBadRequest   = errors.New("server rejected the request")     // 400
	ErrServerUnauthorized = errors.New("server rejected the credentials") // 401
	ErrServerForbidden    = errors.New("download not permitted")          // 403
	ErrServerNotFound     = errors.New("nothing to download")             // 404
	ErrServerInternal     = errors.New("server failure")                  // 500

	// ErrServerUnavailable reports that the server could not be reached at
	// the transport level (refused connection, timeout, DNS failure).
	ErrServerUnavailable = errors.New("server unavailable")

	// ErrDigestMismatch reports an attachment whose bytes do not match the
	// Content-Digest header the server sent with it.
	ErrDigestMismatch = errors.New("attachment digest mismatch")

	// ErrNoAttachment reports a 200 response without a usable attachment
	// (missing or malformed Content-Disposition, or an empty body).
	ErrNoAttachment = errors.New("response carries no attachment")
)
