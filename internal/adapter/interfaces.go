// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for the two remote
// APIs this project talks to.
//
// [LabsAdapter] decouples the purchase flow from the J-Novel Club labs API;
// the package ships an HTTP/REST implementation ([NewLabsAdapter]) built on
// resty. [WebAdapter] is the terminal client's view of a running jncep-web
// server ([NewWebAdapter]), also resty-based.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError, mapRedeemError and mapWebError so that callers can use
// [errors.Is] for transport-agnostic error handling (e.g. [ErrAlreadyOwned]
// for a redeem 409, [ErrServerUnauthorized] for a download 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/jncep-web/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapters_mock.go -package=mock

// LabsAdapter defines the labs API calls the purchase flow needs.
// Implementations are responsible for serialisation, authentication header
// management, and mapping transport-level errors to the sentinel values
// defined in this package.
type LabsAdapter interface {
	// Login authenticates the account and returns the session id used as the
	// bearer token on subsequent calls. Returns [ErrUnauthorized] (wrapped)
	// if the labs API rejects the credentials, or [ErrEmptyToken] if the
	// response carries no session id.
	Login(ctx context.Context, email, password string) (string, error)

	// ResolveVolumeID translates a series or part URL plus an optional part
	// specification into the legacy volume id accepted by the coin-redeem
	// endpoint. For series URLs the leading integer of the part
	// specification selects the volume; an empty specification selects the
	// first volume. Part URLs resolve through their owning volume.
	ResolveVolumeID(ctx context.Context, novelURL, parts string) (string, error)

	// RedeemCoins spends account coins on the volume identified by volumeID.
	// A 204 response is success. The documented failure statuses map to the
	// sentinel errors in this package, including [ErrAlreadyOwned] for 409,
	// which callers running the purchase flow treat as success.
	RedeemCoins(ctx context.Context, token, volumeID string) error
}

// WebAdapter defines the jncep-web server calls the terminal client needs.
// Implementations own serialisation, attachment handling, and mapping of
// server error responses to the sentinel values defined in this package.
type WebAdapter interface {
	// DownloadEpub submits one download request to GET /epub and returns the
	// attachment the server produced, with the file name parsed out of the
	// Content-Disposition header. When the response carries a Content-Digest
	// header the payload is verified against it; a mismatch returns
	// [ErrDigestMismatch]. Server-side failures come back wrapped around the
	// ErrServer* sentinels with the message field of the JSON error body.
	DownloadEpub(ctx context.Context, req models.EpubRequest) (models.EpubPayload, error)

	// Health pings GET /health. A nil return means the server is up and
	// reported an ok status.
	Health(ctx context.Context) error

	// ServerVersion fetches the build metadata from GET /version.
	ServerVersion(ctx context.Context) (models.VersionResponse, error)
}
