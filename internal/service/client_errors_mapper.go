// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/jncep-web/internal/adapter"
)

// mapWebAdapterError translates the web adapter's transport error back into
// the download sentinels of this package, keyed on the wrapped status
// sentinel plus the server's own message text. The terminal client then
// reports a failure the same way the server-side service would have.
// Unrecognised errors pass through untouched.
func mapWebAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrServerBadRequest):
		if badURL, ok := strings.CutPrefix(msg, ErrInvalidNovelURL.Error()+": "); ok {
			return fmt.Errorf("%w: %s", ErrInvalidNovelURL, badURL)
		}

	case errors.Is(err, adapter.ErrServerUnauthorized):
		switch msg {
		case ErrNoCredentials.Error():
			return ErrNoCredentials
		case ErrInvalidCredentials.Error():
			return ErrInvalidCredentials
		}
		if source, ok := strings.CutPrefix(msg, ErrPartialCredentials.Error()+" "); ok {
			return fmt.Errorf("%w %s", ErrPartialCredentials, source)
		}

	case errors.Is(err, adapter.ErrServerForbidden):
		return ErrNoPermission

	case errors.Is(err, adapter.ErrServerNotFound):
		return ErrNoEpubsFound

	case errors.Is(err, adapter.ErrServerInternal):
		if msg == ErrMissingURLParameter.Error() {
			return ErrMissingURLParameter
		}
	}

	return err
}

// extractBody extracts the body from a message of the form
// "server rejected the request: <message>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
