package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/jncep-web/internal/service"
)

// errorStatusMap is the public HTTP contract for download failures. The
// missing-parameter case answers 500, not 400: the original deployment did,
// and monitoring on the endpoint depends on it.
var errorStatusMap = map[error]int{
	service.ErrInvalidNovelURL: http.StatusBadRequest,

	service.ErrPartialCredentials: http.StatusUnauthorized,
	service.ErrNoCredentials:      http.StatusUnauthorized,
	service.ErrInvalidCredentials: http.StatusUnauthorized,

	service.ErrNoPermission: http.StatusForbidden,
	service.ErrNoEpubsFound: http.StatusNotFound,

	service.ErrMissingURLParameter: http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// publicMessage decides what reaches the response body. Mapped sentinels
// carry their exact texts; anything unmapped (generator stderr, filesystem
// failures) stays in the logs.
func publicMessage(err error) string {
	for target := range errorStatusMap {
		if errors.Is(err, target) {
			return err.Error()
		}
	}
	return "internal server error"
}
