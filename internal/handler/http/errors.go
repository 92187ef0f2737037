// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/jncep-web/internal/logger"
	"github.com/MKhiriev/jncep-web/internal/utils"
	"github.com/MKhiriev/jncep-web/models"
)

// writeError translates err through the status table and writes the JSON
// error body. Client-caused failures log at warn, everything else at error
// with the full chain.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	message := publicMessage(err)

	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("download failed")
	} else {
		log.Warn().Err(err).Int("status", status).Msg("download rejected")
	}

	if _, writeErr := utils.WriteJSON(w, models.ErrorResponse{Message: message}, status); writeErr != nil {
		log.Err(writeErr).Msg("error writing error response")
	}
}
