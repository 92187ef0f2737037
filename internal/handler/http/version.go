package http

import (
	"net/http"

	"github.com/MKhiriev/jncep-web/internal/utils"
	"github.com/MKhiriev/jncep-web/models"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	buildInfo := h.services.AppInfoService.GetBuildInfo(r.Context())

	utils.WriteJSON(w, models.VersionResponse{
		Version: buildInfo.BuildVersion(),
		Date:    buildInfo.BuildDate(),
		Commit:  buildInfo.BuildCommit(),
	}, http.StatusOK)
}
