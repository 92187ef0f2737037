package http

import (
	"net/http"

	"github.com/MKhiriev/jncep-web/internal/utils"
	"github.com/MKhiriev/jncep-web/models"
)

// health is the liveness probe used by container orchestration. It carries no
// dependency checks: the process being able to answer is the whole signal.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.HealthResponse{Status: "ok"}, http.StatusOK)
}
