package handler

import (
	"net/http"

	"github.com/teamdash/teamdash/internal/api/response"
)

type healthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// HealthHandler reports process liveness. The store is in-memory, so
// there is no dependency to probe.
type HealthHandler struct {
	version string
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(version string) *HealthHandler {
	return &HealthHandler{version: version}
}

// ServeHTTP handles GET /health.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, healthResponse{Status: "ok", Version: h.version})
}
