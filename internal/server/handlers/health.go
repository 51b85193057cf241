package handlers

import (
	"net/http"

	"github.com/iudanet/resumeai/internal/server/respond"
)

// HealthHandler обрабатывает health check запросы
type HealthHandler struct {
	version string
}

// NewHealthHandler создает новый handler для health check
func NewHealthHandler(version string) *HealthHandler {
	return &HealthHandler{version: version}
}

// HealthResponse представляет ответ health check
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}

// Health обрабатывает GET /v1/health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, HealthResponse{Status: "ok", Version: h.version})
}
