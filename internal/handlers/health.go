package handlers

import (
	"net/http"

	"github.com/opennotebook/toolbridge/internal/common"
)

// HealthHandler handles health check requests.
// A healthy response means the process is serving; it does not guarantee the
// tool registry loaded (an empty /api/tools list plus logged load errors
// surface that).
type HealthHandler struct {
	logger *common.Logger
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(logger *common.Logger) *HealthHandler {
	return &HealthHandler{logger: logger}
}

// ServeHTTP handles GET /api/health.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
	})
}
