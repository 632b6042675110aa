package handlers

import (
	"net/http"

	"github.com/opennotebook/toolbridge/internal/common"
	"github.com/opennotebook/toolbridge/internal/registry"
)

// ReloadFunc rebuilds the registry from the catalog source and returns the
// load report. Wired by the composition root so reload also refreshes
// dependent surfaces (e.g. the MCP endpoint).
type ReloadFunc func() (registry.LoadReport, error)

// ToolsHandler serves the compiled tool schemas.
type ToolsHandler struct {
	logger   *common.Logger
	registry *registry.Registry
	reload   ReloadFunc
}

// NewToolsHandler creates a new tools handler.
func NewToolsHandler(logger *common.Logger, reg *registry.Registry, reload ReloadFunc) *ToolsHandler {
	return &ToolsHandler{logger: logger, registry: reg, reload: reload}
}

// List handles GET /api/tools. Always succeeds; an empty array means nothing
// loaded.
func (h *ToolsHandler) List(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, h.registry.List())
}

// Get handles GET /api/tools/{name}.
func (h *ToolsHandler) Get(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	entry, ok := h.registry.Get(name)
	if !ok {
		WriteError(w, http.StatusNotFound, "tool_not_found", "tool \""+name+"\" is not registered")
		return
	}
	WriteJSON(w, http.StatusOK, entry.Spec)
}

// Reload handles POST /api/tools/reload: admin-triggered registry rebuild.
func (h *ToolsHandler) Reload(w http.ResponseWriter, r *http.Request) {
	if h.reload == nil {
		WriteError(w, http.StatusNotImplemented, "reload_unavailable", "registry reload is not configured")
		return
	}

	report, err := h.reload()
	if err != nil {
		h.logger.Error().Str("error", err.Error()).Msg("registry reload failed")
		WriteError(w, http.StatusInternalServerError, "reload_failed", err.Error())
		return
	}

	errs := make([]string, 0, len(report.Errors))
	for _, e := range report.Errors {
		errs = append(errs, e.Error())
	}
	WriteJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"tools":  report.Loaded,
		"errors": errs,
	})
}
