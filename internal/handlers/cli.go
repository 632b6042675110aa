package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/opennotebook/toolbridge/internal/common"
	"github.com/opennotebook/toolbridge/internal/dispatch"
)

// CLIHandler serves the legacy flat execution endpoint, where the tool name
// travels in the body instead of the path.
type CLIHandler struct {
	logger  *common.Logger
	execute *ExecuteHandler
}

// NewCLIHandler creates a new CLI compatibility handler.
func NewCLIHandler(logger *common.Logger, execute *ExecuteHandler) *CLIHandler {
	return &CLIHandler{logger: logger, execute: execute}
}

// cliRequest is the body of POST /api/cli.
type cliRequest struct {
	Command string         `json:"command"`
	Args    map[string]any `json:"args"`
}

// ServeHTTP handles POST /api/cli.
func (h *CLIHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req cliRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, string(dispatch.CodeInvalidArguments), "request body must be a JSON object with \"command\" and \"args\" fields")
		return
	}
	if strings.TrimSpace(req.Command) == "" {
		WriteError(w, http.StatusBadRequest, string(dispatch.CodeInvalidArguments), "\"command\" is required")
		return
	}

	h.execute.run(w, r, req.Command, req.Args)
}
