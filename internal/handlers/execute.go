package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/opennotebook/toolbridge/internal/common"
	"github.com/opennotebook/toolbridge/internal/dispatch"
)

// Executor runs one named tool against caller-supplied arguments.
type Executor interface {
	Execute(ctx context.Context, tool string, args map[string]any) (*dispatch.Result, error)
}

// ExecuteHandler serves tool execution requests.
type ExecuteHandler struct {
	logger   *common.Logger
	executor Executor
}

// NewExecuteHandler creates a new execute handler.
func NewExecuteHandler(logger *common.Logger, executor Executor) *ExecuteHandler {
	return &ExecuteHandler{logger: logger, executor: executor}
}

// executeRequest is the body of POST /api/execute/{name}.
type executeRequest struct {
	Args map[string]any `json:"args"`
}

// ServeHTTP handles POST /api/execute/{name}.
func (h *ExecuteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	tool := r.PathValue("name")

	var req executeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		WriteError(w, http.StatusBadRequest, string(dispatch.CodeInvalidArguments), "request body must be a JSON object with an \"args\" field")
		return
	}

	h.run(w, r, tool, req.Args)
}

// run executes the tool and writes the outcome. Shared with the CLI
// compatibility endpoint.
func (h *ExecuteHandler) run(w http.ResponseWriter, r *http.Request, tool string, args map[string]any) {
	result, err := h.executor.Execute(r.Context(), tool, args)
	if err != nil {
		WriteDispatchError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"status":        "success",
		"invocation_id": result.InvocationID,
		"result":        result.Payload,
	})
}
