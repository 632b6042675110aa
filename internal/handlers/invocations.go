package handlers

import (
	"net/http"
	"strconv"

	"github.com/opennotebook/toolbridge/internal/common"
	"github.com/opennotebook/toolbridge/internal/interfaces"
)

// defaultInvocationLimit bounds GET /api/invocations when no limit is given.
const defaultInvocationLimit = 50

// InvocationsHandler serves the recorded invocation history.
type InvocationsHandler struct {
	logger *common.Logger
	store  interfaces.InvocationStore
}

// NewInvocationsHandler creates a new invocations handler. A nil store means
// history recording is disabled.
func NewInvocationsHandler(logger *common.Logger, store interfaces.InvocationStore) *InvocationsHandler {
	return &InvocationsHandler{logger: logger, store: store}
}

// List handles GET /api/invocations.
func (h *InvocationsHandler) List(w http.ResponseWriter, r *http.Request) {
	if h.store == nil {
		WriteError(w, http.StatusNotImplemented, "history_unavailable", "invocation history is not configured")
		return
	}

	limit := defaultInvocationLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			WriteError(w, http.StatusBadRequest, "invalid_arguments", "limit must be a positive integer")
			return
		}
		limit = n
	}

	records, err := h.store.List(r.Context(), limit)
	if err != nil {
		h.logger.Error().Str("error", err.Error()).Msg("failed to list invocations")
		WriteError(w, http.StatusInternalServerError, "storage_error", "failed to list invocations")
		return
	}
	WriteJSON(w, http.StatusOK, records)
}

// Get handles GET /api/invocations/{id}.
func (h *InvocationsHandler) Get(w http.ResponseWriter, r *http.Request) {
	if h.store == nil {
		WriteError(w, http.StatusNotImplemented, "history_unavailable", "invocation history is not configured")
		return
	}

	id := r.PathValue("id")
	record, err := h.store.Get(r.Context(), id)
	if err != nil {
		WriteError(w, http.StatusNotFound, "invocation_not_found", "invocation \""+id+"\" not found")
		return
	}
	WriteJSON(w, http.StatusOK, record)
}
