package server

import (
	"net/http"

	"github.com/opennotebook/toolbridge/internal/handlers"
)

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	// MCP endpoint (JSON-RPC over HTTP)
	if s.app.MCPHandler != nil {
		mux.Handle("/mcp", s.app.MCPHandler)
	}

	// Tool schema routes
	mux.HandleFunc("GET /api/tools", s.app.ToolsHandler.List)
	mux.HandleFunc("GET /api/tools/{name}", s.app.ToolsHandler.Get)
	mux.HandleFunc("POST /api/tools/reload", s.app.ToolsHandler.Reload)

	// Execution routes
	mux.Handle("POST /api/execute/{name}", s.app.ExecuteHandler)
	mux.Handle("POST /api/cli", s.app.CLIHandler)

	// Invocation history routes
	mux.HandleFunc("GET /api/invocations", s.app.InvocationsHandler.List)
	mux.HandleFunc("GET /api/invocations/{id}", s.app.InvocationsHandler.Get)

	// Operational routes
	mux.Handle("GET /api/health", s.app.HealthHandler)
	mux.Handle("GET /api/version", s.app.VersionHandler)

	// 404 handler for unmatched API routes
	mux.HandleFunc("/api/", s.handleNotFound)

	return mux
}

// handleNotFound returns a JSON 404 in the standard error shape for
// unmatched API routes.
func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	handlers.WriteError(w, http.StatusNotFound, "not_found", "the requested endpoint does not exist")
}
