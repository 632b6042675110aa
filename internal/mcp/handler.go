package mcp

import (
	"context"
	"net/http"
	"sync"

	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/opennotebook/toolbridge/internal/common"
	"github.com/opennotebook/toolbridge/internal/config"
	"github.com/opennotebook/toolbridge/internal/dispatch"
	"github.com/opennotebook/toolbridge/internal/registry"
)

// Executor runs one named tool against caller-supplied arguments.
type Executor interface {
	Execute(ctx context.Context, tool string, args map[string]any) (*dispatch.Result, error)
}

// Handler is the HTTP handler for the MCP endpoint.
// It wraps mcp-go's StreamableHTTPServer and delegates to it.
type Handler struct {
	mcpServer  *mcpserver.MCPServer
	streamable *mcpserver.StreamableHTTPServer
	logger     *common.Logger
	executor   Executor

	mu        sync.Mutex // guards toolNames across refreshes
	toolNames []string
}

// NewHandler creates a new MCP handler with tools registered from the
// compiled registry snapshot.
func NewHandler(logger *common.Logger, reg *registry.Registry, executor Executor) *Handler {
	mcpSrv := mcpserver.NewMCPServer(
		"toolbridge",
		config.GetVersion(),
		mcpserver.WithToolCapabilities(true),
	)

	h := &Handler{
		mcpServer: mcpSrv,
		logger:    logger,
		executor:  executor,
	}

	toolCount := h.registerTools(reg)
	mcpSrv.AddTool(VersionTool(), VersionToolHandler())

	h.streamable = mcpserver.NewStreamableHTTPServer(mcpSrv,
		mcpserver.WithStateLess(true),
	)

	logger.Info().
		Int("tools", toolCount).
		Msg("MCP handler initialized")

	return h
}

// registerTools adds one MCP tool per registry entry and remembers the names
// so a later refresh can remove them.
func (h *Handler) registerTools(reg *registry.Registry) int {
	names := reg.Names()
	for _, name := range names {
		entry, ok := reg.Get(name)
		if !ok {
			continue
		}
		h.mcpServer.AddTool(BuildMCPTool(entry.Spec), GenericToolHandler(h.executor, name))
	}
	h.toolNames = names
	return len(names)
}

// RefreshTools replaces the registered tools with the registry's current
// snapshot. Called after a catalog reload.
func (h *Handler) RefreshTools(reg *registry.Registry) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.toolNames) > 0 {
		h.mcpServer.DeleteTools(h.toolNames...)
	}
	toolCount := h.registerTools(reg)
	h.logger.Info().Int("tools", toolCount).Msg("MCP tools refreshed")
}

// ServeHTTP delegates to the mcp-go StreamableHTTPServer.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.streamable.ServeHTTP(w, r)
}
