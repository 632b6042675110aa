package app

import (
	"fmt"

	"github.com/opennotebook/toolbridge/internal/catalog"
	"github.com/opennotebook/toolbridge/internal/common"
	"github.com/opennotebook/toolbridge/internal/config"
	"github.com/opennotebook/toolbridge/internal/dispatch"
	"github.com/opennotebook/toolbridge/internal/handlers"
	"github.com/opennotebook/toolbridge/internal/interfaces"
	"github.com/opennotebook/toolbridge/internal/mcp"
	"github.com/opennotebook/toolbridge/internal/registry"
	"github.com/opennotebook/toolbridge/internal/storage"
)

// App holds all application components and dependencies.
type App struct {
	Config   *config.Config
	Logger   *common.Logger
	Registry *registry.Registry

	Storage    interfaces.StorageManager
	Dispatcher *dispatch.Dispatcher

	// HTTP handlers
	HealthHandler      *handlers.HealthHandler
	VersionHandler     *handlers.VersionHandler
	ToolsHandler       *handlers.ToolsHandler
	ExecuteHandler     *handlers.ExecuteHandler
	CLIHandler         *handlers.CLIHandler
	InvocationsHandler *handlers.InvocationsHandler
	MCPHandler         *mcp.Handler
}

// New initializes the application with all dependencies.
func New(cfg *config.Config, logger *common.Logger) (*App, error) {
	a := &App{
		Config: cfg,
		Logger: logger,
	}

	cat, err := catalog.Source(cfg.Catalog.File)
	if err != nil {
		return nil, fmt.Errorf("failed to load command catalog: %w", err)
	}

	a.Registry = registry.New(logger)
	report := a.Registry.Load(cat)
	if report.Loaded == 0 {
		logger.Warn().
			Int("errors", len(report.Errors)).
			Msg("no tools compiled from catalog, all lookups will fail")
	}

	a.initStorage()
	a.initDispatcher()
	a.initHandlers()

	logger.Info().
		Int("tools", a.Registry.Len()).
		Str("binary", cfg.Command.Binary).
		Msg("application initialization complete")

	return a, nil
}

// initStorage opens the history store. History is optional: an empty badger
// path disables it, and an open failure degrades to no history rather than
// failing startup.
func (a *App) initStorage() {
	if a.Config.Storage.Badger.Path == "" {
		a.Logger.Info().Msg("invocation history disabled, no storage path configured")
		return
	}

	store, err := storage.NewStorageManager(a.Logger, a.Config)
	if err != nil {
		a.Logger.Warn().
			Str("path", a.Config.Storage.Badger.Path).
			Str("error", err.Error()).
			Msg("failed to open history storage, continuing without history")
		return
	}
	a.Storage = store
}

// initDispatcher wires the dispatcher against the registry and history store.
func (a *App) initDispatcher() {
	var history interfaces.InvocationStore
	if a.Storage != nil {
		history = a.Storage.Invocations()
	}

	a.Dispatcher = dispatch.New(a.Registry, a.Logger, dispatch.Options{
		Binary:        a.Config.Command.Binary,
		BaseArgs:      a.Config.Command.Args,
		Timeout:       a.Config.Command.GetTimeout(),
		MaxConcurrent: a.Config.Command.MaxConcurrent,
		History:       history,
	})
}

// initHandlers initializes all HTTP handlers.
func (a *App) initHandlers() {
	a.HealthHandler = handlers.NewHealthHandler(a.Logger)
	a.VersionHandler = handlers.NewVersionHandler(a.Logger)
	a.ExecuteHandler = handlers.NewExecuteHandler(a.Logger, a.Dispatcher)
	a.CLIHandler = handlers.NewCLIHandler(a.Logger, a.ExecuteHandler)

	var history interfaces.InvocationStore
	if a.Storage != nil {
		history = a.Storage.Invocations()
	}
	a.InvocationsHandler = handlers.NewInvocationsHandler(a.Logger, history)

	a.MCPHandler = mcp.NewHandler(a.Logger, a.Registry, a.Dispatcher)
	a.ToolsHandler = handlers.NewToolsHandler(a.Logger, a.Registry, a.reloadRegistry)

	a.Logger.Debug().Msg("HTTP handlers initialized")
}

// reloadRegistry re-resolves the catalog source, swaps the registry snapshot,
// and refreshes the MCP tool set.
func (a *App) reloadRegistry() (registry.LoadReport, error) {
	cat, err := catalog.Source(a.Config.Catalog.File)
	if err != nil {
		return registry.LoadReport{}, err
	}

	report := a.Registry.Load(cat)
	if a.MCPHandler != nil {
		a.MCPHandler.RefreshTools(a.Registry)
	}
	return report, nil
}

// Close closes all application resources.
func (a *App) Close() error {
	if a.Storage != nil {
		return a.Storage.Close()
	}
	return nil
}
