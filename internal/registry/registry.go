// Package registry caches compiled tool schemas for lookup.
package registry

import (
	"sort"
	"sync/atomic"

	"github.com/opennotebook/toolbridge/internal/catalog"
	"github.com/opennotebook/toolbridge/internal/common"
	"github.com/opennotebook/toolbridge/internal/schema"
)

// Entry pairs a compiled ToolSpec with the descriptor it was compiled from.
// The descriptor is what the dispatcher marshals arguments against.
type Entry struct {
	Spec    schema.ToolSpec
	Command catalog.Command
}

// snapshot is one immutable generation of the registry. Readers hold a
// snapshot pointer for the duration of a call and never see a mix of
// generations.
type snapshot struct {
	entries map[string]Entry
	names   []string // sorted
}

// LoadReport summarizes one registry load.
type LoadReport struct {
	Loaded int
	Errors []schema.CompileError
}

// Registry holds the current tool snapshot. Load replaces the snapshot
// wholesale; Get and List are lock-free reads.
type Registry struct {
	logger  *common.Logger
	current atomic.Pointer[snapshot]
}

// New creates an empty registry.
func New(logger *common.Logger) *Registry {
	if logger == nil {
		logger = common.NewSilentLogger()
	}
	r := &Registry{logger: logger}
	r.current.Store(&snapshot{entries: map[string]Entry{}})
	return r
}

// Load compiles the catalog and swaps in the new snapshot atomically.
// Compilation errors exclude individual commands but never fail the load.
func (r *Registry) Load(cat catalog.Catalog) LoadReport {
	specs, errs := schema.Compile(cat)

	entries := make(map[string]Entry, len(specs))
	names := make([]string, 0, len(specs))
	// Compile keeps the first occurrence of a duplicated name, so the
	// descriptor map must too: an entry's descriptor has to be the one its
	// spec was compiled from.
	byName := make(map[string]catalog.Command, len(cat.Commands))
	for _, cmd := range cat.Commands {
		if _, ok := byName[cmd.Name]; ok {
			continue
		}
		byName[cmd.Name] = cmd
	}
	for name, spec := range specs {
		entries[name] = Entry{Spec: spec, Command: byName[name]}
		names = append(names, name)
	}
	sort.Strings(names)

	r.current.Store(&snapshot{entries: entries, names: names})

	r.logger.Info().
		Int("tools", len(entries)).
		Int("errors", len(errs)).
		Msg("tool registry loaded")
	for _, e := range errs {
		r.logger.Warn().
			Str("command", e.Command).
			Str("error", e.Err.Error()).
			Msg("skipping command that failed to compile")
	}

	return LoadReport{Loaded: len(entries), Errors: errs}
}

// Get returns the entry for a tool name.
func (r *Registry) Get(name string) (Entry, bool) {
	e, ok := r.current.Load().entries[name]
	return e, ok
}

// List returns all tool specs in lexicographic name order. The order is
// stable across calls within one snapshot generation.
func (r *Registry) List() []schema.ToolSpec {
	snap := r.current.Load()
	out := make([]schema.ToolSpec, 0, len(snap.names))
	for _, name := range snap.names {
		out = append(out, snap.entries[name].Spec)
	}
	return out
}

// Names returns the sorted tool names of the current snapshot.
func (r *Registry) Names() []string {
	snap := r.current.Load()
	return append([]string(nil), snap.names...)
}

// Len returns the number of tools in the current snapshot.
func (r *Registry) Len() int {
	return len(r.current.Load().names)
}
