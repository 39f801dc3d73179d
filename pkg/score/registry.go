package score

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Registry holds all registered plugins.
type Registry struct {
	mu      sync.RWMutex
	plugins map[string]Plugin
}

// NewRegistry creates an empty plugin registry.
func NewRegistry() *Registry {
	return &Registry{plugins: make(map[string]Plugin)}
}

// Register adds a plugin to the registry.
// If a plugin with the same id already exists, it is replaced.
func (r *Registry) Register(plugin Plugin) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.plugins[plugin.ID()] = plugin
}

// Get retrieves a plugin by id.
func (r *Registry) Get(id string) (Plugin, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	plugin, ok := r.plugins[id]
	return plugin, ok
}

// IDs returns all registered plugin ids in sorted order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.plugins))
	for id := range r.plugins {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// CycleError reports a dependency cycle among registered plugins.
// A misconfigured graph is a configuration error surfaced to the operator,
// not something to silently break at an arbitrary point.
type CycleError struct {
	// Cycle lists the plugin ids along the cycle, ending where it started.
	Cycle []string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("plugin dependency cycle: %s", strings.Join(e.Cycle, " -> "))
}

// Order returns the enabled plugins in dependency order: every plugin
// appears after all of its enabled dependencies. Disabled plugins are
// skipped both as nodes and as dependencies; a dependency on an
// unregistered id is ignored (the dependent plugin must tolerate the
// missing context it implies). Ties are broken by sorted id so the order
// is deterministic.
func (r *Registry) Order(enabled func(Plugin) bool) ([]Plugin, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if enabled == nil {
		enabled = func(p Plugin) bool { return p.DefaultEnabled() }
	}

	ids := make([]string, 0, len(r.plugins))
	for id, plugin := range r.plugins {
		if enabled(plugin) {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)

	const (
		unvisited = iota
		visiting
		done
	)
	state := make(map[string]int, len(ids))
	stack := []string{}
	var ordered []Plugin

	var visit func(id string) error
	visit = func(id string) error {
		plugin, ok := r.plugins[id]
		if !ok || !enabled(plugin) {
			return nil
		}
		switch state[id] {
		case done:
			return nil
		case visiting:
			// The id is on the DFS stack: slice out the cycle for the error.
			start := 0
			for i, sid := range stack {
				if sid == id {
					start = i
					break
				}
			}
			return &CycleError{Cycle: append(append([]string{}, stack[start:]...), id)}
		}

		state[id] = visiting
		stack = append(stack, id)

		deps := append([]string{}, plugin.Dependencies()...)
		sort.Strings(deps)
		for _, dep := range deps {
			if err := visit(dep); err != nil {
				return err
			}
		}

		stack = stack[:len(stack)-1]
		state[id] = done
		ordered = append(ordered, plugin)
		return nil
	}

	for _, id := range ids {
		if err := visit(id); err != nil {
			return nil, err
		}
	}
	return ordered, nil
}

// DefaultRegistry is the global registry for built-in plugins.
// Plugins register themselves during init().
//
//nolint:gochecknoglobals // Global registry is intentional for plugin registration
var DefaultRegistry = NewRegistry()
