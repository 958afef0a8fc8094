// Package tools defines the capability tools exposed by the tool server and
// the registry that holds them.
package tools

import (
	"context"
	"sync"
)

// Tool is the structural interface for any capability the tool server
// exposes. It carries the metadata advertised to clients (name, description,
// JSON Schema) and the execution logic itself.
type Tool interface {
	Name() string
	Description() string
	// InputSchema returns the JSON Schema describing the tool arguments.
	InputSchema() map[string]any
	// Execute performs the tool logic using the provided argument map.
	Execute(ctx context.Context, args map[string]any) (string, error)
}

// Registry acts as a central inventory for all tools served to clients.
type Registry struct {
	mu    sync.RWMutex
	tools map[string]Tool
	order []string
}

// NewRegistry creates an empty tool registry.
func NewRegistry() *Registry {
	return &Registry{
		tools: make(map[string]Tool),
	}
}

// Register adds a tool to the registry.
func (r *Registry) Register(tool Tool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.tools[tool.Name()]; !exists {
		r.order = append(r.order, tool.Name())
	}
	r.tools[tool.Name()] = tool
}

// Unregister removes a tool from the registry.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.tools[name]; !exists {
		return
	}
	delete(r.tools, name)
	for i, n := range r.order {
		if n == name {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// Get retrieves a tool by name.
func (r *Registry) Get(name string) (Tool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tool, ok := r.tools[name]
	return tool, ok
}

// GetAll returns all registered tools in registration order.
func (r *Registry) GetAll() []Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Tool, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.tools[name])
	}
	return out
}
