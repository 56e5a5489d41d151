// Package registry holds the tool catalog. Tools register once at startup;
// afterwards the registry is read-only and safe for concurrent lookups.
package registry

import (
	"sync"

	"bit-tools/internal/models"
)

// Registry maps tool ids to tools and keeps registration order for the
// home page listing.
type Registry struct {
	mu         sync.RWMutex
	tools      map[string]*models.Tool
	order      []string
	categories map[string][]string
	catOrder   []string
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		tools:      make(map[string]*models.Tool),
		categories: make(map[string][]string),
	}
}

var (
	defaultRegistry *Registry
	defaultOnce     sync.Once
)

// Default returns the process-wide registry.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = New()
	})
	return defaultRegistry
}

// Register adds a tool under its derived id. Re-registering an id replaces
// the tool but keeps its original position in the listing order.
func (r *Registry) Register(tool *models.Tool, categories ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := tool.ID()
	if _, exists := r.tools[id]; !exists {
		r.order = append(r.order, id)
		for _, cat := range categories {
			if _, seen := r.categories[cat]; !seen {
				r.catOrder = append(r.catOrder, cat)
			}
			r.categories[cat] = append(r.categories[cat], id)
		}
	}
	r.tools[id] = tool
}

// Get returns the tool for an id, or nil when unknown.
func (r *Registry) Get(id string) *models.Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.tools[id]
}

// All returns every tool in registration order.
func (r *Registry) All() []*models.Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tools := make([]*models.Tool, 0, len(r.order))
	for _, id := range r.order {
		tools = append(tools, r.tools[id])
	}
	return tools
}

// ByCategory returns the tools registered under a category, in registration
// order. Unknown categories return an empty slice.
func (r *Registry) ByCategory(category string) []*models.Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := r.categories[category]
	tools := make([]*models.Tool, 0, len(ids))
	for _, id := range ids {
		tools = append(tools, r.tools[id])
	}
	return tools
}

// Categories returns category names in first-registration order.
func (r *Registry) Categories() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, len(r.catOrder))
	copy(out, r.catOrder)
	return out
}

// Len returns the number of registered tools.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tools)
}
