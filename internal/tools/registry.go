package tools

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"
)

// Observer is notified after every executed tool call.
type Observer func(tool string, err error, duration time.Duration)

// Registry holds the available tools. It is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	tools    map[string]*Tool
	observer Observer
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{tools: make(map[string]*Tool)}
}

// SetObserver installs a callback invoked after each Execute.
func (r *Registry) SetObserver(observer Observer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.observer = observer
}

// Register adds a tool. Duplicate names are rejected.
func (r *Registry) Register(tool *Tool) error {
	if err := tool.Validate(); err != nil {
		return fmt.Errorf("invalid tool: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.tools[tool.Name]; exists {
		return fmt.Errorf("%w: %s", ErrToolAlreadyRegistered, tool.Name)
	}
	r.tools[tool.Name] = tool
	return nil
}

// MustRegister registers a tool and panics on error.
func (r *Registry) MustRegister(tool *Tool) {
	if err := r.Register(tool); err != nil {
		panic(fmt.Sprintf("failed to register tool %s: %v", tool.Name, err))
	}
}

// Get returns a tool by name, or nil if not found.
func (r *Registry) Get(name string) *Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.tools[name]
}

// Names returns all registered tool names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// List returns every tool ordered by name.
func (r *Registry) List() []*Tool {
	names := r.Names()

	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*Tool, 0, len(names))
	for _, name := range names {
		if tool, ok := r.tools[name]; ok {
			result = append(result, tool)
		}
	}
	return result
}

// Execute runs a tool by name.
func (r *Registry) Execute(ctx context.Context, name string, args Args) (any, error) {
	r.mu.RLock()
	tool, observer := r.tools[name], r.observer
	r.mu.RUnlock()
	if tool == nil {
		return nil, fmt.Errorf("%w: %s", ErrToolNotFound, name)
	}

	start := time.Now()
	result, err := tool.Execute(ctx, args)
	if observer != nil {
		observer(name, err, time.Since(start))
	}
	return result, err
}
