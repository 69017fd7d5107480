// Package tools describes the campus lookups the resolver may call and executes them by name.
package tools

import (
	"context"
)

// Parameter types understood by the resolver backends.
const (
	TypeString  = "string"
	TypeInteger = "integer"
)

// Parameter describes one optional tool argument.
type Parameter struct {
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Description string   `json:"description"`
	Enum        []string `json:"enum,omitempty"`
	Default     any      `json:"default,omitempty"`
	Minimum     *int     `json:"minimum,omitempty"`
	Maximum     *int     `json:"maximum,omitempty"`
}

// Args are the loosely typed arguments a model supplies for a call.
type Args map[string]any

// ExecuteFunc runs a tool.
type ExecuteFunc func(ctx context.Context, args Args) (any, error)

// Tool is a named, described operation exposed to the resolver.
type Tool struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Parameters  []Parameter `json:"parameters"`
	Execute     ExecuteFunc `json:"-"`
}

// Validate checks if the tool definition is usable.
func (t *Tool) Validate() error {
	if t.Name == "" {
		return ErrToolNameEmpty
	}
	if t.Execute == nil {
		return ErrToolExecuteNil
	}
	return nil
}

// Schema renders the parameters as a JSON-schema object. No parameter is required.
func (t *Tool) Schema() map[string]any {
	props := make(map[string]any, len(t.Parameters))
	for _, p := range t.Parameters {
		prop := map[string]any{
			"type":        p.Type,
			"description": p.Description,
		}
		if len(p.Enum) > 0 {
			prop["enum"] = p.Enum
		}
		if p.Default != nil {
			prop["default"] = p.Default
		}
		if p.Minimum != nil {
			prop["minimum"] = *p.Minimum
		}
		if p.Maximum != nil {
			prop["maximum"] = *p.Maximum
		}
		props[p.Name] = prop
	}
	return map[string]any{
		"type":       "object",
		"properties": props,
		"required":   []string{},
	}
}
