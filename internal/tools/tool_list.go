// Package tools aggregates converted MCP tools from any number of servers
// into a single named collection.
package tools

import (
	"encoding/json"
	"sort"
	"sync"

	"github.com/toolbridge/toolbridge/internal/schema"
)

// ToolList holds a named set of tools and exposes them for LLM calls and
// runtime extension (e.g. MCP servers).
type ToolList struct {
	mu    sync.RWMutex
	tools map[string]*schema.Tool
}

func NewToolList(ts ...*schema.Tool) *ToolList {
	list := ToolList{tools: make(map[string]*schema.Tool, len(ts))}
	for _, t := range ts {
		list.tools[t.Name()] = t
	}

	return &list
}

// Get returns the tool registered under name, or nil if not found.
func (r *ToolList) Get(name string) *schema.Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.tools[name]
}

// Add registers t under name, replacing any existing tool with that name.
func (r *ToolList) Add(name string, t *schema.Tool) *schema.Tool {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tools[name] = t

	return t
}

// Names returns the registered names in sorted order.
func (r *ToolList) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Definitions returns all tool definitions in OpenAI function-calling format.
func (r *ToolList) Definitions() []map[string]any {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]map[string]any, 0, len(r.tools))
	for name, t := range r.tools {
		var params any
		if err := json.Unmarshal(t.Parameters(), &params); err != nil {
			params = map[string]any{"type": "object", "properties": map[string]any{}}
		}
		list = append(list, map[string]any{
			"type": "function",
			"function": map[string]any{
				"name":        name,
				"description": t.Description(),
				"parameters":  params,
			},
		})
	}
	return list
}
