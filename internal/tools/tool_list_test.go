package tools

import (
	"testing"

	"github.com/toolbridge/toolbridge/internal/schema"
)

func TestToolList_AddGet(t *testing.T) {
	list := NewToolList()
	tool := schema.NewTool(nil, "x", "does x", nil, nil, nil)

	list.Add("mcp_srv_x", tool)

	if got := list.Get("mcp_srv_x"); got != tool {
		t.Errorf("expected registered tool back, got %v", got)
	}
	if got := list.Get("missing"); got != nil {
		t.Errorf("expected nil for unknown name, got %v", got)
	}
}

func TestToolList_Definitions(t *testing.T) {
	args := map[string]map[string]any{
		"q": {"type": "string"},
	}
	tool := schema.NewTool(nil, "search", "find things", args, map[string]schema.ArgType{"q": schema.TypeString}, nil)
	list := NewToolList()
	list.Add("search", tool)

	defs := list.Definitions()
	if len(defs) != 1 {
		t.Fatalf("expected 1 definition, got %d", len(defs))
	}
	if defs[0]["type"] != "function" {
		t.Errorf("expected function type, got %v", defs[0]["type"])
	}
	fn, _ := defs[0]["function"].(map[string]any)
	if fn["name"] != "search" || fn["description"] != "find things" {
		t.Errorf("unexpected function block: %v", fn)
	}
	params, _ := fn["parameters"].(map[string]any)
	if params["type"] != "object" {
		t.Errorf("expected object parameters, got %v", params)
	}
}
