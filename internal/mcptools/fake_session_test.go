package mcptools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// fakeSession is an in-memory Session for tests: it records the calls made
// against it and serves canned tool listings and call results.
type fakeSession struct {
	tools   []mcp.Tool
	results map[string]*mcp.CallToolResult

	initErr error
	listErr error
	callErr error

	initialized  bool
	closed       bool
	lastCallName string
	lastCallArgs map[string]any
	lastCallCtx  context.Context
}

func (f *fakeSession) Initialize(_ context.Context, _ mcp.InitializeRequest) (*mcp.InitializeResult, error) {
	if f.initErr != nil {
		return nil, f.initErr
	}
	f.initialized = true
	return &mcp.InitializeResult{}, nil
}

func (f *fakeSession) ListTools(_ context.Context, _ mcp.ListToolsRequest) (*mcp.ListToolsResult, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	if !f.initialized {
		return nil, fmt.Errorf("list before initialize")
	}
	return &mcp.ListToolsResult{Tools: f.tools}, nil
}

func (f *fakeSession) CallTool(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	f.lastCallName = req.Params.Name
	f.lastCallArgs = req.GetArguments()
	f.lastCallCtx = ctx
	if f.callErr != nil {
		return nil, f.callErr
	}
	result, ok := f.results[req.Params.Name]
	if !ok {
		return nil, fmt.Errorf("unknown tool %q", req.Params.Name)
	}
	return result, nil
}

func (f *fakeSession) Close() error {
	f.closed = true
	return nil
}

func textResult(texts ...string) *mcp.CallToolResult {
	result := &mcp.CallToolResult{}
	for _, s := range texts {
		result.Content = append(result.Content, mcp.TextContent{Type: "text", Text: s})
	}
	return result
}

// addServer is the fixture most tests use: an "add" tool with two required
// integers and a "greet" tool with no parameters.
func addServer() *fakeSession {
	return &fakeSession{
		tools: []mcp.Tool{
			{
				Name:        "add",
				Description: "Add two numbers",
				InputSchema: mcp.ToolInputSchema{
					Type: "object",
					Properties: map[string]any{
						"a": map[string]any{"type": "integer", "description": "first operand"},
						"b": map[string]any{"type": "integer"},
					},
					Required: []string{"a", "b"},
				},
			},
			{
				Name:        "greet",
				Description: "Say hello",
				InputSchema: mcp.ToolInputSchema{Type: "object"},
			},
		},
		results: map[string]*mcp.CallToolResult{
			"add":   textResult("3"),
			"greet": textResult("hello"),
		},
	}
}
