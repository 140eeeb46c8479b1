package mcptools

import (
	"context"
	"errors"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/toolbridge/toolbridge/internal/schema"
)

func TestConvert_Metadata(t *testing.T) {
	sess := addServer()
	tool := Convert(sess, sess.tools[0])

	if tool.Name() != "add" {
		t.Errorf("expected name add, got %q", tool.Name())
	}
	if tool.Description() != "Add two numbers" {
		t.Errorf("unexpected description: %q", tool.Description())
	}
	if got := tool.ArgTypes()["a"]; got != schema.TypeInt {
		t.Errorf("expected int arg type, got %q", got)
	}
	if got := tool.ArgDesc()["a"]; got != "first operand (Required)" {
		t.Errorf("unexpected arg description: %q", got)
	}
	if got := tool.ArgDesc()["b"]; got != "No description provided. (Required)" {
		t.Errorf("unexpected arg description: %q", got)
	}
}

func TestConvert_RoundTrip(t *testing.T) {
	sess := addServer()
	tool := Convert(sess, sess.tools[0])

	got, err := tool.Call(context.Background(), map[string]any{"a": 1, "b": 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "3" {
		t.Errorf("expected %q, got %#v", "3", got)
	}
	if sess.lastCallName != "add" {
		t.Errorf("expected call to add, got %q", sess.lastCallName)
	}
	if sess.lastCallArgs["a"] != 1 || sess.lastCallArgs["b"] != 2 {
		t.Errorf("arguments not passed through: %v", sess.lastCallArgs)
	}
}

func TestConvert_NoParameterTool(t *testing.T) {
	sess := addServer()
	tool := Convert(sess, sess.tools[1])

	if len(tool.Args()) != 0 {
		t.Errorf("expected no args, got %v", tool.Args())
	}

	got, err := tool.Call(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "hello" {
		t.Errorf("expected %q, got %#v", "hello", got)
	}
}

func TestConvert_ServerError(t *testing.T) {
	sess := addServer()
	sess.results["add"] = &mcp.CallToolResult{
		Content: []mcp.Content{mcp.TextContent{Type: "text", Text: "division by zero"}},
		IsError: true,
	}
	tool := Convert(sess, sess.tools[0])

	_, err := tool.Call(context.Background(), map[string]any{"a": 1, "b": 2})
	var invErr *InvocationError
	if !errors.As(err, &invErr) {
		t.Fatalf("expected InvocationError, got %T: %v", err, err)
	}
	if invErr.Message != "division by zero" {
		t.Errorf("unexpected message: %q", invErr.Message)
	}
}

func TestConvert_TransportErrorPassesThrough(t *testing.T) {
	sess := addServer()
	sentinel := errors.New("pipe broke")
	sess.callErr = sentinel
	tool := Convert(sess, sess.tools[0])

	_, err := tool.Call(context.Background(), map[string]any{"a": 1, "b": 2})
	if !errors.Is(err, sentinel) {
		t.Errorf("expected transport error unchanged, got %v", err)
	}
}

func TestConvert_RepeatedCalls(t *testing.T) {
	sess := addServer()
	tool := Convert(sess, sess.tools[0])

	for i := 0; i < 3; i++ {
		got, err := tool.Call(context.Background(), map[string]any{"a": 1, "b": 2})
		if err != nil {
			t.Fatalf("call %d: unexpected error: %v", i, err)
		}
		if got != "3" {
			t.Fatalf("call %d: expected %q, got %#v", i, "3", got)
		}
	}
}
