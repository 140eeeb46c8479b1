package mcptools

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
)

// Session is the slice of an MCP client this package needs: handshake, tool
// listing, tool invocation, teardown. *client.Client from mark3labs/mcp-go
// satisfies it; tests plug in fakes through NewToolSet.
type Session interface {
	Initialize(ctx context.Context, req mcp.InitializeRequest) (*mcp.InitializeResult, error)
	ListTools(ctx context.Context, req mcp.ListToolsRequest) (*mcp.ListToolsResult, error)
	CallTool(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)
	Close() error
}

// liveSession wraps a Session with a liveness flag and an optional per-request
// read deadline. Converted tools capture the liveSession, not the raw session,
// so invoking a tool after Close fails deterministically with ErrSessionClosed
// instead of racing the transport.
type liveSession struct {
	raw     Session
	timeout time.Duration
	closed  atomic.Bool
}

func newLiveSession(raw Session, timeout time.Duration) *liveSession {
	return &liveSession{raw: raw, timeout: timeout}
}

// bound applies the configured read timeout to ctx. A zero timeout means
// block until ctx itself ends.
func (s *liveSession) bound(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.timeout)
}

func (s *liveSession) Initialize(ctx context.Context, req mcp.InitializeRequest) (*mcp.InitializeResult, error) {
	if s.closed.Load() {
		return nil, ErrSessionClosed
	}
	ctx, cancel := s.bound(ctx)
	defer cancel()
	return s.raw.Initialize(ctx, req)
}

func (s *liveSession) ListTools(ctx context.Context, req mcp.ListToolsRequest) (*mcp.ListToolsResult, error) {
	if s.closed.Load() {
		return nil, ErrSessionClosed
	}
	ctx, cancel := s.bound(ctx)
	defer cancel()
	return s.raw.ListTools(ctx, req)
}

func (s *liveSession) CallTool(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if s.closed.Load() {
		return nil, ErrSessionClosed
	}
	ctx, cancel := s.bound(ctx)
	defer cancel()
	return s.raw.CallTool(ctx, req)
}

// Close is idempotent. The underlying client closes the protocol session and
// then its transport.
func (s *liveSession) Close() error {
	if s.closed.Swap(true) {
		return nil
	}
	return s.raw.Close()
}
