// Package mcptools turns tools listed by an MCP server into locally callable
// schema.Tool values, and manages the scoped session they are bound to.
//
// The wire protocol itself is handled by mark3labs/mcp-go; this package only
// performs the translation and lifecycle work around it: connect, initialize,
// list, filter, convert, and guaranteed teardown.
package mcptools

import (
	"context"
	"fmt"

	mcpclient "github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/client/transport"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/toolbridge/toolbridge/internal/schema"
)

const clientName = "toolbridge"
const clientVersion = "0.1.0"

// ToolSet owns one protocol session and the tools converted from it.
// The session and transport belong exclusively to the ToolSet; tools hold
// only a non-owning reference and never tear anything down themselves.
type ToolSet struct {
	session *liveSession
	tools   []*schema.Tool
}

// Tools returns the converted tools, in the server's listing order.
func (ts *ToolSet) Tools() []*schema.Tool { return ts.tools }

// Close tears down the protocol session and its transport. It is idempotent;
// tools obtained from this set fail with ErrSessionClosed afterwards.
func (ts *ToolSet) Close() error { return ts.session.Close() }

// StdioTools launches the given MCP server subprocess and returns the tool
// set exposed over its standard streams. The caller owns the returned set
// and must Close it when done with the tools.
func StdioTools(ctx context.Context, params StdioServerParams, opts Options) (*ToolSet, error) {
	if err := validateFilters(opts.IncludeTools, opts.ExcludeTools); err != nil {
		return nil, err
	}
	c, err := mcpclient.NewStdioMCPClient(params.Command, params.envSlice(), params.Args...)
	if err != nil {
		return nil, fmt.Errorf("start MCP server: %w", err)
	}
	return NewToolSet(ctx, c, opts)
}

// HTTPTools connects to a streamable-HTTP MCP server and returns its tool
// set. The caller owns the returned set and must Close it when done.
func HTTPTools(ctx context.Context, params HTTPServerParams, opts Options) (*ToolSet, error) {
	if err := validateFilters(opts.IncludeTools, opts.ExcludeTools); err != nil {
		return nil, err
	}
	var topts []transport.StreamableHTTPCOption
	if len(params.Headers) > 0 {
		topts = append(topts, transport.WithHTTPHeaders(params.Headers))
	}
	c, err := mcpclient.NewStreamableHttpClient(params.URL, topts...)
	if err != nil {
		return nil, fmt.Errorf("connect MCP server %s: %w", params.URL, err)
	}
	if err := c.Start(ctx); err != nil {
		c.Close() //nolint:errcheck
		return nil, fmt.Errorf("connect MCP server %s: %w", params.URL, err)
	}
	return NewToolSet(ctx, c, opts)
}

// NewToolSet runs the post-connection logic shared by both transports:
// handshake, tool listing, filter-name validation, filtering, and
// conversion. On any failure the session is torn down before the error is
// returned; no tool reaches the caller unless every step succeeded.
func NewToolSet(ctx context.Context, session Session, opts Options) (*ToolSet, error) {
	if err := validateFilters(opts.IncludeTools, opts.ExcludeTools); err != nil {
		session.Close() //nolint:errcheck
		return nil, err
	}

	live := newLiveSession(session, opts.Timeout)
	ts, err := buildToolSet(ctx, live, opts)
	if err != nil {
		live.Close() //nolint:errcheck
		return nil, err
	}
	return ts, nil
}

func buildToolSet(ctx context.Context, live *liveSession, opts Options) (*ToolSet, error) {
	initReq := mcp.InitializeRequest{}
	initReq.Params.ProtocolVersion = mcp.LATEST_PROTOCOL_VERSION
	initReq.Params.ClientInfo = mcp.Implementation{Name: clientName, Version: clientVersion}
	if _, err := live.Initialize(ctx, initReq); err != nil {
		return nil, fmt.Errorf("initialize: %w", err)
	}

	listed, err := live.ListTools(ctx, mcp.ListToolsRequest{})
	if err != nil {
		return nil, fmt.Errorf("list tools: %w", err)
	}

	available := make([]string, 0, len(listed.Tools))
	for _, t := range listed.Tools {
		available = append(available, t.Name)
	}
	if err := validateToolNames(opts.requestedNames(), available); err != nil {
		return nil, err
	}

	filtered := filterTools(listed.Tools, opts.IncludeTools, opts.ExcludeTools)
	tools := make([]*schema.Tool, 0, len(filtered))
	for _, t := range filtered {
		tools = append(tools, Convert(live, t))
	}
	return &ToolSet{session: live, tools: tools}, nil
}

// WithStdioTools runs fn with the tools of a stdio MCP server, tearing the
// session down on every exit path, including a panic unwinding through fn.
func WithStdioTools(ctx context.Context, params StdioServerParams, opts Options, fn func(ctx context.Context, tools []*schema.Tool) error) error {
	ts, err := StdioTools(ctx, params, opts)
	if err != nil {
		return err
	}
	defer ts.Close() //nolint:errcheck
	return fn(ctx, ts.Tools())
}

// WithHTTPTools runs fn with the tools of a streamable-HTTP MCP server,
// tearing the session down on every exit path.
func WithHTTPTools(ctx context.Context, params HTTPServerParams, opts Options, fn func(ctx context.Context, tools []*schema.Tool) error) error {
	ts, err := HTTPTools(ctx, params, opts)
	if err != nil {
		return err
	}
	defer ts.Close() //nolint:errcheck
	return fn(ctx, ts.Tools())
}
