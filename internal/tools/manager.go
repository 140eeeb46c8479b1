package tools

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/toolbridge/toolbridge/internal/config"
	"github.com/toolbridge/toolbridge/internal/mcptools"
)

// dialFunc opens a tool set for one configured server. Swappable in tests.
type dialFunc func(ctx context.Context, cfg config.ServerConfig, opts mcptools.Options) (*mcptools.ToolSet, error)

// Manager owns the tool sets of all configured MCP servers.
type Manager struct {
	servers  map[string]config.ServerConfig
	defaults config.Defaults
	dial     dialFunc

	mu   sync.Mutex
	sets []*mcptools.ToolSet
	once sync.Once
}

// NewManager returns a Manager for the given server map.
func NewManager(cfg *config.Config) *Manager {
	return &Manager{
		servers:  cfg.MCPServers,
		defaults: cfg.Defaults,
		dial:     dialServer,
	}
}

// ConnectOnce connects to every configured MCP server concurrently and
// registers the discovered tools into list under "mcp_<server>_<tool>" names.
// It is safe to call repeatedly; connection happens at most once. Failed
// servers are logged and skipped (non-fatal).
func (m *Manager) ConnectOnce(ctx context.Context, list *ToolList) {
	m.once.Do(func() {
		g, ctx := errgroup.WithContext(ctx)
		for name, cfg := range m.servers {
			g.Go(func() error {
				opts := mcptools.Options{
					IncludeTools: cfg.IncludeTools,
					ExcludeTools: cfg.ExcludeTools,
					Timeout:      cfg.Timeout(m.defaults.TimeoutSeconds),
				}
				ts, err := m.dial(ctx, cfg, opts)
				if err != nil {
					slog.Error("MCP server connect failed", "server", name, "err", err)
					return nil
				}

				for _, t := range ts.Tools() {
					list.Add("mcp_"+name+"_"+t.Name(), t)
					slog.Debug("MCP tool registered", "server", name, "tool", t.Name())
				}
				slog.Info("MCP server connected", "server", name, "tools", len(ts.Tools()))

				m.mu.Lock()
				m.sets = append(m.sets, ts)
				m.mu.Unlock()
				return nil
			})
		}
		g.Wait() //nolint:errcheck
	})
}

// Close tears down every tool set owned by this manager.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, ts := range m.sets {
		ts.Close() //nolint:errcheck
	}
	m.sets = nil
}

// dialServer picks the transport from the server config: Command launches a
// stdio subprocess, URL connects over streamable HTTP.
func dialServer(ctx context.Context, cfg config.ServerConfig, opts mcptools.Options) (*mcptools.ToolSet, error) {
	switch {
	case cfg.Command != "":
		return mcptools.StdioTools(ctx, mcptools.StdioServerParams{
			Command: cfg.Command,
			Args:    cfg.Args,
			Env:     cfg.Env,
		}, opts)
	case cfg.URL != "":
		return mcptools.HTTPTools(ctx, mcptools.HTTPServerParams{
			URL:     cfg.URL,
			Headers: cfg.Headers,
		}, opts)
	default:
		return nil, fmt.Errorf("no command or url configured")
	}
}
