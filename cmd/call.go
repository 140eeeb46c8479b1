package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/toolbridge/toolbridge/internal/config"
	"github.com/toolbridge/toolbridge/internal/mcptools"
	"github.com/toolbridge/toolbridge/internal/schema"
	"github.com/toolbridge/toolbridge/internal/shared/cmdutils"
)

var (
	callConfigPath string
	callArgsJSON   string
	callTimeout    float64
)

var callCmd = &cobra.Command{
	Use:   "call <server> <tool>",
	Short: "Invoke one tool on a configured MCP server",
	Args:  cobra.ExactArgs(2),
	RunE:  runCall,
}

func init() {
	callCmd.Flags().StringVarP(&callConfigPath, "config", "c", "", "Config file path")
	callCmd.Flags().StringVarP(&callArgsJSON, "args", "a", "{}", "Tool arguments as a JSON object")
	callCmd.Flags().Float64VarP(&callTimeout, "timeout", "t", 0, "Read timeout in seconds (0 = server default)")
}

func runCall(cmd *cobra.Command, args []string) error {
	server, tool := args[0], args[1]

	cfg, err := config.Load(callConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	sc, ok := cfg.MCPServers[server]
	if !ok {
		return fmt.Errorf("server %q not found in config", server)
	}

	var kwargs map[string]any
	if err := json.Unmarshal([]byte(callArgsJSON), &kwargs); err != nil {
		return fmt.Errorf("parse --args: %w", err)
	}

	timeout := sc.Timeout(cfg.Defaults.TimeoutSeconds)
	if callTimeout > 0 {
		timeout = time.Duration(callTimeout * float64(time.Second))
	}
	// Restricting the scope to the one requested tool also validates its
	// name against the server's listing.
	opts := mcptools.Options{IncludeTools: []string{tool}, Timeout: timeout}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	run := func(ctx context.Context, tools []*schema.Tool) error {
		if len(tools) != 1 {
			return fmt.Errorf("tool %q not available on server %q", tool, server)
		}
		result, err := tools[0].Call(ctx, kwargs)
		if err != nil {
			return err
		}
		cmdutils.PrintResult(result)
		return nil
	}

	switch {
	case sc.Command != "":
		params := mcptools.StdioServerParams{Command: sc.Command, Args: sc.Args, Env: sc.Env}
		return mcptools.WithStdioTools(ctx, params, opts, run)
	case sc.URL != "":
		params := mcptools.HTTPServerParams{URL: sc.URL, Headers: sc.Headers}
		return mcptools.WithHTTPTools(ctx, params, opts, run)
	default:
		return fmt.Errorf("server %q has no command or url configured", server)
	}
}
