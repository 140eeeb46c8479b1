package cmd

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/toolbridge/toolbridge/internal/config"
	"github.com/toolbridge/toolbridge/internal/dependency"
)

var (
	toolsConfigPath string
	toolsServer     string
)

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the tools exposed by the configured MCP servers",
	RunE:  runTools,
}

func init() {
	toolsCmd.Flags().StringVarP(&toolsConfigPath, "config", "c", "", "Config file path")
	toolsCmd.Flags().StringVarP(&toolsServer, "server", "s", "", "Only this server")
}

func runTools(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(toolsConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if toolsServer != "" {
		sc, ok := cfg.MCPServers[toolsServer]
		if !ok {
			return fmt.Errorf("server %q not found in config", toolsServer)
		}
		cfg.MCPServers = map[string]config.ServerConfig{toolsServer: sc}
	}
	if len(cfg.MCPServers) == 0 {
		fmt.Printf("%s No MCP servers configured. Edit %s\n", logo, config.ConfigPath())
		return nil
	}

	services, err := dependency.New(cfg)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	services.Manager().ConnectOnce(ctx, services.ToolList())
	defer services.Manager().Close()

	list := services.ToolList()
	names := list.Names()
	fmt.Printf("%s %d tool(s)\n\n", logo, len(names))
	for _, name := range names {
		t := list.Get(name)
		fmt.Printf("%s\n", name)
		if t.Description() != "" {
			fmt.Printf("    %s\n", t.Description())
		}
		args := make([]string, 0, len(t.ArgTypes()))
		for arg := range t.ArgTypes() {
			args = append(args, arg)
		}
		sort.Strings(args)
		for _, arg := range args {
			fmt.Printf("    %-16s %-16s %s\n", arg, t.ArgTypes()[arg], t.ArgDesc()[arg])
		}
		fmt.Println()
	}
	return nil
}
