package mcptools

import (
	"sort"

	"github.com/mark3labs/mcp-go/mcp"
)

// validateFilters enforces that at most one of the two filter sets is given.
// This is a configuration error and is checked before any connection attempt.
func validateFilters(include, exclude []string) error {
	if len(include) > 0 && len(exclude) > 0 {
		return configErrorf("cannot specify both include and exclude tool filters")
	}
	return nil
}

// validateToolNames verifies every requested name exists among the listed
// tools. Unknown names fail with an error naming them and the full available
// set rather than being silently ignored.
func validateToolNames(requested, available []string) error {
	if len(requested) == 0 {
		return nil
	}
	known := make(map[string]bool, len(available))
	for _, name := range available {
		known[name] = true
	}
	var unknown []string
	for _, name := range requested {
		if !known[name] {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) == 0 {
		return nil
	}
	sort.Strings(unknown)
	avail := append([]string(nil), available...)
	sort.Strings(avail)
	return configErrorf("tool names not found on MCP server: %v; available tools: %v", unknown, avail)
}

// filterTools applies the include/exclude filter. Include mode keeps only
// listed names, exclude mode drops them, and no filter keeps everything.
func filterTools(tools []mcp.Tool, include, exclude []string) []mcp.Tool {
	switch {
	case len(include) > 0:
		keep := make(map[string]bool, len(include))
		for _, name := range include {
			keep[name] = true
		}
		var out []mcp.Tool
		for _, t := range tools {
			if keep[t.Name] {
				out = append(out, t)
			}
		}
		return out
	case len(exclude) > 0:
		drop := make(map[string]bool, len(exclude))
		for _, name := range exclude {
			drop[name] = true
		}
		var out []mcp.Tool
		for _, t := range tools {
			if !drop[t.Name] {
				out = append(out, t)
			}
		}
		return out
	default:
		return tools
	}
}
