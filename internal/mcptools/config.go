package mcptools

import "time"

// StdioServerParams describes how to launch a stdio MCP server subprocess.
type StdioServerParams struct {
	Command string
	Args    []string
	Env     map[string]string
}

// envSlice renders Env as KEY=VALUE pairs for the subprocess.
func (p StdioServerParams) envSlice() []string {
	if len(p.Env) == 0 {
		return nil
	}
	env := make([]string, 0, len(p.Env))
	for k, v := range p.Env {
		env = append(env, k+"="+v)
	}
	return env
}

// HTTPServerParams describes a streamable-HTTP MCP server endpoint.
type HTTPServerParams struct {
	URL     string
	Headers map[string]string
}

// Options controls filtering and read timeouts for a tool-set scope.
// IncludeTools and ExcludeTools are mutually exclusive; setting both is a
// configuration error. A zero Timeout blocks indefinitely on reads.
type Options struct {
	IncludeTools []string
	ExcludeTools []string
	Timeout      time.Duration
}

// requestedNames returns whichever filter set is in use, for name validation
// against the server's listed tools.
func (o Options) requestedNames() []string {
	if len(o.IncludeTools) > 0 {
		return o.IncludeTools
	}
	return o.ExcludeTools
}
