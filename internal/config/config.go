// Package config defines the toolbridge configuration schema.
//
// JSON keys use camelCase; the mcpServers block is shape-compatible with the
// server maps used by common MCP host applications.
package config

import "time"

// ServerConfig describes one MCP server connection (stdio or HTTP).
// Exactly one of Command or URL should be set.
type ServerConfig struct {
	Command        string            `json:"command,omitempty" yaml:"command,omitempty"`
	Args           []string          `json:"args,omitempty" yaml:"args,omitempty"`
	Env            map[string]string `json:"env,omitempty" yaml:"env,omitempty"`
	URL            string            `json:"url,omitempty" yaml:"url,omitempty"`
	Headers        map[string]string `json:"headers,omitempty" yaml:"headers,omitempty"`
	IncludeTools   []string          `json:"includeTools,omitempty" yaml:"includeTools,omitempty"`
	ExcludeTools   []string          `json:"excludeTools,omitempty" yaml:"excludeTools,omitempty"`
	TimeoutSeconds float64           `json:"timeoutSeconds,omitempty" yaml:"timeoutSeconds,omitempty"`
}

// Timeout returns the per-read timeout for this server, falling back to def
// when unset. A zero result means no timeout.
func (s ServerConfig) Timeout(def float64) time.Duration {
	secs := s.TimeoutSeconds
	if secs == 0 {
		secs = def
	}
	return time.Duration(secs * float64(time.Second))
}

// Defaults holds settings applied to every server unless overridden.
type Defaults struct {
	TimeoutSeconds float64 `json:"timeoutSeconds" yaml:"timeoutSeconds"`
}

// Config is the root configuration object.
type Config struct {
	Defaults   Defaults                `json:"defaults" yaml:"defaults"`
	MCPServers map[string]ServerConfig `json:"mcpServers" yaml:"mcpServers"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Config {
	return Config{
		Defaults:   Defaults{TimeoutSeconds: 30},
		MCPServers: map[string]ServerConfig{},
	}
}
