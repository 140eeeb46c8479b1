package mcptools

import (
	"errors"
	"fmt"
)

// ErrSessionClosed is returned when a tool is invoked after its owning tool
// set has been closed. The transport is never reached in that case.
var ErrSessionClosed = errors.New("mcp session closed")

// ConfigError reports an invalid filter request: both include and exclude
// filters set, or a requested tool name the server does not expose.
// It is always raised before any tool reaches the caller.
type ConfigError struct {
	msg string
}

func (e *ConfigError) Error() string { return e.msg }

func configErrorf(format string, args ...any) *ConfigError {
	return &ConfigError{msg: fmt.Sprintf(format, args...)}
}

// InvocationError reports a tool call the server flagged as failed
// (isError set on the result). It carries the textual content of the
// response as the message. Calls are never retried here.
type InvocationError struct {
	Tool    string
	Message string
}

func (e *InvocationError) Error() string {
	return fmt.Sprintf("call tool %q failed: %s", e.Tool, e.Message)
}
