// Package schema contains the core types shared across toolbridge packages.
// Concrete implementations live in their respective packages; this package is the
// single canonical source of truth for the tool contract.
package schema

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// ArgType names the native Go type a JSON Schema parameter maps to.
type ArgType string

const (
	TypeMap    ArgType = "map[string]any"
	TypeSlice  ArgType = "[]any"
	TypeString ArgType = "string"
	TypeInt    ArgType = "int"
	TypeFloat  ArgType = "float64"
	TypeBool   ArgType = "bool"
	// TypeAny is the fallback for properties with no recognized "type" key.
	TypeAny ArgType = "any"
)

// ToolFunc is the invocation signature every tool is bound to.
type ToolFunc func(ctx context.Context, args map[string]any) (any, error)

// Tool is a locally callable function with a declared argument schema.
// MCP-backed tools hold a non-owning reference to their session through fn;
// closing the owning tool set makes fn fail, never the Tool itself.
type Tool struct {
	name     string
	desc     string
	args     map[string]map[string]any
	argTypes map[string]ArgType
	argDesc  map[string]string
	fn       ToolFunc
}

// NewTool builds a Tool from a function, its name and description, and the
// per-argument schema fragments, native types, and descriptions.
func NewTool(fn ToolFunc, name, desc string, args map[string]map[string]any, argTypes map[string]ArgType, argDesc map[string]string) *Tool {
	if args == nil {
		args = map[string]map[string]any{}
	}
	if argTypes == nil {
		argTypes = map[string]ArgType{}
	}
	if argDesc == nil {
		argDesc = map[string]string{}
	}
	return &Tool{
		name:     name,
		desc:     desc,
		args:     args,
		argTypes: argTypes,
		argDesc:  argDesc,
		fn:       fn,
	}
}

func (t *Tool) Name() string                    { return t.name }
func (t *Tool) Description() string             { return t.desc }
func (t *Tool) Args() map[string]map[string]any { return t.args }
func (t *Tool) ArgTypes() map[string]ArgType    { return t.argTypes }
func (t *Tool) ArgDesc() map[string]string      { return t.argDesc }

// Call invokes the bound function with the given keyword arguments.
func (t *Tool) Call(ctx context.Context, args map[string]any) (any, error) {
	if t.fn == nil {
		return nil, errors.New("tool " + t.name + ": no function bound")
	}
	return t.fn(ctx, args)
}

// Parameters returns the tool's argument schema as a single JSON Schema object
// (as raw JSON bytes), suitable for LLM function-calling definitions.
func (t *Tool) Parameters() json.RawMessage {
	params := map[string]any{
		"type":       "object",
		"properties": t.args,
	}
	data, err := json.Marshal(params)
	if err != nil {
		// args came from unmarshaled JSON, so this cannot normally happen.
		return json.RawMessage(fmt.Sprintf(`{"type":"object","properties":{},"error":%q}`, err.Error()))
	}
	return data
}
